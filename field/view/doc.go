// Package view holds the headless state of a field viewer: which grid is
// displayed, how screen pixels map to field cells, and how a probed cell is
// reported. Drawing and input handling live in the front end.
package view
