// Package field provides a row-major 2D grid of float64 samples and the
// I/O used to move grids in and out of images and tables.
//
// A [Grid] addresses cells by (x, y) with 0 <= x < Width and 0 <= y < Height.
// The backing slice is laid out row by row, so the cell (x, y) lives at
// index x + Width*y. Functions that operate on two grids require equal
// dimensions.
//
// # I/O
//
// PNG images are read as luminance in [0, 1]. Row y = 0 is the bottom row of
// the image, matching the texture orientation used when a grid is displayed:
//
//	g, err := field.LoadPNG("bunny.png")
//	g.Normalize()
//	err = field.SavePNG(field.TimestampedName("output", ".png", time.Now()), g)
//
// Grids can also be written as x,y,value CSV tables with [WriteCSV] and read
// back with [ReadCSV].
package field
