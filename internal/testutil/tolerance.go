package testutil

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-field/field"
)

// RequireGridNearlyEqual fails t if got and want differ in size or if any
// cell pair exceeds eps (absolute tolerance).
func RequireGridNearlyEqual(t *testing.T, got, want *field.Grid, eps float64) {
	t.Helper()
	if !got.SameSize(want) {
		t.Fatalf("size mismatch: got %dx%d, want %dx%d", got.Width(), got.Height(), want.Width(), want.Height())
	}
	g, w := got.Data(), want.Data()
	for i := range g {
		diff := math.Abs(g[i] - w[i])
		if diff > eps {
			t.Fatalf("cell (%d, %d): got %v, want %v (diff %v > eps %v)",
				i%got.Width(), i/got.Width(), g[i], w[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any cell is NaN or Inf.
func RequireFinite(t *testing.T, g *field.Grid) {
	t.Helper()
	for i, v := range g.Data() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("cell (%d, %d): non-finite value %v", i%g.Width(), i/g.Width(), v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute cell difference between two grids.
// Returns an error if the grids differ in size.
func MaxAbsDiff(a, b *field.Grid) (float64, error) {
	if !a.SameSize(b) {
		return 0, fmt.Errorf("size mismatch: %dx%d vs %dx%d", a.Width(), a.Height(), b.Width(), b.Height())
	}
	maxDiff := 0.0
	bd := b.Data()
	for i, v := range a.Data() {
		d := math.Abs(v - bd[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}

// RequirePanicIs fails t unless fn panics with an error matching target.
func RequirePanicIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic wrapping %v", target)
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value %v (%T) is not an error", r, r)
		}
		if !errors.Is(err, target) {
			t.Fatalf("panic %v does not wrap %v", err, target)
		}
	}()
	fn()
}
