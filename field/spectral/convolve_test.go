package spectral

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-field/field"
	"github.com/cwbudde/algo-field/internal/testutil"
)

func TestCircularConvolveImpulseShifts(t *testing.T) {
	a := field.Ramp(4, 3)
	k := field.Impulse(4, 3, 1, 2)

	got, err := CircularConvolve(a, k)
	if err != nil {
		t.Fatalf("CircularConvolve: %v", err)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			want := a.At((x+3)%4, (y+1)%3)
			if got.At(x, y) != want {
				t.Fatalf("(%d, %d) = %v, want %v", x, y, got.At(x, y), want)
			}
		}
	}
}

func TestConvolveMatchesDirect(t *testing.T) {
	for _, sz := range [][2]int{{8, 8}, {6, 5}} {
		a := field.Noise(10, 1, sz[0], sz[1])
		b := field.Noise(11, 1, sz[0], sz[1])

		got, err := Convolve(a, b)
		if err != nil {
			t.Fatalf("Convolve: %v", err)
		}
		want, err := CircularConvolve(a, b)
		if err != nil {
			t.Fatalf("CircularConvolve: %v", err)
		}
		testutil.RequireGridNearlyEqual(t, got, want, 1e-9)
	}
}

func TestConvolveErrors(t *testing.T) {
	if _, err := Convolve(field.New(4, 4), field.New(4, 2)); !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("Convolve mismatch err = %v", err)
	}
	if _, err := CircularConvolve(field.New(4, 4), field.New(2, 4)); !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("CircularConvolve mismatch err = %v", err)
	}
	if _, err := CircularConvolve(field.New(0, 0), field.New(0, 0)); err == nil {
		t.Fatal("CircularConvolve of empty grids returned nil error")
	}
}
