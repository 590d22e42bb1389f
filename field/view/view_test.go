package view

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-field/field"
	"github.com/cwbudde/algo-field/field/spectral"
	"github.com/cwbudde/algo-field/internal/testutil"
)

func TestModeCycle(t *testing.T) {
	m := ModeSpatial
	seen := []Mode{}
	for i := 0; i < 5; i++ {
		seen = append(seen, m)
		m = m.Next()
	}
	want := []Mode{ModeSpatial, ModeReal, ModeImaginary, ModeMagnitude, ModeSpatial}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("cycle = %v, want %v", seen, want)
		}
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{ModeSpatial, ModeReal, ModeImaginary, ModeMagnitude} {
		got, err := ParseMode(m.String())
		if err != nil || got != m {
			t.Fatalf("ParseMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseMode("phase"); err == nil {
		t.Fatal("ParseMode(phase) returned nil error")
	}
	if s := Mode(9).String(); s != "Mode(9)" {
		t.Fatalf("String() = %q", s)
	}
}

func TestSelect(t *testing.T) {
	f := field.Impulse(4, 4, 0, 0)
	s, err := spectral.NewFromGrid(f)
	if err != nil {
		t.Fatalf("NewFromGrid: %v", err)
	}

	if Select(ModeSpatial, f, s) != f {
		t.Fatal("spatial mode should return the spatial grid")
	}
	testutil.RequireGridNearlyEqual(t, Select(ModeReal, f, s), field.Constant(1.0/16, 4, 4), 1e-15)
	testutil.RequireGridNearlyEqual(t, Select(ModeImaginary, f, s), field.New(4, 4), 1e-15)
	testutil.RequireGridNearlyEqual(t, Select(ModeMagnitude, f, s), field.Constant(1, 4, 4), 1e-15)
}

func TestProbe(t *testing.T) {
	g := field.New(3, 3)
	g.Set(1, 2, 0.5)
	if got := Probe(g, 1, 2); got != "(1, 2) = 0.500000" {
		t.Fatalf("Probe = %q", got)
	}
}

func TestCellAtSquareField(t *testing.T) {
	v := NewViewport(850, 850, 400, 400)
	cases := []struct {
		sx, sy int
		x, y   int
	}{
		{0, 850, 0, 0},
		{425, 425, 200, 200},
		{850, 0, 399, 399},
		{-30, 2000, 0, 0},
	}
	for _, tc := range cases {
		x, y := v.CellAt(tc.sx, tc.sy, 400, 400)
		if x != tc.x || y != tc.y {
			t.Fatalf("CellAt(%d, %d) = (%d, %d), want (%d, %d)", tc.sx, tc.sy, x, y, tc.x, tc.y)
		}
	}
}

func TestCellAtWideFieldCentresEye(t *testing.T) {
	v := NewViewport(800, 800, 200, 100)
	if v.EyeX != 0.5 || v.EyeY != 0.25 {
		t.Fatalf("eye = (%v, %v), want (0.5, 0.25)", v.EyeX, v.EyeY)
	}
	x, y := v.CellAt(400, 400, 200, 100)
	if x != 100 || y != 50 {
		t.Fatalf("centre cell = (%d, %d), want (100, 50)", x, y)
	}
}

func TestPanAndZoom(t *testing.T) {
	v := NewViewport(100, 100, 10, 10)
	v.Pan(100, -100)
	if math.Abs(v.EyeX-0.4) > 1e-12 || math.Abs(v.EyeY-0.4) > 1e-12 {
		t.Fatalf("eye after pan = (%v, %v), want (0.4, 0.4)", v.EyeX, v.EyeY)
	}
	v.ZoomBy(500)
	if math.Abs(v.Zoom-0.5) > 1e-12 {
		t.Fatalf("zoom = %v, want 0.5", v.Zoom)
	}
}

func TestZoomByStopsAtMinimum(t *testing.T) {
	v := NewViewport(100, 100, 10, 10)
	v.ZoomBy(1e6)
	if v.Zoom != MinZoom {
		t.Fatalf("zoom = %v, want %v", v.Zoom, MinZoom)
	}
	for _, p := range [][2]int{{0, 0}, {50, 50}, {100, 100}} {
		x, y := v.CellAt(p[0], p[1], 10, 10)
		if x < 0 || x >= 10 || y < 0 || y >= 10 {
			t.Fatalf("CellAt(%d, %d) = (%d, %d) outside field", p[0], p[1], x, y)
		}
	}
}
