package field

import "testing"

func TestNoiseIsDeterministic(t *testing.T) {
	a := Noise(42, 1.0, 8, 4)
	b := Noise(42, 1.0, 8, 4)
	if a.Len() != 32 {
		t.Fatalf("Len() = %d, want 32", a.Len())
	}
	for i, v := range a.Data() {
		if v != b.Data()[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
		if v < -1 || v > 1 {
			t.Fatalf("noise[%d] = %v out of range", i, v)
		}
	}
}

func TestImpulsePattern(t *testing.T) {
	g := Impulse(4, 4, 1, 2)
	if g.At(1, 2) != 1 || g.Sum() != 1 {
		t.Fatalf("impulse = %v", g.Data())
	}
	if out := Impulse(4, 4, 9, 9); out.Sum() != 0 {
		t.Fatal("out-of-range impulse should be all zeros")
	}
}

func TestPlaneAtOrigin(t *testing.T) {
	g := Plane(1, 2, 8, 8)
	if g.At(0, 0) != 1 {
		t.Fatalf("Plane(0, 0) = %v, want 1", g.At(0, 0))
	}
}

func TestConstantAndRamp(t *testing.T) {
	c := Constant(2.5, 3, 3)
	if c.Sum() != 22.5 {
		t.Fatalf("Constant sum = %v, want 22.5", c.Sum())
	}
	r := Ramp(3, 2)
	if r.At(2, 1) != 5 {
		t.Fatalf("Ramp(2, 1) = %v, want 5", r.At(2, 1))
	}
}
