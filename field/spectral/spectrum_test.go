package spectral

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-field/field"
	"github.com/cwbudde/algo-field/field/fft2d"
	"github.com/cwbudde/algo-field/internal/testutil"
)

var concreteBackends = []fft2d.Backend{fft2d.BackendAlgoFFT, fft2d.BackendGonum, fft2d.BackendGoDSP}

func TestRoundTrip(t *testing.T) {
	sizes := [][2]int{{8, 8}, {16, 4}, {4, 32}}
	for _, b := range concreteBackends {
		for _, sz := range sizes {
			t.Run(b.String(), func(t *testing.T) {
				f := field.Noise(int64(sz[0]*sz[1]), 1, sz[0], sz[1])

				s := New(WithBackend(b))
				if err := s.Forward(f); err != nil {
					t.Fatalf("Forward: %v", err)
				}
				got := field.New(sz[0], sz[1])
				if err := s.Inverse(got); err != nil {
					t.Fatalf("Inverse: %v", err)
				}
				testutil.RequireGridNearlyEqual(t, got, f, 1e-9)
			})
		}
	}
}

func TestRoundTripOddSize(t *testing.T) {
	f := field.Noise(5, 2, 5, 3)
	s, err := NewFromGrid(f)
	if err != nil {
		t.Fatalf("NewFromGrid: %v", err)
	}
	got := field.New(5, 3)
	if err := s.Inverse(got); err != nil {
		t.Fatalf("Inverse: %v", err)
	}
	testutil.RequireGridNearlyEqual(t, got, f, 1e-9)
}

func TestImpulseRoundTrip(t *testing.T) {
	f := field.Impulse(4, 4, 0, 0)
	s, err := NewFromGrid(f)
	if err != nil {
		t.Fatalf("NewFromGrid: %v", err)
	}
	got := field.New(4, 4)
	if err := s.Inverse(got); err != nil {
		t.Fatalf("Inverse: %v", err)
	}
	testutil.RequireGridNearlyEqual(t, got, f, 1e-15)
}

func TestImpulseHasFlatScaledSpectrum(t *testing.T) {
	s, err := NewFromGrid(field.Impulse(4, 4, 0, 0))
	if err != nil {
		t.Fatalf("NewFromGrid: %v", err)
	}

	re := s.Real()
	im := s.Imaginary()
	testutil.RequireGridNearlyEqual(t, re, field.Constant(1.0/16, 4, 4), 1e-15)
	testutil.RequireGridNearlyEqual(t, im, field.New(4, 4), 1e-15)

	// Shifting a constant grid is a no-op.
	shifted := re.Clone()
	Shift(shifted)
	testutil.RequireGridNearlyEqual(t, shifted, re, 0)

	testutil.RequireGridNearlyEqual(t, s.Magnitude(), field.Constant(1, 4, 4), 1e-15)
	testutil.RequireGridNearlyEqual(t, s.Power(), field.Constant(1, 4, 4), 1e-15)
	testutil.RequireGridNearlyEqual(t, s.Phase(), field.New(4, 4), 1e-15)
}

func TestPhaseOfShiftedImpulse(t *testing.T) {
	// An impulse at (1, 0) has phase -2*pi*kx/4 at native bin (kx, ky).
	s, err := NewFromGrid(field.Impulse(4, 4, 1, 0))
	if err != nil {
		t.Fatalf("NewFromGrid: %v", err)
	}

	wantCos, wantSin := field.New(4, 4), field.New(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			phi := -2 * math.Pi * float64(x) / 4
			wantCos.Set(x, y, math.Cos(phi))
			wantSin.Set(x, y, math.Sin(phi))
		}
	}
	Shift(wantCos)
	Shift(wantSin)

	// Compare through cos and sin so that -pi and pi count as equal.
	phase := s.Phase()
	gotCos, gotSin := field.New(4, 4), field.New(4, 4)
	for i, p := range phase.Data() {
		gotCos.Data()[i] = math.Cos(p)
		gotSin.Data()[i] = math.Sin(p)
	}
	testutil.RequireGridNearlyEqual(t, gotCos, wantCos, 1e-12)
	testutil.RequireGridNearlyEqual(t, gotSin, wantSin, 1e-12)
}

func TestMagnitudeIsUnscaled(t *testing.T) {
	for _, sz := range [][2]int{{8, 8}, {6, 5}} {
		f := field.Noise(99, 1, sz[0], sz[1])
		s, err := NewFromGrid(f)
		if err != nil {
			t.Fatalf("NewFromGrid: %v", err)
		}

		total := float64(s.TotalCells())
		re, im, mag := s.Real(), s.Imaginary(), s.Magnitude()
		for i := range re.Data() {
			r, m := re.Data()[i], im.Data()[i]
			scaled := mag.Data()[i] / total
			if math.Abs(r*r+m*m-scaled*scaled) > 1e-12 {
				t.Fatalf("%dx%d cell %d: re^2+im^2 = %v, (mag/total)^2 = %v",
					sz[0], sz[1], i, r*r+m*m, scaled*scaled)
			}
		}

		pow := s.Power()
		for i, p := range pow.Data() {
			if math.Abs(p-mag.Data()[i]*mag.Data()[i]) > 1e-9 {
				t.Fatalf("cell %d: power %v != mag^2 %v", i, p, mag.Data()[i]*mag.Data()[i])
			}
		}
	}
}

func TestDCBinIsSum(t *testing.T) {
	f := field.Ramp(4, 3)
	s, err := NewFromGrid(f)
	if err != nil {
		t.Fatalf("NewFromGrid: %v", err)
	}
	if dc := s.Bin(0, 0); cmplx.Abs(dc-complex(f.Sum(), 0)) > 1e-9 {
		t.Fatalf("Bin(0, 0) = %v, want %v", dc, f.Sum())
	}

	// The centred magnitude carries the same DC value.
	mag := s.Magnitude()
	if got := mag.At(CenterIndex(4), CenterIndex(3)); math.Abs(got-f.Sum()) > 1e-9 {
		t.Fatalf("centred DC magnitude = %v, want %v", got, f.Sum())
	}
}

func TestInverseFromPartsReconstructs(t *testing.T) {
	for _, sz := range [][2]int{{8, 8}, {8, 4}, {5, 3}, {7, 7}} {
		f := field.Noise(int64(sz[0]), 1, sz[0], sz[1])
		s, err := NewFromGrid(f)
		if err != nil {
			t.Fatalf("NewFromGrid(%dx%d): %v", sz[0], sz[1], err)
		}

		re, im := s.Real(), s.Imaginary()
		reCopy, imCopy := re.Clone(), im.Clone()

		got, err := s.InverseFromParts(re, im)
		if err != nil {
			t.Fatalf("InverseFromParts: %v", err)
		}
		testutil.RequireGridNearlyEqual(t, got, f, 1e-9)

		// Inputs are left untouched.
		testutil.RequireGridNearlyEqual(t, re, reCopy, 0)
		testutil.RequireGridNearlyEqual(t, im, imCopy, 0)
	}
}

func TestInverseFromPartsReplacesSpectrum(t *testing.T) {
	s, err := NewSized(4, 4)
	if err != nil {
		t.Fatalf("NewSized: %v", err)
	}

	re := field.New(4, 4)
	re.Set(CenterIndex(4), CenterIndex(4), 0.5)
	got, err := s.InverseFromParts(re, field.New(4, 4))
	if err != nil {
		t.Fatalf("InverseFromParts: %v", err)
	}
	// A lone DC coefficient of 0.5 in the scaled convention is a constant 0.5 field.
	testutil.RequireGridNearlyEqual(t, got, field.Constant(0.5, 4, 4), 1e-12)
	if dc := s.Bin(0, 0); cmplx.Abs(dc-8) > 1e-12 {
		t.Fatalf("Bin(0, 0) = %v, want 8", dc)
	}
}

func TestConvolutionTheorem(t *testing.T) {
	for _, b := range concreteBackends {
		a := field.Noise(1, 1, 8, 4)
		k := field.Noise(2, 1, 8, 4)

		sa, err := NewFromGrid(a, WithBackend(b))
		if err != nil {
			t.Fatalf("NewFromGrid(a): %v", err)
		}
		sk, err := NewFromGrid(k, WithBackend(b))
		if err != nil {
			t.Fatalf("NewFromGrid(k): %v", err)
		}
		sa.Multiply(sk)

		got := field.New(8, 4)
		if err := sa.Inverse(got); err != nil {
			t.Fatalf("Inverse: %v", err)
		}
		want, err := CircularConvolve(a, k)
		if err != nil {
			t.Fatalf("CircularConvolve: %v", err)
		}
		testutil.RequireGridNearlyEqual(t, got, want, 1e-9)
	}
}

func TestMultiplyByImpulseIsIdentity(t *testing.T) {
	f := field.Noise(3, 1, 8, 8)
	s, _ := NewFromGrid(f)
	id, _ := NewFromGrid(field.Impulse(8, 8, 0, 0))

	before := s.Coefficients(nil)
	s.Multiply(id)
	after := s.Coefficients(nil)
	for i := range before {
		if cmplx.Abs(before[i]-after[i]) > 1e-12 {
			t.Fatalf("bin %d changed: %v -> %v", i, before[i], after[i])
		}
	}
}

func TestMultiplyFormula(t *testing.T) {
	a, _ := NewSized(2, 1)
	b, _ := NewSized(2, 1)
	a.SetBin(0, 0, 1+2i)
	a.SetBin(1, 0, -3+0.5i)
	b.SetBin(0, 0, 3-1i)
	b.SetBin(1, 0, 2+2i)

	a.Multiply(b)
	if got := a.Bin(0, 0); got != (1+2i)*(3-1i) {
		t.Fatalf("Bin(0, 0) = %v, want %v", got, (1+2i)*(3-1i))
	}
	if got := a.Bin(1, 0); got != (-3+0.5i)*(2+2i) {
		t.Fatalf("Bin(1, 0) = %v, want %v", got, (-3+0.5i)*(2+2i))
	}
}

func TestPlanIsBuiltOnceAndReused(t *testing.T) {
	s := New()
	if s.Ready() {
		t.Fatal("New() should be uninitialized")
	}
	if err := s.Forward(field.Noise(1, 1, 8, 8)); err != nil {
		t.Fatalf("Forward: %v", err)
	}
	plan := s.plan
	freq := &s.frequency[0]

	for i := 0; i < 3; i++ {
		if err := s.Forward(field.Noise(int64(i), 1, 8, 8)); err != nil {
			t.Fatalf("Forward: %v", err)
		}
		if err := s.Inverse(field.New(8, 8)); err != nil {
			t.Fatalf("Inverse: %v", err)
		}
	}
	if s.plan != plan {
		t.Fatal("plan was rebuilt for a transform of the same size")
	}
	if &s.frequency[0] != freq {
		t.Fatal("frequency buffer was reallocated")
	}
}

func TestNewSizedIsReadyAndZero(t *testing.T) {
	s, err := NewSized(4, 2, WithBackend(fft2d.BackendGonum))
	if err != nil {
		t.Fatalf("NewSized: %v", err)
	}
	if !s.Ready() || s.Width() != 4 || s.Height() != 2 || s.TotalCells() != 8 {
		t.Fatalf("NewSized state: ready=%v %dx%d", s.Ready(), s.Width(), s.Height())
	}
	if s.Backend() != fft2d.BackendGonum {
		t.Fatalf("Backend() = %v, want gonum", s.Backend())
	}
	out := field.Constant(3, 4, 2)
	if err := s.Inverse(out); err != nil {
		t.Fatalf("Inverse: %v", err)
	}
	testutil.RequireGridNearlyEqual(t, out, field.New(4, 2), 0)
}

func TestNewSizedErrors(t *testing.T) {
	if _, err := NewSized(0, 4); err == nil {
		t.Fatal("NewSized(0, 4) returned nil error")
	}
	if _, err := NewSized(4, 4, WithBackend(fft2d.Backend(99))); err == nil {
		t.Fatal("NewSized with unknown backend returned nil error")
	}
	if err := New().Forward(field.New(0, 0)); err == nil {
		t.Fatal("Forward of an empty grid returned nil error")
	}
}

func TestReleaseReturnsToUninitialized(t *testing.T) {
	s, _ := NewFromGrid(field.Ramp(4, 4))
	s.Release()
	if s.Ready() || s.TotalCells() != 0 {
		t.Fatal("Release did not reset the spectrum")
	}
	testutil.RequirePanicIs(t, ErrNotReady, func() { s.Real() })

	if err := s.Forward(field.Ramp(8, 2)); err != nil {
		t.Fatalf("Forward after Release: %v", err)
	}
	if s.Width() != 8 || s.Height() != 2 {
		t.Fatalf("size after Release = %dx%d, want 8x2", s.Width(), s.Height())
	}
}

func TestContractViolationsPanic(t *testing.T) {
	s, _ := NewFromGrid(field.Ramp(4, 4))
	other, _ := NewFromGrid(field.Ramp(4, 2))

	testutil.RequirePanicIs(t, ErrDimensionMismatch, func() { _ = s.Forward(field.New(4, 2)) })
	testutil.RequirePanicIs(t, ErrDimensionMismatch, func() { _ = s.Inverse(field.New(2, 4)) })
	testutil.RequirePanicIs(t, ErrDimensionMismatch, func() {
		_, _ = s.InverseFromParts(field.New(4, 4), field.New(4, 3))
	})
	testutil.RequirePanicIs(t, ErrDimensionMismatch, func() { s.Multiply(other) })

	fresh := New()
	testutil.RequirePanicIs(t, ErrNotReady, func() { _ = fresh.Inverse(field.New(4, 4)) })
	testutil.RequirePanicIs(t, ErrNotReady, func() { fresh.Magnitude() })
	testutil.RequirePanicIs(t, ErrNotReady, func() { s.Multiply(fresh) })
	testutil.RequirePanicIs(t, ErrNotReady, func() { fresh.Bin(0, 0) })
}

func TestCoefficientsCopies(t *testing.T) {
	s, _ := NewFromGrid(field.Ramp(4, 4))
	buf := make([]complex128, 2, 32)
	got := s.Coefficients(buf)
	if len(got) != 16 || &got[0] != &buf[0] {
		t.Fatalf("Coefficients did not reuse dst capacity (len %d)", len(got))
	}
	got[0] = 0
	if s.Bin(0, 0) == 0 {
		t.Fatal("Coefficients aliases the frequency buffer")
	}
}
