package fft2d

import (
	"fmt"
	"strings"
)

// Backend selects the FFT library that executes a plan.
type Backend int

const (
	// BackendAuto uses algo-fft and falls back to gonum for unsupported sizes.
	BackendAuto Backend = iota
	// BackendAlgoFFT uses github.com/MeKo-Christian/algo-fft.
	BackendAlgoFFT
	// BackendGonum uses gonum.org/v1/gonum/dsp/fourier.
	BackendGonum
	// BackendGoDSP uses github.com/mjibson/go-dsp/fft.
	BackendGoDSP
)

var backendNames = map[Backend]string{
	BackendAuto:    "auto",
	BackendAlgoFFT: "algofft",
	BackendGonum:   "gonum",
	BackendGoDSP:   "godsp",
}

// String returns the backend's flag name.
func (b Backend) String() string {
	if name, ok := backendNames[b]; ok {
		return name
	}
	return fmt.Sprintf("Backend(%d)", int(b))
}

// ParseBackend resolves a backend by name, case-insensitively.
func ParseBackend(name string) (Backend, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for b, n := range backendNames {
		if n == name {
			return b, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
}

// Backends lists the selectable backends in declaration order.
func Backends() []Backend {
	return []Backend{BackendAuto, BackendAlgoFFT, BackendGonum, BackendGoDSP}
}
