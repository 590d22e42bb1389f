package spectral

import "github.com/cwbudde/algo-field/field/fft2d"

// Option configures a Spectrum.
type Option func(*config)

type config struct {
	backend fft2d.Backend
}

func defaultConfig() config {
	return config{backend: fft2d.BackendAuto}
}

// WithBackend selects the FFT backend used to build the plan.
func WithBackend(b fft2d.Backend) Option {
	return func(c *config) {
		c.backend = b
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
