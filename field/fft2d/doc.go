// Package fft2d provides 2D discrete Fourier transform plans over row-major
// complex buffers.
//
// A [Plan] is built once for a fixed width and height and reused for every
// transform of that size. Transforms are separable: each row is transformed,
// then each column. Several 1D FFT libraries can back a plan; all of them are
// adapted to one convention:
//
//   - Forward is unnormalized: X[k] = sum_n x[n] * exp(-2*pi*i*k*n/N).
//   - Inverse is normalized by 1/(width*height), so Inverse(Forward(x)) == x.
//
// # Backends
//
//   - [BackendAlgoFFT]: github.com/MeKo-Christian/algo-fft 1D plans.
//   - [BackendGonum]: gonum.org/v1/gonum/dsp/fourier complex plans, any length.
//   - [BackendGoDSP]: github.com/mjibson/go-dsp/fft whole-array FFT2/IFFT2.
//   - [BackendAuto]: algo-fft, falling back to gonum when algo-fft cannot
//     plan one of the axis lengths.
package fft2d
