package main

import (
	"errors"
	"fmt"
	"io"
	"math/cmplx"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/algo-field/field"
	"github.com/cwbudde/algo-field/field/spectral"
	"github.com/cwbudde/algo-field/field/view"
	"github.com/cwbudde/algo-field/internal/config"
)

var errBadPair = errors.New("expected two integers")

type cell struct{ x, y int }

type request struct {
	cfg    *config.Config
	now    time.Time
	probe  *cell
	screen *cell
}

// result is what run produced, kept for the summary and tests.
type result struct {
	input    *field.Grid
	spatial  *field.Grid // input after filtering
	spectrum *spectral.Spectrum
	view     *field.Grid
	files    []string
}

func run(req request, stdout io.Writer) error {
	res, err := process(req)
	if err != nil {
		return err
	}
	defer res.spectrum.Release()

	if req.probe != nil {
		p := *req.probe
		if p.x < 0 || p.y < 0 || p.x >= res.view.Width() || p.y >= res.view.Height() {
			return fmt.Errorf("probe (%d, %d) outside %dx%d field", p.x, p.y, res.view.Width(), res.view.Height())
		}
		fmt.Fprintln(stdout, view.Probe(res.view, p.x, p.y))
	}
	if req.screen != nil {
		vp := view.NewViewport(req.cfg.View.ScreenWidth, req.cfg.View.ScreenHeight, res.view.Width(), res.view.Height())
		x, y := vp.CellAt(req.screen.x, req.screen.y, res.view.Width(), res.view.Height())
		fmt.Fprintf(stdout, "screen (%d, %d) -> %s\n", req.screen.x, req.screen.y, view.Probe(res.view, x, y))
	}

	return printSummary(stdout, req.cfg, res)
}

// process loads or synthesizes the input, transforms it, applies the filter
// and writes the selected view.
func process(req request) (*result, error) {
	cfg := req.cfg

	input, err := loadInput(cfg.Input)
	if err != nil {
		return nil, err
	}
	logf("input %dx%d", input.Width(), input.Height())

	spec, err := spectral.NewFromGrid(input, spectral.WithBackend(cfg.Backend()))
	if err != nil {
		return nil, err
	}
	logf("forward transform done (%s)", spec.Backend())

	spatial := input
	if cfg.Filter.Kind != "none" {
		mask := buildMask(cfg.Filter, input.Width(), input.Height())
		filtered, err := spectral.Filter(spec, mask)
		if err != nil {
			spec.Release()
			return nil, err
		}
		if err := spec.Forward(filtered); err != nil {
			spec.Release()
			return nil, err
		}
		spatial = filtered
		logf("applied %s %s filter", cfg.Filter.Profile, cfg.Filter.Kind)
	}

	out := view.Select(cfg.Mode(), spatial, spec)
	if out == spatial {
		out = spatial.Clone()
	}
	if cfg.View.Normalize {
		out.Normalize()
	}

	res := &result{input: input, spatial: spatial, spectrum: spec, view: out}
	if err := writeOutputs(cfg, out, req.now, res); err != nil {
		spec.Release()
		return nil, err
	}
	return res, nil
}

func loadInput(in config.InputConfig) (*field.Grid, error) {
	if in.Path != "" {
		return field.LoadPNG(in.Path)
	}
	switch in.Pattern {
	case "impulse":
		return field.Impulse(in.Width, in.Height, 0, 0), nil
	case "noise":
		return field.Noise(in.Seed, 1, in.Width, in.Height), nil
	case "plane":
		return field.Plane(in.Frequency, in.Frequency, in.Width, in.Height), nil
	case "ramp":
		return field.Ramp(in.Width, in.Height), nil
	default:
		return nil, fmt.Errorf("unknown pattern %q", in.Pattern)
	}
}

func buildMask(f config.FilterConfig, width, height int) *field.Grid {
	p := spectral.ProfileIdeal
	if f.Profile == "gaussian" {
		p = spectral.ProfileGaussian
	}
	switch f.Kind {
	case "highpass":
		return spectral.HighPass(width, height, f.High, p)
	case "bandpass":
		return spectral.BandPass(width, height, f.Low, f.High, p)
	default:
		return spectral.LowPass(width, height, f.High, p)
	}
}

func writeOutputs(cfg *config.Config, g *field.Grid, now time.Time, res *result) error {
	o := cfg.Output
	if !o.PNG && !o.CSV {
		return nil
	}
	if err := os.MkdirAll(o.Dir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	name := func(suffix string) string {
		if o.Timestamp {
			return filepath.Join(o.Dir, field.TimestampedName(o.Prefix, suffix, now))
		}
		return filepath.Join(o.Dir, o.Prefix+suffix)
	}

	if o.PNG {
		path := name(".png")
		if err := field.SavePNG(path, g); err != nil {
			return err
		}
		res.files = append(res.files, path)
		logf("wrote %s", path)
	}
	if o.CSV {
		path := name(".csv")
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		if err := field.WriteCSV(f, g); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		res.files = append(res.files, path)
		logf("wrote %s", path)
	}
	return nil
}

func printSummary(w io.Writer, cfg *config.Config, res *result) error {
	s := res.spectrum
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Size\t%dx%d\n", s.Width(), s.Height())
	fmt.Fprintf(tw, "Backend\t%s\n", s.Backend())
	fmt.Fprintf(tw, "DC magnitude\t%.6g\n", cmplx.Abs(s.Bin(0, 0)))
	fmt.Fprintf(tw, "\n")
	fmt.Fprintf(tw, "View\tMin\tMax\tMean\n")
	fmt.Fprintf(tw, "----\t---\t---\t----\n")

	cur := view.ModeSpatial
	for range 4 {
		g := view.Select(cur, res.spatial, s)
		label := cur.String()
		if cur == cfg.Mode() {
			label += " *"
		}
		fmt.Fprintf(tw, "%s\t%.6g\t%.6g\t%.6g\n", label, g.Min(), g.Max(), g.Mean())
		cur = cur.Next()
	}
	if len(res.files) > 0 {
		fmt.Fprintf(tw, "\n")
	}
	for _, f := range res.files {
		fmt.Fprintf(tw, "Output\t%s\n", f)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing summary: %w", err)
	}
	return nil
}

// parsePair parses "a,b" into two integers.
func parsePair(s string) (int, int, error) {
	return parseTwo(s, ",")
}

// parseSize parses "WxH" into positive dimensions.
func parseSize(s string) (int, int, error) {
	w, h, err := parseTwo(strings.ToLower(s), "x")
	if err != nil {
		return 0, 0, fmt.Errorf("-size: %w", err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("-size: dimensions must be > 0: %q", s)
	}
	return w, h, nil
}

func parseTwo(s, sep string) (int, int, error) {
	a, b, ok := strings.Cut(s, sep)
	if !ok {
		return 0, 0, fmt.Errorf("%w separated by %q: %q", errBadPair, sep, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(a))
	if err != nil {
		return 0, 0, fmt.Errorf("%w separated by %q: %q", errBadPair, sep, s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(b))
	if err != nil {
		return 0, 0, fmt.Errorf("%w separated by %q: %q", errBadPair, sep, s)
	}
	return x, y, nil
}
