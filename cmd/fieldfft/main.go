// Command fieldfft transforms a 2-D scalar field and writes a chosen view of
// it.
//
// Usage:
//
//	fieldfft [flags] [input.png]
//
// Without an input file a test pattern is synthesized.
//
// Examples:
//
//	fieldfft -mode magnitude bunny.png
//	fieldfft -pattern plane -size 128x64 -mode real -csv
//	fieldfft -filter lowpass -cutoff 6 -mode spatial photo.png
//	fieldfft -filter bandpass -low 2 -cutoff 8 photo.png
//	fieldfft -probe 3,4 -screen 425,425 -pattern noise
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/cwbudde/algo-field/internal/config"
)

func main() {
	fl := newFlags(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fieldfft [flags] [input.png]\n\n")
		fmt.Fprintf(os.Stderr, "Transforms a 2-D field and writes a spatial or spectral view.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  fieldfft -mode magnitude bunny.png\n")
		fmt.Fprintf(os.Stderr, "  fieldfft -pattern plane -size 128x64 -mode real -csv\n")
		fmt.Fprintf(os.Stderr, "  fieldfft -filter lowpass -cutoff 6 -mode spatial photo.png\n")
		fmt.Fprintf(os.Stderr, "  fieldfft -filter bandpass -low 2 -cutoff 8 photo.png\n")
	}
	flag.Parse()

	if *fl.quiet {
		SetLogWriter(nil)
	}

	cfg, err := config.Load(*fl.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := fl.apply(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	if flag.NArg() > 0 {
		cfg.Input.Path = flag.Arg(0)
		if flag.NArg() > 1 {
			fmt.Fprintf(os.Stderr, "warning: ignoring %d extra arguments\n", flag.NArg()-1)
		}
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	if *fl.dumpConfig != "" {
		if err := cfg.WriteYAML(*fl.dumpConfig); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		logf("wrote %s", *fl.dumpConfig)
		return
	}

	req := request{cfg: cfg, now: time.Now()}
	if *fl.probe != "" {
		x, y, err := parsePair(*fl.probe)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: -probe: %v\n", err)
			os.Exit(2)
		}
		req.probe = &cell{x, y}
	}
	if *fl.screen != "" {
		x, y, err := parsePair(*fl.screen)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: -screen: %v\n", err)
			os.Exit(2)
		}
		req.screen = &cell{x, y}
	}

	if err := run(req, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// flags holds the command-line values registered on a flag set.
type flags struct {
	fs *flag.FlagSet

	configPath *string
	mode       *string
	backend    *string
	normalize  *bool
	filter     *string
	cutoff     *float64
	low        *float64
	profile    *string
	out        *string
	csv        *bool
	probe      *string
	screen     *string
	pattern    *string
	size       *string
	dumpConfig *string
	quiet      *bool
}

func newFlags(fs *flag.FlagSet) *flags {
	return &flags{
		fs:         fs,
		configPath: fs.String("config", "", "YAML config file overlaid on the defaults"),
		mode:       fs.String("mode", "", "view mode: spatial, real, imaginary, magnitude"),
		backend:    fs.String("backend", "", "FFT backend: auto, algofft, gonum, godsp"),
		normalize:  fs.Bool("normalize", true, "rescale the output view to [0, 1]"),
		filter:     fs.String("filter", "", "spectral filter: none, lowpass, highpass, bandpass"),
		cutoff:     fs.Float64("cutoff", 0, "filter cutoff radius in frequency bins (band-pass outer radius)"),
		low:        fs.Float64("low", 0, "band-pass inner radius in frequency bins"),
		profile:    fs.String("profile", "", "filter profile: ideal, gaussian"),
		out:        fs.String("out", "", "output directory"),
		csv:        fs.Bool("csv", false, "also write the view as x,y,value CSV"),
		probe:      fs.String("probe", "", "print the view value at cell x,y"),
		screen:     fs.String("screen", "", "print the cell under screen pixel sx,sy"),
		pattern:    fs.String("pattern", "", "synthesized input: impulse, noise, plane, ramp"),
		size:       fs.String("size", "", "synthesized input size WxH"),
		dumpConfig: fs.String("write-config", "", "write the effective config to this file and exit"),
		quiet:      fs.Bool("quiet", false, "suppress progress messages"),
	}
}

// apply copies explicitly given flags into cfg. Flags left at their
// defaults never override the config file.
func (f *flags) apply(cfg *config.Config) error {
	var err error
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "mode":
			cfg.View.Mode = *f.mode
		case "backend":
			cfg.Transform.Backend = *f.backend
		case "normalize":
			cfg.View.Normalize = *f.normalize
		case "filter":
			cfg.Filter.Kind = *f.filter
		case "cutoff":
			cfg.Filter.High = *f.cutoff
		case "low":
			cfg.Filter.Low = *f.low
		case "profile":
			cfg.Filter.Profile = *f.profile
		case "out":
			cfg.Output.Dir = *f.out
		case "csv":
			cfg.Output.CSV = *f.csv
		case "pattern":
			cfg.Input.Pattern = *f.pattern
		case "size":
			w, h, perr := parseSize(*f.size)
			if perr != nil {
				err = perr
				return
			}
			cfg.Input.Width, cfg.Input.Height = w, h
		}
	})
	return err
}
