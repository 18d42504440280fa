// Command burstana analyzes a captured tone-burst measurement file.
//
// Usage:
//
//	burstana [flags] infile.wav [delay [averaging [startFreq [sweep|polar]]]]
//
// The positional arguments must match the ones the signal was generated
// with, since the analyzer re-derives the burst sequence rather than
// reading it from the file. For each burst it performs a matched-filter
// DFT at the exact synthesized frequency and prints magnitude, phase
// and background level per channel, followed by an aggregate summary.
//
// Examples:
//
//	burstana capture.wav
//	burstana capture.wav 22050 4
//	burstana capture.wav 22050 1 1000 polar
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-toneburst/burst"
	"github.com/cwbudde/algo-toneburst/internal/cli"
	"github.com/cwbudde/algo-toneburst/wavefile"
)

// Exit codes, one per failure kind.
const (
	exitUsage  = 1
	exitOpen   = 2
	exitHeader = 3
	exitData   = 4
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "YAML file overriding run parameters")
	verbose := flag.Bool("v", false, "verbose diagnostics")
	flag.Usage = usage
	flag.Parse()

	logger := cli.NewLogger(*verbose)

	params, err := cli.ParseArgs(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n\n", err)
		usage()

		return exitUsage
	}

	cfg := params.Config()

	if *configPath != "" {
		fc, err := cli.LoadFileConfig(*configPath)
		if err != nil {
			logger.Error().Err(err).Str("file", *configPath).Msg("cannot load config")
			return exitOpen
		}

		cfg = fc.Apply(cfg)
	}

	seq, err := burst.NewSequencer(cfg)
	if err != nil {
		logger.Error().Err(err).Msg("invalid configuration")
		return exitUsage
	}

	f, err := os.Open(params.Path)
	if err != nil {
		logger.Error().Err(err).Str("file", params.Path).Msg("cannot open input file")
		return exitOpen
	}
	defer f.Close()

	r, err := wavefile.NewReader(f)
	if err != nil {
		logger.Error().Err(err).Msg("cannot read header")
		return exitHeader
	}

	hdr := r.Header()
	logger.Info().
		Int("sampleRate", hdr.SampleRate()).
		Int("channels", int(hdr.Fmt.Channels)).
		Int("bits", int(hdr.Fmt.BitsPerSample)).
		Int("frames", hdr.Frames()).
		Msg("container header")

	if hdr.SampleRate() != cfg.SampleRate {
		logger.Warn().
			Int("file", hdr.SampleRate()).
			Int("configured", cfg.SampleRate).
			Msg("sample rate mismatch; results will be scaled in frequency")
	}

	cli.LogSetup(logger, cfg, params.Path)

	if err := r.SkipFrames(cfg.Delay); err != nil {
		logger.Error().Err(err).Msg("cannot skip delay")
		return exitData
	}

	polar := cfg.Mode == burst.ModePolar

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	if polar {
		fmt.Fprint(tw, "angle\t")
	}
	fmt.Fprintln(tw, "cycles\tduration\tnominal [Hz]\tactual [Hz]\t"+
		"abs 1\tabs 2\tdB 1\tdB 2\tdB diff\t"+
		"phase 1\tphase 2\tphase diff\tbkg 1\tbkg 2")

	var sum burst.Summary

	for seq.Reset(); seq.Good(); seq.Advance() {
		step := seq.Current()

		a, err := burst.Demodulate(cfg, step, r)
		if err != nil {
			if errors.Is(err, io.ErrUnexpectedEOF) {
				logger.Error().Err(err).Int("step", seq.Index()).Msg("sample data ends early")
			} else {
				logger.Error().Err(err).Int("step", seq.Index()).Msg("cannot read burst data")
			}

			return exitData
		}

		if polar {
			fmt.Fprintf(tw, "%d\t", seq.Index()*360/cfg.Steps)
		}

		fmt.Fprintf(tw, "%d\t%d\t%.4f\t%.4f\t%.6f\t%.6f\t%.2f\t%.2f\t%.2f\t%.4f\t%.4f\t%.4f\t%.2f\t%.2f\n",
			step.CycleCount, step.Duration, step.NominalFreq, step.ActualFreq,
			a.Magnitude(0), a.Magnitude(1),
			a.MagnitudeDB(0), a.MagnitudeDB(1), a.LevelDiffDB(),
			a.Phase(0), a.Phase(1), a.PhaseDiff(),
			a.BackgroundDB(0), a.BackgroundDB(1))

		sum.Add(a)
	}

	if err := tw.Flush(); err != nil {
		logger.Error().Err(err).Msg("cannot flush report")
		return exitData
	}

	fmt.Printf("steps %d  mean level %.2f / %.2f dB  spread %.2f / %.2f dB  mean background %.2f / %.2f dB\n",
		sum.Count(),
		sum.MeanLevelDB(0), sum.MeanLevelDB(1),
		sum.PeakDeviationDB(0), sum.PeakDeviationDB(1),
		sum.MeanBackgroundDB(0), sum.MeanBackgroundDB(1))

	return 0
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: burstana [flags] infile.wav [delay [averaging [startFreq [sweep|polar]]]]\n\n")
	fmt.Fprintf(os.Stderr, "Analyzes a captured tone-burst measurement file.\n\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
}
