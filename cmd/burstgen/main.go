// Command burstgen generates a tone-burst measurement signal and
// writes it to a WAV file.
//
// Usage:
//
//	burstgen [flags] outfile.wav [delay [averaging [startFreq [sweep|polar]]]]
//
// The positional arguments mirror the analyzer so a generated file can
// be analyzed back with the same invocation shape. A table describing
// each burst is printed to stdout; redirect it to keep alongside the
// signal file.
//
// Examples:
//
//	burstgen out.wav
//	burstgen out.wav 22050 4
//	burstgen -spectrum out.wav 22050 1 1000 polar
package main

import (
	"flag"
	"fmt"
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
	spectrum := flag.Bool("spectrum", false, "report per-burst spectral splatter")
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

	f, err := os.Create(params.Path)
	if err != nil {
		logger.Error().Err(err).Str("file", params.Path).Msg("cannot create output file")
		return exitOpen
	}
	defer f.Close()

	w, err := wavefile.NewWriter(f, cfg.SampleRate, cfg.TotalFrames())
	if err != nil {
		logger.Error().Err(err).Msg("cannot write header")
		return exitHeader
	}

	cli.LogSetup(logger, cfg, params.Path)

	if err := w.WriteSilence(cfg.Delay); err != nil {
		logger.Error().Err(err).Msg("cannot write delay")
		return exitData
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprint(tw, "cycles\tduration\tnominal [Hz]\tactual [Hz]")
	if *spectrum {
		fmt.Fprint(tw, "\tpeak [dB]\tskirt [dB]")
	}
	fmt.Fprintln(tw)

	for seq.Reset(); seq.Good(); seq.Advance() {
		step := seq.Current()

		block := burst.Synthesize(cfg, step)
		for i := 0; i < cfg.Averaging; i++ {
			if err := w.WriteMono(block); err != nil {
				logger.Error().Err(err).Msg("cannot write burst data")
				return exitData
			}
		}

		fmt.Fprintf(tw, "%d\t%d\t%.4f\t%.4f", step.CycleCount, step.Duration, step.NominalFreq, step.ActualFreq)

		if *spectrum {
			sp, err := burst.AnalyzeSpectrum(cfg, step, 0)
			if err != nil {
				logger.Error().Err(err).Msg("spectrum analysis failed")
				return exitData
			}

			fmt.Fprintf(tw, "\t%.2f\t%.2f", sp.PeakLevelDB, sp.WorstSkirtDB)
		}

		fmt.Fprintln(tw)
	}

	if err := w.Flush(); err != nil {
		logger.Error().Err(err).Msg("cannot flush output file")
		return exitData
	}

	if err := f.Close(); err != nil {
		logger.Error().Err(err).Msg("cannot close output file")
		return exitData
	}

	if err := tw.Flush(); err != nil {
		logger.Error().Err(err).Msg("cannot flush report")
		return exitData
	}

	logger.Info().Int("frames", cfg.TotalFrames()).Msg("done")

	return 0
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: burstgen [flags] outfile.wav [delay [averaging [startFreq [sweep|polar]]]]\n\n")
	fmt.Fprintf(os.Stderr, "Generates a tone-burst measurement signal as 16-bit stereo PCM.\n\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
}
