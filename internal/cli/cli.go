// Package cli holds the plumbing shared by the burstgen and burstana
// drivers: the positional argument surface, the optional YAML override
// file and logger setup.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-toneburst/burst"
)

// ErrMissingPath is returned when no file name argument is given.
var ErrMissingPath = errors.New("cli: missing file name argument")

// ErrExtraArgs is returned when more positional arguments follow the
// mode selector.
var ErrExtraArgs = errors.New("cli: too many arguments")

// Params carries the parsed positional arguments:
//
//	path [delay [averaging [startFreq [sweep|polar]]]]
//
// Later arguments may only be given when the earlier ones are, so each
// override tracks whether it was present.
type Params struct {
	Path string

	delay        int
	averaging    int
	startFreq    float64
	mode         burst.Mode
	hasDelay     bool
	hasAveraging bool
	hasStartFreq bool
	hasMode      bool
}

// ParseArgs parses the positional argument list.
func ParseArgs(args []string) (Params, error) {
	if len(args) == 0 {
		return Params{}, ErrMissingPath
	}

	if len(args) > 5 {
		return Params{}, ErrExtraArgs
	}

	p := Params{Path: args[0]}

	if len(args) > 1 {
		v, err := strconv.Atoi(args[1])
		if err != nil {
			return Params{}, fmt.Errorf("cli: delay %q: %w", args[1], err)
		}

		p.delay = v
		p.hasDelay = true
	}

	if len(args) > 2 {
		v, err := strconv.Atoi(args[2])
		if err != nil {
			return Params{}, fmt.Errorf("cli: averaging %q: %w", args[2], err)
		}

		p.averaging = v
		p.hasAveraging = true
	}

	if len(args) > 3 {
		v, err := strconv.ParseFloat(args[3], 64)
		if err != nil {
			return Params{}, fmt.Errorf("cli: start frequency %q: %w", args[3], err)
		}

		p.startFreq = v
		p.hasStartFreq = true
	}

	if len(args) > 4 {
		p.mode = burst.ModeSweep
		if strings.HasPrefix(strings.ToLower(args[4]), "p") {
			p.mode = burst.ModePolar
		}

		p.hasMode = true
	}

	return p, nil
}

// Config builds the run configuration from the mode defaults with the
// parsed overrides applied.
func (p Params) Config() burst.Config {
	cfg := burst.SweepConfig()
	if p.hasMode && p.mode == burst.ModePolar {
		cfg = burst.PolarConfig()
	}

	if p.hasDelay {
		cfg.Delay = p.delay
	}

	if p.hasAveraging {
		cfg.Averaging = p.averaging
	}

	if p.hasStartFreq {
		cfg.StartFreq = p.startFreq
		if cfg.Mode == burst.ModePolar {
			cfg.StopFreq = p.startFreq
		}
	}

	return cfg
}

// FileConfig is the optional YAML override file. Absent fields leave
// the corresponding configuration value untouched.
type FileConfig struct {
	SampleRate     *int     `yaml:"sampleRate"`
	Interval       *int     `yaml:"interval"`
	MinBurstLength *int     `yaml:"minBurstLength"`
	Amplitude      *float64 `yaml:"amplitude"`
	Steps          *int     `yaml:"steps"`
	StartFreq      *float64 `yaml:"startFreq"`
	StopFreq       *float64 `yaml:"stopFreq"`
	Averaging      *int     `yaml:"averaging"`
	Delay          *int     `yaml:"delay"`
}

// LoadFileConfig reads and decodes a YAML override file.
func LoadFileConfig(path string) (FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileConfig{}, fmt.Errorf("cli: read config: %w", err)
	}

	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return FileConfig{}, fmt.Errorf("cli: parse config: %w", err)
	}

	return fc, nil
}

// Apply overlays the file values onto a run configuration.
func (f FileConfig) Apply(cfg burst.Config) burst.Config {
	if f.SampleRate != nil {
		cfg.SampleRate = *f.SampleRate
	}

	if f.Interval != nil {
		cfg.Interval = *f.Interval
	}

	if f.MinBurstLength != nil {
		cfg.MinBurstLength = *f.MinBurstLength
	}

	if f.Amplitude != nil {
		cfg.Amplitude = *f.Amplitude
	}

	if f.Steps != nil {
		cfg.Steps = *f.Steps
	}

	if f.StartFreq != nil {
		cfg.StartFreq = *f.StartFreq
	}

	if f.StopFreq != nil {
		cfg.StopFreq = *f.StopFreq
	}

	if f.Averaging != nil {
		cfg.Averaging = *f.Averaging
	}

	if f.Delay != nil {
		cfg.Delay = *f.Delay
	}

	if cfg.Mode == burst.ModePolar && f.StopFreq == nil {
		cfg.StopFreq = cfg.StartFreq
	}

	return cfg
}

// NewLogger returns the console diagnostics logger shared by both
// drivers. Measurement output goes to stdout; the logger stays on
// stderr so the table can be redirected cleanly.
func NewLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

// LogSetup reports the run configuration at startup.
func LogSetup(logger zerolog.Logger, cfg burst.Config, path string) {
	logger.Info().
		Str("file", path).
		Stringer("mode", cfg.Mode).
		Float64("startFreq", cfg.StartFreq).
		Float64("stopFreq", cfg.StopFreq).
		Int("steps", cfg.Steps).
		Int("averaging", cfg.Averaging).
		Int("delay", cfg.Delay).
		Int("interval", cfg.Interval).
		Msg("run setup")
}
