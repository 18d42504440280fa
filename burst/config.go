package burst

import (
	"errors"
	"math"
)

// Default run parameters. The sample rate, repetition interval and
// minimum burst length follow standard free-field measurement practice:
// a 22050-sample interval at 44.1 kHz leaves half a second between
// bursts for room reflections to decay, and a 100-sample minimum burst
// (2.27 ms) keeps even the lowest bursts detectable.
const (
	DefaultSampleRate     = 44100
	DefaultInterval       = 22050
	DefaultMinBurstLength = 100
	DefaultAmplitude      = 12000.0

	// envelopePeak is the maximum of |cos(x) - cos(2x)|, reached at
	// cos(x) = 1/4. The full-scale amplitude must leave this much
	// headroom below the int16 range.
	envelopePeak = 1.125
)

// Errors returned by Config.Validate.
var (
	ErrInvalidSampleRate = errors.New("burst: sample rate must be positive")
	ErrInvalidInterval   = errors.New("burst: repetition interval must be positive")
	ErrBurstLength       = errors.New("burst: minimum burst length must be positive and not exceed the interval")
	ErrInvalidAveraging  = errors.New("burst: averaging count must be at least 1")
	ErrInvalidSteps      = errors.New("burst: polar mode needs at least 1 step, sweep mode at least 2")
	ErrFrequencyRange    = errors.New("burst: invalid frequency range")
	ErrInvalidDelay      = errors.New("burst: delay must not be negative")
	ErrAmplitude         = errors.New("burst: amplitude must be positive and keep the envelope peak within int16 range")
)

// Mode selects how the sequencer steps between bursts.
type Mode int

const (
	// ModeSweep steps the frequency geometrically from StartFreq to StopFreq.
	ModeSweep Mode = iota

	// ModePolar holds the frequency fixed; steps correspond to external
	// angular positions of a measurement turntable.
	ModePolar
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeSweep:
		return "sweep"
	case ModePolar:
		return "polar"
	default:
		return "unknown"
	}
}

// Config holds the immutable parameters of one measurement run.
type Config struct {
	SampleRate     int     // samples per second
	Interval       int     // samples per burst repetition
	MinBurstLength int     // minimum burst duration in samples
	Averaging      int     // bursts averaged per step
	StartFreq      float64 // first nominal frequency in Hz
	StopFreq       float64 // last nominal frequency in Hz (== StartFreq in polar mode)
	Steps          int     // number of sequence steps
	Delay          int     // silence samples before the first burst
	Amplitude      float64 // full-scale 0 dB reference level
	Mode           Mode
}

// SweepConfig returns the standard frequency-sweep configuration:
// 201 steps from 100 Hz to 10 kHz, 100 bursts per decade.
func SweepConfig() Config {
	return Config{
		SampleRate:     DefaultSampleRate,
		Interval:       DefaultInterval,
		MinBurstLength: DefaultMinBurstLength,
		Averaging:      1,
		StartFreq:      100,
		StopFreq:       10000,
		Steps:          201,
		Delay:          DefaultInterval,
		Amplitude:      DefaultAmplitude,
		Mode:           ModeSweep,
	}
}

// PolarConfig returns the standard polar-plot configuration: 72 steps
// at a fixed 1 kHz, with the repetition interval doubled so external
// equipment (typically a turntable) has time to settle between bursts.
func PolarConfig() Config {
	return Config{
		SampleRate:     DefaultSampleRate,
		Interval:       2 * DefaultInterval,
		MinBurstLength: DefaultMinBurstLength,
		Averaging:      1,
		StartFreq:      1000,
		StopFreq:       1000,
		Steps:          72,
		Delay:          DefaultInterval,
		Amplitude:      DefaultAmplitude,
		Mode:           ModePolar,
	}
}

// Validate checks that the configuration describes a usable run.
//
// Sweep mode requires at least 2 steps so the per-step frequency
// multiplier (StopFreq/StartFreq)^(1/(Steps-1)) is well defined.
func (c Config) Validate() error {
	if c.SampleRate <= 0 {
		return ErrInvalidSampleRate
	}

	if c.Interval <= 0 {
		return ErrInvalidInterval
	}

	if c.MinBurstLength <= 0 || c.MinBurstLength > c.Interval {
		return ErrBurstLength
	}

	if c.Averaging < 1 {
		return ErrInvalidAveraging
	}

	if c.Delay < 0 {
		return ErrInvalidDelay
	}

	if c.Amplitude <= 0 || c.Amplitude*envelopePeak > math.MaxInt16 {
		return ErrAmplitude
	}

	if c.StartFreq <= 0 {
		return ErrFrequencyRange
	}

	switch c.Mode {
	case ModeSweep:
		if c.Steps < 2 {
			return ErrInvalidSteps
		}

		if c.StopFreq < c.StartFreq {
			return ErrFrequencyRange
		}

	case ModePolar:
		if c.Steps < 1 {
			return ErrInvalidSteps
		}

		if c.StopFreq != c.StartFreq {
			return ErrFrequencyRange
		}

	default:
		return ErrFrequencyRange
	}

	return nil
}

// TotalFrames returns the number of sample frames a full run occupies:
// one repetition interval per averaged burst per step, plus the
// leading delay.
func (c Config) TotalFrames() int {
	return c.Interval*c.Averaging*c.Steps + c.Delay
}

// multiplier returns the per-step geometric frequency factor.
func (c Config) multiplier() float64 {
	if c.Mode != ModeSweep {
		return 1
	}

	return math.Pow(c.StopFreq/c.StartFreq, 1/float64(c.Steps-1))
}
