package burst

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-toneburst/internal/numeric"
)

// ErrSpectrumSize is returned when the requested FFT size cannot hold
// one repetition interval.
var ErrSpectrumSize = errors.New("burst: FFT size smaller than repetition interval")

// Splatter summarizes the spectrum of one synthesized burst interval.
//
// The burst carries energy at the fundamental and its second harmonic;
// everything else is truncation skirt. WorstSkirtDB reports the highest
// bin outside the main lobes of those two components, relative to the
// peak, and quantifies how much the whole-cycle raised-cosine envelope
// suppresses splatter between bursts.
type Splatter struct {
	FFTSize      int
	PeakBin      int
	PeakFreq     float64 // bin center frequency in Hz
	PeakLevelDB  float64 // peak level in dB re full scale
	WorstSkirtDB float64 // worst out-of-band bin relative to the peak, in dB
	SkirtBins    int     // half-width of the excluded main lobes, in bins
}

// AnalyzeSpectrum computes the magnitude spectrum of one synthesized
// burst interval and reports its splatter metrics. fftSize must be a
// power of two at least Interval long; pass 0 to choose the smallest
// suitable size.
func AnalyzeSpectrum(cfg Config, step Step, fftSize int) (Splatter, error) {
	if fftSize == 0 {
		fftSize = nextPowerOf2(cfg.Interval)
	}

	if fftSize < cfg.Interval {
		return Splatter{}, ErrSpectrumSize
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Splatter{}, fmt.Errorf("burst: FFT plan: %w", err)
	}

	wave := Waveform(cfg, step)

	in := make([]complex128, fftSize)
	for i, v := range wave {
		in[i] = complex(v/cfg.Amplitude, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return Splatter{}, fmt.Errorf("burst: forward FFT: %w", err)
	}

	// Magnitudes of the non-negative bins only.
	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)

	for i := 0; i < bins; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	// Scale so a full-scale whole-interval tone would read 1.0.
	scale := 2 / float64(step.Duration)
	vecmath.ScaleBlockInPlace(mag, scale)

	peak := 0
	for i, m := range mag {
		if m > mag[peak] {
			peak = i
		}
	}

	binHz := float64(cfg.SampleRate) / float64(fftSize)

	// Main lobe of a Duration-sample burst spans roughly 2/Duration of
	// the sample rate; exclude two lobe widths around the fundamental
	// and the second harmonic.
	skirt := 4 * fftSize / step.Duration
	if skirt < 1 {
		skirt = 1
	}

	fundBin := int(math.Round(step.ActualFreq / binHz))
	harmBin := int(math.Round(2 * step.ActualFreq / binHz))

	worst := 0.0
	for i, m := range mag {
		if absInt(i-fundBin) <= skirt || absInt(i-harmBin) <= skirt {
			continue
		}

		if m > worst {
			worst = m
		}
	}

	return Splatter{
		FFTSize:      fftSize,
		PeakBin:      peak,
		PeakFreq:     float64(peak) * binHz,
		PeakLevelDB:  numeric.AmplitudeDB(mag[peak]),
		WorstSkirtDB: numeric.AmplitudeDB(worst) - numeric.AmplitudeDB(mag[peak]),
		SkirtBins:    skirt,
	}, nil
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
