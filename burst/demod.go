package burst

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-toneburst/internal/numeric"
)

// BlockReader supplies captured sample frames one repetition interval
// at a time. ReadBlock fills both channel slices (equal length) and
// returns io.ErrUnexpectedEOF when the stream ends before the block is
// complete; any error aborts the remaining sequence.
type BlockReader interface {
	ReadBlock(ch1, ch2 []float64) error
}

// Analysis holds the normalized complex correlation sums for one step.
//
// Response and Background are indexed by channel. Each sum is the
// single-frequency DFT of the captured samples against the kernel
// e^(i*PhaseFactor*j), normalized by Duration*Averaging*Amplitude/2 so
// that a full-scale burst reads as magnitude 1.0 (0 dB). Phase is
// referenced to the start of the burst window.
type Analysis struct {
	Response   [2]complex128
	Background [2]complex128
}

// Magnitude returns the linear burst-response magnitude for a channel.
func (a Analysis) Magnitude(ch int) float64 {
	return cmplx.Abs(a.Response[ch])
}

// MagnitudeDB returns the burst-response level in dB re full scale.
func (a Analysis) MagnitudeDB(ch int) float64 {
	return numeric.AmplitudeDB(a.Magnitude(ch))
}

// Phase returns the burst-response phase angle in radians.
func (a Analysis) Phase(ch int) float64 {
	return cmplx.Phase(a.Response[ch])
}

// LevelDiffDB returns the channel 1 minus channel 2 level difference in dB.
func (a Analysis) LevelDiffDB() float64 {
	return a.MagnitudeDB(0) - a.MagnitudeDB(1)
}

// PhaseDiff returns the channel 1 minus channel 2 phase difference in radians.
func (a Analysis) PhaseDiff() float64 {
	return a.Phase(0) - a.Phase(1)
}

// BackgroundDB returns the background-noise level in dB re full scale,
// measured over a like-duration window of trailing silence.
func (a Analysis) BackgroundDB(ch int) float64 {
	return numeric.AmplitudeDB(cmplx.Abs(a.Background[ch]))
}

// kernel holds precomputed cos/sin correlation tables so the inner
// accumulation reduces to dot products.
type kernel struct {
	burstCos, burstSin []float64
	bkgCos, bkgSin     []float64
	bkgStart           int
}

func newKernel(cfg Config, step Step) kernel {
	dur := step.Duration
	if dur > cfg.Interval {
		dur = cfg.Interval
	}

	k := kernel{
		burstCos: make([]float64, dur),
		burstSin: make([]float64, dur),
	}

	for j := range k.burstCos {
		phase := step.PhaseFactor * float64(j)
		k.burstCos[j] = math.Cos(phase)
		k.burstSin[j] = math.Sin(phase)
	}

	// The background window is a like-duration stretch of silence
	// immediately before the next burst. The kernel phase keeps the
	// absolute sample index, matching the burst correlation.
	start := cfg.Interval - 2*step.Duration
	if start < 0 {
		start = 0
	}

	end := cfg.Interval - step.Duration
	if end > start {
		n := end - start
		k.bkgStart = start
		k.bkgCos = make([]float64, n)
		k.bkgSin = make([]float64, n)

		for j := range k.bkgCos {
			phase := step.PhaseFactor * float64(start+j)
			k.bkgCos[j] = math.Cos(phase)
			k.bkgSin[j] = math.Sin(phase)
		}
	}

	return k
}

// Demodulate correlates Averaging repetition intervals of captured
// samples against the exact burst frequency and returns the normalized
// response and background sums for both channels.
//
// This is a matched filter: the correlation runs only over the true
// burst window, at the frequency that completes whole cycles within it,
// so a clean capture of the synthesized burst yields magnitude 1.0 and
// phase 0 up to quantization error.
func Demodulate(cfg Config, step Step, src BlockReader) (Analysis, error) {
	k := newKernel(cfg, step)

	ch1 := make([]float64, cfg.Interval)
	ch2 := make([]float64, cfg.Interval)

	var r1, r2, b1, b2 [2]float64 // [re, im] accumulators per sum

	dur := len(k.burstCos)
	bkgEnd := k.bkgStart + len(k.bkgCos)

	for i := 0; i < cfg.Averaging; i++ {
		if err := src.ReadBlock(ch1, ch2); err != nil {
			return Analysis{}, fmt.Errorf("burst: demodulate %.2f Hz: %w", step.ActualFreq, err)
		}

		r1[0] += vecmath.DotProduct(ch1[:dur], k.burstCos)
		r1[1] += vecmath.DotProduct(ch1[:dur], k.burstSin)
		r2[0] += vecmath.DotProduct(ch2[:dur], k.burstCos)
		r2[1] += vecmath.DotProduct(ch2[:dur], k.burstSin)

		if len(k.bkgCos) > 0 {
			b1[0] += vecmath.DotProduct(ch1[k.bkgStart:bkgEnd], k.bkgCos)
			b1[1] += vecmath.DotProduct(ch1[k.bkgStart:bkgEnd], k.bkgSin)
			b2[0] += vecmath.DotProduct(ch2[k.bkgStart:bkgEnd], k.bkgCos)
			b2[1] += vecmath.DotProduct(ch2[k.bkgStart:bkgEnd], k.bkgSin)
		}
	}

	// Normalize to the 0 dB reference of a full-scale burst.
	norm := float64(step.Duration) * float64(cfg.Averaging) * cfg.Amplitude / 2

	return Analysis{
		Response: [2]complex128{
			complex(r1[0]/norm, r1[1]/norm),
			complex(r2[0]/norm, r2[1]/norm),
		},
		Background: [2]complex128{
			complex(b1[0]/norm, b1[1]/norm),
			complex(b2[0]/norm, b2[1]/norm),
		},
	}, nil
}
