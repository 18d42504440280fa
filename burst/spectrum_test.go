package burst

import (
	"errors"
	"math"
	"testing"
)

func TestAnalyzeSpectrumPeak(t *testing.T) {
	cfg := testConfig()
	step := ComputeStep(cfg.SampleRate, cfg.StartFreq, cfg.MinBurstLength)

	sp, err := AnalyzeSpectrum(cfg, step, 0)
	if err != nil {
		t.Fatal(err)
	}

	if sp.FFTSize < cfg.Interval {
		t.Fatalf("FFTSize = %d, smaller than interval %d", sp.FFTSize, cfg.Interval)
	}

	// The burst carries equal fundamental and second harmonic; the peak
	// must land on one of them.
	binHz := float64(cfg.SampleRate) / float64(sp.FFTSize)
	lobe := binHz * float64(sp.SkirtBins)

	distFund := math.Abs(sp.PeakFreq - step.ActualFreq)
	distHarm := math.Abs(sp.PeakFreq - 2*step.ActualFreq)

	if distFund > lobe && distHarm > lobe {
		t.Errorf("PeakFreq = %v Hz, not near %v or %v", sp.PeakFreq, step.ActualFreq, 2*step.ActualFreq)
	}

	// Full-scale component, finely sampled main lobe.
	if sp.PeakLevelDB < -1 || sp.PeakLevelDB > 1 {
		t.Errorf("PeakLevelDB = %v, want ~0 dB", sp.PeakLevelDB)
	}

	// Whole-cycle bursts keep the skirts well below the peak.
	if sp.WorstSkirtDB > -10 {
		t.Errorf("WorstSkirtDB = %v, want below -10 dB", sp.WorstSkirtDB)
	}
}

func TestAnalyzeSpectrumSizeTooSmall(t *testing.T) {
	cfg := testConfig()
	step := ComputeStep(cfg.SampleRate, cfg.StartFreq, cfg.MinBurstLength)

	_, err := AnalyzeSpectrum(cfg, step, cfg.Interval/2)
	if !errors.Is(err, ErrSpectrumSize) {
		t.Fatalf("AnalyzeSpectrum() error = %v, want %v", err, ErrSpectrumSize)
	}
}
