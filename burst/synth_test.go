package burst

import (
	"math"
	"testing"
)

func TestSynthesizeShape(t *testing.T) {
	cfg := SweepConfig()
	step := ComputeStep(cfg.SampleRate, 1000, cfg.MinBurstLength)

	block := Synthesize(cfg, step)

	if len(block) != cfg.Interval {
		t.Fatalf("block length = %d, want %d", len(block), cfg.Interval)
	}

	// The envelope starts at a zero crossing.
	if block[0] != 0 {
		t.Errorf("block[0] = %d, want 0", block[0])
	}

	// Silence fills the interval after the burst.
	for j := step.Duration; j < len(block); j++ {
		if block[j] != 0 {
			t.Fatalf("block[%d] = %d, want silence after duration %d", j, block[j], step.Duration)
		}
	}

	// The burst itself is not silent.
	energy := 0.0
	for j := 0; j < step.Duration; j++ {
		energy += float64(block[j]) * float64(block[j])
	}

	if energy == 0 {
		t.Error("burst window carries no energy")
	}

	// The envelope peak stays within the headroom Validate guarantees.
	limit := int16(math.Ceil(cfg.Amplitude * envelopePeak))
	for j, s := range block {
		if s > limit || s < -limit {
			t.Fatalf("block[%d] = %d exceeds envelope limit %d", j, s, limit)
		}
	}
}

func TestSynthesizeMatchesWaveform(t *testing.T) {
	cfg := SweepConfig()
	step := ComputeStep(cfg.SampleRate, 250, cfg.MinBurstLength)

	wave := Waveform(cfg, step)
	block := Synthesize(cfg, step)

	for j := range wave {
		if got, want := float64(block[j]), math.Round(wave[j]); got != want {
			t.Fatalf("block[%d] = %v, want round(%v) = %v", j, got, wave[j], want)
		}
	}
}

func TestWaveformFormula(t *testing.T) {
	cfg := SweepConfig()
	step := ComputeStep(cfg.SampleRate, 100, cfg.MinBurstLength)

	wave := Waveform(cfg, step)

	for _, j := range []int{1, 10, 100, step.Duration - 1} {
		phase := step.PhaseFactor * float64(j)
		want := cfg.Amplitude * (math.Cos(phase) - math.Cos(2*phase))

		if wave[j] != want {
			t.Errorf("wave[%d] = %v, want %v", j, wave[j], want)
		}
	}
}
