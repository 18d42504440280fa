package burst

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-toneburst/internal/numeric"
)

func TestNewSequencerInvalidConfig(t *testing.T) {
	cfg := SweepConfig()
	cfg.Steps = 1

	if _, err := NewSequencer(cfg); !errors.Is(err, ErrInvalidSteps) {
		t.Fatalf("NewSequencer() error = %v, want %v", err, ErrInvalidSteps)
	}
}

func TestSequencerResetIdempotent(t *testing.T) {
	seq, err := NewSequencer(SweepConfig())
	if err != nil {
		t.Fatal(err)
	}

	seq.Reset()
	first := seq.Current()

	seq.Reset()
	second := seq.Current()

	if first != second {
		t.Errorf("double Reset changed step: %+v != %+v", first, second)
	}

	// Reset after advancing rewinds to the same first step.
	seq.Advance()
	seq.Advance()
	seq.Reset()

	if got := seq.Current(); got != first {
		t.Errorf("Reset after Advance: %+v, want %+v", got, first)
	}

	if seq.Remaining() != seq.Config().Steps {
		t.Errorf("Remaining() = %d, want %d", seq.Remaining(), seq.Config().Steps)
	}
}

func TestSequencerSweepEndFrequency(t *testing.T) {
	cfg := SweepConfig()

	seq, err := NewSequencer(cfg)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < cfg.Steps-1; i++ {
		if !seq.Advance() {
			t.Fatalf("Advance() = false at step %d", i)
		}
	}

	if got := seq.Current().NominalFreq; !numeric.NearlyEqual(got, cfg.StopFreq, 1e-9) {
		t.Errorf("nominal after %d advances = %v, want %v", cfg.Steps-1, got, cfg.StopFreq)
	}

	if !seq.Good() {
		t.Error("Good() = false with one step remaining")
	}
}

func TestSequencerSweepStepCount(t *testing.T) {
	cfg := SweepConfig()

	seq, err := NewSequencer(cfg)
	if err != nil {
		t.Fatal(err)
	}

	count := 0
	for seq.Reset(); seq.Good(); seq.Advance() {
		count++
	}

	if count != cfg.Steps {
		t.Errorf("loop ran %d times, want %d", count, cfg.Steps)
	}
}

func TestSequencerSweepMonotonic(t *testing.T) {
	seq, err := NewSequencer(SweepConfig())
	if err != nil {
		t.Fatal(err)
	}

	prev := 0.0
	for seq.Reset(); seq.Good(); seq.Advance() {
		step := seq.Current()

		if step.NominalFreq <= prev {
			t.Fatalf("nominal frequency not increasing: %v after %v", step.NominalFreq, prev)
		}

		if step.ActualFreq < step.NominalFreq-1e-9 {
			t.Fatalf("actual %v below nominal %v", step.ActualFreq, step.NominalFreq)
		}

		prev = step.NominalFreq
	}
}

func TestSequencerPolarHoldsFrequency(t *testing.T) {
	seq, err := NewSequencer(PolarConfig())
	if err != nil {
		t.Fatal(err)
	}

	first := seq.Current()

	for seq.Reset(); seq.Good(); seq.Advance() {
		// Bit-for-bit identical across all steps.
		if got := seq.Current(); got != first {
			t.Fatalf("step %d changed in polar mode: %+v != %+v", seq.Index(), got, first)
		}
	}
}

func TestSequencerExhaustedAdvance(t *testing.T) {
	seq, err := NewSequencer(PolarConfig())
	if err != nil {
		t.Fatal(err)
	}

	for seq.Reset(); seq.Good(); seq.Advance() {
	}

	if seq.Good() {
		t.Fatal("Good() = true after drain")
	}

	before := seq.Current()

	if seq.Advance() {
		t.Error("Advance() = true on exhausted sequence")
	}

	if got := seq.Current(); got != before {
		t.Errorf("exhausted Advance mutated step: %+v != %+v", got, before)
	}

	if seq.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", seq.Remaining())
	}
}

func TestSequencerIndex(t *testing.T) {
	cfg := PolarConfig()

	seq, err := NewSequencer(cfg)
	if err != nil {
		t.Fatal(err)
	}

	want := 0
	for seq.Reset(); seq.Good(); seq.Advance() {
		if seq.Index() != want {
			t.Fatalf("Index() = %d, want %d", seq.Index(), want)
		}
		want++
	}

	if seq.Index() != cfg.Steps {
		t.Errorf("final Index() = %d, want %d", seq.Index(), cfg.Steps)
	}
}
