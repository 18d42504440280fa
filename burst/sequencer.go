package burst

// Sequencer produces the ordered, restartable sequence of burst steps
// for one measurement run. It is the only mutable state in a run; one
// sequencer drives one generator or analyzer loop:
//
//	for seq.Reset(); seq.Good(); seq.Advance() { ... seq.Current() ... }
type Sequencer struct {
	cfg        Config
	multiplier float64
	remaining  int
	nominal    float64
	step       Step
}

// NewSequencer creates a sequencer for the given configuration.
// The configuration is validated once here; the stepping methods
// themselves never fail.
func NewSequencer(cfg Config) (*Sequencer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Sequencer{cfg: cfg}
	s.Reset()

	return s, nil
}

// Config returns the run configuration.
func (s *Sequencer) Config() Config {
	return s.cfg
}

// Reset rewinds the sequence to its first step. Calling Reset again
// without an intervening Advance leaves the sequencer unchanged.
func (s *Sequencer) Reset() {
	s.remaining = s.cfg.Steps
	s.nominal = s.cfg.StartFreq
	s.multiplier = s.cfg.multiplier()
	s.step = ComputeStep(s.cfg.SampleRate, s.nominal, s.cfg.MinBurstLength)
}

// Good reports whether steps remain in the sequence.
func (s *Sequencer) Good() bool {
	return s.remaining > 0
}

// Advance moves to the next step and reports whether the sequence was
// still running. Once the sequence is exhausted it performs no state
// change and returns false.
//
// In sweep mode the nominal frequency is multiplied by the per-step
// factor and the burst parameters recomputed. In polar mode the
// frequency is held bit-for-bit constant; only the caller's
// interpretation of the step (the turntable angle) changes.
func (s *Sequencer) Advance() bool {
	if !s.Good() {
		return false
	}

	if s.cfg.Mode == ModeSweep {
		s.nominal *= s.multiplier
		s.step = ComputeStep(s.cfg.SampleRate, s.nominal, s.cfg.MinBurstLength)
	}

	s.remaining--

	return true
}

// Current returns the burst parameters for the current step.
func (s *Sequencer) Current() Step {
	return s.step
}

// Remaining returns the number of steps still to run, including the
// current one.
func (s *Sequencer) Remaining() int {
	return s.remaining
}

// Index returns the number of completed steps since the last Reset.
// In polar mode Index*360/Steps is the turntable angle in degrees.
func (s *Sequencer) Index() int {
	return s.cfg.Steps - s.remaining
}
