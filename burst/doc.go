// Package burst implements tone-burst synthesis and matched-filter
// analysis for free-field loudspeaker and microphone measurement.
//
// A measurement run is a sequence of short sinusoidal bursts separated
// by silence, either sweeping geometrically across a frequency range or
// holding a fixed frequency while an external turntable steps through
// angles. Each burst contains an exact integer number of cycles: its
// duration is truncated to whole samples and the actual burst frequency
// is nudged upward so that the burst starts and ends on a cycle
// boundary. The single-frequency DFT used for analysis therefore sees
// no spectral leakage at the measured bin.
//
// The burst waveform is a raised cosine carrying a second harmonic,
//
//	y[j] = A * (cos(w*j) - cos(2*w*j))
//
// which tapers smoothly at the burst edges and keeps spectral splatter
// between bursts low.
//
// # Usage
//
// Drive a run with a Sequencer and synthesize or demodulate each step:
//
//	cfg := burst.SweepConfig()
//	seq, _ := burst.NewSequencer(cfg)
//	for seq.Reset(); seq.Good(); seq.Advance() {
//	    block := burst.Synthesize(cfg, seq.Current())
//	    // ... write block Averaging times to both channels ...
//	}
//
// Analysis mirrors the loop, reading captured samples back through a
// BlockReader and demodulating at the exact synthesized frequency:
//
//	a, err := burst.Demodulate(cfg, seq.Current(), src)
//	// a.MagnitudeDB(0), a.Phase(0), a.BackgroundDB(0), ...
package burst
