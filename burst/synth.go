package burst

import "math"

// Waveform renders one repetition interval of the burst as float64
// samples, before quantization. The first Duration samples carry the
// raised cosine and its second harmonic scaled to Amplitude; the rest
// of the interval is silence.
func Waveform(cfg Config, step Step) []float64 {
	out := make([]float64, cfg.Interval)

	n := step.Duration
	if n > cfg.Interval {
		n = cfg.Interval
	}

	for j := 0; j < n; j++ {
		phase := step.PhaseFactor * float64(j)
		out[j] = cfg.Amplitude * (math.Cos(phase) - math.Cos(2*phase))
	}

	return out
}

// Synthesize renders one repetition interval of the burst as 16-bit
// samples. Config.Validate guarantees the envelope peak fits the int16
// range, so no per-sample clamping is applied. The same block is
// written to both channels and repeated Averaging times by the caller.
func Synthesize(cfg Config, step Step) []int16 {
	wave := Waveform(cfg, step)

	out := make([]int16, len(wave))
	for j, y := range wave {
		out[j] = int16(math.Round(y))
	}

	return out
}
