package burst

import "math"

// Step holds the derived burst parameters for one nominal frequency.
//
// Duration is the burst length truncated to whole samples, and
// ActualFreq is the frequency that completes exactly CycleCount whole
// cycles within Duration samples. The integer-exact relation
//
//	Duration * ActualFreq == SampleRate * CycleCount
//
// holds by construction, and ActualFreq >= NominalFreq always, since
// truncation can only shorten the burst.
type Step struct {
	CycleCount  int     // whole cycles per burst
	Duration    int     // burst length in samples
	NominalFreq float64 // requested frequency in Hz
	ActualFreq  float64 // frequency realized by the whole-cycle burst
	PhaseFactor float64 // 2*pi*ActualFreq/sampleRate, radians per sample
}

// ComputeStep derives the burst parameters for a nominal frequency.
//
// It finds the least number of whole cycles whose real-valued duration
// meets minLength, truncates that duration to exact samples, and nudges
// the frequency so the truncated duration holds exactly that many
// cycles. Bursts therefore start and end on cycle boundaries, which is
// what lets Demodulate act as a leakage-free matched filter.
//
// sampleRate, nominalFreq and minLength must be positive; callers are
// expected to have validated the configuration beforehand.
func ComputeStep(sampleRate int, nominalFreq float64, minLength int) Step {
	period := float64(sampleRate) / nominalFreq

	cycles := 1
	for period*float64(cycles) < float64(minLength) {
		cycles++
	}

	duration := int(period * float64(cycles))
	actual := float64(sampleRate) * float64(cycles) / float64(duration)

	return Step{
		CycleCount:  cycles,
		Duration:    duration,
		NominalFreq: nominalFreq,
		ActualFreq:  actual,
		PhaseFactor: 2 * math.Pi * actual / float64(sampleRate),
	}
}
