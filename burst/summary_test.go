package burst

import (
	"math"
	"testing"
)

// analysisWithLevel builds an Analysis whose response magnitude is the
// given linear level on both channels.
func analysisWithLevel(level float64) Analysis {
	return Analysis{
		Response: [2]complex128{complex(level, 0), complex(level, 0)},
	}
}

func TestSummaryEmpty(t *testing.T) {
	var s Summary

	if s.Count() != 0 {
		t.Errorf("Count() = %d, want 0", s.Count())
	}

	if s.MeanLevelDB(0) != 0 || s.PeakDeviationDB(0) != 0 || s.MeanBackgroundDB(0) != 0 {
		t.Error("empty summary must report zeros")
	}
}

func TestSummaryAggregates(t *testing.T) {
	var s Summary

	s.Add(analysisWithLevel(1.0)) // 0 dB
	s.Add(analysisWithLevel(0.5)) // -6.02 dB
	s.Add(analysisWithLevel(2.0)) // +6.02 dB

	if s.Count() != 3 {
		t.Fatalf("Count() = %d, want 3", s.Count())
	}

	if got := s.MeanLevelDB(0); math.Abs(got) > 0.01 {
		t.Errorf("MeanLevelDB(0) = %v, want ~0", got)
	}

	want := 40 * math.Log10(2) // from -6.02 to +6.02 dB
	if got := s.PeakDeviationDB(0); math.Abs(got-want) > 0.01 {
		t.Errorf("PeakDeviationDB(0) = %v, want %v", got, want)
	}

	// Zero background in every step pins the mean at the dB floor.
	if got := s.MeanBackgroundDB(0); got != -300 {
		t.Errorf("MeanBackgroundDB(0) = %v, want -300", got)
	}
}
