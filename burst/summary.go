package burst

// Summary accumulates per-step analysis results into run aggregates:
// mean level, level spread and mean background per channel. Drivers
// print one summary line after the per-step table.
type Summary struct {
	n      int
	sumDB  [2]float64
	sumBkg [2]float64
	minDB  [2]float64
	maxDB  [2]float64
}

// Add folds one step's analysis into the summary.
func (s *Summary) Add(a Analysis) {
	for ch := 0; ch < 2; ch++ {
		db := a.MagnitudeDB(ch)

		if s.n == 0 || db < s.minDB[ch] {
			s.minDB[ch] = db
		}

		if s.n == 0 || db > s.maxDB[ch] {
			s.maxDB[ch] = db
		}

		s.sumDB[ch] += db
		s.sumBkg[ch] += a.BackgroundDB(ch)
	}

	s.n++
}

// Count returns the number of accumulated steps.
func (s *Summary) Count() int {
	return s.n
}

// MeanLevelDB returns the mean burst-response level for a channel.
func (s *Summary) MeanLevelDB(ch int) float64 {
	if s.n == 0 {
		return 0
	}

	return s.sumDB[ch] / float64(s.n)
}

// PeakDeviationDB returns the level spread (max minus min) for a
// channel, a flatness figure for the swept response.
func (s *Summary) PeakDeviationDB(ch int) float64 {
	if s.n == 0 {
		return 0
	}

	return s.maxDB[ch] - s.minDB[ch]
}

// MeanBackgroundDB returns the mean background level for a channel.
func (s *Summary) MeanBackgroundDB(ch int) float64 {
	if s.n == 0 {
		return 0
	}

	return s.sumBkg[ch] / float64(s.n)
}
