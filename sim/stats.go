package sim

import (
	"maps"
	"slices"
)

// Stats aggregate the results of many games
type Stats struct {
	Trials     int
	Wins       int
	TotalScore int
	BestScore  int
	// Histogram counts the wins by the number of rounds they took
	Histogram map[int]int
}

func (s *Stats) Add(r Result) {
	s.Trials++
	s.TotalScore += r.Score
	s.BestScore = max(s.BestScore, r.Score)
	if r.Won {
		s.Wins++
		if s.Histogram == nil {
			s.Histogram = map[int]int{}
		}
		s.Histogram[r.Rounds()]++
	}
}

func (s *Stats) Merge(other Stats) {
	s.Trials += other.Trials
	s.Wins += other.Wins
	s.TotalScore += other.TotalScore
	s.BestScore = max(s.BestScore, other.BestScore)
	for rounds, count := range other.Histogram {
		if s.Histogram == nil {
			s.Histogram = map[int]int{}
		}
		s.Histogram[rounds] += count
	}
}

func (s Stats) Losses() int {
	return s.Trials - s.Wins
}

// WinRate is a percentage, 0 when no games were played
func (s Stats) WinRate() float64 {
	if s.Trials == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Trials) * 100
}

func (s Stats) MeanScore() float64 {
	if s.Trials == 0 {
		return 0
	}
	return float64(s.TotalScore) / float64(s.Trials)
}

// MeanWinScore is 0 when there are no wins
func (s Stats) MeanWinScore() float64 {
	if s.Wins == 0 {
		return 0
	}
	return float64(s.TotalScore) / float64(s.Wins)
}

// MeanRounds is the average number of rounds of a win
func (s Stats) MeanRounds() float64 {
	if s.Wins == 0 {
		return 0
	}
	total := 0
	for rounds, count := range s.Histogram {
		total += rounds * count
	}
	return float64(total) / float64(s.Wins)
}

func (s Stats) histogramKeys() []int {
	return slices.Sorted(maps.Keys(s.Histogram))
}
