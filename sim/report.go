package sim

import (
	"fmt"
	"io"
	"strings"
)

// WriteReport prints the statistics of a simulation named name
func WriteReport(w io.Writer, name string, s Stats) error {
	var b strings.Builder
	fmt.Fprintf(&b, "\nSIMULATION RESULTS %s\n\n", name)
	fmt.Fprintf(&b, "            Trials: %d\n", s.Trials)
	fmt.Fprintf(&b, "        Total Wins: %d\n", s.Wins)
	fmt.Fprintf(&b, "      Win Rate (%%): %.2f\n", s.WinRate())
	fmt.Fprintf(&b, "        Avg. Score: %.2f\n", s.MeanScore())
	fmt.Fprintf(&b, "Avg. Score of Wins: %.2f\n", s.MeanWinScore())
	fmt.Fprintf(&b, "        Best Score: %d\n", s.BestScore)
	fmt.Fprintf(&b, "       Avg. Rounds: %.2f\n", s.MeanRounds())
	fmt.Fprintf(&b, "\n")
	for _, rounds := range s.histogramKeys() {
		count := s.Histogram[rounds]
		fmt.Fprintf(&b, "%d %6d %s\n", rounds, count, strings.Repeat("#", bar(count, s.Trials)))
	}
	fmt.Fprintf(&b, "X %6d %s\n", s.Losses(), strings.Repeat("#", bar(s.Losses(), s.Trials)))
	fmt.Fprintf(&b, "\nSIMULATION COMPLETE\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// bar scales count out of total to at most 40 characters
func bar(count, total int) int {
	if total == 0 {
		return 0
	}
	return count * 40 / total
}
