package wordle

// Evaluate returns the feedback for the guess given the solution.
//
// Exact matches are marked first and take their solution letter out of play,
// then the remaining guess letters are matched left to right against the
// solution letters that are still unused.  A guess with two e's against a
// solution with one e gets one mark for the e and a miss for the other.
func Evaluate(guess, solution string) Feedback {
	if len(guess) != len(solution) {
		panic("guess and solution length differ: " + guess + " " + solution)
	}
	ret := make(Feedback, len(guess))
	var solutionNotHit [256]int
	for i := 0; i < len(solution); i++ {
		if guess[i] == solution[i] {
			ret[i] = Hit
		} else {
			solutionNotHit[solution[i]]++
		}
	}
	// turn the misses to present if the letter is still available
	for i := 0; i < len(guess); i++ {
		if ret[i] == Hit {
			continue
		}
		if solutionNotHit[guess[i]] > 0 {
			ret[i] = Present
			solutionNotHit[guess[i]]--
		}
	}
	return ret
}
