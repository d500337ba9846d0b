package solver

import (
	"cmp"
	"slices"

	"github.com/powellquiring/wordlesim/matcher"
	"github.com/powellquiring/wordlesim/wordle"
)

type Scored struct {
	Word  string
	Score int
}

// Rank scores each word by how common its letters are at their positions
// among words, best first.  Ties keep the order of words.
func Rank(words []string) []Scored {
	if len(words) == 0 {
		return nil
	}
	freq := make([][26]int, len(words[0]))
	for _, word := range words {
		for i := range len(word) {
			freq[i][word[i]-'a']++
		}
	}
	ret := make([]Scored, len(words))
	for w, word := range words {
		score := 0
		for i := range len(word) {
			score += freq[i][word[i]-'a']
		}
		ret[w] = Scored{Word: word, Score: score}
	}
	slices.SortStableFunc(ret, func(a, b Scored) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return ret
}

// FrequencyRanked guesses the candidate whose letters best match the letter
// frequencies of the remaining candidates
type FrequencyRanked struct {
	*Narrowing
	ranked []Scored
}

func NewFrequencyRanked(narrowing *Narrowing) *FrequencyRanked {
	f := &FrequencyRanked{Narrowing: narrowing}
	f.rank()
	return f
}

func (f *FrequencyRanked) rank() {
	f.ranked = Rank(f.Candidates())
}

func (f *FrequencyRanked) Name() string { return string(KindFrequency) }

func (f *FrequencyRanked) Guess() (string, error) {
	if len(f.ranked) == 0 {
		return "", matcher.ErrNoCandidates
	}
	word := f.ranked[0].Word
	f.play(word)
	return word, nil
}

func (f *FrequencyRanked) Absorb(feedback wordle.Feedback) error {
	if err := f.Narrowing.Absorb(feedback); err != nil {
		return err
	}
	f.rank()
	return nil
}

func (f *FrequencyRanked) Reset() {
	f.Narrowing.Reset()
	f.rank()
}

// Ranked is the current ranking of the candidates
func (f *FrequencyRanked) Ranked() []Scored {
	return slices.Clone(f.ranked)
}
