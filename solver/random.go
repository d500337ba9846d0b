package solver

import (
	"math/rand/v2"

	"github.com/powellquiring/wordlesim/wordle"
)

// Random guesses any word in the dictionary and ignores the feedback
type Random struct {
	dictionary *wordle.Dictionary
	rng        *rand.Rand
}

func NewRandom(dictionary *wordle.Dictionary, rng *rand.Rand) *Random {
	return &Random{dictionary: dictionary, rng: rng}
}

func (r *Random) Name() string { return string(KindRandom) }

func (r *Random) Guess() (string, error) {
	return r.dictionary.RandomWord(r.rng), nil
}

func (r *Random) Absorb(wordle.Feedback) error { return nil }

func (r *Random) Reset() {}
