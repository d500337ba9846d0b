package solver

import (
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/powellquiring/wordlesim/matcher"
	"github.com/powellquiring/wordlesim/wordle"
)

// Narrowing guesses at random among the words that agree with all the
// feedback so far
type Narrowing struct {
	knowledge  *matcher.Knowledge
	candidates *matcher.Candidates
	rng        *rand.Rand
	played     string
	round      int
}

func NewNarrowing(index *matcher.Index, seed matcher.Seed, rng *rand.Rand) *Narrowing {
	return &Narrowing{
		knowledge:  matcher.NewKnowledge(index.Dictionary().WordLen()),
		candidates: matcher.NewCandidates(index, seed),
		rng:        rng,
	}
}

func (n *Narrowing) Name() string { return string(KindNarrowing) }

func (n *Narrowing) Guess() (string, error) {
	word, err := n.candidates.Pick(n.rng)
	if err != nil {
		return "", err
	}
	n.play(word)
	return word, nil
}

// play records the word the feedback will be for
func (n *Narrowing) play(word string) {
	n.played = word
}

func (n *Narrowing) Absorb(feedback wordle.Feedback) error {
	if n.played == "" {
		return errors.New("feedback without a guess")
	}
	guess := n.played
	n.played = ""
	n.round++
	if feedback.Solved() {
		return nil
	}
	if err := n.knowledge.Absorb(guess, feedback); err != nil {
		return errors.Wrapf(err, "round %d %s %s", n.round, guess, feedback)
	}
	n.candidates.Remove(guess)
	if err := n.candidates.Prune(n.knowledge); err != nil {
		return errors.Wrapf(err, "round %d %s %s", n.round, guess, feedback)
	}
	return nil
}

func (n *Narrowing) Reset() {
	n.knowledge.Reset()
	n.candidates.Reset()
	n.played = ""
	n.round = 0
}

// Round is the number of feedbacks absorbed since the last reset
func (n *Narrowing) Round() int {
	return n.round
}

func (n *Narrowing) Remaining() int {
	return n.candidates.Len()
}

func (n *Narrowing) Candidates() []string {
	return n.candidates.Words()
}

func (n *Narrowing) Knowledge() *matcher.Knowledge {
	return n.knowledge
}
