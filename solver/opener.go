package solver

import (
	"slices"

	"github.com/pkg/errors"

	"github.com/powellquiring/wordlesim/wordle"
)

// FixedOpener plays the same opening words every game, then narrows
type FixedOpener struct {
	*Narrowing
	openers []string
}

func NewFixedOpener(narrowing *Narrowing, openers []string) (*FixedOpener, error) {
	wordLen := narrowing.knowledge.WordLen()
	for _, opener := range openers {
		if len(opener) != wordLen {
			return nil, errors.Errorf("opener %q is not %d letters", opener, wordLen)
		}
	}
	return &FixedOpener{Narrowing: narrowing, openers: slices.Clone(openers)}, nil
}

func (f *FixedOpener) Name() string { return string(KindOpener) }

func (f *FixedOpener) Guess() (string, error) {
	if round := f.Round(); round < len(f.openers) {
		f.play(f.openers[round])
		return f.openers[round], nil
	}
	return f.Narrowing.Guess()
}

func (f *FixedOpener) Absorb(feedback wordle.Feedback) error {
	return f.Narrowing.Absorb(feedback)
}
