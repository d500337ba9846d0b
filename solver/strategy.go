// Package solver holds the strategies that play wordle.
package solver

import (
	"math/rand/v2"
	"strings"

	"github.com/pkg/errors"

	"github.com/powellquiring/wordlesim/matcher"
	"github.com/powellquiring/wordlesim/wordle"
)

// Strategy proposes guesses and learns from the feedback.  Absorb is called
// once after each guess with the feedback for that guess.
type Strategy interface {
	Name() string
	Guess() (string, error)
	Absorb(feedback wordle.Feedback) error
	Reset()
}

type Kind string

const (
	KindRandom    Kind = "random"
	KindNarrowing Kind = "narrowing"
	KindOpener    Kind = "opener"
	KindFrequency Kind = "frequency"
)

var Kinds = []Kind{KindRandom, KindNarrowing, KindOpener, KindFrequency}

// DefaultOpeners cover ten of the most frequent letters
var DefaultOpeners = []string{"raise", "count"}

func ParseKind(s string) (Kind, error) {
	for _, kind := range Kinds {
		if string(kind) == strings.ToLower(s) {
			return kind, nil
		}
	}
	return "", errors.Errorf("unknown strategy %q", s)
}

// Options configure New.  Index is shared and read only, Rng must belong to
// the caller alone.
type Options struct {
	Index   *matcher.Index
	Rng     *rand.Rand
	Seed    matcher.Seed
	Openers []string
}

func New(kind Kind, options Options) (Strategy, error) {
	switch kind {
	case KindRandom:
		return NewRandom(options.Index.Dictionary(), options.Rng), nil
	case KindNarrowing:
		return NewNarrowing(options.Index, options.Seed, options.Rng), nil
	case KindOpener:
		openers := options.Openers
		if len(openers) == 0 {
			openers = DefaultOpeners
		}
		opener, err := NewFixedOpener(NewNarrowing(options.Index, options.Seed, options.Rng), openers)
		if err != nil {
			return nil, err
		}
		return opener, nil
	case KindFrequency:
		return NewFrequencyRanked(NewNarrowing(options.Index, options.Seed, options.Rng)), nil
	}
	return nil, errors.Errorf("unknown strategy %q", kind)
}
