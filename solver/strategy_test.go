package solver

import (
	"math/rand/v2"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powellquiring/wordlesim/matcher"
	"github.com/powellquiring/wordlesim/wordle"
)

func testIndex(t *testing.T, guesses, solutions []string) *matcher.Index {
	t.Helper()
	d, err := wordle.NewDictionary(guesses, solutions)
	require.NoError(t, err)
	return matcher.NewIndex(d)
}

// play lets s guess solution for up to rounds guesses, returning the guesses
func play(t *testing.T, s Strategy, solution string, rounds int) []string {
	t.Helper()
	guesses := []string{}
	for range rounds {
		guess, err := s.Guess()
		require.NoError(t, err)
		guesses = append(guesses, guess)
		feedback := wordle.Evaluate(guess, solution)
		require.NoError(t, s.Absorb(feedback), "%s %s", guess, solution)
		if feedback.Solved() {
			break
		}
	}
	return guesses
}

func TestParseKind(t *testing.T) {
	for _, kind := range Kinds {
		parsed, err := ParseKind(string(kind))
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}
	kind, err := ParseKind("Frequency")
	require.NoError(t, err)
	assert.Equal(t, KindFrequency, kind)
	_, err = ParseKind("minimax")
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	index := matcher.NewIndex(wordle.DefaultDictionary())
	for _, kind := range Kinds {
		s, err := New(kind, Options{Index: index, Rng: rand.New(rand.NewPCG(1, 2))})
		require.NoError(t, err)
		assert.Equal(t, string(kind), s.Name())
	}
	_, err := New(Kind("bogus"), Options{Index: index})
	assert.Error(t, err)
	_, err = New(KindOpener, Options{Index: index, Openers: []string{"toolong"}})
	assert.Error(t, err)
}

func TestRandom(t *testing.T) {
	d := wordle.DefaultDictionary()
	s := NewRandom(d, rand.New(rand.NewPCG(3, 4)))
	for range 100 {
		guess, err := s.Guess()
		require.NoError(t, err)
		assert.True(t, d.Legal(guess))
		require.NoError(t, s.Absorb(wordle.Evaluate(guess, "crane")))
	}
}

func TestNarrowingShrinks(t *testing.T) {
	d := wordle.DefaultDictionary()
	index := matcher.NewIndex(d)
	rng := rand.New(rand.NewPCG(7, 7))
	n := NewNarrowing(index, matcher.SeedSolutions, rng)
	for range 100 {
		n.Reset()
		assert.Equal(t, d.SolutionCount(), n.Remaining())
		solution := d.RandomSolution(rng)
		before := n.Remaining()
		for range wordle.MaxAttempts {
			guess, err := n.Guess()
			require.NoError(t, err)
			feedback := wordle.Evaluate(guess, solution)
			require.NoError(t, n.Absorb(feedback))
			if feedback.Solved() {
				break
			}
			assert.Less(t, n.Remaining(), before)
			assert.Contains(t, n.Candidates(), solution)
			before = n.Remaining()
		}
	}
}

func TestNarrowingSolvesSmallDictionary(t *testing.T) {
	index := testIndex(t, nil, []string{"crane", "slate", "pilot", "sound"})
	n := NewNarrowing(index, matcher.SeedDictionary, rand.New(rand.NewPCG(1, 1)))
	guesses := play(t, n, "pilot", wordle.MaxAttempts)
	assert.Equal(t, "pilot", guesses[len(guesses)-1])
	assert.Equal(t, len(guesses), n.Round())
}

func TestNarrowingDeterministic(t *testing.T) {
	index := matcher.NewIndex(wordle.DefaultDictionary())
	first := play(t, NewNarrowing(index, matcher.SeedSolutions, rand.New(rand.NewPCG(9, 9))), "tiger", wordle.MaxAttempts)
	second := play(t, NewNarrowing(index, matcher.SeedSolutions, rand.New(rand.NewPCG(9, 9))), "tiger", wordle.MaxAttempts)
	assert.Equal(t, first, second)
}

func TestNarrowingAbsorbWithoutGuess(t *testing.T) {
	index := testIndex(t, nil, []string{"crane", "slate"})
	n := NewNarrowing(index, matcher.SeedDictionary, rand.New(rand.NewPCG(1, 1)))
	assert.Error(t, n.Absorb(wordle.Evaluate("crane", "slate")))
}

func TestNarrowingNoCandidates(t *testing.T) {
	index := testIndex(t, nil, []string{"crane", "slate"})
	n := NewNarrowing(index, matcher.SeedDictionary, rand.New(rand.NewPCG(1, 1)))
	_, err := n.Guess()
	require.NoError(t, err)
	// feedback no dictionary word agrees with
	err = n.Absorb(wordle.Evaluate("zzzzz", "zzzzy"))
	assert.Equal(t, matcher.ErrNoCandidates, errors.Cause(err))
}

func TestFixedOpener(t *testing.T) {
	index := matcher.NewIndex(wordle.DefaultDictionary())
	rng := rand.New(rand.NewPCG(5, 5))
	f, err := NewFixedOpener(NewNarrowing(index, matcher.SeedSolutions, rng), []string{"raise", "count"})
	require.NoError(t, err)
	for _, solution := range []string{"tiger", "pilot", "crane", "llama"} {
		f.Reset()
		guesses := play(t, f, solution, wordle.MaxAttempts)
		require.GreaterOrEqual(t, len(guesses), 2)
		assert.Equal(t, []string{"raise", "count"}, guesses[:2])
	}

	// an opener that solves the game ends it
	f.Reset()
	guesses := play(t, f, "raise", wordle.MaxAttempts)
	assert.Equal(t, []string{"raise"}, guesses)
}

func TestFixedOpenerBadLength(t *testing.T) {
	index := testIndex(t, nil, []string{"crane"})
	_, err := NewFixedOpener(NewNarrowing(index, matcher.SeedDictionary, nil), []string{"crane", "cat"})
	assert.Error(t, err)
}

func TestRank(t *testing.T) {
	ranked := Rank([]string{"baker", "cater", "later", "water", "hater"})
	words := []string{}
	for _, r := range ranked {
		words = append(words, r.Word)
	}
	assert.Equal(t, []string{"cater", "later", "water", "hater", "baker"}, words)
	assert.Equal(t, 20, ranked[0].Score)
	assert.Equal(t, 17, ranked[4].Score)
	assert.Nil(t, Rank(nil))
}

func TestFrequencyRanked(t *testing.T) {
	assert := assert.New(t)
	index := testIndex(t, nil, []string{"cater", "later", "water", "hater", "baker"})
	f := NewFrequencyRanked(NewNarrowing(index, matcher.SeedDictionary, nil))
	guess, err := f.Guess()
	require.NoError(t, err)
	assert.Equal("cater", guess)

	require.NoError(t, f.Absorb(wordle.Evaluate(guess, "water")))
	assert.Equal([]string{"later", "water", "hater"}, f.Candidates())
	assert.Len(f.Ranked(), 3)
	guess, err = f.Guess()
	require.NoError(t, err)
	assert.Equal("later", guess)

	f.Reset()
	assert.Len(f.Ranked(), 5)
	guesses := play(t, f, "baker", wordle.MaxAttempts)
	assert.Equal("baker", guesses[len(guesses)-1])
}
