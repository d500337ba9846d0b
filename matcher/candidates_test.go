package matcher

import (
	"math/rand/v2"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powellquiring/wordlesim/wordle"
)

func testMatching(t *testing.T, words []string, guess string, answer string, expected []string) {
	t.Helper()
	k := NewKnowledge(len(guess))
	require.NoError(t, k.Absorb(guess, FB(answer)))
	matching, err := Filter(words, k)
	require.NoError(t, err)
	assert.Equal(t, expected, matching)

	// the bitset index must agree with the slice filter
	d, err := wordle.NewDictionary(nil, words)
	require.NoError(t, err)
	c := NewCandidates(NewIndex(d), SeedDictionary)
	require.NoError(t, c.Prune(k))
	assert.Equal(t, dedup(expected), c.Words())
}

func dedup(words []string) []string {
	seen := map[string]bool{}
	ret := []string{}
	for _, word := range words {
		if !seen[word] {
			seen[word] = true
			ret = append(ret, word)
		}
	}
	return ret
}

func TestMatching3(t *testing.T) {
	testMatching(t,
		[]string{"aaazz", "abbbb", "bcazz"},
		"bxxac", "yrryr", // answer abbbb
		[]string{"abbbb"},
	)
}

func TestMatching4(t *testing.T) {
	testMatching(t,
		[]string{"aaazz", "abbzz", "abczz", "abazz", "bbazz"},
		"xabxx", "ryyrr", // answer abazz
		[]string{"abczz", "abazz", "bbazz"},
	)
}

func TestGreenYellow(t *testing.T) {
	testMatching(t,
		[]string{"aaazz", "abbzz", "abczz", "abazz", "bbazz", "azzza", "azzzz"},
		"axxxa", "grrry", // answer abazz, only the position of the second a is known
		[]string{"aaazz", "abbzz", "abczz", "abazz", "azzzz"},
	)
}

func TestYellowRed(t *testing.T) {
	testMatching(t,
		[]string{"aaazz", "abbzz", "abczz", "abazz", "bbazz", "azzza", "azzzz", "aazzz", "aaazz"},
		"axxaa", "grryr", // answer abazz, two a's, but not 3
		[]string{"aaazz", "abbzz", "abczz", "abazz", "azzzz", "aazzz", "aaazz"},
	)
}

func TestFilterEmpty(t *testing.T) {
	k := NewKnowledge(5)
	require.NoError(t, k.Absorb("crane", FB("ggggg")))
	_, err := Filter([]string{"slate", "pilot"}, k)
	assert.Equal(t, ErrNoCandidates, errors.Cause(err))
}

func TestCandidatesPruneEmptyKeepsSet(t *testing.T) {
	d, err := wordle.NewDictionary(nil, []string{"slate", "pilot"})
	require.NoError(t, err)
	c := NewCandidates(NewIndex(d), SeedDictionary)
	k := NewKnowledge(5)
	require.NoError(t, k.Absorb("crane", FB("ggggg")))
	err = c.Prune(k)
	assert.Equal(t, ErrNoCandidates, errors.Cause(err))
	assert.Equal(t, []string{"slate", "pilot"}, c.Words())
}

func TestCandidates(t *testing.T) {
	assert := assert.New(t)
	d, err := wordle.NewDictionary([]string{"adieu", "soare"}, []string{"crane", "slate", "pilot"})
	require.NoError(t, err)
	index := NewIndex(d)

	all := NewCandidates(index, SeedDictionary)
	assert.Equal(5, all.Len())
	solutions := NewCandidates(index, SeedSolutions)
	assert.Equal([]string{"crane", "slate", "pilot"}, solutions.Words())
	assert.False(solutions.Contains("adieu"))
	assert.True(all.Contains("adieu"))

	solutions.Remove("slate")
	solutions.Remove("zzzzz")
	assert.Equal([]string{"crane", "pilot"}, solutions.Words())

	rng := rand.New(rand.NewPCG(1, 1))
	for range 20 {
		word, err := solutions.Pick(rng)
		require.NoError(t, err)
		assert.True(solutions.Contains(word))
	}
	solutions.Remove("crane")
	solutions.Remove("pilot")
	_, err = solutions.Pick(rng)
	assert.Equal(ErrNoCandidates, err)

	solutions.Reset()
	assert.Equal(3, solutions.Len())
}

func TestParseSeed(t *testing.T) {
	seed, err := ParseSeed("solutions")
	require.NoError(t, err)
	assert.Equal(t, SeedSolutions, seed)
	assert.Equal(t, "solutions", seed.String())
	seed, err = ParseSeed("dictionary")
	require.NoError(t, err)
	assert.Equal(t, SeedDictionary, seed)
	_, err = ParseSeed("everything")
	assert.Error(t, err)
}

// Play random games with truthful feedback: the solution must never be pruned
// and the candidates must never grow.
func TestPruneKeepsSolution(t *testing.T) {
	d := wordle.DefaultDictionary()
	index := NewIndex(d)
	words := d.Words()
	rng := rand.New(rand.NewPCG(42, 24))
	for game := range 300 {
		solution := d.RandomSolution(rng)
		k := NewKnowledge(d.WordLen())
		c := NewCandidates(index, Seed(game%2))
		before := c.Len()
		for round := range wordle.MaxAttempts {
			var guess string
			if round%2 == 0 {
				guess = words[rng.IntN(len(words))]
			} else {
				guess, _ = c.Pick(rng)
			}
			feedback := wordle.Evaluate(guess, solution)
			require.NoError(t, k.Absorb(guess, feedback), "%s %s", guess, solution)
			require.NoError(t, c.Prune(k))
			require.True(t, c.Contains(solution), "%s pruned after %s %s", solution, guess, k)
			assert.LessOrEqual(t, c.Len(), before)
			before = c.Len()

			filtered, err := Filter(words, k)
			require.NoError(t, err)
			assert.Contains(t, filtered, solution)
			if game%2 == 0 {
				assert.Equal(t, filtered, c.Words())
			}
		}
	}
}

func TestIndexSets(t *testing.T) {
	d, err := wordle.NewDictionary([]string{"adieu"}, []string{"crane", "slate"})
	require.NoError(t, err)
	index := NewIndex(d)
	assert.Equal(t, uint(3), index.All().Count())
	assert.Equal(t, uint(2), index.Solutions().Count())
	assert.Same(t, d, index.Dictionary())

	// a solved letter no word has leaves nothing
	k := NewKnowledge(5)
	require.NoError(t, k.Absorb("zzzzz", FB("grrrr")))
	set := index.All()
	index.Prune(set, k)
	assert.True(t, set.None())
}
