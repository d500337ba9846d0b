package matcher

import (
	"math/rand/v2"

	"github.com/bits-and-blooms/bitset"
	"github.com/pkg/errors"
)

// ErrNoCandidates means no word agrees with the knowledge, the feedback or the
// word list is inconsistent
var ErrNoCandidates = errors.New("no candidate words left")

// Seed selects the words a solver starts from
type Seed int

const (
	SeedDictionary Seed = iota // every legal guess
	SeedSolutions              // only the solution words
)

func (s Seed) String() string {
	if s == SeedSolutions {
		return "solutions"
	}
	return "dictionary"
}

func ParseSeed(s string) (Seed, error) {
	switch s {
	case "dictionary", "all", "":
		return SeedDictionary, nil
	case "solutions":
		return SeedSolutions, nil
	}
	return SeedDictionary, errors.Errorf("unknown seed set %q, use dictionary or solutions", s)
}

// Candidates is the shrinking set of words that could still be the solution
type Candidates struct {
	index *Index
	seed  Seed
	set   *bitset.BitSet
}

func NewCandidates(index *Index, seed Seed) *Candidates {
	ret := &Candidates{index: index, seed: seed}
	ret.Reset()
	return ret
}

func (c *Candidates) Reset() {
	if c.seed == SeedSolutions {
		c.set = c.index.Solutions()
	} else {
		c.set = c.index.All()
	}
}

func (c *Candidates) Len() int {
	return int(c.set.Count())
}

func (c *Candidates) Contains(word string) bool {
	i, ok := c.index.dictionary.Word(word)
	return ok && c.set.Test(uint(i))
}

func (c *Candidates) Remove(word string) {
	if i, ok := c.index.dictionary.Word(word); ok {
		c.set.Clear(uint(i))
	}
}

// Words lists the candidates in dictionary order
func (c *Candidates) Words() []string {
	ret := make([]string, 0, c.Len())
	for i, ok := c.set.NextSet(0); ok; i, ok = c.set.NextSet(i + 1) {
		ret = append(ret, c.index.dictionary.String(int(i)))
	}
	return ret
}

// Pick returns a candidate chosen uniformly at random
func (c *Candidates) Pick(rng *rand.Rand) (string, error) {
	count := c.Len()
	if count == 0 {
		return "", ErrNoCandidates
	}
	n := rng.IntN(count)
	for i, ok := c.set.NextSet(0); ok; i, ok = c.set.NextSet(i + 1) {
		if n == 0 {
			return c.index.dictionary.String(int(i)), nil
		}
		n--
	}
	panic("bitset count and iteration disagree")
}

// Prune drops the words that disagree with the knowledge.  If no word would be
// left the candidates are not changed and ErrNoCandidates is returned.
func (c *Candidates) Prune(k *Knowledge) error {
	pruned := c.set.Clone()
	c.index.Prune(pruned, k)
	if pruned.None() {
		return errors.Wrapf(ErrNoCandidates, "%d candidates before %s", c.Len(), k)
	}
	c.set = pruned
	return nil
}
