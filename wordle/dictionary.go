package wordle

import (
	"math/rand/v2"
	"slices"

	"github.com/pkg/errors"
)

// Dictionary is the immutable set of legal guesses.  The solution words come
// first so the solutions are the index range [0, SolutionCount()).
type Dictionary struct {
	words        []string
	stringToWord map[string]int
	solutions    int
	wordLen      int
}

// NewDictionary builds a dictionary from the legal guesses and the legal
// solutions.  Every solution is also a legal guess.  Duplicates are dropped.
func NewDictionary(guesses, solutions []string) (*Dictionary, error) {
	if len(solutions) == 0 {
		return nil, errors.New("solution list is empty")
	}
	ret := &Dictionary{stringToWord: make(map[string]int, len(guesses)+len(solutions))}
	ret.wordLen = len(solutions[0])
	if ret.wordLen == 0 {
		return nil, errors.New("empty solution word")
	}
	for _, word := range solutions {
		if err := ret.add(word); err != nil {
			return nil, errors.Wrap(err, "solutions")
		}
	}
	ret.solutions = len(ret.words)
	for _, word := range guesses {
		if err := ret.add(word); err != nil {
			return nil, errors.Wrap(err, "guesses")
		}
	}
	return ret, nil
}

func (d *Dictionary) add(word string) error {
	if len(word) != d.wordLen || !isAlpha(word) {
		return errors.Errorf("%q is not a %d letter lowercase word", word, d.wordLen)
	}
	if _, ok := d.stringToWord[word]; ok {
		return nil
	}
	d.stringToWord[word] = len(d.words)
	d.words = append(d.words, word)
	return nil
}

// Limit returns a dictionary holding only the first count words, 0 is all words
func (d *Dictionary) Limit(count int) *Dictionary {
	if count <= 0 || count >= len(d.words) {
		return d
	}
	ret := &Dictionary{
		words:        d.words[:count:count],
		stringToWord: make(map[string]int, count),
		solutions:    min(d.solutions, count),
		wordLen:      d.wordLen,
	}
	for i, word := range ret.words {
		ret.stringToWord[word] = i
	}
	return ret
}

func (d *Dictionary) Len() int {
	return len(d.words)
}

// WordLen is the number of letters in every word
func (d *Dictionary) WordLen() int {
	return d.wordLen
}

func (d *Dictionary) SolutionCount() int {
	return d.solutions
}

func (d *Dictionary) Word(wordleWordString string) (int, bool) {
	ret, ok := d.stringToWord[wordleWordString]
	return ret, ok
}

func (d *Dictionary) String(word int) string {
	return d.words[word]
}

// Legal reports whether the word may be guessed
func (d *Dictionary) Legal(word string) bool {
	_, ok := d.stringToWord[word]
	return ok
}

func (d *Dictionary) IsSolution(word string) bool {
	i, ok := d.stringToWord[word]
	return ok && i < d.solutions
}

func (d *Dictionary) Words() []string {
	return slices.Clone(d.words)
}

func (d *Dictionary) Solutions() []string {
	return slices.Clone(d.words[:d.solutions])
}

func (d *Dictionary) RandomSolution(rng *rand.Rand) string {
	return d.words[rng.IntN(d.solutions)]
}

func (d *Dictionary) RandomWord(rng *rand.Rand) string {
	return d.words[rng.IntN(len(d.words))]
}
