package matcher

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/powellquiring/wordlesim/wordle"
)

/*
Index holds, for a dictionary, the set of words for each letter at each
position and the set of words containing each letter.  A word is represented
by its index in the dictionary.

	letters[0]['a'] all words whose first letter is an a, [1] second letter is an a, ...
	contains['a']   all words with one or more a
*/
type Index struct {
	dictionary *wordle.Dictionary
	letters    []map[byte]*bitset.BitSet
	contains   map[byte]*bitset.BitSet
}

func NewIndex(dictionary *wordle.Dictionary) *Index {
	wordsLen := uint(dictionary.Len())
	ret := &Index{
		dictionary: dictionary,
		letters:    make([]map[byte]*bitset.BitSet, dictionary.WordLen()),
		contains:   make(map[byte]*bitset.BitSet, 26),
	}
	for l := range ret.letters {
		ret.letters[l] = make(map[byte]*bitset.BitSet, 26)
	}
	for w := range dictionary.Len() {
		word := dictionary.String(w)
		for l := 0; l < len(word); l++ {
			letter := word[l]
			if _, ok := ret.letters[l][letter]; !ok {
				ret.letters[l][letter] = bitset.New(wordsLen)
			}
			ret.letters[l][letter].Set(uint(w))
			if _, ok := ret.contains[letter]; !ok {
				ret.contains[letter] = bitset.New(wordsLen)
			}
			ret.contains[letter].Set(uint(w))
		}
	}
	return ret
}

func (x *Index) Dictionary() *wordle.Dictionary {
	return x.dictionary
}

// All returns the set of every word in the dictionary
func (x *Index) All() *bitset.BitSet {
	return x.firstN(x.dictionary.Len())
}

// Solutions returns the set of solution words
func (x *Index) Solutions() *bitset.BitSet {
	return x.firstN(x.dictionary.SolutionCount())
}

func (x *Index) firstN(n int) *bitset.BitSet {
	ret := bitset.New(uint(x.dictionary.Len()))
	for i := range n {
		ret.Set(uint(i))
	}
	return ret
}

// Prune removes from set, in place, every word that disagrees with the knowledge
func (x *Index) Prune(set *bitset.BitSet, k *Knowledge) {
	// solved letters: only words with the matching letter at that position
	for i := range k.WordLen() {
		letter, ok := k.Solved(i)
		if !ok {
			continue
		}
		x.intersect(set, x.letters[i][letter])
	}
	// included letters must be somewhere in the word
	for _, letter := range k.Included() {
		x.intersect(set, x.contains[letter])
	}
	// excluded letters can not be anywhere in the word
	for _, letter := range k.Excluded() {
		if words, ok := x.contains[letter]; ok {
			set.InPlaceDifference(words)
		}
	}
	// targeted letters can not be at that position
	for _, exclusion := range k.Targeted() {
		if words, ok := x.letters[exclusion.Pos][exclusion.Letter]; ok {
			set.InPlaceDifference(words)
		}
	}
}

// a letter no word has at all empties the set
func (x *Index) intersect(set, words *bitset.BitSet) {
	if words == nil {
		set.ClearAll()
		return
	}
	set.InPlaceIntersection(words)
}
