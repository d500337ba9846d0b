package matcher

import (
	"fmt"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set"
	"github.com/pkg/errors"

	"github.com/powellquiring/wordlesim/wordle"
)

// ErrContradiction is returned when feedback disagrees with what is already known
var ErrContradiction = errors.New("feedback contradicts earlier rounds")

// Exclusion is a letter that is in the solution but not at Pos
type Exclusion struct {
	Letter byte
	Pos    int
}

/*
Knowledge collects what the feedback has told us about the solution.

	solved[2] = 'a'   the third letter is an a
	included  {e}     there is an e somewhere that is not yet solved
	excluded  {s, p}  there is no s and no p
	targeted  {e@3}   the fourth letter is not an e
*/
type Knowledge struct {
	solved   []byte // 0 is unsolved
	included mapset.Set
	excluded mapset.Set
	targeted mapset.Set
}

func NewKnowledge(wordLen int) *Knowledge {
	ret := &Knowledge{solved: make([]byte, wordLen)}
	ret.Reset()
	return ret
}

func (k *Knowledge) Reset() {
	clear(k.solved)
	k.included = mapset.NewThreadUnsafeSet()
	k.excluded = mapset.NewThreadUnsafeSet()
	k.targeted = mapset.NewThreadUnsafeSet()
}

func (k *Knowledge) WordLen() int {
	return len(k.solved)
}

// Absorb adds the feedback for one guess.  Letters are only ever added to the
// excluded set: feedback that marks an excluded letter as a hit or present, or
// excludes a letter known to be in the word, returns ErrContradiction and
// leaves the knowledge unchanged.
func (k *Knowledge) Absorb(guess string, feedback wordle.Feedback) error {
	if len(guess) != len(k.solved) || len(feedback) != len(k.solved) {
		panic(fmt.Sprintf("guess %q and feedback %q must be %d long", guess, feedback, len(k.solved)))
	}
	if err := k.check(guess, feedback); err != nil {
		return err
	}
	for i, mark := range feedback {
		if mark != wordle.Hit {
			continue
		}
		letter := guess[i]
		if k.solved[i] == 0 {
			k.solved[i] = letter
		}
		// the solved position already guarantees the letter is in the word
		k.included.Remove(letter)
	}
	for i, mark := range feedback {
		letter := guess[i]
		switch mark {
		case wordle.Present:
			if !k.isSolvedLetter(letter) {
				k.included.Add(letter)
			}
			k.targeted.Add(Exclusion{letter, i})
		case wordle.Miss:
			// a copy of the letter marked elsewhere in this guess means the
			// solution just has fewer copies than the guess
			if markedElsewhere(guess, feedback, i) {
				k.targeted.Add(Exclusion{letter, i})
			} else {
				k.excluded.Add(letter)
			}
		}
	}
	return nil
}

func (k *Knowledge) check(guess string, feedback wordle.Feedback) error {
	for i, mark := range feedback {
		letter := guess[i]
		switch mark {
		case wordle.Hit:
			if k.solved[i] != 0 && k.solved[i] != letter {
				return errors.Wrapf(ErrContradiction, "position %d is already %c, not %c", i+1, k.solved[i], letter)
			}
			if k.excluded.Contains(letter) {
				return errors.Wrapf(ErrContradiction, "%c was excluded", letter)
			}
		case wordle.Present:
			if k.solved[i] == letter {
				return errors.Wrapf(ErrContradiction, "position %d is already %c", i+1, letter)
			}
			if k.excluded.Contains(letter) {
				return errors.Wrapf(ErrContradiction, "%c was excluded", letter)
			}
		case wordle.Miss:
			if k.solved[i] == letter {
				return errors.Wrapf(ErrContradiction, "position %d is already %c", i+1, letter)
			}
			if !markedElsewhere(guess, feedback, i) && (k.included.Contains(letter) || k.isSolvedLetter(letter)) {
				return errors.Wrapf(ErrContradiction, "%c is in the word", letter)
			}
		}
	}
	return nil
}

func markedElsewhere(guess string, feedback wordle.Feedback, i int) bool {
	for j := range feedback {
		if j != i && guess[j] == guess[i] && feedback[j] != wordle.Miss {
			return true
		}
	}
	return false
}

func (k *Knowledge) isSolvedLetter(letter byte) bool {
	for _, s := range k.solved {
		if s == letter {
			return true
		}
	}
	return false
}

// Admits reports whether word agrees with everything known
func (k *Knowledge) Admits(word string) bool {
	if len(word) != len(k.solved) {
		return false
	}
	for i, letter := range k.solved {
		if letter != 0 && word[i] != letter {
			return false
		}
	}
	for _, letter := range k.Included() {
		if strings.IndexByte(word, letter) < 0 {
			return false
		}
	}
	for _, letter := range k.Excluded() {
		if strings.IndexByte(word, letter) >= 0 {
			return false
		}
	}
	for _, exclusion := range k.Targeted() {
		if word[exclusion.Pos] == exclusion.Letter {
			return false
		}
	}
	return true
}

// Solved returns the letter known to be at position i
func (k *Knowledge) Solved(i int) (byte, bool) {
	return k.solved[i], k.solved[i] != 0
}

func (k *Knowledge) Included() []byte {
	return sortedLetters(k.included)
}

func (k *Knowledge) Excluded() []byte {
	return sortedLetters(k.excluded)
}

func (k *Knowledge) Targeted() []Exclusion {
	ret := make([]Exclusion, 0, k.targeted.Cardinality())
	for _, item := range k.targeted.ToSlice() {
		ret = append(ret, item.(Exclusion))
	}
	sort.Slice(ret, func(i, j int) bool {
		if ret[i].Pos != ret[j].Pos {
			return ret[i].Pos < ret[j].Pos
		}
		return ret[i].Letter < ret[j].Letter
	})
	return ret
}

func sortedLetters(set mapset.Set) []byte {
	ret := make([]byte, 0, set.Cardinality())
	for _, item := range set.ToSlice() {
		ret = append(ret, item.(byte))
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i] < ret[j] })
	return ret
}

// String is a compact form for logs: solved +included -excluded !targeted
func (k *Knowledge) String() string {
	var b strings.Builder
	for _, letter := range k.solved {
		if letter == 0 {
			b.WriteByte('.')
		} else {
			b.WriteByte(letter)
		}
	}
	b.WriteString(" +")
	b.Write(k.Included())
	b.WriteString(" -")
	b.Write(k.Excluded())
	b.WriteString(" !")
	for i, exclusion := range k.Targeted() {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%c%d", exclusion.Letter, exclusion.Pos+1)
	}
	return b.String()
}
