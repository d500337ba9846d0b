package wordle

import (
	"bufio"
	_ "embed"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

//go:embed lists/solutions.txt
var embeddedSolutions string

//go:embed lists/allowed.txt
var embeddedAllowed string

// ReadWords reads one word per line, lowercased and trimmed.  Blank lines and
// lines starting with '#' are skipped.  Every word must be made of the letters
// a-z and all words must have the same length.
func ReadWords(r io.Reader) ([]string, error) {
	ret := []string{}
	length := 0
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		word := strings.ToLower(strings.TrimSpace(sc.Text()))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		if !isAlpha(word) {
			return nil, errors.Errorf("line %d: not a word: %q", line, word)
		}
		if length == 0 {
			length = len(word)
		} else if len(word) != length {
			return nil, errors.Errorf("line %d: %q is not %d letters", line, word, length)
		}
		ret = append(ret, word)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read words")
	}
	return ret, nil
}

// LoadWords reads a word list file, see ReadWords
func LoadWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open word list")
	}
	defer f.Close()
	words, err := ReadWords(f)
	if err != nil {
		return nil, errors.Wrapf(err, "word list %s", path)
	}
	return words, nil
}

// DefaultSolutions is the embedded list of solution words
func DefaultSolutions() []string {
	words, err := ReadWords(strings.NewReader(embeddedSolutions))
	if err != nil {
		panic(err)
	}
	return words
}

// DefaultGuesses is the embedded list of extra legal guesses, solutions not included
func DefaultGuesses() []string {
	words, err := ReadWords(strings.NewReader(embeddedAllowed))
	if err != nil {
		panic(err)
	}
	return words
}

// DefaultDictionary is built from the embedded word lists
func DefaultDictionary() *Dictionary {
	d, err := NewDictionary(DefaultGuesses(), DefaultSolutions())
	if err != nil {
		panic(err)
	}
	return d
}

// isAlpha reports whether s is all lowercase ASCII letters
func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
