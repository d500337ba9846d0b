package matcher

import "github.com/pkg/errors"

// Filter returns the words that agree with the knowledge, in their original
// order.  An empty result is an error.
func Filter(words []string, k *Knowledge) ([]string, error) {
	ret := make([]string, 0, len(words))
	for _, word := range words {
		if k.Admits(word) {
			ret = append(ret, word)
		}
	}
	if len(ret) == 0 {
		return nil, errors.Wrapf(ErrNoCandidates, "%d words before %s", len(words), k)
	}
	return ret, nil
}
