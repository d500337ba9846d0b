package wordle

import (
	"strings"

	"github.com/mitchellh/colorstring"
	"github.com/pkg/errors"
)

// Mark is the colour given to a single letter of a guess
type Mark uint8

const (
	Miss    Mark = iota // gray
	Present             // yellow
	Hit                 // green
)

// Feedback holds one Mark per letter of the guess
type Feedback []Mark

var ErrBadFeedback = errors.New("feedback not in right format r,y,g like rrggy")

func (m Mark) String() string {
	switch m {
	case Hit:
		return "g"
	case Present:
		return "y"
	default:
		return "r"
	}
}

// ParseFeedback accepts the r/y/g letters used on the command line as well as
// the G/Y/_ form.  '.' and '-' are also read as a miss.
func ParseFeedback(colors string) (Feedback, error) {
	ret := make(Feedback, 0, len(colors))
	for _, color := range colors {
		switch color {
		case 'g', 'G':
			ret = append(ret, Hit)
		case 'y', 'Y':
			ret = append(ret, Present)
		case 'r', 'R', '_', '.', '-':
			ret = append(ret, Miss)
		default:
			return nil, errors.Wrapf(ErrBadFeedback, "%q", colors)
		}
	}
	return ret, nil
}

func (f Feedback) String() string {
	var b strings.Builder
	for _, m := range f {
		b.WriteString(m.String())
	}
	return b.String()
}

// Solved is true when every letter is a hit
func (f Feedback) Solved() bool {
	if len(f) == 0 {
		return false
	}
	for _, m := range f {
		if m != Hit {
			return false
		}
	}
	return true
}

func (f Feedback) Equal(other Feedback) bool {
	if len(f) != len(other) {
		return false
	}
	for i := range f {
		if f[i] != other[i] {
			return false
		}
	}
	return true
}

// Colorize renders the guess with the feedback colours for a terminal
func (f Feedback) Colorize(guess string) string {
	if len(guess) != len(f) {
		panic("guess and feedback length differ: " + guess + " " + f.String())
	}
	var b strings.Builder
	for i, m := range f {
		switch m {
		case Hit:
			b.WriteString("[bold][green]")
		case Present:
			b.WriteString("[bold][yellow]")
		default:
			b.WriteString("[dark_gray]")
		}
		b.WriteString(strings.ToUpper(guess[i : i+1]))
		b.WriteString("[reset]")
	}
	return colorstring.Color(b.String())
}
