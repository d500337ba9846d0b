package wordle

import (
	"math/rand/v2"
	"slices"

	"github.com/pkg/errors"
)

// MaxAttempts is the number of guesses allowed in a game
const MaxAttempts = 6

var (
	ErrGameOver     = errors.New("game finished")
	ErrIllegalGuess = errors.New("not in word list")
)

type State int

const (
	InProgress State = iota
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "playing"
	}
}

type Round struct {
	Guess    string
	Feedback Feedback
}

// Game is one game of wordle against a single solution
type Game struct {
	dictionary *Dictionary
	rng        *rand.Rand
	solution   string
	rounds     []Round
}

// NewGame starts a game.  An empty solution draws one at random from the
// dictionary's solutions.
func NewGame(dictionary *Dictionary, rng *rand.Rand, solution string) (*Game, error) {
	ret := &Game{dictionary: dictionary, rng: rng}
	if err := ret.Reset(solution); err != nil {
		return nil, err
	}
	return ret, nil
}

// Reset clears the rounds and picks the next solution, an explicit solution
// takes priority over a random one.
func (g *Game) Reset(solution string) error {
	if solution == "" {
		solution = g.dictionary.RandomSolution(g.rng)
	} else if len(solution) != g.dictionary.WordLen() {
		return errors.Errorf("solution %q is not %d letters", solution, g.dictionary.WordLen())
	}
	g.solution = solution
	g.rounds = g.rounds[:0]
	return nil
}

// TryRound plays a guess.  Guesses after the game is over and, unless the
// caller is privileged, guesses that are not in the dictionary are rejected
// without changing the game.
func (g *Game) TryRound(word string, privileged bool) (Feedback, error) {
	if g.Over() {
		return nil, ErrGameOver
	}
	if !privileged && !g.dictionary.Legal(word) {
		return nil, errors.Wrapf(ErrIllegalGuess, "%q", word)
	}
	feedback := Evaluate(word, g.solution)
	g.rounds = append(g.rounds, Round{Guess: word, Feedback: feedback})
	return feedback, nil
}

func (g *Game) State() State {
	if len(g.rounds) > 0 && g.rounds[len(g.rounds)-1].Feedback.Solved() {
		return Won
	}
	if len(g.rounds) >= MaxAttempts {
		return Lost
	}
	return InProgress
}

func (g *Game) Over() bool {
	return g.State() != InProgress
}

func (g *Game) Won() bool {
	return g.State() == Won
}

func (g *Game) Solution() string {
	return g.solution
}

func (g *Game) Rounds() []Round {
	return slices.Clone(g.rounds)
}

func (g *Game) Dictionary() *Dictionary {
	return g.dictionary
}

// Score is word length + 1 - rounds for a win, so a first guess win scores the
// word length.  A win always scores at least 1, a game not won scores 0.
func (g *Game) Score() int {
	if !g.Won() {
		return 0
	}
	return max(1, g.dictionary.WordLen()+1-len(g.rounds))
}
