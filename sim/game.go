// Package sim plays strategies against wordle games and collects statistics.
package sim

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/powellquiring/wordlesim/solver"
	"github.com/powellquiring/wordlesim/wordle"
)

type Result struct {
	Solution string
	Guesses  []string
	Won      bool
	Score    int
}

// Rounds is the number of guesses played
func (r Result) Rounds() int {
	return len(r.Guesses)
}

type remaining interface {
	Remaining() int
}

func result(game *wordle.Game) Result {
	ret := Result{
		Solution: game.Solution(),
		Won:      game.Won(),
		Score:    game.Score(),
	}
	for _, round := range game.Rounds() {
		ret.Guesses = append(ret.Guesses, round.Guess)
	}
	return ret
}

// PlayGame lets the strategy play the game until it is over.  The strategy's
// guesses are privileged so a rejected guess means the strategy is broken.
func PlayGame(game *wordle.Game, strategy solver.Strategy, logger zerolog.Logger) (Result, error) {
	for !game.Over() {
		round := len(game.Rounds()) + 1
		guess, err := strategy.Guess()
		if err != nil {
			return result(game), errors.Wrapf(err, "%s guess %d", strategy.Name(), round)
		}
		feedback, err := game.TryRound(guess, true)
		if err != nil {
			return result(game), errors.Wrapf(err, "%s guess %d %q", strategy.Name(), round, guess)
		}
		if err := strategy.Absorb(feedback); err != nil {
			return result(game), errors.Wrapf(err, "%s absorb %d", strategy.Name(), round)
		}
		event := logger.Debug().Int("round", round).Str("guess", guess).Stringer("feedback", feedback)
		if r, ok := strategy.(remaining); ok {
			event = event.Int("candidates", r.Remaining())
		}
		event.Msg("round")
	}
	ret := result(game)
	logger.Debug().Str("solution", ret.Solution).Bool("won", ret.Won).Int("score", ret.Score).Msg("game")
	return ret, nil
}
