package sim

import (
	"context"
	"math/rand/v2"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/powellquiring/wordlesim/matcher"
	"github.com/powellquiring/wordlesim/solver"
	"github.com/powellquiring/wordlesim/wordle"
)

// Progress is told about every finished trial, progressbar.ProgressBar is one
type Progress interface {
	Add(num int) error
}

// Runner plays Trials games of one strategy.  Every trial is seeded from Seed
// and the trial number, so the statistics do not depend on Workers.
type Runner struct {
	Index    *matcher.Index
	Strategy solver.Kind
	SeedSet  matcher.Seed
	Openers  []string
	Trials   int
	Workers  int
	Seed     uint64
	// Solutions, when not empty, are played in turn instead of random ones
	Solutions []string
	Progress  Progress
	Logger    zerolog.Logger
}

func (r *Runner) Run(ctx context.Context) (Stats, error) {
	if r.Trials <= 0 {
		return Stats{}, errors.Errorf("trials must be positive, got %d", r.Trials)
	}
	workers := min(max(r.Workers, 1), r.Trials)
	dictionary := r.Index.Dictionary()
	for _, solution := range r.Solutions {
		if !dictionary.Legal(solution) {
			return Stats{}, errors.Errorf("solution %q is not in the word list", solution)
		}
	}
	r.Logger.Info().Str("strategy", string(r.Strategy)).Int("trials", r.Trials).Int("workers", workers).
		Uint64("seed", r.Seed).Msg("simulation start")

	var mu sync.Mutex
	var total Stats
	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		g.Go(func() error {
			stats, err := r.work(ctx, w, workers, &mu)
			mu.Lock()
			total.Merge(stats)
			mu.Unlock()
			return err
		})
	}
	if err := g.Wait(); err != nil {
		r.Logger.Error().Err(err).Int("trials", total.Trials).Msg("simulation aborted")
		return total, err
	}
	r.Logger.Info().Int("wins", total.Wins).Float64("win_rate", total.WinRate()).
		Float64("mean_score", total.MeanScore()).Msg("simulation end")
	return total, nil
}

// work plays the trials first, first+step, ...
func (r *Runner) work(ctx context.Context, first, step int, mu *sync.Mutex) (Stats, error) {
	var stats Stats
	source := rand.NewPCG(r.Seed, uint64(first))
	rng := rand.New(source)
	game, err := wordle.NewGame(r.Index.Dictionary(), rng, "")
	if err != nil {
		return stats, err
	}
	strategy, err := solver.New(r.Strategy, solver.Options{
		Index:   r.Index,
		Rng:     rng,
		Seed:    r.SeedSet,
		Openers: r.Openers,
	})
	if err != nil {
		return stats, err
	}
	for trial := first; trial < r.Trials; trial += step {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		source.Seed(r.Seed, uint64(trial))
		solution := ""
		if len(r.Solutions) > 0 {
			solution = r.Solutions[trial%len(r.Solutions)]
		}
		if err := game.Reset(solution); err != nil {
			return stats, errors.Wrapf(err, "trial %d", trial)
		}
		strategy.Reset()
		logger := r.Logger.With().Int("trial", trial).Logger()
		result, err := PlayGame(game, strategy, logger)
		if err != nil {
			return stats, errors.Wrapf(err, "trial %d solution %s after %d rounds", trial, game.Solution(), result.Rounds())
		}
		stats.Add(result)
		if r.Progress != nil {
			mu.Lock()
			err = r.Progress.Add(1)
			mu.Unlock()
			if err != nil {
				return stats, err
			}
		}
	}
	return stats, nil
}
