package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"runtime/pprof"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3" // imports as package "cli"

	"github.com/powellquiring/wordlesim/config"
	"github.com/powellquiring/wordlesim/matcher"
	"github.com/powellquiring/wordlesim/sim"
	"github.com/powellquiring/wordlesim/solver"
	"github.com/powellquiring/wordlesim/wordle"
)

// filter prints the candidates left after the guess/feedback pairs, best guess first
func filter(globalConfig GlobalConfiguration, pairs []string) error {
	d := globalConfig.dictionary
	k := matcher.NewKnowledge(d.WordLen())
	for i := 0; i < len(pairs); i += 2 {
		guess := strings.ToLower(pairs[i])
		if !d.Legal(guess) {
			return cli.Exit("guess not in dictionary: "+guess, 1)
		}
		feedback, err := wordle.ParseFeedback(pairs[i+1])
		if err != nil || len(feedback) != len(guess) {
			return cli.Exit("feedback not in right format r,y,g like rrggy: "+pairs[i+1], 1)
		}
		if err := k.Absorb(guess, feedback); err != nil {
			return cli.Exit(err.Error(), 1)
		}
		globalConfig.logger.Debug().Str("guess", guess).Stringer("feedback", feedback).Stringer("knowledge", k).Msg("absorb")
	}
	candidates := matcher.NewCandidates(matcher.NewIndex(d), globalConfig.config.Seeds())
	if err := candidates.Prune(k); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	ranked := solver.Rank(candidates.Words())
	fmt.Print(ranked[0].Word, ":")
	for _, scored := range ranked {
		fmt.Print(" ", scored.Word)
	}
	fmt.Println()
	return nil
}

func simulate(ctx context.Context, globalConfig GlobalConfiguration, solutions []string) error {
	c := globalConfig.config
	var bar *progressbar.ProgressBar
	if c.Progress {
		bar = progressbar.Default(int64(c.Trials))
	} else {
		bar = progressbar.DefaultSilent(int64(c.Trials))
	}
	runner := &sim.Runner{
		Index:     matcher.NewIndex(globalConfig.dictionary),
		Strategy:  c.Kind(),
		SeedSet:   c.Seeds(),
		Openers:   c.Openers,
		Trials:    c.Trials,
		Workers:   c.Workers,
		Seed:      c.Seed,
		Solutions: solutions,
		Progress:  bar,
		Logger:    globalConfig.logger,
	}
	stats, err := runner.Run(ctx)
	_ = bar.Finish()
	if err != nil {
		return err
	}
	return sim.WriteReport(os.Stdout, c.Strategy, stats)
}

// playHuman is an interactive game on the terminal
func playHuman(globalConfig GlobalConfiguration, solution string, hint bool) error {
	d := globalConfig.dictionary
	rng := rand.New(rand.NewPCG(globalConfig.config.Seed, rand.Uint64()))
	game, err := wordle.NewGame(d, rng, solution)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	k := matcher.NewKnowledge(d.WordLen())
	candidates := matcher.NewCandidates(matcher.NewIndex(d), globalConfig.config.Seeds())

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()
	out := rl.Stdout()
	fmt.Fprintf(out, "guess the %d letter word in %d tries\n", d.WordLen(), wordle.MaxAttempts)

	for !game.Over() {
		rl.SetPrompt(fmt.Sprintf("%d> ", len(game.Rounds())+1))
		line, err := rl.Readline()
		if err == readline.ErrInterrupt || err == io.EOF {
			fmt.Fprintln(out, "the word was", game.Solution())
			return nil
		} else if err != nil {
			return err
		}
		guess := strings.ToLower(strings.TrimSpace(line))
		if guess == "" {
			continue
		}
		feedback, err := game.TryRound(guess, false)
		if errors.Cause(err) == wordle.ErrIllegalGuess {
			fmt.Fprintln(out, err)
			continue
		} else if err != nil {
			return err
		}
		fmt.Fprintln(out, feedback.Colorize(guess))
		if hint && !feedback.Solved() {
			if err := k.Absorb(guess, feedback); err == nil {
				candidates.Remove(guess)
				if err := candidates.Prune(k); err == nil {
					fmt.Fprintf(out, "%d words left %s\n", candidates.Len(), k)
				}
			}
		}
	}
	if game.Won() {
		fmt.Fprintf(out, "solved in %d, score %d\n", len(game.Rounds()), game.Score())
	} else {
		fmt.Fprintln(out, "the word was", game.Solution())
	}
	return nil
}

func first(globalConfig GlobalConfiguration) {
	d := globalConfig.dictionary
	for _, scored := range solver.Rank(d.Solutions()) {
		fmt.Println(scored.Word, scored.Score)
	}
}

func cpuProfile() func() {
	f, err := os.Create("cpu.prof")
	if err != nil {
		panic(err)
	}
	pprof.StartCPUProfile(f)
	return pprof.StopCPUProfile
}

type GlobalConfiguration struct {
	dictionary *wordle.Dictionary
	config     config.Config
	logger     zerolog.Logger
}

func loadDictionary(c config.Config) (*wordle.Dictionary, error) {
	guesses, solutions := wordle.DefaultGuesses(), wordle.DefaultSolutions()
	var err error
	if c.AllowedFile != "" {
		if guesses, err = wordle.LoadWords(c.AllowedFile); err != nil {
			return nil, err
		}
	}
	if c.SolutionsFile != "" {
		if solutions, err = wordle.LoadWords(c.SolutionsFile); err != nil {
			return nil, err
		}
	}
	return wordle.NewDictionary(guesses, solutions)
}

// globalConfiguration layers the global flags over the config file and environment
func globalConfiguration(cmd *cli.Command, configPath string, count int) (GlobalConfiguration, error) {
	c, err := config.Load(configPath)
	if err != nil {
		return GlobalConfiguration{}, err
	}
	if cmd.IsSet("log-level") {
		c.LogLevel = cmd.String("log-level")
	}
	if cmd.IsSet("progress") {
		c.Progress = cmd.Bool("progress")
	}
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return GlobalConfiguration{}, errors.Wrap(err, "log level")
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	dictionary, err := loadDictionary(c)
	if err != nil {
		return GlobalConfiguration{}, err
	}
	dictionary = dictionary.Limit(count)
	logger.Debug().Int("words", dictionary.Len()).Int("solutions", dictionary.SolutionCount()).Msg("dictionary")
	return GlobalConfiguration{
		dictionary: dictionary,
		config:     c,
		logger:     logger,
	}, nil
}

// simConfiguration applies the sim flags
func simConfiguration(cmd *cli.Command, globalConfig *GlobalConfiguration) ([]string, error) {
	c := &globalConfig.config
	if cmd.IsSet("strategy") {
		c.Strategy = cmd.String("strategy")
	}
	if cmd.IsSet("seed-set") {
		c.SeedSet = cmd.String("seed-set")
	}
	if cmd.IsSet("seed") {
		c.Seed = cmd.Uint64("seed")
	}
	if cmd.IsSet("workers") {
		c.Workers = cmd.Int("workers")
	}
	if cmd.IsSet("first") {
		c.Openers = cmd.StringSlice("first")
		if !cmd.IsSet("strategy") {
			c.Strategy = string(solver.KindOpener)
		}
	}
	solutions := cmd.Args().Slice()
	if cmd.Bool("all") {
		solutions = globalConfig.dictionary.Solutions()
	}
	if len(solutions) > 0 {
		c.Trials = len(solutions)
	}
	if cmd.IsSet("trials") {
		c.Trials = cmd.Int("trials")
	}
	return solutions, c.Validate()
}

func main() {
	count := 0
	profile := false
	configPath := ""
	cmd := &cli.Command{
		Name:  "wdl",
		Usage: "wordle simulator",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Usage:       "yaml configuration file",
				Destination: &configPath,
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "trace, debug, info, warn or error",
			},
			&cli.IntFlag{
				Name:        "count",
				Value:       0,
				Aliases:     []string{"c"},
				Usage:       "number of words, 0 is all words",
				Destination: &count,
			},
			&cli.BoolFlag{
				Name:    "progress",
				Value:   false,
				Aliases: []string{"p"},
				Usage:   "show progress bar",
			},
			&cli.BoolFlag{
				Name:        "profile",
				Value:       false,
				Usage:       "store profile data to analyze",
				Destination: &profile,
			},
		},
		Commands: []*cli.Command{
			{
				Name: "sim",
				Usage: `sim [solution]...
				Simulate games of a strategy.  Solutions are drawn at random unless they are listed
				or --all is set, then each solution is played in turn.
				`,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "strategy",
						Usage: "random, narrowing, opener or frequency",
					},
					&cli.IntFlag{
						Name:    "trials",
						Aliases: []string{"n"},
						Usage:   "number of games",
					},
					&cli.IntFlag{
						Name:    "workers",
						Aliases: []string{"w"},
						Usage:   "games played in parallel",
					},
					&cli.Uint64Flag{
						Name:  "seed",
						Usage: "random seed, the same seed plays the same games",
					},
					&cli.StringFlag{
						Name:  "seed-set",
						Usage: "words a solver starts from: dictionary or solutions",
					},
					&cli.StringSliceFlag{
						Usage:   "--first first1 --first first2 ..., opening guesses",
						Name:    "first",
						Aliases: []string{"f"},
					},
					&cli.BoolFlag{
						Name:  "all",
						Usage: "play every solution once",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if profile {
						def := cpuProfile()
						defer def()
					}
					globalConfig, err := globalConfiguration(cmd, configPath, count)
					if err != nil {
						return err
					}
					solutions, err := simConfiguration(cmd, &globalConfig)
					if err != nil {
						return cli.Exit(err.Error(), 2)
					}
					return simulate(ctx, globalConfig, solutions)
				},
			},
			{
				Name: "play",
				Usage: `play [solution]
				play a game of wordle on the terminal
				`,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "hint",
						Usage: "show the number of words left after each guess",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					globalConfig, err := globalConfiguration(cmd, configPath, count)
					if err != nil {
						return err
					}
					return playHuman(globalConfig, strings.ToLower(cmd.Args().First()), cmd.Bool("hint"))
				},
			},
			{
				Name:  "eval",
				Usage: "eval guess solution, print the feedback for the guess",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.NArg() != 2 {
						return cli.Exit("must have a guess and a solution", 1)
					}
					guess, solution := strings.ToLower(cmd.Args().Get(0)), strings.ToLower(cmd.Args().Get(1))
					if len(guess) != len(solution) {
						return cli.Exit("guess and solution must be the same length", 1)
					}
					feedback := wordle.Evaluate(guess, solution)
					fmt.Println(feedback.Colorize(guess), feedback)
					return nil
				},
			},
			{
				Name: "filter",
				Usage: `filter the words by entering pairs of [guess answer]...
				https://www.nytimes.com/games/wordle/index.html
				`,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if profile {
						def := cpuProfile()
						defer def()
					}
					if cmd.NArg()%2 != 0 {
						return cli.Exit("must have pairs of guess answer", 1)
					} else if cmd.NArg() < 2 {
						return cli.Exit("must have at least one guess answer", 2)
					}
					globalConfig, err := globalConfiguration(cmd, configPath, count)
					if err != nil {
						return err
					}
					return filter(globalConfig, cmd.Args().Slice())
				},
			},
			{
				Name: "first",
				Usage: `first
				Sort first words by simple score
				`,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					globalConfig, err := globalConfiguration(cmd, configPath, count)
					if err != nil {
						return err
					}
					first(globalConfig)
					return nil
				},
			},
		},
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := cmd.Run(ctx, os.Args); err != nil {
		log.Fatal().Err(err).Msg("wdl")
	}
}
