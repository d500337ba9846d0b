// Package config loads the settings of wdl from defaults, a yaml file and
// the environment.
package config

import (
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/powellquiring/wordlesim/matcher"
	"github.com/powellquiring/wordlesim/solver"
)

type Config struct {
	// AllowedFile and SolutionsFile replace the embedded word lists
	AllowedFile   string   `yaml:"allowed_file"`
	SolutionsFile string   `yaml:"solutions_file"`
	Strategy      string   `yaml:"strategy"`
	SeedSet       string   `yaml:"seed_set"`
	Openers       []string `yaml:"openers"`
	Trials        int      `yaml:"trials"`
	Workers       int      `yaml:"workers"`
	Seed          uint64   `yaml:"seed"`
	LogLevel      string   `yaml:"log_level"`
	Progress      bool     `yaml:"progress"`
}

func Default() Config {
	return Config{
		Strategy: string(solver.KindNarrowing),
		SeedSet:  matcher.SeedSolutions.String(),
		Openers:  slices.Clone(solver.DefaultOpeners),
		Trials:   1000,
		Workers:  1,
		Seed:     1,
		LogLevel: "info",
	}
}

// Load reads the yaml file at path, if any, over the defaults and then the
// environment over that.  A .env file in the working directory is added to the
// environment.
func Load(path string) (Config, error) {
	c := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return c, errors.Wrap(err, "config")
		}
		if err := yaml.Unmarshal(data, &c); err != nil {
			return c, errors.Wrapf(err, "config %s", path)
		}
	}
	_ = godotenv.Load()
	if err := c.applyEnv(os.LookupEnv); err != nil {
		return c, err
	}
	return c, c.Validate()
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"WORDS_ALLOWED_FILE": &c.AllowedFile,
		"WORDS_ANSWERS_FILE": &c.SolutionsFile,
		"WORDLE_STRATEGY":    &c.Strategy,
		"WORDLE_SEED_SET":    &c.SeedSet,
		"LOG_LEVEL":          &c.LogLevel,
	}
	for key, dst := range strs {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	ints := map[string]*int{
		"WORDLE_TRIALS":  &c.Trials,
		"WORDLE_WORKERS": &c.Workers,
	}
	for key, dst := range ints {
		if v, ok := lookup(key); ok && v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return errors.Wrapf(err, "%s", key)
			}
			*dst = n
		}
	}
	if v, ok := lookup("WORDLE_SEED"); ok && v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return errors.Wrap(err, "WORDLE_SEED")
		}
		c.Seed = n
	}
	if v, ok := lookup("WORDLE_OPENERS"); ok && v != "" {
		c.Openers = strings.Split(v, ",")
	}
	return nil
}

func (c Config) Validate() error {
	if _, err := solver.ParseKind(c.Strategy); err != nil {
		return err
	}
	if _, err := matcher.ParseSeed(c.SeedSet); err != nil {
		return err
	}
	if c.Trials <= 0 {
		return errors.Errorf("trials must be positive, got %d", c.Trials)
	}
	if c.Workers <= 0 {
		return errors.Errorf("workers must be positive, got %d", c.Workers)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log_level")
	}
	return nil
}

func (c Config) Kind() solver.Kind {
	kind, _ := solver.ParseKind(c.Strategy)
	return kind
}

func (c Config) Seeds() matcher.Seed {
	seed, _ := matcher.ParseSeed(c.SeedSet)
	return seed
}
