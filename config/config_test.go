package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powellquiring/wordlesim/matcher"
	"github.com/powellquiring/wordlesim/solver"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{"WORDS_ALLOWED_FILE", "WORDS_ANSWERS_FILE", "WORDLE_STRATEGY", "WORDLE_SEED_SET",
		"WORDLE_TRIALS", "WORDLE_WORKERS", "WORDLE_SEED", "WORDLE_OPENERS", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func TestDefault(t *testing.T) {
	clearEnv(t)
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
	assert.Equal(t, solver.KindNarrowing, c.Kind())
	assert.Equal(t, matcher.SeedSolutions, c.Seeds())
}

func TestLoadYamlThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "wdl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
strategy: frequency
seed_set: dictionary
openers: [slate, crony]
trials: 50
workers: 4
seed: 99
solutions_file: answers.txt
`), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, solver.KindFrequency, c.Kind())
	assert.Equal(t, matcher.SeedDictionary, c.Seeds())
	assert.Equal(t, []string{"slate", "crony"}, c.Openers)
	assert.Equal(t, 50, c.Trials)
	assert.Equal(t, 4, c.Workers)
	assert.Equal(t, uint64(99), c.Seed)
	assert.Equal(t, "answers.txt", c.SolutionsFile)

	t.Setenv("WORDLE_TRIALS", "7")
	t.Setenv("WORDLE_STRATEGY", "opener")
	t.Setenv("WORDLE_OPENERS", "adieu,story")
	t.Setenv("WORDLE_SEED", "3")
	c, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, c.Trials)
	assert.Equal(t, solver.KindOpener, c.Kind())
	assert.Equal(t, []string{"adieu", "story"}, c.Openers)
	assert.Equal(t, uint64(3), c.Seed)
	assert.Equal(t, 4, c.Workers)
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("trials: [1"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)

	t.Setenv("WORDLE_WORKERS", "many")
	_, err = Load("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"strategy", func(c *Config) { c.Strategy = "minimax" }},
		{"seed set", func(c *Config) { c.SeedSet = "everything" }},
		{"trials", func(c *Config) { c.Trials = 0 }},
		{"workers", func(c *Config) { c.Workers = -1 }},
		{"log level", func(c *Config) { c.LogLevel = "loud" }},
	}
	require.NoError(t, Default().Validate())
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := Default()
			test.modify(&c)
			assert.Error(t, c.Validate())
		})
	}
}
