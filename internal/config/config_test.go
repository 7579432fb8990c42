package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("MONTAGUE_LEXICON", "")
	t.Setenv("MONTAGUE_WORLD", "")
	t.Setenv("MONTAGUE_LOG_LEVEL", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	t.Setenv("MONTAGUE_LEXICON", "")
	t.Setenv("MONTAGUE_WORLD", "")
	t.Setenv("MONTAGUE_LOG_LEVEL", "")

	path := filepath.Join(t.TempDir(), "montague.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
lexicon:
  path: words.yaml
logging:
  level: debug
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "words.yaml", cfg.Lexicon.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Untouched sections keep their defaults.
	assert.Equal(t, "world.mg", cfg.World.Path)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, 4, cfg.Eval.Workers)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "montague.yaml")
	require.NoError(t, os.WriteFile(path, []byte("lexicon: [unterminated"), 0644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("MONTAGUE_LEXICON", "")
	t.Setenv("MONTAGUE_WORLD", "")
	t.Setenv("MONTAGUE_LOG_LEVEL", "")

	cfg := DefaultConfig()
	cfg.World.Path = "worlds/small.mg"
	cfg.Eval.Workers = 1

	path := filepath.Join(t.TempDir(), "nested", "montague.yaml")
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("paths and level", func(t *testing.T) {
		t.Setenv("MONTAGUE_LEXICON", "env.db")
		t.Setenv("MONTAGUE_WORLD", "env.mg")
		t.Setenv("MONTAGUE_LOG_LEVEL", "warn")

		cfg := &Config{}
		cfg.applyEnvOverrides()

		assert.Equal(t, "env.db", cfg.Lexicon.Path)
		assert.Equal(t, "env.mg", cfg.World.Path)
		assert.Equal(t, "warn", cfg.Logging.Level)
	})

	t.Run("empty values leave config alone", func(t *testing.T) {
		t.Setenv("MONTAGUE_LEXICON", "")
		t.Setenv("MONTAGUE_WORLD", "")
		t.Setenv("MONTAGUE_LOG_LEVEL", "")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("applied when the file is missing", func(t *testing.T) {
		t.Setenv("MONTAGUE_WORLD", "env.mg")

		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "env.mg", cfg.World.Path)
	})
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"json logs", func(c *Config) { c.Logging.Format = "json" }, true},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, false},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, false},
		{"negative workers", func(c *Config) { c.Eval.Workers = -1 }, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
