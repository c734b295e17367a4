package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/dicekeys/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dicekeys.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\noutput: json\nworkers: 2\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, config.OutputJSON, cfg.Output)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, "console", cfg.LogFormat, "unset keys keep defaults")

	t.Setenv("DICEKEYS_OUTPUT", "text")
	t.Setenv("DICEKEYS_LOG_FORMAT", "json")
	cfg, err = config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.OutputText, cfg.Output)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	t.Setenv("DICEKEYS_OUTPUT", "xml")
	_, err = config.Load("")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestValidate(t *testing.T) {
	cfg := config.Default()
	cfg.Workers = 0
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)

	cfg = config.Default()
	cfg.LogFormat = "logfmt"
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
}
