package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads so the host environment does
// not leak into the test.
func clearEnv(t *testing.T) {
	for _, k := range []string{
		"WORDGRID_CONFIG", "PORT", "SSH_ADDR", "SSH_HOST_KEY", "LOG_LEVEL",
		"DAILY_SALT", "JWT_SECRET", "CLIENT_ORIGIN",
		"WORDS_ANSWERS_FILE", "WORDS_ALLOWED_FILE", "ROWS", "COLS",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadYAMLThenEnv(t *testing.T) {
	clearEnv(t)
	p := filepath.Join(t.TempDir(), "wordgrid.yaml")
	require.NoError(t, os.WriteFile(p, []byte(`
addr: ":9000"
log_level: debug
rows: 8
words:
  allowed_file: /tmp/allowed.txt
`), 0o644))

	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("COLS", "6")

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "warn", cfg.LogLevel, "env wins over file")
	assert.Equal(t, 8, cfg.Rows)
	assert.Equal(t, 6, cfg.Cols)
	assert.Equal(t, "/tmp/allowed.txt", cfg.Words.AllowedFile)
}

func TestLoadPortEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
}

func TestLoadConfigFromEnvPath(t *testing.T) {
	clearEnv(t)
	p := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(p, []byte("daily_salt: pepper\n"), 0o644))
	t.Setenv("WORDGRID_CONFIG", p)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "pepper", cfg.DailySalt)
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("rows: [1,2"), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)

	t.Setenv("ROWS", "six")
	_, err = Load("")
	assert.ErrorIs(t, err, ErrInvalid)

	t.Setenv("ROWS", "0")
	_, err = Load("")
	assert.ErrorIs(t, err, ErrInvalid)
}
