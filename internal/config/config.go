// internal/config/config.go
//
// Runtime configuration for the wordgrid binaries.
//
// Sources, lowest precedence first:
//   1. Built-in defaults.
//   2. An optional YAML file (--config flag or WORDGRID_CONFIG).
//   3. Environment variables (a .env file is loaded into the environment
//      by main before Load runs).
//
// Environment variables:
//   PORT, SSH_ADDR, SSH_HOST_KEY, LOG_LEVEL,
//   WORDS_ANSWERS_FILE, WORDS_ALLOWED_FILE,
//   DAILY_SALT, JWT_SECRET, CLIENT_ORIGIN, ROWS, COLS

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable of the CLI, HTTP and SSH adapters.
type Config struct {
	Addr         string `yaml:"addr"`
	SSHAddr      string `yaml:"ssh_addr"`
	SSHHostKey   string `yaml:"ssh_host_key"`
	LogLevel     string `yaml:"log_level"`
	DailySalt    string `yaml:"daily_salt"`
	JWTSecret    string `yaml:"jwt_secret"`
	ClientOrigin string `yaml:"client_origin"`
	Rows         int    `yaml:"rows"`
	Cols         int    `yaml:"cols"`
	Words        Words  `yaml:"words"`
}

// Words points at optional word list files.
type Words struct {
	AnswersFile string `yaml:"answers_file"`
	AllowedFile string `yaml:"allowed_file"`
}

var ErrInvalid = errors.New("config: invalid value")

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Addr:         ":5175",
		SSHAddr:      ":2222",
		LogLevel:     "info",
		DailySalt:    "local_dev_salt",
		JWTSecret:    "dev_secret_change_me",
		ClientOrigin: "http://localhost:5173",
		Rows:         6,
		Cols:         5,
	}
}

// Load builds a Config from defaults, the YAML file at path (if any) and
// the environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("WORDGRID_CONFIG")
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Addr = ":" + v
	}
	cfg.SSHAddr = getEnv("SSH_ADDR", cfg.SSHAddr)
	cfg.SSHHostKey = getEnv("SSH_HOST_KEY", cfg.SSHHostKey)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.DailySalt = getEnv("DAILY_SALT", cfg.DailySalt)
	cfg.JWTSecret = getEnv("JWT_SECRET", cfg.JWTSecret)
	cfg.ClientOrigin = getEnv("CLIENT_ORIGIN", cfg.ClientOrigin)
	cfg.Words.AnswersFile = getEnv("WORDS_ANSWERS_FILE", cfg.Words.AnswersFile)
	cfg.Words.AllowedFile = getEnv("WORDS_ALLOWED_FILE", cfg.Words.AllowedFile)

	var err error
	if cfg.Rows, err = envInt("ROWS", cfg.Rows); err != nil {
		return nil, err
	}
	if cfg.Cols, err = envInt("COLS", cfg.Cols); err != nil {
		return nil, err
	}
	if cfg.Rows <= 0 || cfg.Cols <= 0 {
		return nil, fmt.Errorf("%w: grid %dx%d", ErrInvalid, cfg.Rows, cfg.Cols)
	}
	return cfg, nil
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalid, k, v)
	}
	return n, nil
}
