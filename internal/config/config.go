package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultMaxAttempts is the per-question attempt limit when none is configured.
const DefaultMaxAttempts = 5

type Config struct {
	Game struct {
		QuestionsFile string `yaml:"questions_file"`
		BankID        string `yaml:"bank_id"`
		MaxAttempts   int    `yaml:"max_attempts"`
		NoColor       bool   `yaml:"no_color"`
		NoShuffle     bool   `yaml:"no_shuffle"`
	} `yaml:"game"`
	Audio struct {
		Enabled bool     `yaml:"enabled"`
		Dir     string   `yaml:"dir"`
		Command []string `yaml:"command"`
	} `yaml:"audio"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		TTL      string `yaml:"ttl"`
	} `yaml:"redis"`
	Postgres struct {
		URL string `yaml:"url"`
	} `yaml:"postgres"`
	Cache struct {
		TTL string `yaml:"ttl"`
	} `yaml:"cache"`
	Log struct {
		Env string `yaml:"env"`
	} `yaml:"log"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	cfg := Config{}
	cfg.Game.QuestionsFile = "questions.json"
	cfg.Game.MaxAttempts = DefaultMaxAttempts
	cfg.Audio.Enabled = true
	cfg.Audio.Dir = "sounds"
	cfg.Audio.Command = []string{"mpg123", "-q"}
	return cfg
}

// Load reads YAML config from path on top of Default. A missing file is not an error.
// The result is not validated; callers apply overrides first, then call Validate.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the game cannot run with.
func (c Config) Validate() error {
	if c.Game.MaxAttempts < 1 {
		return fmt.Errorf("game.max_attempts must be at least 1, got %d", c.Game.MaxAttempts)
	}
	if c.Audio.Enabled && len(c.Audio.Command) == 0 {
		return errors.New("audio.command is required when audio is enabled")
	}
	return nil
}

// TTLDuration parses a duration string or returns the fallback if empty.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
