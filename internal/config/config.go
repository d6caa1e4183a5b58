// Package config reads game settings from the environment and an optional
// .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/mgriebling/set/engine"
	"github.com/mgriebling/set/internal/theme"
)

// ErrInvalidConfig is returned when a setting is present but unusable.
var ErrInvalidConfig = errors.New("invalid config")

// Environment variable names.
const (
	EnvSeed           = "SETGAME_SEED"
	EnvTheme          = "SETGAME_THEME"
	EnvTick           = "SETGAME_TICK"
	EnvTimeToMatch    = "SETGAME_TIME_TO_MATCH"
	EnvInitialDeal    = "SETGAME_INITIAL_DEAL"
	EnvLogLevel       = "SETGAME_LOG_LEVEL"
	EnvReplaceInPlace = "SETGAME_REPLACE_IN_PLACE"
	EnvColor          = "SETGAME_COLOR"
)

// Config holds the settings of a game session.
type Config struct {
	Seed           uint64        // 0 picks a time-based seed
	Theme          string        // name registered in package theme
	Tick           time.Duration // bonus clock interval
	TimeToMatch    int           // bonus ceiling
	InitialDeal    int           // cards on the board at the start
	LogLevel       string        // logrus level name
	ReplaceInPlace bool          // matched cards are replaced in their slots
	Color          bool          // colour terminal output
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	rules := engine.DefaultHouseRules()
	return Config{
		Theme:          theme.Default,
		Tick:           time.Second,
		TimeToMatch:    rules.TimeToMatch,
		InitialDeal:    rules.InitialDeal,
		LogLevel:       "info",
		ReplaceInPlace: rules.ReplaceInPlace,
		Color:          true,
	}
}

// Load reads the given .env files, or ./.env when none are named, into the
// environment and builds a Config from it. Missing files are not an error.
// Variables already set in the environment take precedence.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading env file: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment alone.
func FromEnv() (Config, error) {
	cfg := Default()
	var err error

	if cfg.Seed, err = envUint(EnvSeed, cfg.Seed); err != nil {
		return Config{}, err
	}
	if v := env(EnvTheme); v != "" {
		cfg.Theme = v
	}
	if _, err := theme.Lookup(cfg.Theme); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, EnvTheme, err)
	}
	if cfg.Tick, err = envDuration(EnvTick, cfg.Tick); err != nil {
		return Config{}, err
	}
	if cfg.TimeToMatch, err = envInt(EnvTimeToMatch, cfg.TimeToMatch); err != nil {
		return Config{}, err
	}
	if cfg.InitialDeal, err = envInt(EnvInitialDeal, cfg.InitialDeal); err != nil {
		return Config{}, err
	}
	if v := env(EnvLogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if cfg.ReplaceInPlace, err = envBool(EnvReplaceInPlace, cfg.ReplaceInPlace); err != nil {
		return Config{}, err
	}
	if cfg.Color, err = envBool(EnvColor, cfg.Color); err != nil {
		return Config{}, err
	}

	if cfg.Tick <= 0 {
		return Config{}, fmt.Errorf("%w: %s must be positive, got %s", ErrInvalidConfig, EnvTick, cfg.Tick)
	}
	if cfg.TimeToMatch < 0 || cfg.InitialDeal < 0 {
		return Config{}, fmt.Errorf("%w: %s and %s must not be negative", ErrInvalidConfig, EnvTimeToMatch, EnvInitialDeal)
	}
	return cfg, nil
}

// HouseRules maps the config onto engine rules, starting from the defaults.
func (c Config) HouseRules() engine.HouseRules {
	rules := engine.DefaultHouseRules()
	rules.TimeToMatch = c.TimeToMatch
	if c.InitialDeal > 0 {
		rules.InitialDeal = c.InitialDeal
	}
	rules.ReplaceInPlace = c.ReplaceInPlace
	return rules
}

// GameSeed returns Seed, or a seed drawn from the clock when Seed is 0.
func (c Config) GameSeed() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano())
}

func env(key string) string { return strings.TrimSpace(os.Getenv(key)) }

func envInt(key string, def int) (int, error) {
	v := env(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, key, err)
	}
	return n, nil
}

func envUint(key string, def uint64) (uint64, error) {
	v := env(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, key, err)
	}
	return n, nil
}

func envBool(key string, def bool) (bool, error) {
	v := env(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, key, err)
	}
	return b, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := env(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, key, err)
	}
	return d, nil
}
