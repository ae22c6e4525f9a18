package config

import (
	"os"
	"strconv"

	"connectn/game"
	"connectn/meta"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type Config struct {
	Width      int
	Height     int
	WinLength  int
	Depth      int
	Goroutines int
	Evaluator  string
	NumGames   int
	ResultsDir string
	LogLevel   zerolog.Level
}

// Load reads the given env files, or ./.env when present, into the process
// environment without overriding variables that are already set, then builds
// the configuration from the environment.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		if _, err := os.Stat(".env"); err == nil {
			envFiles = []string{".env"}
		}
	}
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return nil, errors.Wrapf(err, "failed to load env files %v", envFiles)
		}
	}
	return FromEnv()
}

// FromEnv builds the configuration from CONNECTN_* environment variables,
// falling back to the defaults in meta.
func FromEnv() (*Config, error) {
	c := &Config{
		Evaluator:  GetEnv("CONNECTN_EVALUATOR", meta.EVALUATOR),
		ResultsDir: GetEnv("CONNECTN_RESULTS_DIR", meta.RESULTS_DIR),
	}

	ints := []struct {
		key          string
		defaultValue int
		value        *int
	}{
		{"CONNECTN_WIDTH", meta.WIDTH, &c.Width},
		{"CONNECTN_HEIGHT", meta.HEIGHT, &c.Height},
		{"CONNECTN_WIN_LENGTH", meta.WIN_LENGTH, &c.WinLength},
		{"CONNECTN_DEPTH", meta.DEPTH, &c.Depth},
		{"CONNECTN_GOROUTINES", meta.GO_ROUTINES, &c.Goroutines},
		{"CONNECTN_GAMES", meta.NUM_GAMES, &c.NumGames},
	}
	for _, i := range ints {
		v, err := GetEnvAsInt(i.key, i.defaultValue)
		if err != nil {
			return nil, err
		}
		*i.value = v
	}

	level, err := zerolog.ParseLevel(GetEnv("CONNECTN_LOG_LEVEL", zerolog.InfoLevel.String()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse CONNECTN_LOG_LEVEL")
	}
	c.LogLevel = level

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that the board shape, search settings and evaluator are usable.
func (c *Config) Validate() error {
	if _, err := game.NewBoard(c.Width, c.Height, c.WinLength); err != nil {
		return err
	}
	if c.Depth < 1 {
		return errors.Errorf("depth must be positive, got %d", c.Depth)
	}
	if c.Goroutines < 1 {
		return errors.Errorf("goroutines must be positive, got %d", c.Goroutines)
	}
	if c.NumGames < 1 {
		return errors.Errorf("number of games must be positive, got %d", c.NumGames)
	}
	if _, err := game.EvaluatorByName(c.Evaluator); err != nil {
		return err
	}
	return nil
}

func GetEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func GetEnvAsInt(key string, defaultValue int) (int, error) {
	value := GetEnv(key, "")
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to parse %s=%q to int", key, value)
	}
	return parsed, nil
}
