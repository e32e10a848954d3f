package meta

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds the settings that can be overridden from the environment.
type Config struct {
	Depth     int
	LogLevel  zerolog.Level
	Games     int
	OutputDir string
}

// Default returns the built-in settings.
func Default() Config {
	level, err := zerolog.ParseLevel(LOG_LEVEL)
	if err != nil {
		panic(err)
	}

	return Config{
		Depth:     DEPTH,
		LogLevel:  level,
		Games:     NUM_GAMES,
		OutputDir: filepath.Join(xdg.DataHome, "kalah", "experiments"),
	}
}

// Load reads an optional .env file from the working directory, then the
// KALAH_* environment variables on top of the defaults.
func Load() (Config, error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv applies the variables found by lookup to the defaults.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup("KALAH_DEPTH"); ok {
		depth, err := positiveInt("KALAH_DEPTH", v)
		if err != nil {
			return Config{}, err
		}
		cfg.Depth = depth
	}

	if v, ok := lookup("KALAH_GAMES"); ok {
		games, err := positiveInt("KALAH_GAMES", v)
		if err != nil {
			return Config{}, err
		}
		cfg.Games = games
	}

	if v, ok := lookup("KALAH_LOG_LEVEL"); ok {
		level, err := zerolog.ParseLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid KALAH_LOG_LEVEL %q: %w", v, err)
		}
		cfg.LogLevel = level
	}

	if v, ok := lookup("KALAH_OUTPUT_DIR"); ok && v != "" {
		cfg.OutputDir = v
	}

	return cfg, nil
}

func positiveInt(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, value, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be positive", name, value)
	}
	return n, nil
}
