package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/vytor/flashcards/internal/logger"
)

// Window defaults. These mirror the fixed viewport the card layout is tuned for.
const (
	DefaultWidth     = 1000
	DefaultHeight    = 400
	DefaultTitle     = "Flashcard Reader"
	DefaultTargetFPS = 60
)

type Config struct {
	FilePaths   []string
	Width       int
	Height      int
	Title       string
	TargetFPS   int
	LogLevel    string
	JournalPath string
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying defaults when values are missing or invalid. File paths are not part of
// the environment; set them with WithFiles.
func Load() Config {
	// Ignore error so the app still starts when .env is absent.
	_ = godotenv.Load()

	return Config{
		Width:       envIntOr("WINDOW_WIDTH", DefaultWidth),
		Height:      envIntOr("WINDOW_HEIGHT", DefaultHeight),
		Title:       envOr("WINDOW_TITLE", DefaultTitle),
		TargetFPS:   envIntOr("TARGET_FPS", DefaultTargetFPS),
		LogLevel:    envOr("LOG_LEVEL", "INFO"),
		JournalPath: os.Getenv("JOURNAL_PATH"),
	}
}

// WithFiles returns a copy of c holding the given deck source paths.
func (c Config) WithFiles(paths []string) Config {
	c.FilePaths = append([]string(nil), paths...)
	return c
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error

	if len(c.FilePaths) == 0 {
		errs = append(errs, errors.New("need at least one deck file"))
	}
	for i, p := range c.FilePaths {
		if strings.TrimSpace(p) == "" {
			errs = append(errs, fmt.Errorf("deck file #%d is an empty path", i+1))
		}
	}
	// Buttons sit at fixed coordinates up to x=850, y=385.
	if c.Width < 850 {
		errs = append(errs, fmt.Errorf("WINDOW_WIDTH must be at least 850, got %d", c.Width))
	}
	if c.Height < 385 {
		errs = append(errs, fmt.Errorf("WINDOW_HEIGHT must be at least 385, got %d", c.Height))
	}
	if strings.TrimSpace(c.Title) == "" {
		errs = append(errs, errors.New("WINDOW_TITLE cannot be empty"))
	}
	if c.TargetFPS < 1 || c.TargetFPS > 240 {
		errs = append(errs, fmt.Errorf("TARGET_FPS must be between 1 and 240, got %d", c.TargetFPS))
	}
	if !logger.ValidLevel(c.LogLevel) {
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of DEBUG, INFO, WARN, ERROR, got %q", c.LogLevel))
	}

	return errors.Join(errs...)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
