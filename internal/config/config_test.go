package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/flashcards/internal/config"
)

func validConfig() config.Config {
	return config.Config{
		FilePaths: []string{"deck.csv"},
		Width:     1000,
		Height:    400,
		Title:     "Flashcard Reader",
		TargetFPS: 60,
		LogLevel:  "INFO",
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_NoFiles(t *testing.T) {
	cfg := validConfig()
	cfg.FilePaths = nil

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "need at least one deck file")
}

func TestValidate_EmptyFilePath(t *testing.T) {
	cfg := validConfig()
	cfg.FilePaths = []string{"a.csv", "  "}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "deck file #2")
}

func TestValidate_WindowSize(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		expectedError string
	}{
		{name: "too narrow", width: 800, height: 400, expectedError: "WINDOW_WIDTH"},
		{name: "too short", width: 1000, height: 300, expectedError: "WINDOW_HEIGHT"},
		{name: "zero width", width: 0, height: 400, expectedError: "WINDOW_WIDTH"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Width = tt.width
			cfg.Height = tt.height

			err := cfg.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}

func TestValidate_TargetFPS(t *testing.T) {
	for _, fps := range []int{0, -1, 241} {
		cfg := validConfig()
		cfg.TargetFPS = fps
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "TARGET_FPS")
	}
}

func TestValidate_LogLevel(t *testing.T) {
	tests := []struct {
		level string
		valid bool
	}{
		{"DEBUG", true},
		{"info", true},
		{"WARN", true},
		{"ERROR", true},
		{"INVALID", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := validConfig()
			cfg.LogLevel = tt.level
			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "LOG_LEVEL")
			}
		})
	}
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := config.Config{
		Width:     10,
		Height:    10,
		Title:     "",
		TargetFPS: 0,
		LogLevel:  "INVALID",
	}

	err := cfg.Validate()
	require.Error(t, err)

	errStr := err.Error()
	assert.Contains(t, errStr, "need at least one deck file")
	assert.Contains(t, errStr, "WINDOW_WIDTH")
	assert.Contains(t, errStr, "WINDOW_HEIGHT")
	assert.Contains(t, errStr, "WINDOW_TITLE cannot be empty")
	assert.Contains(t, errStr, "TARGET_FPS")
	assert.Contains(t, errStr, "LOG_LEVEL")
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"WINDOW_WIDTH", "WINDOW_HEIGHT", "WINDOW_TITLE", "TARGET_FPS", "LOG_LEVEL", "JOURNAL_PATH"} {
		t.Setenv(key, "")
	}

	cfg := config.Load()

	assert.Equal(t, config.DefaultWidth, cfg.Width)
	assert.Equal(t, config.DefaultHeight, cfg.Height)
	assert.Equal(t, config.DefaultTitle, cfg.Title)
	assert.Equal(t, config.DefaultTargetFPS, cfg.TargetFPS)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Empty(t, cfg.JournalPath)
	assert.Empty(t, cfg.FilePaths)
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	t.Setenv("WINDOW_WIDTH", "1200")
	t.Setenv("WINDOW_HEIGHT", "500")
	t.Setenv("WINDOW_TITLE", "Vocab")
	t.Setenv("TARGET_FPS", "30")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("JOURNAL_PATH", "journal.db")

	cfg := config.Load()

	assert.Equal(t, 1200, cfg.Width)
	assert.Equal(t, 500, cfg.Height)
	assert.Equal(t, "Vocab", cfg.Title)
	assert.Equal(t, 30, cfg.TargetFPS)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, "journal.db", cfg.JournalPath)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("WINDOW_WIDTH", "wide")

	cfg := config.Load()

	assert.Equal(t, config.DefaultWidth, cfg.Width)
}

func TestWithFiles_Copies(t *testing.T) {
	paths := []string{"a.csv", "b.csv"}
	cfg := config.Config{}.WithFiles(paths)
	paths[0] = "changed"

	assert.Equal(t, []string{"a.csv", "b.csv"}, cfg.FilePaths)
}
