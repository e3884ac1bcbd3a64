package logger_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vytor/flashcards/internal/logger"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithLevel(logger.WARN), logger.WithColors(false))

	log.Debug("hidden")
	log.Info("hidden too")
	log.Warn("shown %d", 1)
	log.Error("shown %d", 2)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "WARN  ")
	assert.Contains(t, out, "shown 1")
	assert.Contains(t, out, "shown 2")
	assert.Equal(t, 2, strings.Count(out, "\n"))
}

func TestLogger_PrefixAndSortedFields(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithColors(false), logger.WithClock(fixedClock)).
		WithPrefix("deck").
		WithFields(map[string]any{"zeta": 1, "alpha": "a"})

	log.Info("loaded")

	line := buf.String()
	assert.True(t, strings.HasPrefix(line, "2024-03-01 12:30:00.000 INFO  [deck] "), line)
	assert.True(t, strings.HasSuffix(line, "loaded alpha=a zeta=1\n"), line)
}

func TestLogger_WithFieldDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := logger.New(logger.WithOutput(&buf), logger.WithColors(false))
	_ = parent.WithField("file", "a.csv")

	parent.Info("plain")

	assert.NotContains(t, buf.String(), "file=")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]logger.Level{
		"debug":   logger.DEBUG,
		"INFO":    logger.INFO,
		"warning": logger.WARN,
		"Error":   logger.ERROR,
		"bogus":   logger.INFO,
		"":        logger.INFO,
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, logger.ParseLevel(in))
		})
	}
	assert.False(t, logger.ValidLevel("bogus"))
	assert.True(t, logger.ValidLevel("warn"))
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithColors(false))
	ctx := logger.NewContext(context.Background(), log)

	assert.Same(t, log, logger.FromContext(ctx))
	assert.Same(t, logger.Default(), logger.FromContext(context.Background()))
}
