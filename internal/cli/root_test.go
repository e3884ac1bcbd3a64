package cli_test

import (
	"bytes"
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/flashcards/internal/cli"
	"github.com/vytor/flashcards/internal/errors"
)

func TestRoot_RequiresAFile(t *testing.T) {
	called := false
	cmd := cli.NewRootCommand(func(context.Context, []string) error {
		called = true
		return nil
	})
	var stderr bytes.Buffer
	cmd.SetOut(&stderr)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{})

	err := cmd.Execute()

	require.Error(t, err)
	assert.False(t, called)
	assert.Equal(t, errors.ExitConfig, errors.ExitCode(err))
	assert.Contains(t, err.Error(), "need at least one deck file")
	assert.Contains(t, stderr.String(), "Usage:")
}

func TestRoot_PassesFilesInOrder(t *testing.T) {
	var got []string
	run := func(_ context.Context, paths []string) error {
		got = paths
		return nil
	}

	err := cli.Execute(context.Background(), run, []string{"b.csv", "a.csv"})

	require.NoError(t, err)
	assert.Equal(t, []string{"b.csv", "a.csv"}, got)
}

func TestRoot_RunErrorSkipsUsage(t *testing.T) {
	cmd := cli.NewRootCommand(func(context.Context, []string) error {
		return errors.NewEmptyDeckError()
	})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"deck.csv"})

	err := cmd.Execute()

	var appErr *errors.AppError
	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, errors.ErrCodeEmptyDeck, appErr.Code)
	assert.NotContains(t, out.String(), "Usage:")
}

func TestRoot_ContextReachesRun(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "v")

	var seen any
	err := cli.Execute(ctx, func(ctx context.Context, _ []string) error {
		seen = ctx.Value(key{})
		return nil
	}, []string{"deck.csv"})

	require.NoError(t, err)
	assert.Equal(t, "v", seen)
}
