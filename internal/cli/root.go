// Package cli defines the flashcards command line.
package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/vytor/flashcards/internal/errors"
)

// RunFunc starts a session for the given deck files.
type RunFunc func(ctx context.Context, paths []string) error

// NewRootCommand builds the root command. Positional arguments are deck
// files, concatenated in the order given.
func NewRootCommand(run RunFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flashcards FILE [FILE...]",
		Short: "Study question;answer flashcards in a window",
		Long: `flashcards shows one card at a time from ';'-separated files.
Rows need exactly two fields: question;answer. Other rows are ignored.
Reveal the answer, skip the card, or mark it learned; learned cards are
skipped until every card is learned, then you can go again or quit.`,
		// The caller logs the returned error.
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.NewConfigError("need at least one deck file", nil)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Past argument validation, failures are not usage mistakes.
			cmd.SilenceUsage = true
			return run(cmd.Context(), args)
		},
	}
	return cmd
}

// Execute runs the root command with args (without the program name).
func Execute(ctx context.Context, run RunFunc, args []string) error {
	cmd := NewRootCommand(run)
	// A nil slice makes cobra fall back to os.Args.
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}
