package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/shelf/internal/marks"
)

// RemoveResult is the JSON payload of the remove command.
type RemoveResult struct {
	ID      string `json:"id"`
	Removed bool   `json:"removed"`
}

// NewRemoveCommand creates the remove command.
func NewRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a previously added mark",
		Long: `Remove a previously added mark.

Removing an id that does not exist succeeds and changes nothing.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runRemove(opts *RootOptions, id string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd.OutOrStdout(), cmd.ErrOrStderr())

	removed, err := marks.Remove(opts.Config(), id)
	if err != nil {
		return commandError("remove", err)
	}

	return formatter.Success(RemoveResult{ID: id, Removed: removed})
}
