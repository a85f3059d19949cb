package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/shelf/internal/marks"
)

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <id> <file>",
		Short: "Add a new mark with <id> to <file>",
		Long: `Add a new mark with <id> pointing to <file>.

If a mark with the same id already exists its file is replaced and the
mark keeps its position. The file does not have to exist.

Example:
  shelf add notes ~/Documents/notes.md`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(rootOpts, args[0], args[1], cmd)
		},
	}

	return cmd
}

func runAdd(opts *RootOptions, id, file string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd.OutOrStdout(), cmd.ErrOrStderr())

	if err := marks.Add(opts.Config(), id, file); err != nil {
		return commandError("add", err)
	}

	return formatter.Success(map[string]string{"id": id, "file": file})
}
