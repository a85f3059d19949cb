package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/shelf/internal/marks"
)

// NewOpenCommand creates the open command.
func NewOpenCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open <id>",
		Short: "Open a previously added mark",
		Long: `Open the file of a previously added mark with its default application.

The application is started in the background; shelf returns as soon as it
has been launched.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOpen(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runOpen(opts *RootOptions, id string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd.OutOrStdout(), cmd.ErrOrStderr())

	if err := marks.Open(opts.Config(), id, opts.launcher()); err != nil {
		return commandError("open", err)
	}

	return formatter.Success(map[string]string{"id": id})
}
