package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/shelf/internal/marks"
	"github.com/roach88/shelf/internal/store"
)

// ListResult is the JSON payload of the list command.
type ListResult struct {
	Marks []store.Item `json:"marks"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all recorded marks",
		Long: `List all recorded marks, one "<id> => <file>" line each, in the
order they were first added.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, cmd)
		},
	}

	return cmd
}

func runList(opts *RootOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd.OutOrStdout(), cmd.ErrOrStderr())

	items, err := marks.List(opts.Config())
	if err != nil {
		return commandError("list", err)
	}

	for _, item := range items {
		formatter.Line(marks.Line(item))
	}

	if items == nil {
		items = []store.Item{}
	}
	return formatter.Success(ListResult{Marks: items})
}
