package app

import (
	"github.com/spf13/cobra"
)

func NewReformatCmd(mgr Manager) *cobra.Command {
	var verbose bool
	var watch bool

	cmd := &cobra.Command{
		Use:   "reformat",
		Short: "Reconstruct line structure in collapsed source files",
		Long: `Scan the project source tree for files whose newlines were stripped,
rewrite them with one statement per line and brace-based indentation, and
report what was changed.`,
		Args: cobra.NoArgs,
		Example: `
rebrace reformat
rebrace reformat --watch
rebrace reformat -o json
`,
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Also report files left untouched")
	outputVal := formatValue("text")
	cmd.Flags().VarP(&outputVal, "output", "o", "Output format (text, json)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Watch for changes and reformat as files land")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		noColour, _ := cmd.Flags().GetBool("nocolour")
		useColour := !noColour

		if watch {
			return mgr.WatchReformat(cmd.Context(), verbose, string(outputVal), useColour, nil)
		}

		return mgr.Reformat(cmd.Context(), verbose, string(outputVal), useColour)
	}

	return cmd
}
