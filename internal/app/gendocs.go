package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewGenDocsCmd(mgr Manager) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "gen-docs [problem...]",
		Short: "Regenerate CODE.md pages from the source tree",
		Long: `Regenerate the CODE.md documentation page for one or more configured
problems: a directory tree view, quick navigation links, and a collapsible
listing of every source file.`,
		Example: `
rebrace gen-docs inventory
rebrace gen-docs inventory parkinglot
rebrace gen-docs --all
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && !all {
				return fmt.Errorf("no problems selected: pass one or more problem names, or --all")
			}
			if len(args) > 0 && all {
				return fmt.Errorf("--all cannot be combined with problem names")
			}

			return mgr.GenerateDocs(cmd.Context(), args, all)
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Regenerate docs for every configured problem")

	return cmd
}
