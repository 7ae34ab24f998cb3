package app

import (
	"github.com/spf13/cobra"
)

func NewFixLinksCmd(mgr Manager) *cobra.Command {
	return &cobra.Command{
		Use:   "fix-links",
		Short: "Rewrite relative CODE links in problem READMEs",
		Long: `Rewrite relative (CODE) and (CODE#anchor) links in each problem's
README.md to absolute /problems/<name>/CODE paths.`,
		Args: cobra.NoArgs,
		Example: `
rebrace fix-links
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return mgr.FixLinks()
		},
	}
}
