package app

import (
	"github.com/spf13/cobra"
)

func NewCollapseCmd(mgr Manager) *cobra.Command {
	return &cobra.Command{
		Use:   "collapse",
		Short: "Wrap bare code blocks in CODE.md files in collapsible sections",
		Long: `Retrofit collapsible <details> elements around bare fenced code blocks
in existing CODE.md files. Blocks that are already collapsible are left alone,
so the command is safe to run repeatedly.`,
		Args: cobra.NoArgs,
		Example: `
rebrace collapse
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return mgr.Collapse()
		},
	}
}
