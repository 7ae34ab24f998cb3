package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/calumwaite/rebrace/internal/fs"
	"github.com/calumwaite/rebrace/internal/project"
)

// Version is the current version of rebrace, set at build time.
var Version = "dev"

const InitCmdName = "init"

// Banner with colour codes and escaped backticks.
var Banner = "\033[32m" + `
    ____       __
   / __ \___  / /_  _________ _________
  / /_/ / _ \/ __ \/ ___/ __ ` + "`" + `/ ___/ _ \
 / _, _/  __/ /_/ / /  / /_/ / /__/  __/
/_/ |_|\___/_.___/_/   \__,_/\___/\___/
` + "\033[0m"

var LongDescription = `
rebrace is a CLI tool for repairing source files whose line structure was lost,
typically when code was pasted through a channel that stripped its newlines.
It finds collapsed files in a project source tree, reconstructs one statement
per line with brace-based indentation, and regenerates the documentation
pages built from those files.
`

// NewRootCmd creates the root command and wires up dependencies.
func NewRootCmd(lazy *LazyManager, ll *slog.LevelVar, stderr io.Writer, envProvider fs.EnvProvider) *cobra.Command {
	var debug bool
	var noColour bool
	projectPath := pathValue("")

	rootCmd := &cobra.Command{
		Use:           "rebrace",
		Short:         "A tool for reconstructing collapsed source files",
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Long:          Banner + "\n" + LongDescription,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for help, completion and init commands
			if cmd.Name() == "help" || isCompletionCommand(cmd) || cmd.Name() == InitCmdName {
				return nil
			}
			// Skip if already initialised (e.g., in tests)
			if lazy.HasInner() {
				if debug {
					ll.Set(slog.LevelDebug)
				}
				return nil
			}

			// 1. Setup Logging
			if debug {
				ll.Set(slog.LevelDebug)
			}

			// 2. Build Dependencies
			p, err := project.NewProject(string(projectPath), fs.NewPathResolver(), envProvider)
			if err != nil {
				return fmt.Errorf("project initialisation failed: %w", err)
			}

			logger, _, err := setupLogger(stderr, ll, p.RootDirectory())
			if err != nil {
				logger.Warn("logging to file disabled", "error", err)
			}

			// 3. Hydrate the Lazy Wrapper
			lazy.SetInner(NewCLIManager(logger, p))

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	// Global flags
	rootCmd.PersistentFlags().VarP(&projectPath, "project", "p", "path to project root (overrides env)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")

	rootCmd.PersistentFlags().BoolVarP(&noColour, "nocolour", "c", false, "Disable colour in output")
	// Support alternate spellings
	rootCmd.PersistentFlags().BoolVar(&noColour, "nocolor", false, "")
	rootCmd.PersistentFlags().BoolVar(&noColour, "noColor", false, "")
	rootCmd.PersistentFlags().BoolVar(&noColour, "noColour", false, "")
	_ = rootCmd.PersistentFlags().MarkHidden("nocolor")
	_ = rootCmd.PersistentFlags().MarkHidden("noColor")
	_ = rootCmd.PersistentFlags().MarkHidden("noColour")

	// Subcommands
	rootCmd.AddCommand(NewInitCmd(fs.NewPathResolver()))
	rootCmd.AddCommand(NewReformatCmd(lazy))
	rootCmd.AddCommand(NewGenDocsCmd(lazy))
	rootCmd.AddCommand(NewFixLinksCmd(lazy))
	rootCmd.AddCommand(NewCollapseCmd(lazy))

	return rootCmd
}

// isCompletionCommand returns true if the command or any of its parents is the "completion" command.
func isCompletionCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "completion" {
			return true
		}
	}
	return false
}
