package app

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/calumwaite/rebrace/internal/config"
	"github.com/calumwaite/rebrace/internal/fs"
	"github.com/calumwaite/rebrace/internal/project"
)

// NewInitCmd returns a new cobra command for initialising a project.
func NewInitCmd(pathResolver fs.PathResolver) *cobra.Command {
	cmd := &cobra.Command{
		Use:   InitCmdName + " [dirpath]",
		Short: "Initialise a new rebrace project",
		Long:  `Create a directory if necessary and initialise it with a default rebrace configuration file.`,
		Args:  cobra.MaximumNArgs(1),
		Example: `
rebrace init ./my-project
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dirpath := "."
			if len(args) > 0 {
				dirpath = args[0]
			}

			// 1. Create directory if it doesn't exist
			if err := os.MkdirAll(dirpath, 0o750); err != nil {
				return fmt.Errorf("failed to create directory: %w", err)
			}

			configPath := filepath.Join(dirpath, config.ProjectConfigFile)

			// 2. Check if config file already exists
			if _, err := os.Stat(configPath); err == nil {
				return fmt.Errorf("project already exists: %s", configPath)
			}

			// 3. Write default config
			if err := os.WriteFile(configPath, []byte(config.DefaultConfigContent), 0o600); err != nil {
				return fmt.Errorf("failed to write configuration file: %w", err)
			}

			cmd.Printf("Successfully created new project at: %s\n", dirpath)
			cmd.Printf("%s", addEnvironmentVariableInstructions(pathResolver, dirpath))
			cmd.Println("\nTo reformat collapsed files, use the reformat command. For details:")
			cmd.Printf("  rebrace reformat -h\n")

			return nil
		},
	}

	return cmd
}

func addEnvironmentVariableInstructions(pathResolver fs.PathResolver, dirpath string) string {
	return addEnvironmentVariableInstructionsForOS(pathResolver, dirpath, runtime.GOOS)
}

func addEnvironmentVariableInstructionsForOS(pathResolver fs.PathResolver, dirpath, goos string) string {
	abs, err := pathResolver.Abs(dirpath)
	if err != nil {
		abs = dirpath
	}

	envVar := project.RootDirEnvVar
	instructions := "To use this project by default, we recommend you set an environment variable. Run:\n"

	switch goos {
	case "windows":
		instructions += fmt.Sprintf("\n  setx %s %q && set %q\n", envVar, abs, envVar+"="+abs)
	case "darwin":
		instructions += fmt.Sprintf("\n  echo 'export %s=%q' >> ~/.zshrc && source ~/.zshrc\n", envVar, abs)
	default:
		instructions += fmt.Sprintf("\n  echo 'export %s=%q' >> ~/.bashrc && source ~/.bashrc\n", envVar, abs)
	}

	return instructions
}
