package app

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calumwaite/rebrace/internal/fs"
)

func TestRootCmd(t *testing.T) {
	t.Parallel()

	setup := func() (*slog.LevelVar, *cobra.Command) {
		lazy := &LazyManager{inner: &MockManager{}}
		logLevel := &slog.LevelVar{}
		var stdout, stderr bytes.Buffer
		rootCmd := NewRootCmd(lazy, logLevel, &stderr, fs.NewEnvProvider())
		rootCmd.SetOut(&stdout)
		rootCmd.SetErr(&stderr)
		return logLevel, rootCmd
	}

	t.Run("execute help", func(t *testing.T) {
		t.Parallel()
		_, rootCmd := setup()
		rootCmd.SetArgs([]string{"--help"})
		err := rootCmd.Execute()
		require.NoError(t, err)
	})

	t.Run("test version flag", func(t *testing.T) {
		t.Parallel()
		_, rootCmd := setup()
		rootCmd.SetArgs([]string{"--version"})
		err := rootCmd.Execute()
		require.NoError(t, err)
	})

	t.Run("test debug flag", func(t *testing.T) {
		t.Parallel()
		logLevel, rootCmd := setup()
		rootCmd.SetArgs([]string{"--debug"})
		// Root has a RunE, so Execute() triggers PersistentPreRunE.
		err := rootCmd.Execute()
		require.NoError(t, err)
		assert.Equal(t, slog.LevelDebug, logLevel.Level())
	})

	t.Run("test root command execution", func(t *testing.T) {
		t.Parallel()
		_, rootCmd := setup()
		rootCmd.SetArgs([]string{})
		err := rootCmd.Execute()
		require.NoError(t, err)
	})

	t.Run("test completion command", func(t *testing.T) {
		t.Parallel()
		_, rootCmd := setup()
		rootCmd.SetArgs([]string{"completion", "bash"})
		err := rootCmd.Execute()
		require.NoError(t, err)
	})

	t.Run("test completion subcommand skips project init", func(t *testing.T) {
		t.Parallel()
		lazy := &LazyManager{} // Empty lazy manager, no inner manager
		logLevel := &slog.LevelVar{}
		var stdout, stderr bytes.Buffer
		rootCmd := NewRootCmd(lazy, logLevel, &stderr, fs.NewEnvProvider())
		rootCmd.SetOut(&stdout)
		rootCmd.SetErr(&stderr)

		rootCmd.SetArgs([]string{"completion", "zsh"})
		// PersistentPreRunE skips initialization for completion, so this must
		// succeed even with no project path configured.
		err := rootCmd.Execute()
		require.NoError(t, err)
		assert.False(t, lazy.HasInner(), "Project should not have been initialised")
	})

	t.Run("test alternate flag spellings", func(t *testing.T) {
		t.Parallel()
		variants := []string{"--nocolor", "--noColor", "--noColour"}
		for _, variant := range variants {
			variant := variant
			t.Run(variant, func(t *testing.T) {
				t.Parallel()
				_, rootCmd := setup()
				// Use help to avoid project init, but include the flag;
				// flags are processed before PersistentPreRunE.
				rootCmd.SetArgs([]string{"help", variant})
				err := rootCmd.Execute()
				require.NoError(t, err, "Flag %s should be recognised", variant)
			})
		}
	})

	t.Run("missing project fails init", func(t *testing.T) {
		t.Parallel()
		lazy := &LazyManager{}
		logLevel := &slog.LevelVar{}
		var stdout, stderr bytes.Buffer
		env := &mockEnvProvider{values: map[string]string{}}
		rootCmd := NewRootCmd(lazy, logLevel, &stderr, env)
		rootCmd.SetOut(&stdout)
		rootCmd.SetErr(&stderr)

		rootCmd.SetArgs([]string{"reformat", "--project", "/non/existent/path"})
		err := rootCmd.Execute()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "project initialisation failed")
	})
}
