// Package main provides integration tests for the rebrace CLI.
package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calumwaite/rebrace/internal/app"
	"github.com/calumwaite/rebrace/internal/config"
)

var binaryPath string

var (
	errBuild  error
	buildOnce sync.Once
)

func ensureBinary() error {
	buildOnce.Do(func() {
		// Build the binary once for all binary-level tests
		tmpDir, err := os.MkdirTemp("", "rebrace-integration-test-*")
		if err != nil {
			errBuild = fmt.Errorf("failed to create temp dir: %w", err)
			return
		}

		binaryName := "rebrace"
		if runtime.GOOS == "windows" {
			binaryName += ".exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		cmd := exec.CommandContext(context.Background(), "go", "build", "-o", binaryPath, ".")
		if bOutput, bErr := cmd.CombinedOutput(); bErr != nil {
			errBuild = fmt.Errorf("failed to build binary: %w\nOutput: %s", bErr, string(bOutput))
		}
	})
	return errBuild
}

func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"rebrace": func() int {
			ctx := context.Background()
			if err := app.Run(ctx, os.Args, os.Stdout, os.Stderr, nil); err != nil {
				return 1
			}
			return 0
		},
	}))
}

func TestScripts(t *testing.T) {
	t.Parallel()
	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
	})
}

func setupIntegrationProject(t *testing.T) string {
	t.Helper()
	projDir := t.TempDir()
	cfgData := `
sourceRoot: src/main/java
docsRoot: docs/problems
problems:
  inventory:
    title: Inventory
    srcDir: com/acme/inventory
`
	if err := os.WriteFile(
		filepath.Join(projDir, config.ProjectConfigFile),
		[]byte(cfgData),
		0o600,
	); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(projDir, "src", "main", "java"), 0o755); err != nil {
		t.Fatal(err)
	}
	return projDir
}

func TestBinary_Help(t *testing.T) {
	t.Parallel()
	if err := ensureBinary(); err != nil {
		t.Fatal(err)
	}
	cmd := exec.CommandContext(context.Background(), binaryPath, "--help")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	require.NoError(t, err, "stderr: %s", stderr.String())
	assert.Contains(t, stdout.String(), "rebrace is a CLI tool")
}

func TestBinary_Reformat(t *testing.T) {
	t.Parallel()
	if err := ensureBinary(); err != nil {
		t.Fatal(err)
	}
	projDir := setupIntegrationProject(t)

	collapsed := "class Inventory{private int count;private final String name;" +
		"public Inventory(String name){this.name=name;this.count=0;}" +
		"public void add(int n){count=count+n;}public int total(){return count;}" +
		"public String label(){return name;}}"
	srcFile := filepath.Join(projDir, "src", "main", "java", "Inventory.java")
	require.NoError(t, os.WriteFile(srcFile, []byte(collapsed), 0o644))

	cmd := exec.CommandContext(context.Background(), binaryPath, "reformat", "--nocolour")
	cmd.Env = append(os.Environ(), "REBRACE_PROJECT_DIR="+projDir)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	require.NoError(t, err, "stderr: %s", stderr.String())
	assert.Contains(t, stdout.String(), "REBRACE REPORT")
	assert.Contains(t, stdout.String(), "1 reformatted, 0 skipped, 0 failed")

	data, err := os.ReadFile(srcFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "class Inventory {\n    private int count;\n")
}

func TestBinary_MissingProject(t *testing.T) {
	t.Parallel()
	if err := ensureBinary(); err != nil {
		t.Fatal(err)
	}
	cmd := exec.CommandContext(context.Background(), binaryPath, "reformat")
	cmd.Env = append(os.Environ(), "REBRACE_PROJECT_DIR=/non/existent/path")

	err := cmd.Run()
	assert.Error(t, err)
}
