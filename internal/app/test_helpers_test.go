package app

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/calumwaite/rebrace/internal/config"
	"github.com/calumwaite/rebrace/internal/fs"
	"github.com/calumwaite/rebrace/internal/project"
)

const testProjectConfig = `
sourceRoot: src/main/java
docsRoot: docs/problems
problems:
  inventory:
    title: Inventory
    srcDir: com/acme/inventory
`

// collapsedSource is a minified compilation unit that qualifies as a
// reformat candidate.
const collapsedSource = "class Inventory{private int count;private final String name;" +
	"public Inventory(String name){this.name=name;this.count=0;}" +
	"public void add(int n){count=count+n;}public int total(){return count;}" +
	"public String label(){return name;}}"

type MockManager struct {
	mock.Mock
}

func (m *MockManager) Reformat(ctx context.Context, verbose bool, format string, useColour bool) error {
	args := m.Called(ctx, verbose, format, useColour)
	return args.Error(0)
}

func (m *MockManager) WatchReformat(ctx context.Context, verbose bool, format string, useColour bool,
	readyChan chan<- struct{},
) error {
	args := m.Called(ctx, verbose, format, useColour, readyChan)
	return args.Error(0)
}

func (m *MockManager) GenerateDocs(ctx context.Context, problems []string, all bool) error {
	args := m.Called(ctx, problems, all)
	return args.Error(0)
}

func (m *MockManager) FixLinks() error {
	return m.Called().Error(0)
}

func (m *MockManager) Collapse() error {
	return m.Called().Error(0)
}

// mockEnvProvider returns canned environment values in tests.
type mockEnvProvider struct {
	values map[string]string
}

func (m *mockEnvProvider) Get(key string) string {
	return m.values[key]
}

// setupAppProject creates a project directory with a valid config and an
// empty source root, returning its path.
func setupAppProject(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, config.ProjectConfigFile),
		[]byte(testProjectConfig),
		0o600,
	))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src", "main", "java"), 0o755))
	return dir
}

// newTestCLIManager builds a CLIManager over the given project directory,
// with report output captured in the returned buffer.
func newTestCLIManager(t *testing.T, dir string) (*CLIManager, *bytes.Buffer) {
	t.Helper()

	p, err := project.NewProject(dir, fs.NewPathResolver(), fs.NewEnvProvider())
	require.NoError(t, err)

	m := NewCLIManager(slog.New(slog.NewTextHandler(io.Discard, nil)), p)
	var buf bytes.Buffer
	m.reporterWriter = &buf
	return m, &buf
}

// executeCommand runs the root command against a pre-initialised manager and
// returns captured stdout.
func executeCommand(t *testing.T, mgr Manager, args ...string) (string, error) {
	t.Helper()

	lazy := &LazyManager{}
	lazy.SetInner(mgr)
	logLevel := &slog.LevelVar{}

	var stdout, stderr bytes.Buffer
	rootCmd := NewRootCmd(lazy, logLevel, &stderr, fs.NewEnvProvider())
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)

	err := rootCmd.Execute()
	return stdout.String(), err
}
