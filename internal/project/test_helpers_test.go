package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calumwaite/rebrace/internal/config"
	"github.com/calumwaite/rebrace/internal/fs"
)

const testProjectConfig = `
sourceRoot: src/main/java
docsRoot: docs/problems
problems:
  inventory:
    title: Inventory
    srcDir: com/acme/inventory
`

// collapsedSource is a minified compilation unit: one physical line, well
// over 200 characters, so it qualifies as a reformat candidate.
const collapsedSource = "class Inventory{private int count;private final String name;" +
	"public Inventory(String name){this.name=name;this.count=0;}" +
	"public void add(int n){count=count+n;}public int total(){return count;}" +
	"public String label(){return name;}}"

// stubEnvProvider returns canned environment values in tests.
type stubEnvProvider struct {
	values map[string]string
}

func (s *stubEnvProvider) Get(key string) string {
	return s.values[key]
}

func setupTestProject(t *testing.T) *Project {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, config.ProjectConfigFile),
		[]byte(testProjectConfig),
		0o600,
	))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src", "main", "java"), 0o755))

	p, err := NewProject(dir, fs.NewPathResolver(), fs.NewEnvProvider())
	require.NoError(t, err)
	return p
}

func writeSourceFile(t *testing.T, p *Project, name, content string) string {
	t.Helper()

	path := filepath.Join(p.SourceRoot(), name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
