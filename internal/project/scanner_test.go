package project

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsCandidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{
			name:    "long single line",
			content: strings.Repeat("a", 201),
			want:    true,
		},
		{
			name:    "three long lines",
			content: strings.Repeat("a", 100) + "\n" + strings.Repeat("b", 100) + "\n" + strings.Repeat("c", 100),
			want:    true,
		},
		{
			name:    "trailing newline does not add a line",
			content: strings.Repeat("a", 100) + "\n" + strings.Repeat("b", 100) + "\n" + strings.Repeat("c", 100) + "\n",
			want:    true,
		},
		{
			name:    "four lines is not collapsed",
			content: strings.Repeat("a\n", 3) + strings.Repeat("b", 300),
			want:    false,
		},
		{
			name:    "exactly 200 characters is too short",
			content: strings.Repeat("a", 200),
			want:    false,
		},
		{
			name:    "short file",
			content: "class A{}",
			want:    false,
		},
		{
			name:    "empty file",
			content: "",
			want:    false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsCandidate([]byte(tt.content)))
		})
	}
}

func TestScanner_Candidates(t *testing.T) {
	t.Parallel()

	p := setupTestProject(t)

	candidate := writeSourceFile(t, p, "com/acme/inventory/Inventory.java", collapsedSource)
	writeSourceFile(t, p, "com/acme/inventory/Short.java", "class A{}")
	writeSourceFile(t, p, "com/acme/inventory/Formatted.java", strings.Repeat("// a comment line\n", 40))
	writeSourceFile(t, p, "com/acme/inventory/notes.txt", collapsedSource)

	scanner, err := NewScanner(p)
	require.NoError(t, err)

	var paths []string
	for res := range scanner.Candidates(context.Background()) {
		require.NoError(t, res.Err)
		paths = append(paths, res.Path)
	}

	assert.Equal(t, []string{candidate}, paths)
}

func TestScanner_CandidatesCancelled(t *testing.T) {
	t.Parallel()

	p := setupTestProject(t)
	writeSourceFile(t, p, "com/acme/inventory/Inventory.java", collapsedSource)

	scanner, err := NewScanner(p)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var results []ScanResult
	for res := range scanner.Candidates(ctx) {
		results = append(results, res)
	}

	// A cancelled context ends the stream; whatever was buffered before the
	// cancellation is all we get.
	assert.LessOrEqual(t, len(results), 1)
}

func TestNewScanner_MissingSourceRoot(t *testing.T) {
	t.Parallel()

	p := setupTestProject(t)
	require.NoError(t, os.RemoveAll(p.SourceRoot()))

	_, err := NewScanner(p)
	var target *SourceRootMissingError
	require.ErrorAs(t, err, &target)
}
