package docs

import (
	"os"
	"path/filepath"
	"regexp"

	"github.com/calumwaite/rebrace/internal/fs"
)

// collapsibleBlockPattern matches a "### 📄 `filename`" header followed by a
// fenced code block, the layout emitted by earlier CODE.md generators.
var collapsibleBlockPattern = regexp.MustCompile("(### 📄 `([^`]+)`)\n\n(```[\\s\\S]*?```)")

const collapsibleReplacement = "${1}\n\n<details>\n<summary>📄 Click to view ${2}</summary>\n\n${3}\n\n</details>"

// Collapse wraps each bare code block in existing CODE.md files under
// docsRoot in a collapsible <details> element. Blocks that are already
// wrapped no longer match the bare-block pattern, so running Collapse again
// leaves them alone. It returns the names of the problems whose CODE.md was
// modified, sorted.
func Collapse(docsRoot string) ([]string, error) {
	names, err := fs.Subdirectories(docsRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &DocsRootMissingError{Dir: docsRoot}
		}
		return nil, err
	}

	var updated []string
	for _, name := range names {
		codeMD := filepath.Join(docsRoot, name, CodeDocFile)
		changed, err := collapseFile(codeMD)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		if changed {
			updated = append(updated, name)
		}
	}

	return updated, nil
}

func collapseFile(path string) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}

	result := collapsibleBlockPattern.ReplaceAll(content, []byte(collapsibleReplacement))
	if string(result) == string(content) {
		return false, nil
	}
	return true, os.WriteFile(path, result, 0o644)
}
