package docs

import (
	"os"
	"path/filepath"
	"regexp"

	"github.com/calumwaite/rebrace/internal/fs"
)

var (
	codeLinkPattern       = regexp.MustCompile(`\(CODE\)`)
	codeAnchorLinkPattern = regexp.MustCompile(`\(CODE#`)
)

// FixLinks rewrites relative CODE links in every problem README.md under
// docsRoot to absolute /problems/<name>/CODE paths, so the pages keep
// working when a site generator serves them from a different base path.
// It returns the names of the problems whose README was modified, sorted.
func FixLinks(docsRoot string) ([]string, error) {
	names, err := fs.Subdirectories(docsRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &DocsRootMissingError{Dir: docsRoot}
		}
		return nil, err
	}

	var fixed []string
	for _, name := range names {
		readme := filepath.Join(docsRoot, name, "README.md")
		changed, err := fixReadmeLinks(readme, name)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		if changed {
			fixed = append(fixed, name)
		}
	}

	return fixed, nil
}

func fixReadmeLinks(readmePath, problemName string) (bool, error) {
	content, err := os.ReadFile(readmePath)
	if err != nil {
		return false, err
	}

	updated := codeLinkPattern.ReplaceAll(content, []byte("(/problems/"+problemName+"/CODE)"))
	updated = codeAnchorLinkPattern.ReplaceAll(updated, []byte("(/problems/"+problemName+"/CODE#"))

	if string(updated) == string(content) {
		return false, nil
	}
	return true, os.WriteFile(readmePath, updated, 0o644)
}
