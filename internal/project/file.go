package project

import (
	"os"

	"github.com/calumwaite/rebrace/internal/reformat"
)

// ReformatFile reads the file at path, applies the reformat transform and,
// when the transform reports a change, overwrites the file in place. The
// write is not atomic: a crash mid-write can leave a partial file, which is
// accepted for a local tooling use case.
// It returns true when the file was rewritten.
func ReformatFile(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}

	out, changed := reformat.Reformat(string(data))
	if !changed {
		return false, nil
	}

	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return false, err
	}

	return true, nil
}
