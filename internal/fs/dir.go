package fs

import (
	"os"
	"slices"
)

// Subdirectories returns the names of the immediate subdirectories of the
// given path, sorted in ascending order.
func Subdirectories(dirPath string) ([]string, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	slices.Sort(names)
	return names, nil
}
