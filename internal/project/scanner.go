package project

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Candidate selection thresholds. A source file is only a reformat candidate
// when it has been collapsed: at most maxCandidateLines physical lines while
// still holding more than minCandidateChars characters. Hand-written code
// comfortably fails the character test, generated one-liners pass it.
const (
	maxCandidateLines = 3
	minCandidateChars = 200
)

// ScanResult is a result from a scan for candidate files. Path is empty when
// the walk itself failed rather than a single file.
type ScanResult struct {
	Path string
	Err  error
}

// Scanner walks a project's source root looking for collapsed source files.
type Scanner struct {
	project  *Project
	scanRoot string
}

// NewScanner creates a new Scanner over the project's source root.
func NewScanner(p *Project) (*Scanner, error) {
	root := p.SourceRoot()
	if _, err := os.Stat(root); err != nil {
		return nil, &SourceRootMissingError{Path: root, Err: err}
	}

	return &Scanner{
		project:  p,
		scanRoot: root,
	}, nil
}

// Candidates walks the source root and streams candidate files over a channel
// as they are found. A file that cannot be read is streamed with its error so
// the consumer can record the failure and carry on with the remaining files.
func (s *Scanner) Candidates(ctx context.Context) <-chan ScanResult {
	resC := make(chan ScanResult, 1)

	if s == nil {
		go func() {
			defer close(resC)
			resC <- ScanResult{Err: errors.New("scanner is nil")}
		}()
		return resC
	}

	go func() {
		defer close(resC)

		err := filepath.Walk(s.scanRoot, s.walkFunc(ctx, resC))
		if err != nil && !errors.Is(err, context.Canceled) {
			select {
			case <-ctx.Done():
				return
			case resC <- ScanResult{Err: err}:
			}
		}
	}()

	return resC
}

func (s *Scanner) walkFunc(ctx context.Context, resC chan<- ScanResult) filepath.WalkFunc {
	ext := s.project.Config().SourceExt

	return func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		if !strings.HasSuffix(info.Name(), ext) {
			return nil
		}

		content, rErr := os.ReadFile(path)
		if rErr != nil {
			// Fatal to this file only; the walk continues.
			select {
			case <-ctx.Done():
				return ctx.Err()
			case resC <- ScanResult{Path: path, Err: rErr}:
			}
			return nil
		}

		if !IsCandidate(content) {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case resC <- ScanResult{Path: path}:
		}

		return nil
	}
}

// IsCandidate reports whether file content looks collapsed: at most 3
// physical lines while holding more than 200 characters.
func IsCandidate(content []byte) bool {
	if len(content) <= minCandidateChars {
		return false
	}
	return physicalLines(content) <= maxCandidateLines
}

// physicalLines counts newline-terminated lines, plus a final unterminated one.
func physicalLines(content []byte) int {
	n := bytes.Count(content, []byte{'\n'})
	if len(content) > 0 && content[len(content)-1] != '\n' {
		n++
	}
	return n
}
