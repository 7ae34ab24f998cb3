package project

import (
	"io"
	"sync"
	"time"
)

// Reporter defines the interface for creating formatted run reports.
type Reporter interface {
	Write(w io.Writer, report *RunReport) error
}

// FileFailure records an I/O failure for a single file.
type FileFailure struct {
	Path string
	Err  error
}

// RunReport represents the outcome of one reformat run.
type RunReport struct {
	mu sync.Mutex

	StartTime time.Time
	EndTime   time.Time

	Reformatted []string      // candidate files that were rewritten
	Skipped     []string      // candidates the skip guard judged already formatted
	Failures    []FileFailure // files that could not be read or written
}

// NewRunReport creates a new RunReport.
func NewRunReport() *RunReport {
	return &RunReport{}
}

// AddReformatted records a rewritten file.
func (r *RunReport) AddReformatted(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Reformatted = append(r.Reformatted, path)
}

// AddSkipped records a candidate the skip guard left untouched.
func (r *RunReport) AddSkipped(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Skipped = append(r.Skipped, path)
}

// AddFailure records a file that failed with an I/O error.
func (r *RunReport) AddFailure(path string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Failures = append(r.Failures, FileFailure{Path: path, Err: err})
}
