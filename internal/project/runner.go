package project

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Runner executes a reformat pass over a project's candidate files.
//
// Files are processed strictly one at a time: each file is fully read,
// transformed and written back before the next begins. A failure on one
// file is recorded in the report and the run carries on; the batch is never
// aborted by a single bad file.
type Runner struct {
	project *Project
	logger  *slog.Logger
	report  *RunReport
}

// NewRunner creates a new Runner for the given project.
func NewRunner(p *Project, logger *slog.Logger) *Runner {
	return &Runner{
		project: p,
		logger:  logger.With("component", "runner"),
		report:  NewRunReport(),
	}
}

// Run scans the source root and reformats every candidate file, returning
// the report of the run. The context can be used to cancel the run early.
func (r *Runner) Run(ctx context.Context) (*RunReport, error) {
	r.report.StartTime = time.Now()
	defer func() { r.report.EndTime = time.Now() }()

	scanner, err := NewScanner(r.project)
	if err != nil {
		return nil, err
	}

	for res := range scanner.Candidates(ctx) {
		if res.Err != nil {
			if res.Path == "" {
				// The walk itself failed.
				return nil, res.Err
			}
			r.logger.Error("could not read file", "path", res.Path, "error", res.Err)
			r.report.AddFailure(res.Path, res.Err)
			continue
		}

		r.runFile(res.Path)
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	return r.report, nil
}

// RunOne reformats a single file, provided its content still qualifies as a
// reformat candidate. Used by watch mode, where the scanner is bypassed.
func (r *Runner) RunOne(path string) *RunReport {
	r.report.StartTime = time.Now()
	defer func() { r.report.EndTime = time.Now() }()

	data, err := os.ReadFile(path)
	if err != nil {
		r.logger.Error("could not read file", "path", path, "error", err)
		r.report.AddFailure(path, err)
		return r.report
	}

	if !IsCandidate(data) {
		r.logger.Debug("not a candidate, ignoring", "path", path)
		return r.report
	}

	r.runFile(path)
	return r.report
}

func (r *Runner) runFile(path string) {
	changed, err := ReformatFile(path)
	switch {
	case err != nil:
		r.logger.Error("reformat failed", "path", path, "error", err)
		r.report.AddFailure(path, err)
	case changed:
		r.logger.Debug("reformatted", "path", path)
		r.report.AddReformatted(path)
	default:
		r.logger.Debug("already formatted", "path", path)
		r.report.AddSkipped(path)
	}
}
