// Package report provides reporting functionality for rebrace runs.
package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/calumwaite/rebrace/internal/project"
)

// JSONReporter implements project.Reporter for JSON output.
type JSONReporter struct{}

type jsonFailure struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

type jsonOutput struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Duration  string `json:"duration"`
	Stats     struct {
		Reformatted int `json:"reformatted"`
		Skipped     int `json:"skipped"`
		Failed      int `json:"failed"`
	} `json:"stats"`
	Reformatted []string      `json:"reformatted"`
	Skipped     []string      `json:"skipped"`
	Failures    []jsonFailure `json:"failures"`
}

func (jr *JSONReporter) Write(w io.Writer, r *project.RunReport) error {
	out := jsonOutput{
		StartTime:   r.StartTime.Format(time.RFC3339),
		EndTime:     r.EndTime.Format(time.RFC3339),
		Duration:    r.EndTime.Sub(r.StartTime).String(),
		Reformatted: sortedCopy(r.Reformatted),
		Skipped:     sortedCopy(r.Skipped),
	}
	out.Stats.Reformatted = len(r.Reformatted)
	out.Stats.Skipped = len(r.Skipped)
	out.Stats.Failed = len(r.Failures)

	for _, f := range r.Failures {
		errMsg := ""
		if f.Err != nil {
			errMsg = f.Err.Error()
		}
		out.Failures = append(out.Failures, jsonFailure{Path: f.Path, Error: errMsg})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
