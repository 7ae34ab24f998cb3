package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/calumwaite/rebrace/internal/project"
)

// TextReporter implements project.Reporter for plain text output.
type TextReporter struct {
	Verbose   bool
	UseColour bool
}

const (
	colReset     = "\033[0m"
	colRed       = "\033[31m"
	colGreen     = "\033[32m"
	colGrey      = "\033[90m"
	colWhite     = "\033[37m"
	colBoldRed   = "\033[1;31m"
	colBoldGreen = "\033[1;32m"
	colBoldWhite = "\033[1;37m"
)

// cs returns a string which will render with the given colour
// if colourisation is enabled.
func (tr *TextReporter) cs(c, s string) string {
	if !tr.UseColour {
		return s
	}
	return c + s + colReset
}

func (tr *TextReporter) Write(w io.Writer, r *project.RunReport) error {
	divider := strings.Repeat("-", 40)

	fmt.Fprintf(w, "%s\n", divider)
	fmt.Fprint(w, tr.cs(colBoldWhite, "REBRACE REPORT\n\n"))
	fmt.Fprintf(w, "%s %s\n", tr.cs(colGrey, "Started: "), tr.cs(colWhite, r.StartTime.Format("15:04:05")))
	fmt.Fprintf(w, "%s %s\n", tr.cs(colGrey, "Duration:"), tr.cs(colWhite, r.EndTime.Sub(r.StartTime).String()))
	fmt.Fprintf(w, "%s\n", divider)

	reformatted := sortedCopy(r.Reformatted)
	skipped := sortedCopy(r.Skipped)

	failures := make([]project.FileFailure, len(r.Failures))
	copy(failures, r.Failures)
	sort.Slice(failures, func(i, j int) bool {
		return failures[i].Path < failures[j].Path
	})

	for _, path := range reformatted {
		fmt.Fprintf(w, "%s %s\n", tr.cs(colGreen, "[DONE]"), tr.cs(colWhite, path))
	}

	if tr.Verbose {
		for _, path := range skipped {
			fmt.Fprintf(w, "%s %s\n", tr.cs(colGrey, "[SKIP]"), tr.cs(colGrey, path))
		}
	}

	for _, f := range failures {
		fmt.Fprintf(w, "%s %s:\n", tr.cs(colRed, "[FAIL]"), tr.cs(colRed, f.Path))
		fmt.Fprintf(w, "    %v\n", f.Err)
	}

	fmt.Fprintf(w, "%s\n", divider)
	summaryLabel := tr.cs(colBoldWhite, "Reformat summary: ")
	summaryStats := fmt.Sprintf("%d reformatted, %d skipped, %d failed",
		len(reformatted), len(skipped), len(failures))
	statsColour := colBoldGreen
	if len(failures) > 0 {
		statsColour = colBoldRed
	}
	fmt.Fprintf(w, "%s%s\n", summaryLabel, tr.cs(statsColour, summaryStats))
	fmt.Fprintf(w, "%s\n", divider)

	return nil
}

func sortedCopy(paths []string) []string {
	out := make([]string, len(paths))
	copy(out, paths)
	sort.Strings(out)
	return out
}
