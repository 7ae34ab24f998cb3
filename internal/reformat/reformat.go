// Package reformat reconstructs readable, indented multi-line source from
// curly-brace source text that has been collapsed onto very few physical
// lines (typically generated or minified code). It works purely on token
// boundaries and never parses a grammar, so braces or semicolons inside
// string and comment literals are handled best-effort only.
package reformat

import (
	"regexp"
	"strings"
)

// IndentUnit is the fixed four-space block representing one nesting level.
const IndentUnit = "    "

// skipLineCount is the skip-guard threshold: input that already splits into
// more than this many lines is judged formatted and returned untouched.
const skipLineCount = 5

var blankRunPattern = regexp.MustCompile(`\n{3,}`)

// Reformat rewrites collapsed source text into indented multi-line source.
// It returns the rewritten text and true, or the input unchanged and false
// when the input already looks formatted.
//
// The transform never fails: any textual input is accepted, and unbalanced
// braces are tolerated silently (depth clamps at zero on over-closing, and
// residual depth at end of input is not diagnosed).
func Reformat(text string) (string, bool) {
	if alreadyFormatted(text) {
		return text, false
	}

	flat := flatten(text)
	broken := insertBreaks(flat)
	compacted := compactBlankLines(broken)

	return strings.Join(indent(compacted), "\n") + "\n", true
}

// alreadyFormatted is a line-count-only heuristic. It deliberately ignores
// content quality: a dense-but-clean file under the threshold will be
// rewritten, and a malformed file over it will be left alone.
func alreadyFormatted(text string) bool {
	return strings.Contains(text, "\n") && len(strings.Split(text, "\n")) > skipLineCount
}

// flatten collapses the input to a single logical line by replacing every
// newline with a space. No other normalisation happens at this stage.
func flatten(text string) string {
	return strings.ReplaceAll(text, "\n", " ")
}

// compactBlankLines bounds consecutive blank lines: any run of three or more
// newline characters collapses to exactly two.
func compactBlankLines(text string) string {
	return blankRunPattern.ReplaceAllString(text, "\n\n")
}
