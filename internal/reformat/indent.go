package reformat

import "strings"

// indent assigns a nesting depth to every non-blank line in a single forward
// pass, with no backtracking. The decision uses only each trimmed line's
// first and last character: a leading '}' dedents before the line is emitted,
// and a trailing '{' indents after it. Depth is clamped at zero, and nonzero
// residual depth at end of input is accepted without diagnostic.
func indent(text string) []string {
	depth := 0
	var lines []string

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if line[0] == '}' && depth > 0 {
			depth--
		}

		lines = append(lines, strings.Repeat(IndentUnit, depth)+line)

		if line[len(line)-1] == '{' {
			depth++
		}
	}

	return lines
}
