// Package text provides help text formatting for CLI commands.
package text

import (
	"strings"
)

// Indentation is the indentation applied to example lines.
const Indentation = `  `

// LongDesc trims a long description and removes the indentation of its source literal from every
// line.
func LongDesc(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}

	return strings.Join(lines, "\n")
}

// Examples trims the examples block and indents every line with Indentation. Blank lines are kept
// empty.
func Examples(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines[i] = Indentation + trimmed
		} else {
			lines[i] = ""
		}
	}

	return strings.Join(lines, "\n")
}
