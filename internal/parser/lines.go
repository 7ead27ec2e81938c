package parser

import "strings"

// SplitLines breaks a pasted blob into trimmed, non-empty lines.
// Handles \n, \r\n and bare \r endings, preserves input order.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
