package batch

import "strings"

// splitLines splits a CSV document on CRLF or LF line endings.
func splitLines(content string) []string {
	lines := strings.Split(content, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// ParseLine splits one CSV line on commas, honoring double-quoted fields.
// A doubled quote inside a quoted field unescapes to a literal quote.
// Cells are trimmed. Always returns at least one cell.
func ParseLine(line string) []string {
	var values []string
	var current strings.Builder
	insideQuotes := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			if insideQuotes && i+1 < len(line) && line[i+1] == '"' {
				current.WriteByte('"')
				i++
			} else {
				insideQuotes = !insideQuotes
			}
		case c == ',' && !insideQuotes:
			values = append(values, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteByte(c)
		}
	}
	values = append(values, strings.TrimSpace(current.String()))
	return values
}
