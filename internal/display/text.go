package display

import (
	"fmt"
	"strings"
)

// Ellipsis is the single-character continuation marker appended wherever
// display text is cut short.
const Ellipsis = "…"

// TruncateLine truncates s to at most max runes. When truncation occurs and
// max is large enough to signal it, the last kept rune is replaced with the
// ellipsis so loss is never silent. Limits of 3 or fewer are too short for a
// meaningful marker and hard-truncate instead. Rune-based indexing avoids
// splitting multi-byte UTF-8 sequences.
func TruncateLine(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + Ellipsis
}

// NormalizeWhitespace converts platform line endings to bare line feeds and
// expands tabs to four spaces. Applied before any line splitting so column
// limits mean the same thing everywhere.
func NormalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.ReplaceAll(s, "\t", "    ")
}

// ClampLines selects at most maxLines display lines from free text. Trailing
// whitespace is trimmed per line and fully blank lines are dropped before
// counting. Each surviving line is truncated to maxCols runes. The second
// return value is how many candidate lines were cut; when it is positive the
// last kept line carries the ellipsis marker.
func ClampLines(s string, maxLines, maxCols int) ([]string, int) {
	if maxLines <= 0 {
		return nil, 0
	}
	var kept []string
	total := 0
	for _, raw := range strings.Split(NormalizeWhitespace(s), "\n") {
		line := strings.TrimRight(raw, " ")
		if line == "" {
			continue
		}
		total++
		if len(kept) < maxLines {
			kept = append(kept, TruncateLine(line, maxCols))
		}
	}
	more := total - len(kept)
	if more > 0 && len(kept) > 0 {
		last := kept[len(kept)-1]
		if !strings.HasSuffix(last, Ellipsis) {
			kept[len(kept)-1] = TruncateLine(last, maxCols-1) + Ellipsis
		}
	}
	return kept, more
}

// BoundList keeps at most limit entries of items and, when more remain,
// appends exactly one summary entry naming the remainder.
func BoundList(items []string, limit int) []string {
	if limit <= 0 || len(items) <= limit {
		return items
	}
	out := make([]string, 0, limit+1)
	out = append(out, items[:limit]...)
	out = append(out, fmt.Sprintf("+%d more", len(items)-limit))
	return out
}

// FirstLine returns the first line of s after whitespace normalization,
// along with the count of additional non-blank lines.
func FirstLine(s string) (string, int) {
	lines := strings.Split(NormalizeWhitespace(s), "\n")
	rest := 0
	for _, l := range lines[1:] {
		if strings.TrimSpace(l) != "" {
			rest++
		}
	}
	return strings.TrimRight(lines[0], " "), rest
}

// CollapseLine flattens s into a single line: newlines become spaces and
// runs of whitespace collapse to one space. Used for inline summaries where
// a command or prompt must fit one row.
func CollapseLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
