package display

import (
	"fmt"
	"strings"
)

const (
	contentPreviewLines = 5
	contentPreviewCols  = 160
	highlightItems      = 4
	highlightCols       = 140
)

// genericContentLines previews the common content-item result shape shared
// by the search and fetch tools: an optional title/url line, a pagination
// line when the payload carries paging metadata, then the clamped text body.
func genericContentLines(m map[string]any, text string) []string {
	var out []string

	title := optString(m, "title")
	url := optString(m, "url")
	switch {
	case title != "" && url != "":
		out = append(out, TruncateLine(title+" ("+url+")", contentPreviewCols))
	case title != "":
		out = append(out, TruncateLine(title, contentPreviewCols))
	case url != "":
		out = append(out, TruncateLine(url, contentPreviewCols))
	}

	if page := paginationLine(m); page != "" {
		out = append(out, page)
	}

	lines, more := ClampLines(text, contentPreviewLines, contentPreviewCols)
	out = append(out, lines...)
	if more > 0 {
		out = append(out, fmt.Sprintf("+%d more lines", more))
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// paginationLine reports lineOffset/lineLimit/remainingLines metadata.
// A present-but-null remainingLines means the total is unknown, which
// displays differently from a known finite remainder.
func paginationLine(m map[string]any) string {
	var parts []string
	if off, ok := intField(m, "lineOffset"); ok {
		parts = append(parts, fmt.Sprintf("offset=%d", off))
	}
	if lim, ok := intField(m, "lineLimit"); ok {
		parts = append(parts, fmt.Sprintf("limit=%d", lim))
	}
	if raw, present := m["remainingLines"]; present {
		if n, ok := intField(m, "remainingLines"); ok {
			parts = append(parts, fmt.Sprintf("remaining=%d", n))
		} else if raw == nil {
			parts = append(parts, "remaining=?")
		}
	}
	return strings.Join(parts, " ")
}

// highlightResultLines previews the ranked-snippet result shape: numbered,
// truncated snippet lines with an overflow counter.
func highlightResultLines(raw []any) []string {
	var items []string
	for _, v := range raw {
		h, ok := record(v)
		if !ok {
			continue
		}
		text := CollapseLine(optString(h, "text"))
		if text == "" {
			continue
		}
		items = append(items, TruncateLine(text, highlightCols))
	}
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		if i < highlightItems {
			items[i] = fmt.Sprintf("%d. %s", i+1, items[i])
		}
	}
	return BoundList(items, highlightItems)
}
