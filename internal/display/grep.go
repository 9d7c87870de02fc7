package display

import (
	"fmt"
	"strings"
)

const (
	grepMatchItems = 4
	grepMatchCols  = 160
)

type grepInput struct {
	Pattern string
	Path    string
	Glob    string
}

// grepInputFrom requires a pattern; path and glob filters are optional.
func grepInputFrom(v any) *grepInput {
	m, ok := record(v)
	if !ok {
		return nil
	}
	pattern, ok := stringField(m, "pattern")
	if !ok {
		return nil
	}
	return &grepInput{
		Pattern: pattern,
		Path:    optString(m, "path"),
		Glob:    optString(m, "glob"),
	}
}

func grepLayout() *Config {
	return &Config{
		Abbreviation: "grep",
		Name:         "grep",
		Header: func(input, _ any) *Header {
			in := grepInputFrom(input)
			if in == nil {
				return nil
			}
			var parts []string
			if in.Path != "" {
				parts = append(parts, in.Path)
			}
			if in.Glob != "" {
				parts = append(parts, in.Glob)
			}
			return &Header{
				Primary:   fmt.Sprintf("%q", TruncateLine(in.Pattern, queryCols)),
				Secondary: strings.Join(parts, " · "),
			}
		},
		FormatResult: grepFormatResult,
	}
}

// grepFormatResult previews matches: a count line, then up to four match
// lines, then a bounded-list overflow entry.
func grepFormatResult(result any) []string {
	if lines := failureLines(result); lines != nil {
		return lines
	}
	m, ok := record(result)
	if !ok {
		return nil
	}

	if matches, ok := stringSliceField(m, "matches"); ok {
		if len(matches) == 0 {
			return []string{"0 matches"}
		}
		items := make([]string, len(matches))
		for i, match := range matches {
			items[i] = TruncateLine(match, grepMatchCols)
		}
		out := []string{fmt.Sprintf("%d matches", len(matches))}
		return append(out, BoundList(items, grepMatchItems)...)
	}

	text := optString(m, "data")
	if text == "" {
		text = optString(m, "stdout")
	}
	if text == "" {
		return nil
	}
	lines, more := ClampLines(text, grepMatchItems, grepMatchCols)
	if more > 0 {
		lines = append(lines, fmt.Sprintf("+%d more lines", more))
	}
	return lines
}
