package display

import (
	"fmt"
	"strings"
)

const queryCols = 60

type webSearchInput struct {
	Query   string
	Recency string
	Domains []string
}

// webSearchInputFrom requires a query; recency and domain filters are
// optional and independent.
func webSearchInputFrom(v any) *webSearchInput {
	m, ok := record(v)
	if !ok {
		return nil
	}
	query, ok := stringField(m, "query")
	if !ok {
		return nil
	}
	in := &webSearchInput{Query: query, Recency: optString(m, "recency")}
	if domains, ok := stringSliceField(m, "domains"); ok {
		in.Domains = domains
	}
	return in
}

func webSearchLayout() *Config {
	return &Config{
		Abbreviation: "search",
		Name:         "web search",
		Header: func(input, _ any) *Header {
			in := webSearchInputFrom(input)
			if in == nil {
				return nil
			}
			var parts []string
			if in.Recency != "" {
				parts = append(parts, "recency="+in.Recency)
			}
			if len(in.Domains) > 0 {
				parts = append(parts, TruncateLine("domains="+strings.Join(in.Domains, ","), 40))
			}
			return &Header{
				Primary:   fmt.Sprintf("%q", TruncateLine(in.Query, queryCols)),
				Secondary: strings.Join(parts, " · "),
			}
		},
		FormatResult: webSearchFormatResult,
	}
}

// webSearchFormatResult distinguishes the three search result shapes:
// explicit failure, ranked highlights, and a generic content item.
func webSearchFormatResult(result any) []string {
	if lines := failureLines(result); lines != nil {
		return lines
	}
	m, ok := record(result)
	if !ok {
		return nil
	}
	if raw, ok := sliceField(m, "highlights"); ok {
		return highlightResultLines(raw)
	}
	text := optString(m, "text")
	if text == "" {
		text = optString(m, "data")
	}
	return genericContentLines(m, text)
}
