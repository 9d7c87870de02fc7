package display

import (
	"fmt"
	"strings"
)

const urlCols = 60

type webFetchInput struct {
	URL        string
	LineOffset int
	LineLimit  int
	hasOffset  bool
	hasLimit   bool
}

// webFetchInputFrom requires a url; paging fields are optional.
func webFetchInputFrom(v any) *webFetchInput {
	m, ok := record(v)
	if !ok {
		return nil
	}
	u, ok := stringField(m, "url")
	if !ok {
		return nil
	}
	in := &webFetchInput{URL: u}
	in.LineOffset, in.hasOffset = intField(m, "lineOffset")
	in.LineLimit, in.hasLimit = intField(m, "lineLimit")
	return in
}

func webFetchLayout() *Config {
	return &Config{
		Abbreviation: "fetch",
		Name:         "web fetch",
		Header: func(input, _ any) *Header {
			in := webFetchInputFrom(input)
			if in == nil {
				return nil
			}
			var parts []string
			if in.hasOffset {
				parts = append(parts, fmt.Sprintf("offset=%d", in.LineOffset))
			}
			if in.hasLimit {
				parts = append(parts, fmt.Sprintf("limit=%d", in.LineLimit))
			}
			return &Header{
				Primary:   TruncateLine(in.URL, urlCols),
				Secondary: strings.Join(parts, " · "),
			}
		},
		FormatResult: webFetchFormatResult,
	}
}

// webFetchFormatResult previews fetched page content. Raw HTML payloads are
// reduced to text before clamping so the preview shows prose, not markup.
func webFetchFormatResult(result any) []string {
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
	if text == "" {
		text = optString(m, "content")
	}
	if looksLikeHTML(text) {
		text = HTMLToText(text)
	}
	return genericContentLines(m, text)
}
