package display

import (
	"fmt"
	"strings"
)

const readPreviewLines = 8

type fileReadInput struct {
	Path      string
	Offset    int
	Limit     int
	hasOffset bool
	hasLimit  bool
}

// fileReadInputFrom requires a path; offset and limit are optional.
func fileReadInputFrom(v any) *fileReadInput {
	m, ok := record(v)
	if !ok {
		return nil
	}
	path, ok := stringField(m, "path")
	if !ok {
		return nil
	}
	in := &fileReadInput{Path: path}
	in.Offset, in.hasOffset = intField(m, "offset")
	in.Limit, in.hasLimit = intField(m, "limit")
	return in
}

func fileReadLayout() *Config {
	return &Config{
		Abbreviation: "read",
		Name:         "file read",
		Header: func(input, _ any) *Header {
			in := fileReadInputFrom(input)
			if in == nil {
				return nil
			}
			var parts []string
			if in.hasOffset {
				parts = append(parts, fmt.Sprintf("offset=%d", in.Offset))
			}
			if in.hasLimit {
				parts = append(parts, fmt.Sprintf("limit=%d", in.Limit))
			}
			return &Header{Primary: in.Path, Secondary: strings.Join(parts, " · ")}
		},
		Body: CustomBody(func(p CustomProps) string {
			in := fileReadInputFrom(p.Input)
			if in == nil {
				return ""
			}
			if lines := failureLines(p.Result); lines != nil {
				return p.Engine.Line(BodyLine{Text: lines[0], Status: StatusFailed})
			}
			m, ok := record(p.Result)
			if !ok {
				return ""
			}
			content := optString(m, "content")
			if content == "" {
				content = optString(m, "text")
			}
			if content == "" {
				return ""
			}
			return p.Engine.CodeBlock(in.Path, content, in.Offset, readPreviewLines)
		}),
		FormatResult: failureLines,
	}
}
