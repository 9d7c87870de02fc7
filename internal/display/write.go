package display

import "strings"

const writePreviewLines = 8

type fileWriteInput struct {
	Path    string
	Content string
	Append  bool
}

// fileWriteInputFrom requires a path. Content degrades to empty and an
// omitted action reads as a plain write.
func fileWriteInputFrom(v any) *fileWriteInput {
	m, ok := record(v)
	if !ok {
		return nil
	}
	path, ok := stringField(m, "path")
	if !ok {
		return nil
	}
	return &fileWriteInput{
		Path:    path,
		Content: optString(m, "content"),
		Append:  optString(m, "action") == "append",
	}
}

func fileWriteLayout() *Config {
	return &Config{
		Abbreviation: "write",
		Name:         "file write",
		Header: func(input, _ any) *Header {
			in := fileWriteInputFrom(input)
			if in == nil {
				return nil
			}
			secondary := fileTypeName(in.Path)
			if in.Append {
				if secondary != "" {
					secondary += " · "
				}
				secondary += "append"
			}
			return &Header{Primary: in.Path, Secondary: secondary}
		},
		Body: CustomBody(func(p CustomProps) string {
			in := fileWriteInputFrom(p.Input)
			if in == nil {
				return ""
			}
			if lines := failureLines(p.Result); lines != nil {
				return p.Engine.Line(BodyLine{Text: lines[0], Status: StatusFailed})
			}
			if strings.TrimSpace(in.Content) == "" {
				return p.Engine.Line(BodyLine{Text: "(empty file)", Dim: true})
			}
			return p.Engine.CodeBlock(in.Path, in.Content, 0, writePreviewLines)
		}),
		FormatResult: failureLines,
	}
}
