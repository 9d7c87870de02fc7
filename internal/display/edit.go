package display

const editPreviewLines = 10

type fileEditInput struct {
	Path      string
	OldString string
	NewString string
}

// fileEditInputFrom requires all three fields: without both sides of the
// replacement there is no diff to show.
func fileEditInputFrom(v any) *fileEditInput {
	m, ok := record(v)
	if !ok {
		return nil
	}
	path, ok := stringField(m, "path")
	if !ok {
		return nil
	}
	oldStr, ok := stringField(m, "old_string")
	if !ok {
		return nil
	}
	newStr, ok := stringField(m, "new_string")
	if !ok {
		return nil
	}
	return &fileEditInput{Path: path, OldString: oldStr, NewString: newStr}
}

func fileEditLayout() *Config {
	return &Config{
		Abbreviation: "edit",
		Name:         "file edit",
		Header: func(input, _ any) *Header {
			in := fileEditInputFrom(input)
			if in == nil {
				return nil
			}
			return &Header{Primary: in.Path, Secondary: fileTypeName(in.Path)}
		},
		Body: CustomBody(func(p CustomProps) string {
			in := fileEditInputFrom(p.Input)
			if in == nil {
				return ""
			}
			if lines := failureLines(p.Result); lines != nil {
				return p.Engine.Line(BodyLine{Text: lines[0], Status: StatusFailed})
			}
			return p.Engine.DiffBlock(in.Path, in.OldString, in.NewString, editPreviewLines)
		}),
		FormatResult: failureLines,
	}
}
