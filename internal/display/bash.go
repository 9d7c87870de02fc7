package display

import (
	"fmt"
	"strings"

	"github.com/batalabs/toolview/internal/domain"
)

const (
	bashCommandCols = 120
	bashResultLines = 4
	bashResultCols  = 160
)

type bashInput struct {
	Command     string
	Description string
}

// bashInputFrom pulls the shell input out of an untyped payload. Command is
// required; description degrades to empty.
func bashInputFrom(v any) *bashInput {
	m, ok := record(v)
	if !ok {
		return nil
	}
	cmd, ok := stringField(m, "command")
	if !ok {
		return nil
	}
	return &bashInput{Command: cmd, Description: optString(m, "description")}
}

func bashLayout() *Config {
	return &Config{
		Abbreviation: "bash",
		Name:         "bash",
		Header: func(input, _ any) *Header {
			in := bashInputFrom(input)
			if in == nil || in.Description == "" {
				return nil
			}
			return &Header{Secondary: in.Description, SecondaryStyle: SecondaryItalic}
		},
		Body: LinesBody(func(input, _ any, _ *domain.ToolCall) *Body {
			in := bashInputFrom(input)
			if in == nil || strings.TrimSpace(in.Command) == "" {
				return nil
			}
			first, rest := FirstLine(in.Command)
			text := TruncateLine(first, bashCommandCols)
			if rest > 0 {
				text += fmt.Sprintf(" (+%d more lines)", rest)
			}
			return &Body{Lines: []BodyLine{{Text: text}}}
		}),
		FormatResult: bashFormatResult,
	}
}

// bashFormatResult previews shell output: the first non-empty of
// stdout/stderr/error wins and is labeled accordingly, with success/exit
// metadata on the label line. With no textual output the metadata alone is
// the preview; with neither there is none.
func bashFormatResult(result any) []string {
	if lines := failureLines(result); lines != nil {
		return lines
	}
	m, ok := record(result)
	if !ok {
		return nil
	}

	var meta []string
	if success, ok := boolField(m, "success"); ok {
		meta = append(meta, fmt.Sprintf("success=%t", success))
	}
	if code, ok := intField(m, "exitCode"); ok {
		meta = append(meta, fmt.Sprintf("exit=%d", code))
	}
	metaStr := strings.Join(meta, " ")

	var source, label string
	switch {
	case optString(m, "stdout") != "":
		source, label = optString(m, "stdout"), "stdout"
	case optString(m, "stderr") != "":
		source, label = optString(m, "stderr"), "stderr"
	case optString(m, "error") != "":
		source, label = optString(m, "error"), "error"
	}

	if source == "" {
		if metaStr != "" {
			return []string{metaStr}
		}
		return nil
	}

	head := label
	if metaStr != "" {
		head += " " + metaStr
	}
	lines, more := ClampLines(source, bashResultLines, bashResultCols)
	out := append([]string{head}, lines...)
	if more > 0 {
		out = append(out, fmt.Sprintf("+%d more lines", more))
	}
	return out
}
