package display

import (
	"fmt"
	"net/url"

	"github.com/batalabs/toolview/internal/domain"
)

const (
	citationItems = 4
	statementCols = 90
)

type citation struct {
	Statement string
	URL       string
}

type citationsInput struct {
	Action    string
	Citations []citation
}

// citationsInputFrom requires a citations array; each entry needs a
// statement and a url. An omitted action defaults to "append".
func citationsInputFrom(v any) *citationsInput {
	m, ok := record(v)
	if !ok {
		return nil
	}
	raw, ok := sliceField(m, "citations")
	if !ok {
		return nil
	}
	action := optString(m, "action")
	if action == "" {
		action = "append"
	}
	in := &citationsInput{Action: action}
	for _, item := range raw {
		cm, ok := record(item)
		if !ok {
			continue
		}
		statement, ok := stringField(cm, "statement")
		if !ok {
			continue
		}
		in.Citations = append(in.Citations, citation{
			Statement: statement,
			URL:       optString(cm, "url"),
		})
	}
	return in
}

func citationsLayout() *Config {
	return &Config{
		Abbreviation: "cite",
		Name:         "citations",
		Header: func(input, _ any) *Header {
			in := citationsInputFrom(input)
			if in == nil {
				return nil
			}
			return &Header{Secondary: fmt.Sprintf("%s %d item(s)", in.Action, len(in.Citations))}
		},
		Body: LinesBody(func(input, _ any, _ *domain.ToolCall) *Body {
			in := citationsInputFrom(input)
			if in == nil || len(in.Citations) == 0 {
				return nil
			}
			var lines []BodyLine
			for i, c := range in.Citations {
				if i >= citationItems {
					break
				}
				lines = append(lines, BodyLine{Text: TruncateLine(c.Statement, statementCols)})
				if c.URL != "" {
					lines = append(lines, BodyLine{Text: citationDomain(c.URL), Dim: true})
				}
			}
			if extra := len(in.Citations) - citationItems; extra > 0 {
				lines = append(lines, BodyLine{Text: fmt.Sprintf("+%d more", extra), Dim: true})
			}
			return &Body{Lines: lines}
		}),
		FormatResult: failureLines,
	}
}

// citationDomain extracts the source host from a citation URL, falling back
// to the raw string when it does not parse as a URL with a host.
func citationDomain(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return raw
	}
	return u.Hostname()
}
