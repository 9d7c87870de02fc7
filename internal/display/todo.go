package display

import (
	"fmt"
	"slices"

	"github.com/batalabs/toolview/internal/domain"
)

type todoInput struct {
	Action   string
	Todos    []domain.TodoItem
	Index    int
	Status   string
	hasIndex bool
}

// todoInputFrom reads the todo manager payload. Everything is optional; an
// omitted action defaults to "append".
func todoInputFrom(v any) *todoInput {
	m, ok := record(v)
	if !ok {
		return nil
	}
	in := &todoInput{Action: optString(m, "action"), Status: optString(m, "status")}
	if in.Action == "" {
		in.Action = "append"
	}
	in.Index, in.hasIndex = intField(m, "index")
	if raw, ok := sliceField(m, "todos"); ok {
		for _, item := range raw {
			tm, ok := record(item)
			if !ok {
				continue
			}
			content, ok := stringField(tm, "content")
			if !ok {
				continue
			}
			in.Todos = append(in.Todos, domain.TodoItem{
				Content: content,
				Status:  optString(tm, "status"),
			})
		}
	}
	return in
}

func todoLayout() *Config {
	return &Config{
		Abbreviation: "todo",
		Name:         "todo list",
		Header: func(input, _ any) *Header {
			in := todoInputFrom(input)
			if in == nil {
				return nil
			}
			return &Header{Secondary: in.Action}
		},
		Body:         LinesBody(todoBody),
		FormatResult: failureLines,
	}
}

// todoBody renders the current list, one line per item with its status icon
// and strikethrough for finished items. The call's snapshot is preferred
// over the write payload; an update action overlays a single item's status
// onto the snapshot by position (1-based).
func todoBody(input, _ any, call *domain.ToolCall) *Body {
	in := todoInputFrom(input)
	action := "append"
	if in != nil {
		action = in.Action
	}

	var items []domain.TodoItem
	if call != nil && len(call.TodoSnapshot) > 0 {
		items = slices.Clone(call.TodoSnapshot)
	} else if in != nil {
		items = slices.Clone(in.Todos)
	}

	switch action {
	case "append", "write", "update", "read":
	default:
		return placeholderBody(fmt.Sprintf("(unknown todo action %q)", action))
	}

	if action == "update" && in != nil && in.hasIndex && in.Status != "" {
		if in.Index >= 1 && in.Index <= len(items) {
			items[in.Index-1].Status = in.Status
		}
	}

	if len(items) == 0 {
		return placeholderBody("(no todo items)")
	}

	lines := make([]BodyLine, 0, len(items))
	for _, item := range items {
		status := ParseStatus(item.Status)
		lines = append(lines, BodyLine{
			Icon:          status.Icon(),
			Status:        status,
			Text:          item.Content,
			Strikethrough: status == StatusCompleted || status == StatusCancelled,
		})
	}
	return &Body{Lines: lines}
}

func placeholderBody(text string) *Body {
	return &Body{Lines: []BodyLine{{Text: text, Dim: true}}}
}
