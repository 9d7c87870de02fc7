package display

import (
	"testing"

	"github.com/batalabs/toolview/internal/domain"
)

func TestTodoHeader(t *testing.T) {
	cfg := todoLayout()
	h := cfg.HeaderFor(map[string]any{"action": "update"}, nil)
	if h == nil || h.Secondary != "update" {
		t.Fatalf("header = %+v, want secondary %q", h, "update")
	}
	h = cfg.HeaderFor(map[string]any{}, nil)
	if h == nil || h.Secondary != "append" {
		t.Fatalf("omitted action should default to append, got %+v", h)
	}
}

func TestTodoUpdateOverlaysSingleItem(t *testing.T) {
	call := &domain.ToolCall{
		Name: "todo_write",
		TodoSnapshot: []domain.TodoItem{
			{Content: "first", Status: "completed"},
			{Content: "second", Status: "in_progress"},
			{Content: "third", Status: "pending"},
		},
	}
	input := map[string]any{"action": "update", "index": 2.0, "status": "completed"}

	b := todoBody(input, nil, call)
	if b == nil || len(b.Lines) != 3 {
		t.Fatalf("expected 3 lines, got %+v", b)
	}
	if b.Lines[0].Status != StatusCompleted || !b.Lines[0].Strikethrough {
		t.Errorf("item 1 = %+v, want completed with strikethrough", b.Lines[0])
	}
	if b.Lines[1].Status != StatusCompleted || !b.Lines[1].Strikethrough {
		t.Errorf("item 2 = %+v, want overlaid to completed", b.Lines[1])
	}
	if b.Lines[2].Status != StatusPending || b.Lines[2].Strikethrough {
		t.Errorf("item 3 = %+v, want unchanged pending", b.Lines[2])
	}

	// The snapshot itself must not be mutated.
	if call.TodoSnapshot[1].Status != "in_progress" {
		t.Errorf("snapshot mutated: %+v", call.TodoSnapshot[1])
	}
}

func TestTodoBodyFromWritePayload(t *testing.T) {
	input := map[string]any{
		"action": "write",
		"todos": []any{
			map[string]any{"content": "plan", "status": "pending"},
			map[string]any{"content": "do", "status": "cancelled"},
		},
	}
	b := todoBody(input, nil, &domain.ToolCall{})
	if b == nil || len(b.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %+v", b)
	}
	if b.Lines[0].Text != "plan" || b.Lines[0].Icon != StatusPending.Icon() {
		t.Errorf("line 0 = %+v", b.Lines[0])
	}
	if !b.Lines[1].Strikethrough {
		t.Errorf("cancelled item should be struck through: %+v", b.Lines[1])
	}
}

func TestTodoPlaceholders(t *testing.T) {
	b := todoBody(map[string]any{"action": "explode"}, nil, nil)
	if b == nil || len(b.Lines) != 1 || b.Lines[0].Text != `(unknown todo action "explode")` {
		t.Fatalf("unknown action body = %+v", b)
	}

	b = todoBody(map[string]any{"action": "write"}, nil, nil)
	if b == nil || len(b.Lines) != 1 || b.Lines[0].Text != "(no todo items)" {
		t.Fatalf("empty list body = %+v", b)
	}
}
