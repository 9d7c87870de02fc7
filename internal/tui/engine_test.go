package tui

import (
	"strings"
	"testing"

	"github.com/batalabs/toolview/internal/display"
	"github.com/batalabs/toolview/internal/domain"
)

func TestRendererLine(t *testing.T) {
	r := NewRenderer()

	got := r.Line(display.BodyLine{Icon: "\u25cf", Status: display.StatusCompleted, Text: "done"})
	if !strings.Contains(got, "\u25cf") || !strings.Contains(got, "done") {
		t.Errorf("Line() = %q", got)
	}

	got = r.Line(display.BodyLine{Text: "plain"})
	if !strings.Contains(got, "plain") {
		t.Errorf("Line() = %q", got)
	}
	if strings.Contains(got, "  plain") {
		t.Errorf("iconless line should not carry icon padding: %q", got)
	}
}

func TestRendererSpinner(t *testing.T) {
	r := NewRenderer()
	if r.Spinner() == "" {
		t.Error("fresh renderer should have a static spinner glyph")
	}
	r.SetSpinner("\u28fb")
	if r.Spinner() != "\u28fb" {
		t.Errorf("Spinner() = %q after SetSpinner", r.Spinner())
	}
	r.SetSpinner("")
	if r.Spinner() != "\u28fb" {
		t.Error("empty frame should not clear the spinner")
	}
}

func TestCodeBlockTruncation(t *testing.T) {
	r := NewRenderer()
	content := strings.Join([]string{"l1", "l2", "l3", "l4", "l5"}, "\n")

	got := r.CodeBlock("a.txt", content, 0, 3)
	if !strings.Contains(got, "+2 more lines") {
		t.Errorf("expected truncation note, got:\n%s", got)
	}
	if strings.Contains(got, "l4") {
		t.Error("lines past the bound should not render")
	}

	got = r.CodeBlock("a.txt", "only", 0, 8)
	if strings.Contains(got, "more lines") {
		t.Error("short content should not carry a truncation note")
	}
}

func TestCodeBlockGutterOffset(t *testing.T) {
	r := NewRenderer()
	got := r.CodeBlock("a.txt", "x", 41, 8)
	if !strings.Contains(got, "42") {
		t.Errorf("gutter should start at offset+1, got:\n%s", got)
	}
}

func TestMarkdownBlockBounded(t *testing.T) {
	r := NewRenderer()
	var b strings.Builder
	for i := 0; i < 10; i++ {
		b.WriteString("line of prose\n\n")
	}
	got := r.MarkdownBlock(b.String(), 4)
	if !strings.Contains(got, "more lines") {
		t.Errorf("expected bounded markdown output, got:\n%s", got)
	}
}

func TestIndent(t *testing.T) {
	got := indent("a\n\nb")
	if got != "  a\n\n  b" {
		t.Errorf("indent() = %q, blank lines should stay blank", got)
	}
}

func TestToolCallView(t *testing.T) {
	reg := display.NewRegistry()
	r := NewRenderer()

	call := &domain.ToolCall{
		ID:     domain.NewCallID(),
		Name:   "bash",
		Input:  map[string]any{"command": "go test ./...", "description": "run tests"},
		Status: "completed",
	}
	result := map[string]any{"success": true, "exitCode": float64(0), "stdout": "ok"}

	got := ToolCallView(reg, call, result, r)
	for _, want := range []string{"bash", "run tests", "go test ./...", "stdout success=true exit=0", "ok"} {
		if !strings.Contains(got, want) {
			t.Errorf("view missing %q:\n%s", want, got)
		}
	}

	lines := strings.Split(got, "\n")
	if len(lines) < 3 {
		t.Fatalf("expected head + body + preview lines, got %d", len(lines))
	}
	for _, l := range lines[1:] {
		if l != "" && !strings.HasPrefix(l, "  ") {
			t.Errorf("body/preview line not indented: %q", l)
		}
	}
}

func TestToolCallViewUnknownTool(t *testing.T) {
	reg := display.NewRegistry()
	r := NewRenderer()

	call := &domain.ToolCall{Name: "mystery_tool", Input: map[string]any{"x": 1}, Status: "pending"}
	got := ToolCallView(reg, call, nil, r)
	if !strings.Contains(got, "mystery"+display.Ellipsis) {
		t.Errorf("unknown tool should render its truncated name, got %q", got)
	}
}

func TestToolCallViewFailure(t *testing.T) {
	reg := display.NewRegistry()
	r := NewRenderer()

	call := &domain.ToolCall{
		Name:   "bash",
		Input:  map[string]any{"command": "false"},
		Status: "failed",
	}
	result := map[string]any{"success": false, "error": "exit status 1"}

	got := ToolCallView(reg, call, result, r)
	if !strings.Contains(got, "error: exit status 1") {
		t.Errorf("view missing failure line:\n%s", got)
	}
}
