package display

import (
	"strings"
	"testing"

	"github.com/batalabs/toolview/internal/domain"
)

// stubEngine is a plain-text Engine for exercising custom bodies without a
// terminal renderer.
type stubEngine struct{}

func (stubEngine) Width() int { return 80 }
func (stubEngine) Line(l BodyLine) string {
	if l.Icon != "" {
		return l.Icon + " " + l.Text
	}
	return l.Text
}
func (stubEngine) CodeBlock(path, content string, offset, maxLines int) string {
	return "[code " + path + "]"
}
func (stubEngine) MarkdownBlock(content string, maxLines int) string {
	return "[md " + strings.Split(content, "\n")[0] + "]"
}
func (stubEngine) DiffBlock(path, before, after string, maxLines int) string {
	return "[diff " + path + "]"
}
func (stubEngine) Spinner() string { return "*" }

func TestTaskHeader(t *testing.T) {
	cfg := taskLayout()
	h := cfg.HeaderFor(map[string]any{"description": "audit error handling"}, nil)
	if h == nil || h.Primary != "audit error handling" {
		t.Fatalf("header = %+v", h)
	}

	h = cfg.HeaderFor(map[string]any{"prompt": "find\nall callers"}, nil)
	if h == nil || h.Primary != "find all callers" {
		t.Fatalf("prompt fallback header = %+v", h)
	}

	if cfg.HeaderFor(map[string]any{"unrelated": 1}, nil) != nil {
		t.Error("no summary-ish field should mean no header")
	}
}

func TestTaskBodySteps(t *testing.T) {
	call := &domain.ToolCall{
		Name: "task",
		SubagentSteps: []domain.SubagentStep{
			{ToolName: "grep", Input: map[string]any{"pattern": "Hello"}, Status: "completed"},
			{ToolName: "bash", Input: map[string]any{"command": "go   test\n./..."}, Status: "running"},
			{ToolName: "web_fetch", Input: map[string]any{"url": "https://pkg.go.dev"}, Status: "pending"},
		},
	}
	out := taskBody(CustomProps{Call: call, Engine: stubEngine{}})
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines: %q", len(lines), lines)
	}
	if lines[0] != StatusCompleted.Icon()+` grep "Hello"` {
		t.Errorf("step 1 = %q", lines[0])
	}
	// Running steps swap the status icon for the spinner frame and the
	// command is collapsed to one line.
	if lines[1] != "* bash go test ./..." {
		t.Errorf("step 2 = %q", lines[1])
	}
	if lines[2] != StatusPending.Icon()+" fetch https://pkg.go.dev" {
		t.Errorf("step 3 = %q", lines[2])
	}
}

func TestTaskBodyResponse(t *testing.T) {
	call := &domain.ToolCall{
		SubagentSteps: []domain.SubagentStep{
			{ToolName: "grep", Input: map[string]any{"pattern": "x"}, Status: "completed"},
		},
	}
	out := taskBody(CustomProps{
		Call:   call,
		Result: map[string]any{"response": "All callers live in main."},
		Engine: stubEngine{},
	})
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines: %q", len(lines), lines)
	}
	if lines[1] != "" {
		t.Errorf("expected a one-line gap before the response, got %q", lines[1])
	}
	if lines[2] != "[md All callers live in main.]" {
		t.Errorf("response block = %q", lines[2])
	}

	// String results work directly, and no steps means no gap.
	out = taskBody(CustomProps{Call: &domain.ToolCall{}, Result: "done", Engine: stubEngine{}})
	if out != "[md done]" {
		t.Errorf("string result body = %q", out)
	}

	// No steps and no response renders nothing.
	if out := taskBody(CustomProps{Call: &domain.ToolCall{}, Engine: stubEngine{}}); out != "" {
		t.Errorf("empty task body = %q", out)
	}
}

func TestStepSummary(t *testing.T) {
	tests := []struct {
		name  string
		tool  string
		input any
		want  string
	}{
		{name: "bash collapses command", tool: "bash", input: map[string]any{"command": "ls\n-la"}, want: "ls -la"},
		{name: "search quotes query", tool: "web_search", input: map[string]any{"query": "q"}, want: `"q"`},
		{name: "write shows path", tool: "file_write", input: map[string]any{"path": "a/b.go"}, want: "a/b.go"},
		{name: "read shows path", tool: "file_read", input: map[string]any{"path": "a/b.go"}, want: "a/b.go"},
		{name: "malformed input gives empty", tool: "bash", input: nil, want: ""},
		{name: "unknown tool gives empty", tool: "zzz", input: map[string]any{"x": 1}, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stepSummary(tt.tool, tt.input); got != tt.want {
				t.Errorf("stepSummary(%q) = %q, want %q", tt.tool, got, tt.want)
			}
		})
	}
}

func TestAbbrevFor(t *testing.T) {
	if got := abbrevFor("web_search"); got != "search" {
		t.Errorf("abbrevFor(web_search) = %q", got)
	}
	if got := abbrevFor("very_long_unknown_tool"); got != "very_lo"+Ellipsis {
		t.Errorf("abbrevFor fallback = %q", got)
	}
}
