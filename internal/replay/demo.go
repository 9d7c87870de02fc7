package replay

import "github.com/batalabs/toolview/internal/domain"

// Demo returns a built-in transcript exercising every registered layout,
// used when no transcript file is given.
func Demo() []Event {
	return []Event{
		{
			Call: domain.ToolCall{
				ID:     domain.NewCallID(),
				Name:   "bash",
				Status: "completed",
				Input: map[string]any{
					"command":     "ls -la cmd/ internal/",
					"description": "inspect the repo layout",
				},
			},
			Result: map[string]any{
				"success":  true,
				"exitCode": 0,
				"stdout":   "cmd/:\ntotal 8\ninternal/:\ntotal 24\ndisplay\ntui\nconfig",
			},
			DelayMS: 400,
		},
		{
			Call: domain.ToolCall{
				ID:     domain.NewCallID(),
				Name:   "web_search",
				Status: "completed",
				Input: map[string]any{
					"query":   "lipgloss rounded border example",
					"recency": "30d",
				},
			},
			Result: map[string]any{
				"highlights": []any{
					map[string]any{"text": "Use lipgloss.RoundedBorder() with BorderForeground to draw a soft box."},
					map[string]any{"text": "Padding(0, 1) keeps border glyphs off the content."},
				},
			},
			DelayMS: 600,
		},
		{
			Call: domain.ToolCall{
				ID:     domain.NewCallID(),
				Name:   "file_write",
				Status: "completed",
				Input: map[string]any{
					"path":    "internal/greet/greet.go",
					"content": "package greet\n\n// Hello returns a greeting for name.\nfunc Hello(name string) string {\n\treturn \"hello, \" + name\n}\n",
				},
			},
			Result:  map[string]any{"success": true},
			DelayMS: 500,
		},
		{
			Call: domain.ToolCall{
				ID:     domain.NewCallID(),
				Name:   "task",
				Status: "running",
				Input:  map[string]any{"description": "find all callers of Hello"},
				SubagentSteps: []domain.SubagentStep{
					{ToolName: "grep", Input: map[string]any{"pattern": "greet.Hello"}, Status: "completed"},
					{ToolName: "file_read", Input: map[string]any{"path": "cmd/app/main.go"}, Status: "running"},
				},
			},
			DelayMS: 700,
		},
		{
			Call: domain.ToolCall{
				ID:     domain.NewCallID(),
				Name:   "todo_write",
				Status: "completed",
				Input: map[string]any{
					"action": "update",
					"index":  2,
					"status": "completed",
				},
				TodoSnapshot: []domain.TodoItem{
					{Content: "survey existing call sites", Status: "completed"},
					{Content: "rename the helper", Status: "in_progress"},
					{Content: "run the tests", Status: "pending"},
				},
			},
			DelayMS: 500,
		},
		{
			Call: domain.ToolCall{
				ID:     domain.NewCallID(),
				Name:   "citations",
				Status: "completed",
				Input: map[string]any{
					"action": "add",
					"citations": []any{
						map[string]any{
							"statement": "Rounded borders are drawn from the border style's edge runes.",
							"url":       "https://github.com/charmbracelet/lipgloss",
						},
					},
				},
			},
			DelayMS: 400,
		},
		{
			Call: domain.ToolCall{
				ID:     domain.NewCallID(),
				Name:   "web_fetch",
				Status: "failed",
				Input:  map[string]any{"url": "https://example.com/docs/missing"},
			},
			Result:  map[string]any{"success": false, "error": "HTTP 404 Not Found"},
			DelayMS: 500,
		},
		{
			Call: domain.ToolCall{
				ID:     domain.NewCallID(),
				Name:   "mystery_tool",
				Status: "completed",
				Input:  map[string]any{"anything": true},
			},
			DelayMS: 300,
		},
	}
}
