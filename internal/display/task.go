package display

import (
	"fmt"
	"strings"
)

const (
	taskSummaryCols   = 80
	taskResponseLines = 6
	stepArgCols       = 60
)

type taskInput struct {
	Summary string
	Prompt  string
}

// taskInputFrom accepts any of the summary-ish field spellings the runtime
// uses. At least one of summary/description/topic/prompt must be a string.
func taskInputFrom(v any) *taskInput {
	m, ok := record(v)
	if !ok {
		return nil
	}
	summary := optString(m, "summary")
	if summary == "" {
		summary = optString(m, "description")
	}
	if summary == "" {
		summary = optString(m, "topic")
	}
	prompt := optString(m, "prompt")
	if summary == "" && prompt == "" {
		return nil
	}
	if summary == "" {
		summary = CollapseLine(prompt)
	}
	return &taskInput{Summary: summary, Prompt: prompt}
}

func taskLayout() *Config {
	return &Config{
		Abbreviation: "task",
		Name:         "sub-agent",
		Header: func(input, _ any) *Header {
			in := taskInputFrom(input)
			if in == nil {
				return nil
			}
			return &Header{Primary: TruncateLine(in.Summary, taskSummaryCols)}
		},
		Body: CustomBody(taskBody),
	}
}

// taskBody renders the delegated step sequence, one line per step with a
// status icon (the spinner while running) and an inline argument summary,
// followed by the final response in a markdown-aware block when present.
func taskBody(p CustomProps) string {
	var parts []string
	if p.Call != nil {
		for _, step := range p.Call.SubagentSteps {
			status := ParseStatus(step.Status)
			icon := status.Icon()
			if status == StatusRunning {
				icon = p.Engine.Spinner()
			}
			text := abbrevFor(step.ToolName)
			if arg := stepSummary(step.ToolName, step.Input); arg != "" {
				text += " " + arg
			}
			parts = append(parts, p.Engine.Line(BodyLine{Icon: icon, Status: status, Text: text}))
		}
	}

	if resp := taskResponse(p.Result); resp != "" {
		if len(parts) > 0 {
			parts = append(parts, "")
		}
		parts = append(parts, p.Engine.MarkdownBlock(resp, taskResponseLines))
	}

	return strings.Join(parts, "\n")
}

// taskResponse pulls the sub-agent's final textual answer out of the result.
func taskResponse(result any) string {
	if s, ok := result.(string); ok {
		return s
	}
	m, ok := record(result)
	if !ok {
		return ""
	}
	if resp := optString(m, "response"); resp != "" {
		return resp
	}
	return optString(m, "text")
}

// abbrevFor maps a sub-tool name to its short display name without needing
// a registry in hand. Unknown tools fall back the same way Resolve does.
func abbrevFor(name string) string {
	switch name {
	case "bash":
		return "bash"
	case "web_search":
		return "search"
	case "web_fetch":
		return "fetch"
	case "file_write":
		return "write"
	case "file_edit":
		return "edit"
	case "file_read":
		return "read"
	case "grep":
		return "grep"
	case "task":
		return "task"
	case "citations":
		return "cite"
	case "todo_write":
		return "todo"
	default:
		return TruncateLine(name, 8)
	}
}

// stepSummary derives a one-line argument summary for a delegated step:
// the query, URL, path, or cleaned command, whichever the tool takes.
func stepSummary(name string, input any) string {
	switch name {
	case "bash":
		if in := bashInputFrom(input); in != nil {
			return TruncateLine(CollapseLine(in.Command), stepArgCols)
		}
	case "web_search":
		if in := webSearchInputFrom(input); in != nil {
			return fmt.Sprintf("%q", TruncateLine(in.Query, stepArgCols))
		}
	case "web_fetch":
		if in := webFetchInputFrom(input); in != nil {
			return TruncateLine(in.URL, stepArgCols)
		}
	case "file_write":
		if in := fileWriteInputFrom(input); in != nil {
			return TruncateLine(in.Path, stepArgCols)
		}
	case "file_edit":
		if in := fileEditInputFrom(input); in != nil {
			return TruncateLine(in.Path, stepArgCols)
		}
	case "file_read":
		if in := fileReadInputFrom(input); in != nil {
			return TruncateLine(in.Path, stepArgCols)
		}
	case "grep":
		if in := grepInputFrom(input); in != nil {
			return fmt.Sprintf("%q", TruncateLine(in.Pattern, stepArgCols))
		}
	}
	return ""
}
