package domain

// ToolCall is a single tool invocation as surfaced by the agent runtime.
// The display layer only ever reads from it; inputs arrive with whatever
// shape the model produced, so Input stays untyped.
type ToolCall struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Input any    `json:"input,omitempty"`

	// Status is the runtime's view of the call: "pending", "running",
	// "completed" or "failed". Empty means unknown.
	Status string `json:"status,omitempty"`

	// SubagentSteps is the ordered list of delegated tool calls when this
	// call is a sub-agent task. Nil for ordinary tools.
	SubagentSteps []SubagentStep `json:"subagent_steps,omitempty"`

	// TodoSnapshot is the last known todo list when this call is a todo
	// manager operation. Nil when no list has been seen.
	TodoSnapshot []TodoItem `json:"todo_snapshot,omitempty"`
}

// SubagentStep is one delegated tool call inside a sub-agent task.
type SubagentStep struct {
	ToolName string `json:"tool_name"`
	Input    any    `json:"input,omitempty"`
	Status   string `json:"status,omitempty"`
}

// TodoItem is one entry of a todo list managed by the todo tool.
type TodoItem struct {
	Content string `json:"content"`
	Status  string `json:"status"`
}
