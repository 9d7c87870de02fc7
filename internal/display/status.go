package display

// Status is the normalized lifecycle state shared by tool calls, sub-agent
// steps, and todo items. Raw status strings from the runtime are loosely
// spelled; ParseStatus folds the variants.
type Status string

const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

// ParseStatus maps a raw status string onto the shared set. Unknown or empty
// values read as pending, matching how a not-yet-reported step displays.
func ParseStatus(raw string) Status {
	switch raw {
	case "running", "in_progress", "in-progress":
		return StatusRunning
	case "completed", "complete", "done", "success":
		return StatusCompleted
	case "failed", "error", "failure":
		return StatusFailed
	case "cancelled", "canceled":
		return StatusCancelled
	default:
		return StatusPending
	}
}

// Icon returns the fixed status glyph. The running glyph is a static
// placeholder; live views substitute the spinner frame.
func (s Status) Icon() string {
	switch s {
	case StatusRunning:
		return "◐"
	case StatusCompleted:
		return "●"
	case StatusFailed:
		return "✗"
	case StatusCancelled:
		return "⊘"
	default:
		return "○"
	}
}
