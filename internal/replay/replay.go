// Package replay loads tool-call transcripts for the demo viewer. A
// transcript is a JSON array of events, each pairing a tool call with its
// (possibly absent) result and a playback delay.
package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/batalabs/toolview/internal/domain"
)

// Event is one transcript step: a call, its result, and how long to wait
// before showing it.
type Event struct {
	Call    domain.ToolCall `json:"call"`
	Result  any             `json:"result,omitempty"`
	DelayMS int             `json:"delay_ms,omitempty"`
}

// Load reads a transcript file. Events with no ID get one assigned so the
// viewer can key on them.
func Load(path string) ([]Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}
	var events []Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("parse transcript %s: %w", path, err)
	}
	for i := range events {
		if events[i].Call.ID == "" {
			events[i].Call.ID = domain.NewCallID()
		}
	}
	return events, nil
}
