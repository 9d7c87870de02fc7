package replay

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	transcript := `[
		{"call": {"id": "c1", "name": "bash", "input": {"command": "ls"}, "status": "completed"},
		 "result": {"success": true, "stdout": "main.go"}, "delay_ms": 100},
		{"call": {"name": "web_search", "input": {"query": "go"}, "status": "running"}}
	]`
	path := filepath.Join(t.TempDir(), "transcript.json")
	if err := os.WriteFile(path, []byte(transcript), 0o644); err != nil {
		t.Fatal(err)
	}

	events, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Call.ID != "c1" {
		t.Errorf("explicit ID should be kept, got %q", events[0].Call.ID)
	}
	if events[0].DelayMS != 100 {
		t.Errorf("DelayMS = %d", events[0].DelayMS)
	}
	if events[1].Call.ID == "" {
		t.Error("missing ID should be assigned")
	}
	if events[1].Result != nil {
		t.Error("absent result should stay nil")
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing file should error")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("malformed JSON should error")
	}
}

func TestDemoEventsResolvable(t *testing.T) {
	events := Demo()
	if len(events) == 0 {
		t.Fatal("demo transcript should not be empty")
	}
	for i, ev := range events {
		if ev.Call.Name == "" {
			t.Errorf("event %d has no tool name", i)
		}
		if ev.Call.ID == "" {
			t.Errorf("event %d has no call ID", i)
		}
	}
}
