package display

import "testing"

func TestResolveRegistered(t *testing.T) {
	r := NewRegistry()
	for _, id := range []string{"bash", "web_search", "web_fetch", "file_write", "file_edit", "file_read", "grep", "task", "citations", "todo_write"} {
		if !r.Has(id) {
			t.Errorf("expected builtin layout for %q", id)
			continue
		}
		if r.Resolve(id) != r.Lookup(id) {
			t.Errorf("Resolve(%q) did not return the registered config", id)
		}
	}
}

func TestResolveUnregisteredFallsBack(t *testing.T) {
	r := NewRegistry()
	cfg := r.Resolve("some_very_long_tool_name")
	if cfg == nil {
		t.Fatal("Resolve returned nil")
	}
	if cfg.Abbreviation != "tool" {
		t.Errorf("default abbreviation = %q, want %q", cfg.Abbreviation, "tool")
	}
	if cfg.Name != "some_ve"+Ellipsis {
		t.Errorf("default name = %q, want identifier truncated to 8", cfg.Name)
	}
	if cfg.Header != nil || cfg.Body != nil || cfg.FormatResult != nil {
		t.Error("default config should render nothing beyond its name")
	}
}

func TestRegisterLastWriteWins(t *testing.T) {
	r := NewRegistry()
	first := &Config{Abbreviation: "one"}
	second := &Config{Abbreviation: "two"}
	r.Register("custom", first)
	r.Register("custom", second)
	if got := r.Resolve("custom"); got != second {
		t.Errorf("Resolve returned %+v, want the most recent registration", got)
	}
}

func TestHasAndLookup(t *testing.T) {
	r := NewRegistry()
	if r.Has("nope") {
		t.Error("Has reported an unregistered id")
	}
	if r.Lookup("nope") != nil {
		t.Error("Lookup returned non-nil for an unregistered id")
	}
}

func TestNilSafeAccessors(t *testing.T) {
	cfg := defaultConfig("x")
	if cfg.HeaderFor(nil, nil) != nil {
		t.Error("HeaderFor on a config without a header func should be nil")
	}
	if cfg.ResultLines(map[string]any{"success": true}) != nil {
		t.Error("ResultLines on a config without a formatter should be nil")
	}
}
