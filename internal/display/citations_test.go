package display

import (
	"fmt"
	"testing"
)

func TestCitationsHeader(t *testing.T) {
	cfg := citationsLayout()
	input := map[string]any{
		"action": "add",
		"citations": []any{
			map[string]any{"statement": "a", "url": "https://x.test/p"},
			map[string]any{"statement": "b", "url": "https://y.test/q"},
		},
	}
	h := cfg.HeaderFor(input, nil)
	if h == nil || h.Secondary != "add 2 item(s)" {
		t.Fatalf("header = %+v, want secondary %q", h, "add 2 item(s)")
	}

	if cfg.HeaderFor(map[string]any{"action": "add"}, nil) != nil {
		t.Error("missing citations array should mean no header")
	}
}

func TestCitationsBody(t *testing.T) {
	body := citationsLayout().Body.(LinesBody)

	var cites []any
	for i := 0; i < 6; i++ {
		cites = append(cites, map[string]any{
			"statement": fmt.Sprintf("statement %d", i+1),
			"url":       fmt.Sprintf("https://source%d.example.com/article", i+1),
		})
	}
	b := body(map[string]any{"citations": cites}, nil, nil)
	if b == nil {
		t.Fatal("expected a body")
	}
	// 4 statements, 4 domain lines, 1 overflow line.
	if len(b.Lines) != 9 {
		t.Fatalf("got %d lines: %+v", len(b.Lines), b.Lines)
	}
	if b.Lines[0].Text != "statement 1" {
		t.Errorf("line 0 = %q", b.Lines[0].Text)
	}
	if b.Lines[1].Text != "source1.example.com" || !b.Lines[1].Dim {
		t.Errorf("line 1 = %+v, want dim domain", b.Lines[1])
	}
	if b.Lines[8].Text != "+2 more" {
		t.Errorf("overflow line = %q", b.Lines[8].Text)
	}
}

func TestCitationDomain(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain url", in: "https://go.dev/blog/slices", want: "go.dev"},
		{name: "url with port", in: "https://host.test:8080/x", want: "host.test"},
		{name: "unparseable falls back to raw", in: "://not a url", want: "://not a url"},
		{name: "hostless falls back to raw", in: "just-text", want: "just-text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := citationDomain(tt.in); got != tt.want {
				t.Errorf("citationDomain(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
