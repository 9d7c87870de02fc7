package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/charmbracelet/lipgloss"

	"github.com/batalabs/toolview/internal/display"
	"github.com/batalabs/toolview/internal/domain"
)

const blockMaxCols = 120

// Renderer implements display.Engine on top of lipgloss and chroma. It holds
// only the current terminal width and spinner frame; all rendering is a pure
// function of those plus its arguments.
type Renderer struct {
	width   int
	spinner string
}

// NewRenderer returns a renderer with no width constraint and a static
// spinner glyph.
func NewRenderer() *Renderer {
	return &Renderer{spinner: display.StatusRunning.Icon()}
}

// SetWidth records the current terminal column count. Zero means
// unconstrained.
func (r *Renderer) SetWidth(w int) { r.width = w }

// SetSpinner records the current spinner frame used for running steps.
func (r *Renderer) SetSpinner(frame string) {
	if frame != "" {
		r.spinner = frame
	}
}

// Width reports the current terminal column count, or 0 when unconstrained.
func (r *Renderer) Width() int { return r.width }

// Spinner returns the current spinner frame.
func (r *Renderer) Spinner() string { return r.spinner }

// Line renders a declarative body line: status-colored icon, then the text
// with its attributes applied.
func (r *Renderer) Line(l display.BodyLine) string {
	var b strings.Builder
	if l.Icon != "" {
		b.WriteString(statusStyle(l.Status).Render(l.Icon) + " ")
	}
	switch {
	case l.Strikethrough:
		b.WriteString(StrikethroughStyle.Render(l.Text))
	case l.Dim:
		b.WriteString(BodyDimStyle.Render(l.Text))
	case l.Status == display.StatusFailed:
		b.WriteString(ErrorLineStyle.Render(l.Text))
	default:
		b.WriteString(BodyTextStyle.Render(l.Text))
	}
	return b.String()
}

// CodeBlock renders a bounded, syntax-highlighted preview of content inside
// a rounded border, with a line-number gutter starting at offset+1.
func (r *Renderer) CodeBlock(path, content string, offset, maxLines int) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\t", "    ")
	lines := strings.Split(content, "\n")
	extra := 0
	if maxLines > 0 && len(lines) > maxLines {
		extra = len(lines) - maxLines
		lines = lines[:maxLines]
	}

	lang := "plaintext"
	if lexer := lexers.Match(filepath.Base(path)); lexer != nil {
		lang = lexer.Config().Name
	}
	out := highlightLines(lang, strings.Join(lines, "\n"), offset)
	if extra > 0 {
		out = append(out, TruncationNoteStyle.Render(fmt.Sprintf("… (+%d more lines)", extra)))
	}
	return r.boxed(strings.Join(out, "\n"))
}

// MarkdownBlock renders markdown-aware content inside a rounded border,
// bounded to maxLines rendered lines.
func (r *Renderer) MarkdownBlock(content string, maxLines int) string {
	inner := blockMaxCols
	if r.width > 0 {
		inner = min(r.width-6, blockMaxCols)
	}
	lines := renderMarkdownLines(strings.TrimSpace(content), inner)
	if maxLines > 0 && len(lines) > maxLines {
		extra := len(lines) - maxLines
		lines = append(lines[:maxLines], TruncationNoteStyle.Render(fmt.Sprintf("… (+%d more lines)", extra)))
	}
	return r.boxed(strings.Join(lines, "\n"))
}

// boxed wraps already-styled block content in the shared rounded border.
func (r *Renderer) boxed(content string) string {
	if content == "" {
		return ""
	}
	return BlockBorder.Render(content)
}

func statusStyle(s display.Status) lipgloss.Style {
	switch s {
	case display.StatusRunning:
		return StatusRunningStyle
	case display.StatusCompleted:
		return StatusCompletedStyle
	case display.StatusFailed:
		return StatusFailedStyle
	case display.StatusCancelled:
		return StatusCancelledStyle
	default:
		return StatusPendingStyle
	}
}

// ToolCallView renders one tool call: status icon, tool name, header, body,
// and result preview. Any of header/body/preview may be absent; at minimum
// the tool name renders.
func ToolCallView(reg *display.Registry, call *domain.ToolCall, result any, r *Renderer) string {
	cfg := reg.Resolve(call.Name)
	status := display.ParseStatus(call.Status)

	icon := statusStyle(status).Render(status.Icon())
	if status == display.StatusRunning {
		icon = StatusRunningStyle.Render(r.Spinner())
	}
	head := icon + " " + ToolNameStyle.Render(cfg.Name)
	if h := cfg.HeaderFor(call.Input, result); h != nil {
		if h.Primary != "" {
			head += " " + HeaderPrimaryStyle.Render(h.Primary)
		}
		if h.Secondary != "" {
			style := HeaderDimStyle
			if h.SecondaryStyle == display.SecondaryItalic {
				style = HeaderItalicStyle
			}
			head += " " + style.Render(h.Secondary)
		}
	}

	parts := []string{head}
	if body := bodyView(cfg, call, result, r); body != "" {
		parts = append(parts, indent(body))
	}
	for _, line := range cfg.ResultLines(result) {
		style := ResultStyle
		if strings.HasPrefix(line, "error: ") {
			style = ErrorLineStyle
		}
		parts = append(parts, "  "+style.Render(line))
	}
	return strings.Join(parts, "\n")
}

// bodyView resolves the declarative-vs-custom body split.
func bodyView(cfg *display.Config, call *domain.ToolCall, result any, r *Renderer) string {
	var input any
	if call != nil {
		input = call.Input
	}
	switch body := cfg.Body.(type) {
	case display.LinesBody:
		b := body(input, result, call)
		if b == nil || len(b.Lines) == 0 {
			return ""
		}
		lines := make([]string, len(b.Lines))
		for i, l := range b.Lines {
			lines[i] = r.Line(l)
		}
		return strings.Join(lines, "\n")
	case display.CustomBody:
		return body(display.CustomProps{Input: input, Result: result, Call: call, Engine: r})
	default:
		return ""
	}
}

// indent prefixes every line of s with two spaces.
func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = "  " + l
		}
	}
	return strings.Join(lines, "\n")
}
