// Package display turns loosely-typed tool calls and results into small,
// bounded blocks of display data for the chat view. Every tool kind gets a
// layout Config; tools without one fall back to a generic default. All
// extraction here is best-effort: malformed input renders less, never panics.
package display

import "github.com/batalabs/toolview/internal/domain"

// SecondaryStyle selects how a header's secondary text is styled.
type SecondaryStyle int

const (
	SecondaryDim SecondaryStyle = iota
	SecondaryItalic
)

// Header is the one-line summary shown next to a tool's name.
// Recomputed on every render; nil means the tool has no header text.
type Header struct {
	Primary        string
	Secondary      string
	SecondaryStyle SecondaryStyle
}

// BodyLine is one declarative line of a tool body. The rendering engine owns
// how icon, status color, and attributes turn into glyphs.
type BodyLine struct {
	Text          string
	Icon          string
	Status        Status
	Strikethrough bool
	Dim           bool
}

// Body is a bounded, declarative tool body.
type Body struct {
	Lines []BodyLine
}

// BodyRenderer is either declarative lines or a fully custom renderer.
// The two are mutually exclusive by construction.
type BodyRenderer interface {
	bodyRenderer()
}

// LinesBody produces declarative body lines from the call's input and
// (possibly nil) result. Returning nil renders no body.
type LinesBody func(input, result any, call *domain.ToolCall) *Body

func (LinesBody) bodyRenderer() {}

// CustomBody renders the body itself by composing engine primitives.
// Returning "" renders no body.
type CustomBody func(p CustomProps) string

func (CustomBody) bodyRenderer() {}

// CustomProps is everything a custom body renderer gets to work with.
type CustomProps struct {
	Input  any
	Result any
	Call   *domain.ToolCall
	Engine Engine
}

// Engine is the rendering surface custom bodies draw with. The display layer
// never places glyphs itself; colors, borders, and highlighting belong to the
// implementation behind this interface.
type Engine interface {
	// Width reports the current terminal column count, or 0 when
	// unconstrained.
	Width() int
	// Line renders one declarative body line to styled text.
	Line(l BodyLine) string
	// CodeBlock renders a bordered, syntax-highlighted block for content
	// attributed to path, numbering lines from offset+1.
	CodeBlock(path, content string, offset, maxLines int) string
	// MarkdownBlock renders a bordered markdown-aware block.
	MarkdownBlock(content string, maxLines int) string
	// DiffBlock renders a bounded before/after line diff for path.
	DiffBlock(path, before, after string, maxLines int) string
	// Spinner returns the current spinner frame for running steps.
	Spinner() string
}

// Config describes how one tool kind is displayed. Immutable once
// registered. All funcs are optional and independently nil-able.
type Config struct {
	// Abbreviation is the short display name, e.g. "bash". Required.
	Abbreviation string
	// Name is the full display name shown in the call header.
	Name string
	// Header derives the header from input and (possibly nil) result.
	Header func(input, result any) *Header
	// Body is either a LinesBody or a CustomBody; nil renders no body.
	Body BodyRenderer
	// FormatResult derives the bounded result preview lines.
	FormatResult func(result any) []string
}

// HeaderFor is the nil-safe accessor used by render call sites.
func (c *Config) HeaderFor(input, result any) *Header {
	if c == nil || c.Header == nil {
		return nil
	}
	return c.Header(input, result)
}

// ResultLines is the nil-safe accessor for the result preview.
func (c *Config) ResultLines(result any) []string {
	if c == nil || c.FormatResult == nil || result == nil {
		return nil
	}
	return c.FormatResult(result)
}
