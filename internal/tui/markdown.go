package tui

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
)

var (
	numberedListRe = regexp.MustCompile(`^(\s*)(\d+)\.\s+(.+)`)
	inlineCodeRe   = regexp.MustCompile("`([^`]+)`")
	boldRe         = regexp.MustCompile(`\*\*(.+?)\*\*`)
	strikeRe       = regexp.MustCompile(`~~(.+?)~~`)
	linkRe         = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	hrRe           = regexp.MustCompile(`^[-*_]{3,}\s*$`)
	tableRowRe     = regexp.MustCompile(`^\s*\|(.+)\|\s*$`)
	tableSepRe     = regexp.MustCompile(`^\s*\|?\s*:?-+:?\s*(\|\s*:?-+:?\s*)+\|?\s*$`)
)

// wrapWords splits s into lines that fit within width, breaking at word
// boundaries. Words longer than width are hard-broken.
func wrapWords(s string, width int) []string {
	if width < 10 {
		width = 10
	}
	parts := strings.Fields(s)
	if len(parts) == 0 {
		return []string{""}
	}
	lines := make([]string, 0, 8)
	cur := ""
	for _, word := range parts {
		next := word
		if cur != "" {
			next = cur + " " + word
		}
		if len(next) <= width {
			cur = next
			continue
		}
		if cur != "" {
			lines = append(lines, cur)
		}
		for len(word) > width {
			lines = append(lines, word[:width])
			word = word[width:]
		}
		cur = word
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

// renderMarkdownLines converts markdown-ish text into styled terminal lines:
// fenced code blocks are syntax-highlighted, pipe tables are drawn with box
// characters sized to width, and inline markers get their styles applied.
func renderMarkdownLines(content string, width int) []string {
	if width < 20 {
		width = 20
	}
	rawLines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(rawLines)+8)

	inCode := false
	codeLang := ""
	codeBuf := make([]string, 0, 16)

	var tableHeaders []string
	var tableRows [][]string
	inTable := false

	flushTable := func() {
		if len(tableHeaders) > 0 && len(tableRows) > 0 {
			out = append(out, renderTable(tableHeaders, tableRows, width)...)
		}
		inTable = false
		tableHeaders = nil
		tableRows = nil
	}

	for i, raw := range rawLines {
		line := strings.TrimRight(raw, " \t")
		trimmed := strings.TrimSpace(line)

		// Code fences take priority over everything else.
		if strings.HasPrefix(trimmed, "```") {
			if inTable {
				flushTable()
			}
			if !inCode {
				inCode = true
				codeLang = strings.TrimSpace(strings.TrimPrefix(trimmed, "```"))
				codeBuf = codeBuf[:0]
			} else {
				out = append(out, highlightLines(codeLang, strings.Join(codeBuf, "\n"), 0)...)
				inCode = false
			}
			continue
		}
		if inCode {
			codeBuf = append(codeBuf, line)
			continue
		}

		if inTable {
			if tableSepRe.MatchString(trimmed) {
				continue
			}
			if tableRowRe.MatchString(trimmed) {
				cells := parseTableRow(trimmed)
				for len(cells) < len(tableHeaders) {
					cells = append(cells, "")
				}
				if len(cells) > len(tableHeaders) {
					cells = cells[:len(tableHeaders)]
				}
				tableRows = append(tableRows, cells)
				continue
			}
			flushTable()
		}

		if tableRowRe.MatchString(trimmed) && i+1 < len(rawLines) &&
			tableSepRe.MatchString(strings.TrimSpace(rawLines[i+1])) {
			inTable = true
			tableHeaders = parseTableRow(trimmed)
			tableRows = nil
			continue
		}

		if trimmed == "" {
			out = append(out, "")
			continue
		}

		if hrRe.MatchString(trimmed) {
			out = append(out, TableBorderStyle.Render(strings.Repeat("─", min(width, 40))))
			continue
		}

		if strings.HasPrefix(trimmed, "> ") || trimmed == ">" {
			quote := strings.TrimPrefix(strings.TrimPrefix(trimmed, "> "), ">")
			for _, wl := range wrapWords(quote, width-4) {
				out = append(out, BlockquoteStyle.Render("│ ")+applyInline(wl))
			}
			continue
		}

		if strings.HasPrefix(trimmed, "#") {
			heading := strings.TrimSpace(strings.TrimLeft(trimmed, "#"))
			for _, wl := range wrapWords(heading, width) {
				out = append(out, HeadingStyle.Render(applyInline(wl)))
			}
			continue
		}

		if item, ok := bulletItem(trimmed); ok {
			wrapped := wrapWords(item, width-2)
			out = append(out, BulletStyle.Render("• ")+applyInline(wrapped[0]))
			for _, wl := range wrapped[1:] {
				out = append(out, "  "+applyInline(wl))
			}
			continue
		}

		if match := numberedListRe.FindStringSubmatch(line); match != nil {
			prefix := match[2] + ". "
			wrapped := wrapWords(match[3], width-len(prefix))
			out = append(out, BulletStyle.Render(prefix)+applyInline(wrapped[0]))
			for _, wl := range wrapped[1:] {
				out = append(out, strings.Repeat(" ", len(prefix))+applyInline(wl))
			}
			continue
		}

		for _, wl := range wrapWords(line, width) {
			out = append(out, applyInline(wl))
		}
	}

	if inCode {
		out = append(out, highlightLines(codeLang, strings.Join(codeBuf, "\n"), 0)...)
	}
	if inTable {
		flushTable()
	}
	return out
}

// bulletItem detects a bullet list line (-, +, or *).
func bulletItem(trimmed string) (string, bool) {
	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "+ ") {
		return strings.TrimSpace(trimmed[2:]), true
	}
	if strings.HasPrefix(trimmed, "* ") && !hrRe.MatchString(trimmed) {
		return strings.TrimSpace(trimmed[2:]), true
	}
	return "", false
}

// parseTableRow splits a pipe-delimited row into trimmed cells.
func parseTableRow(line string) []string {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "|")
	line = strings.TrimSuffix(line, "|")
	parts := strings.Split(line, "|")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}

// renderTable draws a markdown table with box-drawing characters, shrinking
// columns proportionally when content exceeds width.
func renderTable(headers []string, rows [][]string, width int) []string {
	numCols := len(headers)
	if numCols == 0 {
		return nil
	}
	const cellPad = 2

	colWidths := make([]int, numCols)
	for i, h := range headers {
		colWidths[i] = plainWidth(h)
	}
	for _, row := range rows {
		for i := 0; i < numCols && i < len(row); i++ {
			if w := plainWidth(row[i]); w > colWidths[i] {
				colWidths[i] = w
			}
		}
	}

	available := width - (numCols + 1 + numCols*cellPad)
	if available < numCols {
		available = numCols
	}
	total := 0
	for _, w := range colWidths {
		total += w
	}
	if total > available {
		for i := range colWidths {
			colWidths[i] = max(1, colWidths[i]*available/total)
		}
	}

	out := make([]string, 0, len(rows)+4)
	out = append(out, TableBorderStyle.Render(tableBorder("┌", "┬", "┐", colWidths, cellPad)))
	out = append(out, tableRow(headers, colWidths, cellPad, true))
	out = append(out, TableBorderStyle.Render(tableBorder("├", "┼", "┤", colWidths, cellPad)))
	for _, row := range rows {
		padded := make([]string, numCols)
		copy(padded, row)
		out = append(out, tableRow(padded, colWidths, cellPad, false))
	}
	out = append(out, TableBorderStyle.Render(tableBorder("└", "┴", "┘", colWidths, cellPad)))
	return out
}

// plainWidth is the visual width of text after stripping inline markers.
func plainWidth(s string) int {
	s = inlineCodeRe.ReplaceAllString(s, "$1")
	s = boldRe.ReplaceAllString(s, "$1")
	s = strikeRe.ReplaceAllString(s, "$1")
	s = linkRe.ReplaceAllString(s, "$1 ($2)")
	return lipgloss.Width(s)
}

func tableBorder(left, mid, right string, colWidths []int, cellPad int) string {
	var b strings.Builder
	b.WriteString(left)
	for i, w := range colWidths {
		b.WriteString(strings.Repeat("─", w+cellPad))
		if i < len(colWidths)-1 {
			b.WriteString(mid)
		}
	}
	b.WriteString(right)
	return b.String()
}

func tableRow(cells []string, colWidths []int, cellPad int, isHeader bool) string {
	var b strings.Builder
	b.WriteString(TableBorderStyle.Render("│"))
	for i, w := range colWidths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		var styled string
		if isHeader {
			styled = TableHeaderStyle.Render(boldRe.ReplaceAllString(cell, "$1"))
		} else {
			styled = applyInline(cell)
		}
		if lipgloss.Width(styled) > w {
			raw := boldRe.ReplaceAllString(cell, "$1")
			raw = inlineCodeRe.ReplaceAllString(raw, "$1")
			raw = strikeRe.ReplaceAllString(raw, "$1")
			raw = linkRe.ReplaceAllString(raw, "$1 ($2)")
			raw = truncateToWidth(raw, w)
			if isHeader {
				styled = TableHeaderStyle.Render(raw)
			} else {
				styled = raw
			}
		}
		pad := w - lipgloss.Width(styled)
		if pad < 0 {
			pad = 0
		}
		b.WriteString(" " + styled + strings.Repeat(" ", pad) + " ")
		if i < len(colWidths)-1 {
			b.WriteString(TableBorderStyle.Render("│"))
		}
	}
	b.WriteString(TableBorderStyle.Render("│"))
	return b.String()
}

// truncateToWidth truncates s to fit within maxWidth visible columns,
// handling multi-byte characters safely.
func truncateToWidth(s string, maxWidth int) string {
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	runes := []rune(s)
	for i := len(runes); i > 0; i-- {
		candidate := string(runes[:i])
		if lipgloss.Width(candidate) <= maxWidth {
			return candidate
		}
	}
	return ""
}

// highlightLines syntax-highlights code with Chroma and prepends a subtle
// line-number gutter starting at offset+1.
func highlightLines(lang, code string, offset int) []string {
	if lang == "" {
		lang = "plaintext"
	}
	var highlighted bytes.Buffer
	if err := quick.Highlight(&highlighted, code, lang, "terminal256", "dracula"); err != nil {
		highlighted.Reset()
		if err := quick.Highlight(&highlighted, code, "plaintext", "terminal256", "dracula"); err != nil {
			highlighted.WriteString(code)
		}
	}
	hlLines := strings.Split(strings.TrimSuffix(highlighted.String(), "\n"), "\n")
	out := make([]string, 0, len(hlLines))
	for i, line := range hlLines {
		gutter := CodeGutterStyle.Render(fmt.Sprintf("%3d │ ", offset+i+1))
		out = append(out, gutter+line)
	}
	return out
}

// applyInline handles inline markdown: `code`, [text](url), **bold**,
// ~~strikethrough~~. Not applied to code block lines.
func applyInline(s string) string {
	s = inlineCodeRe.ReplaceAllStringFunc(s, func(match string) string {
		return InlineCodeStyle.Render(inlineCodeRe.FindStringSubmatch(match)[1])
	})
	s = linkRe.ReplaceAllStringFunc(s, func(match string) string {
		parts := linkRe.FindStringSubmatch(match)
		return LinkTextStyle.Render(parts[1]) + LinkURLStyle.Render(" ("+parts[2]+")")
	})
	s = strikeRe.ReplaceAllStringFunc(s, func(match string) string {
		return StrikeInlineStyle.Render(strikeRe.FindStringSubmatch(match)[1])
	})
	s = boldRe.ReplaceAllStringFunc(s, func(match string) string {
		return BoldInlineStyle.Render(boldRe.FindStringSubmatch(match)[1])
	})
	return s
}
