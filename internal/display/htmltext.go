package display

import (
	"strings"

	"golang.org/x/net/html"
)

// looksLikeHTML is a cheap sniff: markup payloads from the fetch tool start
// with a tag. False negatives just mean the raw text is previewed as-is.
func looksLikeHTML(s string) bool {
	return strings.HasPrefix(strings.TrimSpace(s), "<")
}

// HTMLToText strips markup from an HTML document, keeping text content with
// block elements separated by newlines. Parse errors fall back to the raw
// string; this is a lossy preview, not a converter.
func HTMLToText(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return s
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "head", "noscript":
				return
			}
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode {
			switch n.Data {
			case "p", "div", "br", "li", "tr", "h1", "h2", "h3", "h4", "h5", "h6":
				b.WriteString("\n")
			}
		}
	}
	walk(doc)
	return strings.TrimSpace(b.String())
}
