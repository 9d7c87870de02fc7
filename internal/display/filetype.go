package display

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
)

// fileTypeName returns a lowercase human name for the file at path, keyed
// off what the syntax highlighter recognizes. Unrecognized paths fall back
// to the bare extension, or "" when there is none.
func fileTypeName(path string) string {
	if lexer := lexers.Match(filepath.Base(path)); lexer != nil {
		return strings.ToLower(lexer.Config().Name)
	}
	return strings.TrimPrefix(filepath.Ext(path), ".")
}
