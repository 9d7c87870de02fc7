package tui

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffBlock renders a bounded line diff of before→after for path inside the
// shared rounded border. Context lines are dimmed; adds and deletes carry
// the usual +/- markers.
func (r *Renderer) DiffBlock(path, before, after string, maxLines int) string {
	dmp := diffmatchpatch.New()
	chars1, chars2, lineArr := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(chars1, chars2, false), lineArr)

	var out []string
	total := 0
	for _, d := range diffs {
		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			total++
			if maxLines > 0 && len(out) >= maxLines {
				continue
			}
			switch d.Type {
			case diffmatchpatch.DiffInsert:
				out = append(out, DiffAddStyle.Render("+ "+line))
			case diffmatchpatch.DiffDelete:
				out = append(out, DiffDelStyle.Render("- "+line))
			default:
				out = append(out, DiffCtxStyle.Render("  "+line))
			}
		}
	}
	if total > len(out) {
		out = append(out, TruncationNoteStyle.Render(fmt.Sprintf("… (+%d more lines)", total-len(out))))
	}
	if len(out) == 0 {
		return ""
	}
	return r.boxed(strings.Join(out, "\n"))
}
