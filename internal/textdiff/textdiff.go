// Package textdiff renders line-oriented differences between two texts.
package textdiff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Lines returns a diff of before and after, one line per entry, prefixed
// with "-" for removed, "+" for added and " " for unchanged lines. The
// header names the two sides. Equal inputs produce an empty string.
func Lines(name, before, after string) string {
	if before == after {
		return ""
	}
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	sb.WriteString("--- " + name + "\n")
	sb.WriteString("+++ " + name + " (formatted)\n")
	for _, d := range diffs {
		mark := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			mark = "-"
		case diffmatchpatch.DiffInsert:
			mark = "+"
		}
		for _, line := range splitLines(d.Text) {
			sb.WriteString(mark + line + "\n")
		}
	}
	return sb.String()
}

// splitLines splits s on newlines without producing a trailing empty
// element for a final newline.
func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}
