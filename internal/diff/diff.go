// Package diff renders the line-level difference between a document and
// its canonical form.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// contextLines bounds the unchanged lines kept around each change. Equal
// runs longer than twice this are folded into a "..." marker.
const contextLines = 3

// Result is a computed diff ready for formatting.
type Result struct {
	Old   string   // label for the old content
	New   string   // label for the new content
	Lines []string // diff lines prefixed "- ", "+ ", or "  "
}

// Compute diffs oldContent against newContent.
func Compute(oldContent, newContent, oldLabel, newLabel string) Result {
	dmp := diffmatchpatch.New()
	segs := dmp.DiffCleanupSemantic(dmp.DiffMain(oldContent, newContent, false))

	r := Result{Old: oldLabel, New: newLabel}
	for _, seg := range segs {
		// Trailing newline would split into a spurious empty line.
		text := strings.TrimSuffix(seg.Text, "\n")
		if text == "" {
			continue
		}
		r.add(seg.Type, strings.Split(text, "\n"))
	}
	return r
}

func (r *Result) add(op diffmatchpatch.Operation, lines []string) {
	switch op {
	case diffmatchpatch.DiffDelete:
		r.prefix("- ", lines)
	case diffmatchpatch.DiffInsert:
		r.prefix("+ ", lines)
	case diffmatchpatch.DiffEqual:
		if len(lines) > 2*contextLines {
			r.prefix("  ", lines[:contextLines])
			r.Lines = append(r.Lines, "  ...")
			r.prefix("  ", lines[len(lines)-contextLines:])
			return
		}
		r.prefix("  ", lines)
	}
}

func (r *Result) prefix(p string, lines []string) {
	for _, l := range lines {
		r.Lines = append(r.Lines, p+l)
	}
}

// Empty reports whether no lines changed.
func (r Result) Empty() bool {
	for _, l := range r.Lines {
		if strings.HasPrefix(l, "- ") || strings.HasPrefix(l, "+ ") {
			return false
		}
	}
	return true
}

// Format renders the diff under a label header. With colour enabled,
// deletions are red and insertions green.
func (r Result) Format(colour bool) string {
	const (
		red   = "\033[31m"
		green = "\033[32m"
		reset = "\033[0m"
	)

	var b strings.Builder
	fmt.Fprintf(&b, "--- %s\n+++ %s\n", r.Old, r.New)
	for _, l := range r.Lines {
		switch {
		case colour && strings.HasPrefix(l, "- "):
			b.WriteString(red + l + reset)
		case colour && strings.HasPrefix(l, "+ "):
			b.WriteString(green + l + reset)
		default:
			b.WriteString(l)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
