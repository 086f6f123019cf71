// string.go implements human-readable formatting of events, used by the
// CLI event dump and by error messages.
package event

import (
	"fmt"
	"strings"
)

func (e Start) String() string { return fmt.Sprintf("Start(%s)", tagString(e.Tag)) }
func (e End) String() string   { return fmt.Sprintf("End(%s)", e.Kind) }

func (e Text) String() string              { return fmt.Sprintf("Text(%q)", string(e)) }
func (e Code) String() string              { return fmt.Sprintf("Code(%q)", string(e)) }
func (SoftBreak) String() string           { return "SoftBreak" }
func (HardBreak) String() string           { return "HardBreak" }
func (Rule) String() string                { return "Rule" }
func (e HTML) String() string              { return fmt.Sprintf("HTML(%q)", string(e)) }
func (e InlineHTML) String() string        { return fmt.Sprintf("InlineHTML(%q)", string(e)) }
func (e TaskListMarker) String() string    { return fmt.Sprintf("TaskListMarker(%t)", bool(e)) }
func (e FootnoteReference) String() string { return fmt.Sprintf("FootnoteReference(%q)", string(e)) }

func (e Math) String() string {
	if e.Display {
		return fmt.Sprintf("DisplayMath(%q)", e.Text)
	}
	return fmt.Sprintf("InlineMath(%q)", e.Text)
}

func tagString(t Tag) string {
	switch t := t.(type) {
	case Heading:
		return fmt.Sprintf("Heading %d", t.Level)
	case List:
		if t.Start != nil {
			return fmt.Sprintf("List start=%d", *t.Start)
		}
		return "List"
	case CodeBlock:
		if info, fenced := t.CodeKind.InfoString(); fenced {
			return fmt.Sprintf("CodeBlock fenced %q", info)
		}
		return "CodeBlock indented"
	case Table:
		cols := make([]string, len(t.Alignments))
		for i, a := range t.Alignments {
			cols[i] = alignmentString(a)
		}
		return fmt.Sprintf("Table [%s]", strings.Join(cols, " "))
	case Link:
		return fmt.Sprintf("Link %q", t.Dest)
	case Image:
		return fmt.Sprintf("Image %q", t.Dest)
	default:
		return t.Kind().String()
	}
}

func alignmentString(a Alignment) string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "none"
	}
}
