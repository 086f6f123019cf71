// render.go prints AST blocks as canonical Markdown source.
//
// Canonical output conventions: blocks separated by one blank line,
// "*" bullets (configurable), ordered markers counting from the preserved
// start number, two-space hard breaks, fenced code with at least three
// fence tokens, four-space indented code, "> " quote prefixes, and pipe
// tables. Lists are always printed loose, which keeps canonicalization
// idempotent. Text content is not escaped; see the package comment.
package markdown

import (
	"fmt"
	"strings"

	"github.com/ConnorGray/Markdown/markdown/event"
)

// RenderOptions configures canonical Markdown output.
type RenderOptions struct {
	// ListMarker is the bullet used for unordered list items: '*', '-',
	// or '+'.
	ListMarker byte
	// FenceTokens is the minimum number of fence characters around a
	// fenced code block. The fence grows as needed to contain the code.
	FenceTokens int
}

// DefaultRenderOptions returns the canonical output settings: '*' bullets
// and three-backtick fences.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{ListMarker: '*', FenceTokens: 3}
}

func (o RenderOptions) normalize() RenderOptions {
	switch o.ListMarker {
	case '*', '-', '+':
	default:
		o.ListMarker = '*'
	}
	if o.FenceTokens < 3 {
		o.FenceTokens = 3
	}
	return o
}

type renderer struct {
	opts RenderOptions
}

// blocks renders a block sequence as lines, with one empty line between
// consecutive blocks.
func (r *renderer) blocks(blocks []Block) []string {
	var lines []string
	for i, b := range blocks {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, r.block(b)...)
	}
	return lines
}

func (r *renderer) block(b Block) []string {
	switch b := b.(type) {
	case Paragraph:
		text := r.inlines(Inlines(b), "\n", "  \n")
		return strings.Split(text, "\n")
	case Heading:
		marker := strings.Repeat("#", int(b.Level))
		return []string{marker + " " + r.inlines(b.Inlines, " ", " ")}
	case List:
		return r.list(b)
	case CodeBlock:
		return r.codeBlock(b)
	case BlockQuote:
		var lines []string
		for _, inner := range r.blocks(b.Blocks) {
			if inner == "" {
				lines = append(lines, ">")
			} else {
				lines = append(lines, "> "+inner)
			}
		}
		return lines
	case Table:
		return r.table(b)
	case Rule:
		return []string{"---"}
	default:
		return nil
	}
}

func (r *renderer) list(b List) []string {
	var lines []string
	for i, item := range b.Items {
		if i > 0 {
			lines = append(lines, "")
		}

		marker := string(r.opts.ListMarker) + " "
		if b.Start != nil {
			marker = fmt.Sprintf("%d. ", *b.Start+i)
		}
		indent := strings.Repeat(" ", len(marker))

		for j, inner := range r.blocks([]Block(item)) {
			switch {
			case j == 0:
				lines = append(lines, marker+inner)
			case inner == "":
				lines = append(lines, "")
			default:
				lines = append(lines, indent+inner)
			}
		}
	}
	return lines
}

func (r *renderer) codeBlock(b CodeBlock) []string {
	code := strings.Split(strings.TrimSuffix(b.Code, "\n"), "\n")

	info, fenced := b.Kind.InfoString()
	if !fenced {
		lines := make([]string, len(code))
		for i, line := range code {
			if line == "" {
				lines[i] = ""
			} else {
				lines[i] = "    " + line
			}
		}
		return lines
	}

	fence := strings.Repeat("`", fenceLength(b.Code, r.opts.FenceTokens))
	lines := []string{fence + info}
	if b.Code != "" {
		lines = append(lines, code...)
	}
	return append(lines, fence)
}

// fenceLength returns enough fence tokens to contain any backtick run in
// the code, but never fewer than min.
func fenceLength(code string, min int) int {
	longest, run := 0, 0
	for i := 0; i < len(code); i++ {
		if code[i] == '`' {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	if longest >= min {
		return longest + 1
	}
	return min
}

func (r *renderer) table(b Table) []string {
	header := "|"
	for _, cell := range b.Headers {
		header += " " + r.inlines(cell, " ", " ") + " |"
	}

	separator := "|"
	for i := range b.Headers {
		align := AlignNone
		if i < len(b.Alignments) {
			align = b.Alignments[i]
		}
		separator += " " + alignmentMarker(align) + " |"
	}

	lines := []string{header, separator}
	for _, row := range b.Rows {
		line := "|"
		for _, cell := range row {
			line += " " + r.inlines(cell, " ", " ") + " |"
		}
		lines = append(lines, line)
	}
	return lines
}

func alignmentMarker(a Alignment) string {
	switch a {
	case AlignLeft:
		return ":--"
	case AlignCenter:
		return ":-:"
	case AlignRight:
		return "--:"
	default:
		return "---"
	}
}

// inlines renders inline content, substituting soft and hard for soft and
// hard line breaks.
func (r *renderer) inlines(spans Inlines, soft, hard string) string {
	var b strings.Builder
	for _, span := range spans {
		switch span := span.(type) {
		case Text:
			b.WriteString(string(span))
		case Code:
			b.WriteString(codeSpan(string(span)))
		case Emphasis:
			b.WriteString("*" + r.inlines(Inlines(span), soft, hard) + "*")
		case Strong:
			b.WriteString("**" + r.inlines(Inlines(span), soft, hard) + "**")
		case Strikethrough:
			b.WriteString("~~" + r.inlines(Inlines(span), soft, hard) + "~~")
		case Link:
			b.WriteString(r.link(span, soft, hard))
		case Image:
			b.WriteString("![" + r.inlines(span.Description, soft, hard) + "]" +
				destSuffix(span.Dest, span.Title))
		case SoftBreak:
			b.WriteString(soft)
		case HardBreak:
			b.WriteString(hard)
		}
	}
	return b.String()
}

func (r *renderer) link(l Link, soft, hard string) string {
	content := r.inlines(l.Content, soft, hard)
	if l.Type == event.LinkAutolink || l.Type == event.LinkEmail {
		return "<" + content + ">"
	}
	return "[" + content + "]" + destSuffix(l.Dest, l.Title)
}

func destSuffix(dest, title string) string {
	if title != "" {
		return fmt.Sprintf("(%s %q)", dest, title)
	}
	return "(" + dest + ")"
}

// codeSpan wraps code in enough backticks to contain it, padding with
// spaces when the content starts or ends with a backtick.
func codeSpan(code string) string {
	delim := strings.Repeat("`", fenceLength(code, 1))
	pad := ""
	if strings.HasPrefix(code, "`") || strings.HasSuffix(code, "`") {
		pad = " "
	}
	return delim + pad + code + pad + delim
}
