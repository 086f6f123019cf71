// tokenize.go adapts the goldmark parser to the flat event representation.
//
// goldmark produces its own parse tree; this walker flattens that tree
// into the paired Start/End event vocabulary, which is the contract the
// rest of the package is built on. The parser is configured with the
// table, strikethrough and task list extensions. Task markers are
// recognized here but rejected with ErrUnsupported during AST
// conversion, never passed through as literal text.
//
// Tight-list normalization: goldmark gives tight list items text blocks
// instead of paragraphs. The walker wraps those in Paragraph markers,
// with one deliberate exception mirrored by the serializer: the sole text
// block of a single-item list is emitted bare.
package markdown

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/ConnorGray/Markdown/markdown/event"
)

// Tokenize parses Markdown source into a flat event sequence.
func Tokenize(source string) ([]event.Event, error) {
	src := []byte(source)

	md := goldmark.New(goldmark.WithExtensions(
		extension.Table,
		extension.Strikethrough,
		extension.TaskList,
	))
	doc := md.Parser().Parse(text.NewReader(src))

	t := &tokenizer{src: src}
	if err := t.children(doc); err != nil {
		return nil, err
	}
	return t.events, nil
}

type tokenizer struct {
	src    []byte
	events []event.Event
}

func (t *tokenizer) children(n ast.Node) error {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if err := t.node(c); err != nil {
			return err
		}
	}
	return nil
}

func (t *tokenizer) wrap(tag event.Tag, n ast.Node) error {
	t.events = append(t.events, event.Start{Tag: tag})
	if err := t.children(n); err != nil {
		return err
	}
	t.events = append(t.events, event.End{Kind: tag.Kind()})
	return nil
}

func (t *tokenizer) node(n ast.Node) error {
	switch n := n.(type) {
	case *ast.Heading:
		return t.wrap(event.Heading{Level: event.HeadingLevel(n.Level)}, n)
	case *ast.Paragraph:
		return t.wrap(event.Paragraph{}, n)
	case *ast.TextBlock:
		if soleTightItemText(n) {
			return t.children(n)
		}
		return t.wrap(event.Paragraph{}, n)
	case *ast.Text:
		t.events = append(t.events, event.Text(n.Segment.Value(t.src)))
		if n.HardLineBreak() {
			t.events = append(t.events, event.HardBreak{})
		} else if n.SoftLineBreak() {
			t.events = append(t.events, event.SoftBreak{})
		}
		return nil
	case *ast.String:
		t.events = append(t.events, event.Text(n.Value))
		return nil
	case *ast.CodeSpan:
		t.events = append(t.events, event.Code(codeSpanText(n, t.src)))
		return nil
	case *ast.Emphasis:
		if n.Level == 2 {
			return t.wrap(event.Strong{}, n)
		}
		return t.wrap(event.Emphasis{}, n)
	case *east.Strikethrough:
		return t.wrap(event.Strikethrough{}, n)
	case *ast.Link:
		tag := event.Link{
			Type:  event.LinkInline,
			Dest:  string(n.Destination),
			Title: string(n.Title),
		}
		return t.wrap(tag, n)
	case *ast.AutoLink:
		url := string(n.URL(t.src))
		linkType := event.LinkAutolink
		if n.AutoLinkType == ast.AutoLinkEmail {
			linkType = event.LinkEmail
		}
		tag := event.Link{Type: linkType, Dest: url}
		t.events = append(t.events, event.Start{Tag: tag})
		t.events = append(t.events, event.Text(n.Label(t.src)))
		t.events = append(t.events, event.End{Kind: event.KindLink})
		return nil
	case *ast.Image:
		tag := event.Image{
			Type:  event.LinkInline,
			Dest:  string(n.Destination),
			Title: string(n.Title),
		}
		return t.wrap(tag, n)
	case *ast.FencedCodeBlock:
		info := ""
		if n.Info != nil {
			info = strings.TrimSpace(string(n.Info.Segment.Value(t.src)))
		}
		t.codeBlock(event.FencedCode(info), n)
		return nil
	case *ast.CodeBlock:
		t.codeBlock(event.IndentedCode(), n)
		return nil
	case *ast.Blockquote:
		return t.wrap(event.BlockQuote{}, n)
	case *ast.List:
		var start *int
		if n.IsOrdered() {
			first := n.Start
			start = &first
		}
		return t.wrap(event.List{Start: start}, n)
	case *ast.ListItem:
		return t.wrap(event.Item{}, n)
	case *ast.ThematicBreak:
		t.events = append(t.events, event.Rule{})
		return nil
	case *ast.HTMLBlock:
		var b strings.Builder
		writeLines(&b, n, t.src)
		if n.HasClosure() {
			b.Write(n.ClosureLine.Value(t.src))
		}
		t.events = append(t.events, event.HTML(b.String()))
		return nil
	case *ast.RawHTML:
		var b strings.Builder
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			b.Write(seg.Value(t.src))
		}
		t.events = append(t.events, event.InlineHTML(b.String()))
		return nil
	case *east.Table:
		return t.table(n)
	case *east.TaskCheckBox:
		t.events = append(t.events, event.TaskListMarker(n.IsChecked))
		return nil
	default:
		return fmt.Errorf("%w: %s node", ErrUnsupported, n.Kind())
	}
}

// soleTightItemText reports whether n is the only content of the only
// item of its list. That one shape is tokenized without a Paragraph
// wrapper; see serialize.go for the mirrored special case.
func soleTightItemText(n *ast.TextBlock) bool {
	item, ok := n.Parent().(*ast.ListItem)
	if !ok || item.ChildCount() != 1 {
		return false
	}
	list, ok := item.Parent().(*ast.List)
	return ok && list.ChildCount() == 1
}

func (t *tokenizer) codeBlock(kind event.CodeBlockKind, n ast.Node) {
	var b strings.Builder
	writeLines(&b, n, t.src)
	tag := event.CodeBlock{CodeKind: kind}
	t.events = append(t.events, event.Start{Tag: tag})
	if b.Len() > 0 {
		t.events = append(t.events, event.Text(b.String()))
	}
	t.events = append(t.events, event.End{Kind: event.KindCodeBlock})
}

func (t *tokenizer) table(n *east.Table) error {
	alignments := make([]event.Alignment, len(n.Alignments))
	for i, a := range n.Alignments {
		alignments[i] = tableAlignment(a)
	}

	tag := event.Table{Alignments: alignments}
	t.events = append(t.events, event.Start{Tag: tag})
	if err := t.tableChildren(n); err != nil {
		return err
	}
	t.events = append(t.events, event.End{Kind: event.KindTable})
	return nil
}

func (t *tokenizer) tableChildren(n *east.Table) error {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *east.TableHeader:
			if err := t.tableRow(event.TableHead{}, c); err != nil {
				return err
			}
		case *east.TableRow:
			if err := t.tableRow(event.TableRow{}, c); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s inside table", ErrUnsupported, c.Kind())
		}
	}
	return nil
}

func (t *tokenizer) tableRow(tag event.Tag, n ast.Node) error {
	t.events = append(t.events, event.Start{Tag: tag})
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		cell, ok := c.(*east.TableCell)
		if !ok {
			return fmt.Errorf("%w: %s inside table row", ErrUnsupported, c.Kind())
		}
		if err := t.wrap(event.TableCell{}, cell); err != nil {
			return err
		}
	}
	t.events = append(t.events, event.End{Kind: tag.Kind()})
	return nil
}

func tableAlignment(a east.Alignment) event.Alignment {
	switch a {
	case east.AlignLeft:
		return event.AlignLeft
	case east.AlignCenter:
		return event.AlignCenter
	case east.AlignRight:
		return event.AlignRight
	default:
		return event.AlignNone
	}
}

// codeSpanText joins a code span's text segments, converting interior
// line endings to spaces and stripping the one-space padding, per
// CommonMark code span semantics.
func codeSpanText(n *ast.CodeSpan, src []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *ast.Text:
			b.Write(c.Segment.Value(src))
		case *ast.String:
			b.Write(c.Value)
		}
	}
	s := strings.ReplaceAll(b.String(), "\n", " ")
	if len(s) > 2 && strings.HasPrefix(s, " ") && strings.HasSuffix(s, " ") &&
		strings.TrimSpace(s) != "" {
		s = s[1 : len(s)-1]
	}
	return s
}

func writeLines(b *strings.Builder, n ast.Node, src []byte) {
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(src))
	}
}
