// build.go converts unflattened events into AST blocks.
//
// The builder walks one nesting level at a time, accumulating pending
// inline content and flushing it as a Paragraph whenever a block-breaking
// node arrives. Paragraph tags themselves are not emitted as blocks; their
// content is spliced into the pending accumulator, which models the
// tokenizer's paragraph wrapping and keeps single-paragraph list items
// flat. Recursion depth is bounded because unflatten caps the tree depth
// at MaxDepth.
package markdown

import (
	"fmt"
	"strings"

	"github.com/ConnorGray/Markdown/markdown/event"
)

// blocksFromNodes converts the nodes of one block-level nesting context
// into a sequence of Blocks.
func blocksFromNodes(nodes []node) ([]Block, error) {
	var complete []Block
	var spans Inlines

	flush := func() {
		if len(spans) > 0 {
			complete = append(complete, Paragraph(spans))
			spans = nil
		}
	}

	for _, n := range nodes {
		inline, err := isInlineNode(n)
		if err != nil {
			return nil, err
		}
		if !inline {
			flush()
		}

		if !n.nested() {
			switch ev := n.atom.(type) {
			case event.Text:
				spans = append(spans, Text(ev))
			case event.Code:
				spans = append(spans, Code(ev))
			case event.SoftBreak:
				spans = append(spans, SoftBreak{})
			case event.HardBreak:
				spans = append(spans, HardBreak{})
			case event.Rule:
				complete = append(complete, Rule{})
			default:
				return nil, fmt.Errorf("%w: %v", ErrUnsupported, ev)
			}
			continue
		}

		switch tag := n.tag.(type) {
		case event.Emphasis:
			content, err := inlinesFromNodes(n.children)
			if err != nil {
				return nil, err
			}
			spans = append(spans, Emphasis(content))
		case event.Strong:
			content, err := inlinesFromNodes(n.children)
			if err != nil {
				return nil, err
			}
			spans = append(spans, Strong(content))
		case event.Strikethrough:
			content, err := inlinesFromNodes(n.children)
			if err != nil {
				return nil, err
			}
			spans = append(spans, Strikethrough(content))
		case event.Link:
			content, err := inlinesFromNodes(n.children)
			if err != nil {
				return nil, err
			}
			spans = append(spans, Link{
				Type: tag.Type, Dest: tag.Dest, Title: tag.Title, ID: tag.ID,
				Content: content,
			})
		case event.Image:
			description, err := inlinesFromNodes(n.children)
			if err != nil {
				return nil, err
			}
			spans = append(spans, Image{
				Type: tag.Type, Dest: tag.Dest, Title: tag.Title, ID: tag.ID,
				Description: description,
			})
		case event.Heading:
			content, err := inlinesFromNodes(n.children)
			if err != nil {
				return nil, err
			}
			complete = append(complete, Heading{Level: tag.Level, Inlines: content})
		case event.Paragraph:
			// The Paragraph tag disappears: its content joins the pending
			// accumulator and is flushed at the next block boundary. This
			// keeps one-paragraph list items flat.
			content, err := inlinesFromNodes(n.children)
			if err != nil {
				return nil, err
			}
			spans = append(spans, content...)
		case event.List:
			list, err := listFromNodes(tag, n.children)
			if err != nil {
				return nil, err
			}
			complete = append(complete, list)
		case event.Item:
			// An Item outside List dispatch: splice its blocks directly.
			blocks, err := blocksFromNodes(n.children)
			if err != nil {
				return nil, err
			}
			complete = append(complete, blocks...)
		case event.CodeBlock:
			content, err := inlinesFromNodes(n.children)
			if err != nil {
				return nil, err
			}
			code, err := codeText(content)
			if err != nil {
				return nil, err
			}
			complete = append(complete, CodeBlock{Kind: tag.CodeKind, Code: code})
		case event.BlockQuote:
			blocks, err := blocksFromNodes(n.children)
			if err != nil {
				return nil, err
			}
			complete = append(complete, BlockQuote{Kind: tag.QuoteKind, Blocks: blocks})
		case event.Table:
			table, err := tableFromNodes(tag, n.children)
			if err != nil {
				return nil, err
			}
			complete = append(complete, table)
		default:
			return nil, fmt.Errorf("%w: %s in block context", ErrMalformed, n.tag.Kind())
		}
	}

	flush()
	return complete, nil
}

// isInlineNode reports whether a node's content can join pending inline
// text. Nodes that cannot start a new Block.
func isInlineNode(n node) (bool, error) {
	if !n.nested() {
		switch ev := n.atom.(type) {
		case event.Text, event.Code, event.SoftBreak, event.HardBreak,
			event.FootnoteReference:
			return true, nil
		case event.Rule, event.HTML, event.InlineHTML, event.TaskListMarker,
			event.Math:
			return false, nil
		case event.Start, event.End:
			return false, fmt.Errorf("%w: structural marker survived unflattening", ErrMalformed)
		default:
			return false, fmt.Errorf("%w: %v", ErrUnsupported, ev)
		}
	}
	switch n.tag.(type) {
	case event.Emphasis, event.Strong, event.Strikethrough, event.Link, event.Image:
		return true, nil
	default:
		return false, nil
	}
}

// listFromNodes builds a List block. Every child of a List container must
// be an Item container.
func listFromNodes(tag event.List, nodes []node) (Block, error) {
	items := make([]ListItem, 0, len(nodes))
	for _, n := range nodes {
		if !n.nested() || n.tag.Kind() != event.KindItem {
			return nil, fmt.Errorf("%w: list child is not an item", ErrMalformed)
		}
		blocks, err := blocksFromNodes(n.children)
		if err != nil {
			return nil, err
		}
		items = append(items, ListItem(blocks))
	}
	return List{Start: tag.Start, Items: items}, nil
}

// tableFromNodes builds a Table block. The first child must be the head
// row; the rest must be body rows; every row must have exactly as many
// cells as the head.
func tableFromNodes(tag event.Table, nodes []node) (Block, error) {
	if len(nodes) == 0 || !nodes[0].nested() || nodes[0].tag.Kind() != event.KindTableHead {
		return nil, fmt.Errorf("%w: table missing head row", ErrMalformed)
	}

	headers, err := tableCells(nodes[0].children)
	if err != nil {
		return nil, err
	}

	var rows [][]Inlines
	for _, n := range nodes[1:] {
		if !n.nested() || n.tag.Kind() != event.KindTableRow {
			return nil, fmt.Errorf("%w: table child is not a row", ErrMalformed)
		}
		row, err := tableCells(n.children)
		if err != nil {
			return nil, err
		}
		if len(row) != len(headers) {
			return nil, fmt.Errorf("%w: table row has %d cells, head has %d",
				ErrMalformed, len(row), len(headers))
		}
		rows = append(rows, row)
	}

	return Table{Alignments: tag.Alignments, Headers: headers, Rows: rows}, nil
}

func tableCells(nodes []node) ([]Inlines, error) {
	cells := make([]Inlines, 0, len(nodes))
	for _, n := range nodes {
		if !n.nested() || n.tag.Kind() != event.KindTableCell {
			return nil, fmt.Errorf("%w: expected table cell, got %v", ErrMalformed, n.tag)
		}
		content, err := inlinesFromNodes(n.children)
		if err != nil {
			return nil, err
		}
		cells = append(cells, content)
	}
	return cells, nil
}

// inlinesFromNodes resolves nodes in an inline-only context (heading
// content, emphasis spans, link text, table cells, code block interiors).
// Block-only containers here are illegal nesting.
func inlinesFromNodes(nodes []node) (Inlines, error) {
	var spans Inlines

	for _, n := range nodes {
		if !n.nested() {
			switch ev := n.atom.(type) {
			case event.Text:
				spans = append(spans, Text(ev))
			case event.Code:
				spans = append(spans, Code(ev))
			case event.SoftBreak:
				spans = append(spans, SoftBreak{})
			case event.HardBreak:
				spans = append(spans, HardBreak{})
			case event.Rule:
				return nil, fmt.Errorf("%w: rule inside inline content", ErrMalformed)
			default:
				return nil, fmt.Errorf("%w: %v", ErrUnsupported, ev)
			}
			continue
		}

		switch tag := n.tag.(type) {
		case event.Emphasis:
			content, err := inlinesFromNodes(n.children)
			if err != nil {
				return nil, err
			}
			spans = append(spans, Emphasis(content))
		case event.Strong:
			content, err := inlinesFromNodes(n.children)
			if err != nil {
				return nil, err
			}
			spans = append(spans, Strong(content))
		case event.Strikethrough:
			content, err := inlinesFromNodes(n.children)
			if err != nil {
				return nil, err
			}
			spans = append(spans, Strikethrough(content))
		case event.Paragraph:
			// A paragraph inside inline context means the surrounding
			// container held several paragraphs that are being flattened
			// into one inline run. Two hard breaks preserve the visual
			// separation. No break markers before the first paragraph, to
			// avoid leading blank lines.
			if len(spans) > 0 {
				spans = append(spans, HardBreak{}, HardBreak{})
			}
			content, err := inlinesFromNodes(n.children)
			if err != nil {
				return nil, err
			}
			spans = append(spans, content...)
		case event.Link:
			content, err := inlinesFromNodes(n.children)
			if err != nil {
				return nil, err
			}
			spans = append(spans, Link{
				Type: tag.Type, Dest: tag.Dest, Title: tag.Title, ID: tag.ID,
				Content: content,
			})
		case event.Image:
			description, err := inlinesFromNodes(n.children)
			if err != nil {
				return nil, err
			}
			spans = append(spans, Image{
				Type: tag.Type, Dest: tag.Dest, Title: tag.Title, ID: tag.ID,
				Description: description,
			})
		default:
			return nil, fmt.Errorf("%w: %s inside inline content", ErrMalformed, n.tag.Kind())
		}
	}

	return spans, nil
}

// codeText flattens the inline content of a code block to plain text:
// text runs pass through, soft breaks become a single space, hard breaks
// become a newline. Anything else inside a code block is an error.
func codeText(spans Inlines) (string, error) {
	var b strings.Builder
	for _, span := range spans {
		switch span := span.(type) {
		case Text:
			b.WriteString(string(span))
		case SoftBreak:
			b.WriteString(" ")
		case HardBreak:
			b.WriteString("\n")
		default:
			return "", fmt.Errorf("%w: %T inside code block", ErrMalformed, span)
		}
	}
	return b.String(), nil
}
