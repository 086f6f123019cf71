// markdown.go exposes the public pipeline operations over the three
// document representations: source text, flat events, and AST blocks.
package markdown

import (
	"strings"

	"github.com/ConnorGray/Markdown/markdown/event"
)

// Parse converts Markdown source into AST blocks.
func Parse(source string) ([]Block, error) {
	events, err := Tokenize(source)
	if err != nil {
		return nil, err
	}
	return FromEvents(events)
}

// FromEvents converts a flat event sequence into AST blocks. It returns
// ErrMalformed for a structurally invalid stream and ErrUnsupported for
// recognized-but-unconverted constructs; either way the whole conversion
// aborts rather than dropping content.
func FromEvents(events []event.Event) ([]Block, error) {
	nodes, err := unflatten(events)
	if err != nil {
		return nil, err
	}
	return blocksFromNodes(nodes)
}

// Render converts AST blocks into canonical Markdown source using the
// default output options.
func Render(blocks []Block) string {
	return RenderWithOptions(blocks, DefaultRenderOptions())
}

// RenderWithOptions converts AST blocks into canonical Markdown source.
func RenderWithOptions(blocks []Block, opts RenderOptions) string {
	r := &renderer{opts: opts.normalize()}
	return strings.Join(r.blocks(blocks), "\n")
}

// RenderEvents converts a flat event sequence into canonical Markdown
// source. The stream is restructured into an AST first, so it is subject
// to the same structural validation as FromEvents.
func RenderEvents(events []event.Event) (string, error) {
	blocks, err := FromEvents(events)
	if err != nil {
		return "", err
	}
	return Render(blocks), nil
}

// Canonicalize parses Markdown source and prints it back in canonical
// form. Canonical output is a fixed point: canonicalizing twice gives the
// same result as canonicalizing once.
func Canonicalize(source string) (string, error) {
	blocks, err := Parse(source)
	if err != nil {
		return "", err
	}
	return Render(blocks), nil
}

// ParseInline parses source that is expected to be one trivial piece of
// inline content: a single paragraph holding a single inline. Anything
// else returns an *InlineError carrying the full parsed document.
func ParseInline(source string) (Inline, error) {
	blocks, err := Parse(source)
	if err != nil {
		return nil, err
	}
	if len(blocks) == 1 {
		if para, ok := blocks[0].(Paragraph); ok && len(para) == 1 {
			return para[0], nil
		}
	}
	return nil, &InlineError{AST: blocks}
}
