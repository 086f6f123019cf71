// Package markdown converts Markdown between three representations: raw
// source text, a flat stream of parse events, and a hierarchical AST of
// Block and Inline nodes.
//
//	source  => events => blocks => events => source
//	└─ Tokenize ─┘
//	             └ FromEvents ┘
//	                          └ ToEvents ┘
//	                                     └ RenderEvents ┘
//	└──────── Parse ──────────┘
//	             └────────── Render (via blocks) ────────┘
//	└──────────────────── Canonicalize ──────────────────┘
//
// Tokenizing wraps the goldmark parser with the table, strikethrough and
// task list extensions enabled. The AST is a pure tree: every node
// exclusively owns its children, and round-tripping an AST through the
// event representation is lossless.
//
// Known limitation: text content is not escaped on output, so literal
// Markdown metacharacters inside Text nodes will be re-interpreted when
// the rendered document is parsed again.
package markdown

import "github.com/ConnorGray/Markdown/markdown/event"

// Metadata kinds are shared with the event stream vocabulary.
type (
	HeadingLevel  = event.HeadingLevel
	LinkType      = event.LinkType
	CodeBlockKind = event.CodeBlockKind
	Alignment     = event.Alignment
	QuoteKind     = event.QuoteKind
)

const (
	H1 = event.H1
	H2 = event.H2
	H3 = event.H3
	H4 = event.H4
	H5 = event.H5
	H6 = event.H6
)

const (
	AlignNone   = event.AlignNone
	AlignLeft   = event.AlignLeft
	AlignCenter = event.AlignCenter
	AlignRight  = event.AlignRight
)

// FencedCode returns the kind of a fenced code block with the given info
// string.
func FencedCode(info string) CodeBlockKind { return event.FencedCode(info) }

// IndentedCode returns the kind of an indented code block.
func IndentedCode() CodeBlockKind { return event.IndentedCode() }

// Block is a piece of structural (block-level) Markdown content.
type Block interface {
	isBlock()
}

// Paragraph is a paragraph of inline content.
type Paragraph Inlines

// Heading is a heading with its level and inline content.
type Heading struct {
	Level   HeadingLevel
	Inlines Inlines
}

// List is a sequence of list items. Start is the first ordinal of an
// ordered list, or nil for an unordered (bullet) list.
type List struct {
	Start *int
	Items []ListItem
}

// ListItem is one item in a List. An item holds full blocks, not just
// inline text: it may contain several paragraphs and nested lists.
type ListItem []Block

// CodeBlock is a fenced or indented code block holding raw code text.
type CodeBlock struct {
	Kind CodeBlockKind
	Code string
}

// BlockQuote is a block quote. Kind is nil for a plain quote.
type BlockQuote struct {
	Kind   *QuoteKind
	Blocks []Block
}

// Table is a table with per-column alignments, one header row, and any
// number of body rows. Every row has exactly len(Headers) cells.
type Table struct {
	Alignments []Alignment
	Headers    []Inlines
	Rows       [][]Inlines
}

// Rule is a thematic break.
type Rule struct{}

func (Paragraph) isBlock()  {}
func (Heading) isBlock()    {}
func (List) isBlock()       {}
func (CodeBlock) isBlock()  {}
func (BlockQuote) isBlock() {}
func (Table) isBlock()      {}
func (Rule) isBlock()       {}

// Inlines is an ordered sequence of Inline content. Order is reading
// order.
type Inlines []Inline

// Inline is a span-level piece of Markdown content.
type Inline interface {
	isInline()
}

// Text is a run of plain text.
type Text string

// Code is an inline code span.
type Code string

// Emphasis is emphasized inline content.
type Emphasis Inlines

// Strong is strongly emphasized inline content.
type Strong Inlines

// Strikethrough is struck-through inline content. (Non-standard; GFM.)
type Strikethrough Inlines

// Link is a link with its content text and destination metadata.
type Link struct {
	Type    LinkType
	Dest    string
	Title   string
	ID      string
	Content Inlines
}

// Image is an image with its description and destination metadata.
type Image struct {
	Type        LinkType
	Dest        string
	Title       string
	ID          string
	Description Inlines
}

// SoftBreak is a soft line break.
type SoftBreak struct{}

// HardBreak is a hard line break.
type HardBreak struct{}

func (Text) isInline()          {}
func (Code) isInline()          {}
func (Emphasis) isInline()      {}
func (Strong) isInline()        {}
func (Strikethrough) isInline() {}
func (Link) isInline()          {}
func (Image) isInline()         {}
func (SoftBreak) isInline()     {}
func (HardBreak) isInline()     {}

// PlainText returns inline content holding a single run of plain text.
func PlainText(s string) Inlines {
	return Inlines{Text(s)}
}

// PlainTextParagraph returns a paragraph holding a single run of plain
// text.
func PlainTextParagraph(s string) Block {
	return Paragraph{Text(s)}
}

// PlainTextItem returns a list item holding a single plain-text paragraph.
func PlainTextItem(s string) ListItem {
	return ListItem{Paragraph{Text(s)}}
}

// Ordered returns the start number pointer for an ordered List.
func Ordered(start int) *int {
	return &start
}
