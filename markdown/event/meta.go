// meta.go defines the kind-specific metadata carried by tags: heading
// levels, link types, code block kinds, table column alignments, and block
// quote kinds. These are shared by the event stream and the AST, so they
// live here and the markdown package aliases them.
package event

// HeadingLevel is a heading level from H1 through H6.
type HeadingLevel int

const (
	H1 HeadingLevel = iota + 1
	H2
	H3
	H4
	H5
	H6
)

// LinkType describes the source syntax of a link or image.
type LinkType int

const (
	// LinkInline is an inline link: [text](url "title").
	LinkInline LinkType = iota
	// LinkReference is a full reference link: [text][label].
	LinkReference
	// LinkCollapsed is a collapsed reference link: [label][].
	LinkCollapsed
	// LinkShortcut is a shortcut reference link: [label].
	LinkShortcut
	// LinkAutolink is an autolink: <https://example.org>.
	LinkAutolink
	// LinkEmail is an email autolink: <hello@example.org>.
	LinkEmail
)

// CodeBlockKind distinguishes fenced from indented code blocks. A fenced
// block carries its info string.
type CodeBlockKind struct {
	Fenced bool
	Info   string
}

// FencedCode returns the kind of a fenced code block with the given info
// string.
func FencedCode(info string) CodeBlockKind {
	return CodeBlockKind{Fenced: true, Info: info}
}

// IndentedCode returns the kind of an indented code block.
func IndentedCode() CodeBlockKind {
	return CodeBlockKind{}
}

// InfoString returns the info string of a fenced code block, and whether
// the block is fenced at all.
func (k CodeBlockKind) InfoString() (string, bool) {
	return k.Info, k.Fenced
}

// Alignment is a table column alignment.
type Alignment int

const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// QuoteKind is a block quote marker kind (note, tip, ...). Plain block
// quotes carry no kind.
type QuoteKind int

const (
	QuoteNote QuoteKind = iota
	QuoteTip
	QuoteImportant
	QuoteWarning
	QuoteCaution
)
