package event

// Kind identifies a structural container kind independent of its payload.
// End markers carry a Kind; matching an End against the opening Start is a
// Kind comparison.
type Kind int

const (
	KindParagraph Kind = iota
	KindHeading
	KindList
	KindItem
	KindCodeBlock
	KindBlockQuote
	KindTable
	KindTableHead
	KindTableRow
	KindTableCell
	KindEmphasis
	KindStrong
	KindStrikethrough
	KindLink
	KindImage
)

var kindNames = [...]string{
	KindParagraph:     "Paragraph",
	KindHeading:       "Heading",
	KindList:          "List",
	KindItem:          "Item",
	KindCodeBlock:     "CodeBlock",
	KindBlockQuote:    "BlockQuote",
	KindTable:         "Table",
	KindTableHead:     "TableHead",
	KindTableRow:      "TableRow",
	KindTableCell:     "TableCell",
	KindEmphasis:      "Emphasis",
	KindStrong:        "Strong",
	KindStrikethrough: "Strikethrough",
	KindLink:          "Link",
	KindImage:         "Image",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(?)"
	}
	return kindNames[k]
}

// Tag identifies a structural container and carries its kind-specific
// metadata (heading level, link destination, table alignments, ...).
type Tag interface {
	// Kind returns the payload-free identity of this tag, used to pair a
	// Start marker with its End marker.
	Kind() Kind
}

// Paragraph delimits a paragraph.
type Paragraph struct{}

// Heading delimits a heading of the given level.
type Heading struct {
	Level HeadingLevel
}

// List delimits a list. Start is the first ordinal of an ordered list, or
// nil for an unordered (bullet) list.
type List struct {
	Start *int
}

// Item delimits one list item.
type Item struct{}

// CodeBlock delimits a fenced or indented code block. The payload field
// is named CodeKind because Kind is taken by the Tag interface method.
type CodeBlock struct {
	CodeKind CodeBlockKind
}

// BlockQuote delimits a block quote. QuoteKind is nil for a plain quote.
type BlockQuote struct {
	QuoteKind *QuoteKind
}

// Table delimits a table and carries its column alignments.
type Table struct {
	Alignments []Alignment
}

// TableHead delimits the header row of a table.
type TableHead struct{}

// TableRow delimits one body row of a table.
type TableRow struct{}

// TableCell delimits one cell of a table row or header.
type TableCell struct{}

// Emphasis delimits emphasized inline content.
type Emphasis struct{}

// Strong delimits strongly emphasized inline content.
type Strong struct{}

// Strikethrough delimits struck-through inline content.
type Strikethrough struct{}

// Link delimits the content text of a link.
type Link struct {
	Type  LinkType
	Dest  string
	Title string
	ID    string
}

// Image delimits the description of an image.
type Image struct {
	Type  LinkType
	Dest  string
	Title string
	ID    string
}

func (Paragraph) Kind() Kind     { return KindParagraph }
func (Heading) Kind() Kind       { return KindHeading }
func (List) Kind() Kind          { return KindList }
func (Item) Kind() Kind          { return KindItem }
func (CodeBlock) Kind() Kind     { return KindCodeBlock }
func (BlockQuote) Kind() Kind    { return KindBlockQuote }
func (Table) Kind() Kind         { return KindTable }
func (TableHead) Kind() Kind     { return KindTableHead }
func (TableRow) Kind() Kind      { return KindTableRow }
func (TableCell) Kind() Kind     { return KindTableCell }
func (Emphasis) Kind() Kind      { return KindEmphasis }
func (Strong) Kind() Kind        { return KindStrong }
func (Strikethrough) Kind() Kind { return KindStrikethrough }
func (Link) Kind() Kind          { return KindLink }
func (Image) Kind() Kind         { return KindImage }
