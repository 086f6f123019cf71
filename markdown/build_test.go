package markdown

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ConnorGray/Markdown/markdown/event"
)

func TestFromEvents(t *testing.T) {
	tests := []struct {
		name   string
		events []event.Event
		want   []Block
	}{
		{
			name: "paragraph",
			events: []event.Event{
				event.Start{Tag: event.Paragraph{}},
				event.Text("hello"),
				event.End{Kind: event.KindParagraph},
			},
			want: []Block{Paragraph{Text("hello")}},
		},
		{
			name: "bare inlines become a paragraph",
			events: []event.Event{
				event.Text("implicit"),
			},
			want: []Block{Paragraph{Text("implicit")}},
		},
		{
			name: "block boundary flushes pending inlines",
			events: []event.Event{
				event.Text("before"),
				event.Start{Tag: event.Heading{Level: event.H1}},
				event.Text("title"),
				event.End{Kind: event.KindHeading},
			},
			want: []Block{
				Paragraph{Text("before")},
				Heading{Level: H1, Inlines: Inlines{Text("title")}},
			},
		},
		{
			name: "rule flushes pending inlines",
			events: []event.Event{
				event.Text("above"),
				event.Rule{},
				event.Text("below"),
			},
			want: []Block{
				Paragraph{Text("above")},
				Rule{},
				Paragraph{Text("below")},
			},
		},
		{
			name: "nested inline containers",
			events: []event.Event{
				event.Start{Tag: event.Paragraph{}},
				event.Start{Tag: event.Strong{}},
				event.Start{Tag: event.Emphasis{}},
				event.Text("both"),
				event.End{Kind: event.KindEmphasis},
				event.End{Kind: event.KindStrong},
				event.End{Kind: event.KindParagraph},
			},
			want: []Block{Paragraph{Strong{Emphasis{Text("both")}}}},
		},
		{
			name: "code block flattens soft and hard breaks",
			events: []event.Event{
				event.Start{Tag: event.CodeBlock{CodeKind: event.FencedCode("go")}},
				event.Text("a"),
				event.SoftBreak{},
				event.Text("b"),
				event.HardBreak{},
				event.Text("c"),
				event.End{Kind: event.KindCodeBlock},
			},
			want: []Block{CodeBlock{Kind: event.FencedCode("go"), Code: "a b\nc"}},
		},
		{
			name: "empty code block",
			events: []event.Event{
				event.Start{Tag: event.CodeBlock{CodeKind: event.IndentedCode()}},
				event.End{Kind: event.KindCodeBlock},
			},
			want: []Block{CodeBlock{Kind: event.IndentedCode(), Code: ""}},
		},
		{
			name: "loose item keeps separate paragraphs",
			events: []event.Event{
				event.Start{Tag: event.List{}},
				event.Start{Tag: event.Item{}},
				event.Start{Tag: event.Paragraph{}},
				event.Text("first"),
				event.End{Kind: event.KindParagraph},
				event.Start{Tag: event.Paragraph{}},
				event.Text("second"),
				event.End{Kind: event.KindParagraph},
				event.End{Kind: event.KindItem},
				event.End{Kind: event.KindList},
			},
			want: []Block{List{Items: []ListItem{
				{
					Paragraph{Text("first")},
					Paragraph{Text("second")},
				},
			}}},
		},
		{
			name: "paragraph inside inline context becomes two hard breaks",
			events: []event.Event{
				event.Start{Tag: event.Heading{Level: event.H2}},
				event.Start{Tag: event.Paragraph{}},
				event.Text("first"),
				event.End{Kind: event.KindParagraph},
				event.Start{Tag: event.Paragraph{}},
				event.Text("second"),
				event.End{Kind: event.KindParagraph},
				event.End{Kind: event.KindHeading},
			},
			want: []Block{Heading{Level: H2, Inlines: Inlines{
				Text("first"), HardBreak{}, HardBreak{}, Text("second"),
			}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromEvents(tt.events)
			if err != nil {
				t.Fatalf("FromEvents() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FromEvents() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestFromEventsErrors(t *testing.T) {
	tests := []struct {
		name   string
		events []event.Event
		want   error
	}{
		{
			name: "inline html is unsupported",
			events: []event.Event{
				event.Start{Tag: event.Paragraph{}},
				event.InlineHTML("<b>"),
				event.End{Kind: event.KindParagraph},
			},
			want: ErrUnsupported,
		},
		{
			name:   "html block is unsupported",
			events: []event.Event{event.HTML("<div></div>\n")},
			want:   ErrUnsupported,
		},
		{
			name: "task list marker is unsupported",
			events: []event.Event{
				event.Start{Tag: event.List{}},
				event.Start{Tag: event.Item{}},
				event.TaskListMarker(true),
				event.Text("todo"),
				event.End{Kind: event.KindItem},
				event.End{Kind: event.KindList},
			},
			want: ErrUnsupported,
		},
		{
			name: "non-item child of a list",
			events: []event.Event{
				event.Start{Tag: event.List{}},
				event.Text("loose"),
				event.End{Kind: event.KindList},
			},
			want: ErrMalformed,
		},
		{
			name: "table row narrower than header",
			events: []event.Event{
				event.Start{Tag: event.Table{Alignments: []event.Alignment{event.AlignNone, event.AlignNone}}},
				event.Start{Tag: event.TableHead{}},
				event.Start{Tag: event.TableCell{}},
				event.Text("a"),
				event.End{Kind: event.KindTableCell},
				event.Start{Tag: event.TableCell{}},
				event.Text("b"),
				event.End{Kind: event.KindTableCell},
				event.End{Kind: event.KindTableHead},
				event.Start{Tag: event.TableRow{}},
				event.Start{Tag: event.TableCell{}},
				event.Text("c"),
				event.End{Kind: event.KindTableCell},
				event.End{Kind: event.KindTableRow},
				event.End{Kind: event.KindTable},
			},
			want: ErrMalformed,
		},
		{
			name: "code span inside code block",
			events: []event.Event{
				event.Start{Tag: event.CodeBlock{CodeKind: event.IndentedCode()}},
				event.Code("nested"),
				event.End{Kind: event.KindCodeBlock},
			},
			want: ErrMalformed,
		},
		{
			name: "block tag inside inline content",
			events: []event.Event{
				event.Start{Tag: event.Heading{Level: event.H1}},
				event.Start{Tag: event.BlockQuote{}},
				event.End{Kind: event.KindBlockQuote},
				event.End{Kind: event.KindHeading},
			},
			want: ErrMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromEvents(tt.events)
			if !errors.Is(err, tt.want) {
				t.Errorf("FromEvents() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestFromEventsTable(t *testing.T) {
	events := []event.Event{
		event.Start{Tag: event.Table{Alignments: []event.Alignment{event.AlignLeft, event.AlignCenter}}},
		event.Start{Tag: event.TableHead{}},
		event.Start{Tag: event.TableCell{}},
		event.Text("h1"),
		event.End{Kind: event.KindTableCell},
		event.Start{Tag: event.TableCell{}},
		event.Text("h2"),
		event.End{Kind: event.KindTableCell},
		event.End{Kind: event.KindTableHead},
		event.Start{Tag: event.TableRow{}},
		event.Start{Tag: event.TableCell{}},
		event.Text("a"),
		event.End{Kind: event.KindTableCell},
		event.Start{Tag: event.TableCell{}},
		event.Text("b"),
		event.End{Kind: event.KindTableCell},
		event.End{Kind: event.KindTableRow},
		event.End{Kind: event.KindTable},
	}

	want := []Block{Table{
		Alignments: []event.Alignment{event.AlignLeft, event.AlignCenter},
		Headers:    []Inlines{{Text("h1")}, {Text("h2")}},
		Rows:       [][]Inlines{{{Text("a")}, {Text("b")}}},
	}}

	got, err := FromEvents(events)
	if err != nil {
		t.Fatalf("FromEvents() error = %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FromEvents() = %#v, want %#v", got, want)
	}
}
