package markdown

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ConnorGray/Markdown/markdown/event"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []Block
	}{
		{
			name:   "paragraph",
			source: "hello world",
			want:   []Block{Paragraph{Text("hello world")}},
		},
		{
			name:   "heading and paragraph",
			source: "# Title\n\nBody.",
			want: []Block{
				Heading{Level: H1, Inlines: Inlines{Text("Title")}},
				Paragraph{Text("Body.")},
			},
		},
		{
			name:   "single item tight list",
			source: "* hello",
			want: []Block{List{Items: []ListItem{
				PlainTextItem("hello"),
			}}},
		},
		{
			name:   "ordered list keeps its start",
			source: "3. a\n4. b",
			want: []Block{List{
				Start: Ordered(3),
				Items: []ListItem{PlainTextItem("a"), PlainTextItem("b")},
			}},
		},
		{
			name:   "nested emphasis",
			source: "***both***",
			want:   []Block{Paragraph{Emphasis{Strong{Text("both")}}}},
		},
		{
			name:   "blockquote with list",
			source: "> * quoted item",
			want: []Block{BlockQuote{Blocks: []Block{
				List{Items: []ListItem{PlainTextItem("quoted item")}},
			}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.source)
			require.NoError(t, err)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestParseUnsupported(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{name: "html block", source: "<div>\nraw\n</div>"},
		{name: "inline html", source: "a <b>c</b>"},
		{name: "task list", source: "* [x] done"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.source)
			assert.ErrorIs(t, err, ErrUnsupported)
		})
	}
}

func TestTokenizeHTMLPayload(t *testing.T) {
	// HTML is rejected at AST conversion, but the tokenizer still carries
	// its full text so callers inspecting the stream see what was there.
	events, err := Tokenize("before\n\n<div>\nraw\n</div>\n")
	require.NoError(t, err)
	assert.Contains(t, events, event.HTML("<div>\nraw\n</div>\n"))

	events, err = Tokenize("a <b>c</b>")
	require.NoError(t, err)
	assert.Contains(t, events, event.InlineHTML("<b>"))
	assert.Contains(t, events, event.InlineHTML("</b>"))
}

func TestParseInline(t *testing.T) {
	got, err := ParseInline("hello")
	require.NoError(t, err)
	assert.Equal(t, Text("hello"), got)

	got, err = ParseInline("**HELLO**")
	require.NoError(t, err)
	assert.Equal(t, Strong{Text("HELLO")}, got)

	got, err = ParseInline("[docs](https://example.org)")
	require.NoError(t, err)
	assert.Equal(t, Link{
		Type:    event.LinkInline,
		Dest:    "https://example.org",
		Content: Inlines{Text("docs")},
	}, got)
}

func TestParseInlineRejectsStructure(t *testing.T) {
	tests := []struct {
		name   string
		source string
		blocks int
	}{
		{name: "two paragraphs", source: "one\n\ntwo", blocks: 2},
		{name: "heading", source: "# not inline", blocks: 1},
		{name: "two inlines", source: "a *b*", blocks: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseInline(tt.source)
			var inlineErr *InlineError
			require.ErrorAs(t, err, &inlineErr)
			assert.Len(t, inlineErr.AST, tt.blocks)
		})
	}
}

func TestRenderEvents(t *testing.T) {
	got, err := RenderEvents([]event.Event{
		event.Start{Tag: event.Heading{Level: event.H2}},
		event.Text("Section"),
		event.End{Kind: event.KindHeading},
		event.Start{Tag: event.Paragraph{}},
		event.Text("Body."),
		event.End{Kind: event.KindParagraph},
	})
	require.NoError(t, err)
	assert.Equal(t, "## Section\n\nBody.", got)

	_, err = RenderEvents([]event.Event{event.End{Kind: event.KindParagraph}})
	assert.ErrorIs(t, err, ErrMalformed)
}

// TestKitchenSink runs the full conversion surface over one document that
// exercises every supported construct: the tokenized event stream must
// survive an AST round trip unchanged, and the canonical rendering must
// be a fixed point.
func TestKitchenSink(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("testdata", "kitchen-sink.md"))
	require.NoError(t, err)
	source := string(raw)

	events, err := Tokenize(source)
	require.NoError(t, err)
	blocks, err := FromEvents(events)
	require.NoError(t, err)
	assert.Equal(t, events, ToEvents(blocks), "event round trip")

	canonical, err := Canonicalize(source)
	require.NoError(t, err)
	again, err := Canonicalize(canonical)
	require.NoError(t, err)
	assert.Equal(t, canonical, again, "canonicalization idempotence")

	reparsed, err := Parse(canonical)
	require.NoError(t, err)
	if !reflect.DeepEqual(reparsed, blocks) {
		t.Errorf("canonical form changed the AST\n got: %#v\nwant: %#v", reparsed, blocks)
	}
}

func TestParseMalformedNesting(t *testing.T) {
	var deep string
	for i := 0; i < MaxDepth+1; i++ {
		deep += "> "
	}
	deep += "bottom"

	_, err := Parse(deep)
	assert.ErrorIs(t, err, ErrMalformed)
}
