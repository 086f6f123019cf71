package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "dash bullets become stars and lists go loose",
			source: "- Foo\n- Bar",
			want:   "* Foo\n\n* Bar",
		},
		{
			name:   "backslash hard break becomes two spaces",
			source: "hello\\\nworld",
			want:   "hello  \nworld",
		},
		{
			name:   "setext heading becomes atx",
			source: "Title\n=====",
			want:   "# Title",
		},
		{
			name:   "ordered start is preserved",
			source: "3) third\n4) fourth",
			want:   "3. third\n\n4. fourth",
		},
		{
			name:   "nested list indentation follows the marker",
			source: "- outer\n  - inner",
			want:   "* outer\n\n  * inner",
		},
		{
			name:   "thematic break normalizes",
			source: "above\n\n***\n\nbelow",
			want:   "above\n\n---\n\nbelow",
		},
		{
			name:   "blockquote",
			source: ">quoted\n>\n>twice",
			want:   "> quoted\n>\n> twice",
		},
		{
			name:   "fenced code keeps its info string",
			source: "~~~go\nfunc main() {}\n~~~",
			want:   "```go\nfunc main() {}\n```",
		},
		{
			name:   "table",
			source: "|a|b|\n|-|:-:|\n|c|d|",
			want:   "| a | b |\n| --- | :-: |\n| c | d |",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Canonicalize(tt.source)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			again, err := Canonicalize(got)
			require.NoError(t, err)
			assert.Equal(t, got, again, "canonical form must be a fixed point")
		})
	}
}

func TestRenderWithOptions(t *testing.T) {
	blocks := []Block{
		List{Items: []ListItem{
			{Paragraph{Text("a")}},
			{Paragraph{Text("b")}},
		}},
		CodeBlock{Kind: FencedCode("sh"), Code: "echo hi\n"},
	}

	got := RenderWithOptions(blocks, RenderOptions{ListMarker: '-', FenceTokens: 4})
	want := "- a\n\n- b\n\n````sh\necho hi\n````"
	assert.Equal(t, want, got)
}

func TestRenderCodeSpanDelimiters(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"plain", "`plain`"},
		{"has ` tick", "``has ` tick``"},
		{"`leading", "`` `leading ``"},
	}

	for _, tt := range tests {
		got := Render([]Block{Paragraph{Code(tt.code)}})
		assert.Equal(t, tt.want, got)
	}
}

func TestRenderFenceGrowsPastCode(t *testing.T) {
	got := Render([]Block{CodeBlock{
		Kind: FencedCode(""),
		Code: "a ``` b\n",
	}})
	assert.Equal(t, "````\na ``` b\n````", got)
}
