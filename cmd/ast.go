// ast.go implements "mdast ast": dump the parsed AST.
package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ConnorGray/Markdown/internal/log"
	"github.com/ConnorGray/Markdown/markdown"
)

var astOutput string

var astCmd = &cobra.Command{
	Use:   "ast [file]",
	Short: "Print the AST of a document",
	Long: `Parse a Markdown document and print its AST as an indented tree,
or as JSON with -o json. Reads stdin when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAST,
}

func runAST(c *cobra.Command, args []string) error {
	source, label, err := readInput(argOrEmpty(args))
	if err != nil {
		return err
	}

	blocks, err := markdown.Parse(source)
	log.Event("cli:ast", "parse").Author(Author()).Path(argOrEmpty(args)).Write(err)
	if err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}

	if astOutput == "json" {
		data, err := json.MarshalIndent(blocksJSON(blocks), "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(Out(), string(data))
		return nil
	}

	var b strings.Builder
	for _, block := range blocks {
		writeBlock(&b, block, 0)
	}
	fmt.Fprint(Out(), b.String())
	return nil
}

func indent(b *strings.Builder, depth int) {
	for range depth {
		b.WriteString("  ")
	}
}

func writeBlock(b *strings.Builder, block markdown.Block, depth int) {
	indent(b, depth)
	switch block := block.(type) {
	case markdown.Paragraph:
		b.WriteString("Paragraph\n")
		writeInlines(b, markdown.Inlines(block), depth+1)
	case markdown.Heading:
		fmt.Fprintf(b, "Heading level=%d\n", block.Level)
		writeInlines(b, block.Inlines, depth+1)
	case markdown.List:
		if block.Start != nil {
			fmt.Fprintf(b, "List start=%d\n", *block.Start)
		} else {
			b.WriteString("List\n")
		}
		for _, item := range block.Items {
			indent(b, depth+1)
			b.WriteString("Item\n")
			for _, inner := range item {
				writeBlock(b, inner, depth+2)
			}
		}
	case markdown.CodeBlock:
		if info, fenced := block.Kind.InfoString(); fenced {
			fmt.Fprintf(b, "CodeBlock fenced info=%q %q\n", info, block.Code)
		} else {
			fmt.Fprintf(b, "CodeBlock indented %q\n", block.Code)
		}
	case markdown.BlockQuote:
		b.WriteString("BlockQuote\n")
		for _, inner := range block.Blocks {
			writeBlock(b, inner, depth+1)
		}
	case markdown.Table:
		fmt.Fprintf(b, "Table columns=%d rows=%d\n", len(block.Headers), len(block.Rows))
		for _, cell := range block.Headers {
			indent(b, depth+1)
			b.WriteString("Header\n")
			writeInlines(b, cell, depth+2)
		}
		for _, row := range block.Rows {
			indent(b, depth+1)
			b.WriteString("Row\n")
			for _, cell := range row {
				indent(b, depth+2)
				b.WriteString("Cell\n")
				writeInlines(b, cell, depth+3)
			}
		}
	case markdown.Rule:
		b.WriteString("Rule\n")
	}
}

func writeInlines(b *strings.Builder, spans markdown.Inlines, depth int) {
	for _, span := range spans {
		indent(b, depth)
		switch span := span.(type) {
		case markdown.Text:
			fmt.Fprintf(b, "Text %q\n", string(span))
		case markdown.Code:
			fmt.Fprintf(b, "Code %q\n", string(span))
		case markdown.Emphasis:
			b.WriteString("Emphasis\n")
			writeInlines(b, markdown.Inlines(span), depth+1)
		case markdown.Strong:
			b.WriteString("Strong\n")
			writeInlines(b, markdown.Inlines(span), depth+1)
		case markdown.Strikethrough:
			b.WriteString("Strikethrough\n")
			writeInlines(b, markdown.Inlines(span), depth+1)
		case markdown.Link:
			fmt.Fprintf(b, "Link dest=%q\n", span.Dest)
			writeInlines(b, span.Content, depth+1)
		case markdown.Image:
			fmt.Fprintf(b, "Image dest=%q\n", span.Dest)
			writeInlines(b, span.Description, depth+1)
		case markdown.SoftBreak:
			b.WriteString("SoftBreak\n")
		case markdown.HardBreak:
			b.WriteString("HardBreak\n")
		}
	}
}

// blocksJSON converts blocks to a JSON-friendly representation with
// explicit type tags, since the Go types are interface unions.
func blocksJSON(blocks []markdown.Block) []map[string]any {
	out := make([]map[string]any, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, blockJSON(b))
	}
	return out
}

func blockJSON(block markdown.Block) map[string]any {
	switch block := block.(type) {
	case markdown.Paragraph:
		return map[string]any{"type": "paragraph", "inlines": inlinesJSON(markdown.Inlines(block))}
	case markdown.Heading:
		return map[string]any{"type": "heading", "level": int(block.Level), "inlines": inlinesJSON(block.Inlines)}
	case markdown.List:
		items := make([][]map[string]any, 0, len(block.Items))
		for _, item := range block.Items {
			items = append(items, blocksJSON(item))
		}
		m := map[string]any{"type": "list", "items": items}
		if block.Start != nil {
			m["start"] = *block.Start
		}
		return m
	case markdown.CodeBlock:
		info, fenced := block.Kind.InfoString()
		m := map[string]any{"type": "code_block", "fenced": fenced, "code": block.Code}
		if fenced {
			m["info"] = info
		}
		return m
	case markdown.BlockQuote:
		return map[string]any{"type": "block_quote", "blocks": blocksJSON(block.Blocks)}
	case markdown.Table:
		headers := make([][]map[string]any, 0, len(block.Headers))
		for _, cell := range block.Headers {
			headers = append(headers, inlinesJSON(cell))
		}
		rows := make([][][]map[string]any, 0, len(block.Rows))
		for _, row := range block.Rows {
			cells := make([][]map[string]any, 0, len(row))
			for _, cell := range row {
				cells = append(cells, inlinesJSON(cell))
			}
			rows = append(rows, cells)
		}
		return map[string]any{"type": "table", "headers": headers, "rows": rows}
	case markdown.Rule:
		return map[string]any{"type": "rule"}
	default:
		return map[string]any{"type": fmt.Sprintf("%T", block)}
	}
}

func inlinesJSON(spans markdown.Inlines) []map[string]any {
	out := make([]map[string]any, 0, len(spans))
	for _, span := range spans {
		switch span := span.(type) {
		case markdown.Text:
			out = append(out, map[string]any{"type": "text", "text": string(span)})
		case markdown.Code:
			out = append(out, map[string]any{"type": "code", "code": string(span)})
		case markdown.Emphasis:
			out = append(out, map[string]any{"type": "emphasis", "inlines": inlinesJSON(markdown.Inlines(span))})
		case markdown.Strong:
			out = append(out, map[string]any{"type": "strong", "inlines": inlinesJSON(markdown.Inlines(span))})
		case markdown.Strikethrough:
			out = append(out, map[string]any{"type": "strikethrough", "inlines": inlinesJSON(markdown.Inlines(span))})
		case markdown.Link:
			out = append(out, map[string]any{"type": "link", "dest": span.Dest, "title": span.Title, "inlines": inlinesJSON(span.Content)})
		case markdown.Image:
			out = append(out, map[string]any{"type": "image", "dest": span.Dest, "title": span.Title, "inlines": inlinesJSON(span.Description)})
		case markdown.SoftBreak:
			out = append(out, map[string]any{"type": "soft_break"})
		case markdown.HardBreak:
			out = append(out, map[string]any{"type": "hard_break"})
		}
	}
	return out
}

func init() {
	astCmd.Flags().StringVarP(&astOutput, "output", "o", "", "Output format: json")
	rootCmd.AddCommand(astCmd)
}
