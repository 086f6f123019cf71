// Package notebook converts Markdown documents into Jupyter notebooks.
//
// Fenced code blocks that carry an info string become code cells, with the
// first word of the info string recorded as the cell language. Everything
// else accumulates into markdown cells, split at level-one headings so
// each top-level section gets its own cell.
package notebook

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ConnorGray/Markdown/markdown"
)

// nbformat version written by this package.
const (
	formatMajor = 4
	formatMinor = 5
)

// Notebook is a Jupyter notebook document (nbformat 4.5).
type Notebook struct {
	Cells         []Cell   `json:"cells"`
	Metadata      Metadata `json:"metadata"`
	NBFormat      int      `json:"nbformat"`
	NBFormatMinor int      `json:"nbformat_minor"`
}

// Cell is a single notebook cell.
type Cell struct {
	Type           string         `json:"cell_type"`
	ID             string         `json:"id"`
	Metadata       map[string]any `json:"metadata"`
	ExecutionCount *int           `json:"execution_count,omitempty"`
	Outputs        *[]any         `json:"outputs,omitempty"`
	Source         []string       `json:"source"`
}

// Metadata is notebook-level metadata.
type Metadata struct {
	LanguageInfo *LanguageInfo `json:"language_info,omitempty"`
}

// LanguageInfo names the notebook's primary language.
type LanguageInfo struct {
	Name string `json:"name"`
}

// FromBlocks converts a parsed Markdown document into a notebook.
func FromBlocks(blocks []markdown.Block) Notebook {
	var nb Notebook
	var pending []markdown.Block

	flush := func() {
		if len(pending) == 0 {
			return
		}
		nb.Cells = append(nb.Cells, markdownCell(pending))
		pending = nil
	}

	for _, b := range blocks {
		if code, ok := b.(markdown.CodeBlock); ok {
			if lang := codeLanguage(code.Kind); lang != "" {
				flush()
				nb.Cells = append(nb.Cells, codeCell(lang, code.Code))
				continue
			}
		}
		if h, ok := b.(markdown.Heading); ok && h.Level == markdown.H1 {
			flush()
		}
		pending = append(pending, b)
	}
	flush()

	nb.Metadata.LanguageInfo = languageInfo(nb.Cells)
	nb.NBFormat = formatMajor
	nb.NBFormatMinor = formatMinor
	return nb
}

// JSON returns the notebook as indented JSON.
func (nb Notebook) JSON() ([]byte, error) {
	b, err := json.MarshalIndent(nb, "", " ")
	if err != nil {
		return nil, fmt.Errorf("encoding notebook: %w", err)
	}
	return append(b, '\n'), nil
}

func markdownCell(blocks []markdown.Block) Cell {
	return Cell{
		Type:     "markdown",
		ID:       uuid.NewString(),
		Metadata: map[string]any{},
		Source:   sourceLines(markdown.Render(blocks)),
	}
}

func codeCell(lang, code string) Cell {
	outputs := []any{}
	return Cell{
		Type:           "code",
		ID:             uuid.NewString(),
		Metadata:       map[string]any{"language": lang},
		ExecutionCount: nil,
		Outputs:        &outputs,
		Source:         sourceLines(strings.TrimSuffix(code, "\n")),
	}
}

// codeLanguage returns the cell language for a code block kind, or ""
// when the block should stay inside a markdown cell.
func codeLanguage(kind markdown.CodeBlockKind) string {
	info, fenced := kind.InfoString()
	if !fenced {
		return ""
	}
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// languageInfo picks the most frequent code cell language, if any.
func languageInfo(cells []Cell) *LanguageInfo {
	counts := make(map[string]int)
	best := ""
	for _, c := range cells {
		if c.Type != "code" {
			continue
		}
		lang, _ := c.Metadata["language"].(string)
		if lang == "" {
			continue
		}
		counts[lang]++
		if best == "" || counts[lang] > counts[best] {
			best = lang
		}
	}
	if best == "" {
		return nil
	}
	return &LanguageInfo{Name: best}
}

// sourceLines splits text into the nbformat source representation: one
// entry per line, every entry but the last terminated with a newline.
func sourceLines(text string) []string {
	if text == "" {
		return []string{}
	}
	lines := strings.Split(text, "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		if i < len(lines)-1 {
			out[i] = line + "\n"
		} else {
			out[i] = line
		}
	}
	return out
}
