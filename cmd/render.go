// render.go implements "mdast render": preview a document.
//
// Terminal output gets glamour markdown rendering; pipe/redirect gets the
// canonical text, matching the usual TTY-detection convention.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ConnorGray/Markdown/internal/log"
	"github.com/ConnorGray/Markdown/markdown"
)

var renderRaw bool

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render a document for reading",
	Long: `Canonicalize a Markdown document and render it for the terminal.
When stdout is a terminal the output is styled with glamour; otherwise
(or with --raw) the canonical text is printed. Reads stdin when no file
is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func runRender(c *cobra.Command, args []string) error {
	source, label, err := readInput(argOrEmpty(args))
	if err != nil {
		return err
	}

	blocks, err := markdown.Parse(source)
	log.Event("cli:render", "render").Author(Author()).Path(argOrEmpty(args)).Write(err)
	if err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}

	canonical := ensureTrailingNewline(markdown.RenderWithOptions(blocks, cfg.RenderOptions()))

	if !renderRaw && term.IsTerminal(int(os.Stdout.Fd())) {
		styled, renderErr := glamour.Render(canonical, "dark")
		if renderErr == nil {
			fmt.Fprint(Out(), styled)
			return nil
		}
		// Fall back to plain output when styling fails.
	}

	fmt.Fprint(Out(), canonical)
	return nil
}

func init() {
	renderCmd.Flags().BoolVar(&renderRaw, "raw", false, "Print canonical text without terminal styling")
	rootCmd.AddCommand(renderCmd)
}
