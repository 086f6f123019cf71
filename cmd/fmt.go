// fmt.go implements the "mdast fmt" command: canonicalize documents.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ConnorGray/Markdown/internal/diff"
	"github.com/ConnorGray/Markdown/internal/log"
	"github.com/ConnorGray/Markdown/markdown"
)

var (
	fmtWrite bool
	fmtDiff  bool
	fmtCheck bool
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [file]",
	Short: "Print a document in canonical form",
	Long: `Parse a Markdown document and print it back in canonical form:
'*' bullets, loose lists, two-space hard breaks, and normalized tables.
Reads stdin when no file is given. Canonical output is idempotent.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFmt,
}

func runFmt(c *cobra.Command, args []string) error {
	err := fmtRun(args)
	log.Event("cli:fmt", "canonicalize").Author(Author()).Path(argOrEmpty(args)).Write(err)
	return err
}

func fmtRun(args []string) error {
	source, label, err := readInput(argOrEmpty(args))
	if err != nil {
		return err
	}

	blocks, err := markdown.Parse(source)
	if err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}
	canonical := ensureTrailingNewline(markdown.RenderWithOptions(blocks, cfg.RenderOptions()))

	switch {
	case fmtCheck:
		if canonical != source {
			return fmt.Errorf("%s is not canonical", label)
		}
		return nil

	case fmtDiff:
		r := diff.Compute(source, canonical, label, label+" (canonical)")
		if r.Empty() {
			return nil
		}
		colour := term.IsTerminal(int(os.Stdout.Fd()))
		fmt.Fprint(Out(), r.Format(colour))
		return nil

	case fmtWrite:
		path := argOrEmpty(args)
		if path == "" || path == "-" {
			return fmt.Errorf("--write requires a file argument")
		}
		if canonical == source {
			return nil
		}
		if err := os.WriteFile(path, []byte(canonical), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Fprintf(Out(), "formatted %s\n", path)
		return nil

	default:
		fmt.Fprint(Out(), canonical)
		return nil
	}
}

func init() {
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "Rewrite the file in place")
	fmtCmd.Flags().BoolVarP(&fmtDiff, "diff", "d", false, "Show a diff instead of rewriting")
	fmtCmd.Flags().BoolVar(&fmtCheck, "check", false, "Exit non-zero when the input is not canonical")
	rootCmd.AddCommand(fmtCmd)
}
