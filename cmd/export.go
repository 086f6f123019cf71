// export.go implements "mdast export": write a Jupyter notebook.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ConnorGray/Markdown/internal/log"
	"github.com/ConnorGray/Markdown/internal/notebook"
)

var (
	exportDest  string
	exportForce bool
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Convert a document to a Jupyter notebook",
	Long: `Convert a Markdown document to a Jupyter notebook (.ipynb).
Fenced code blocks with an info string become code cells; everything else
becomes markdown cells, split at level-one headings. The notebook is
written next to the input unless --dest is given. Reads stdin when no
file is given (--dest required).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func runExport(c *cobra.Command, args []string) error {
	path := argOrEmpty(args)
	source, label, err := readInput(path)
	if err != nil {
		return err
	}

	if (path == "" || path == "-") && exportDest == "" {
		return fmt.Errorf("--dest is required when reading stdin")
	}

	opts := notebook.Options{Dest: exportDest, Force: exportForce}
	out, err := notebook.Export(source, path, opts)

	log.Event("cli:export", "export").Author(Author()).Path(path).Detail("dest", out).Write(err)

	if err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}

	fmt.Fprintf(Out(), "Exported: %s -> %s\n", label, out)
	return nil
}

func init() {
	exportCmd.Flags().StringVar(&exportDest, "dest", "", "Output notebook path")
	exportCmd.Flags().BoolVar(&exportForce, "force", false, "Overwrite an existing file")
	rootCmd.AddCommand(exportCmd)
}
