// events.go implements "mdast events": dump the parse event stream.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ConnorGray/Markdown/internal/log"
	"github.com/ConnorGray/Markdown/markdown"
)

var eventsCmd = &cobra.Command{
	Use:   "events [file]",
	Short: "Print the parse event stream of a document",
	Long: `Tokenize a Markdown document and print one parse event per line.
The stream is the flat representation the AST is built from: paired
Start/End markers around nested containers, with atomic events between
them. Reads stdin when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEvents,
}

func runEvents(c *cobra.Command, args []string) error {
	source, label, err := readInput(argOrEmpty(args))
	if err != nil {
		return err
	}

	events, err := markdown.Tokenize(source)
	log.Event("cli:events", "tokenize").Author(Author()).Path(argOrEmpty(args)).Write(err)
	if err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}

	for _, ev := range events {
		fmt.Fprintln(Out(), ev)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(eventsCmd)
}
