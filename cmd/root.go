// root.go defines the root command and CLI execution entry point.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ConnorGray/Markdown/internal/config"
	"github.com/ConnorGray/Markdown/internal/log"
)

var rootCmd = &cobra.Command{
	Use:   "mdast",
	Short: "Restructure Markdown between source, events, and AST",
	Long: `mdast parses Markdown into an AST, prints it back in canonical form,
and converts documents between representations: canonical source text,
a flat parse event stream, and notebook files.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	SilenceUsage: true,
}

// cfg is the configuration loaded before command execution.
var cfg *config.Config

// out is the output writer for commands. Defaults to os.Stdout.
var out io.Writer = os.Stdout

// Out returns the output writer.
func Out() io.Writer { return out }

// Author returns the configured author attribution for audit logging.
func Author() string {
	if cfg == nil {
		return ""
	}
	return cfg.AuthorString()
}

// Execute runs the root command and handles process lifecycle.
// Opens audit logging, executes the command, and closes the log before
// exit. Exit code 1 indicates error.
func Execute() {
	// Initialise audit logger (warn if it fails, but continue)
	if err := log.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
	}
	defer log.Close()

	if wd, err := os.Getwd(); err == nil {
		log.SetProject(wd)
	}

	if err := rootCmd.Execute(); err != nil {
		log.Close()
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing.
func RootCmd() *cobra.Command {
	return rootCmd
}

// loadConfig loads configuration once per process.
func loadConfig() error {
	if cfg != nil {
		return nil
	}
	c, err := config.Load()
	if err != nil {
		return err
	}
	cfg = c
	return nil
}

// readInput returns the content of the named file, or stdin when path is
// "" or "-". The second return is a display label for diagnostics.
func readInput(path string) (string, string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), "stdin", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}
	return string(data), path, nil
}

// argOrEmpty returns the first positional argument or "".
func argOrEmpty(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

// ensureTrailingNewline appends a newline unless the text already ends
// with one or is empty.
func ensureTrailingNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}

func init() {
	rootCmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		return loadConfig()
	}
}
