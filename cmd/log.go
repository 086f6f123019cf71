// log.go implements "mdast log": show recent audit log entries.
package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ConnorGray/Markdown/internal/log"
)

var logCount int

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show recent operations from the audit log",
	Args:  cobra.NoArgs,
	RunE:  runLog,
}

func runLog(c *cobra.Command, _ []string) error {
	entries, err := log.Recent(logCount)
	if err != nil {
		return fmt.Errorf("reading audit log: %w", err)
	}
	if len(entries) == 0 {
		fmt.Fprintln(Out(), "no log entries")
		return nil
	}

	for _, e := range entries {
		status := "ok"
		if !e.Success {
			status = "error: " + e.Error
		}
		ts := time.Unix(e.Start, 0).Format(time.RFC3339)
		line := fmt.Sprintf("%s  %-20s %-12s %s", ts, e.Source, e.Action, status)
		if e.Path != "" {
			line += "  " + e.Path
		}
		fmt.Fprintln(Out(), line)
	}
	return nil
}

func init() {
	logCmd.Flags().IntVarP(&logCount, "count", "n", 20, "Number of entries to show")
	rootCmd.AddCommand(logCmd)
}
