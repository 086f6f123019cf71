// version.go implements "mdast version".
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ConnorGray/Markdown/internal/version"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build version information",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		if versionShort {
			fmt.Fprintln(Out(), version.Short())
			return
		}
		fmt.Fprint(Out(), version.Get().String())
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print only the version tag")
	rootCmd.AddCommand(versionCmd)
}
