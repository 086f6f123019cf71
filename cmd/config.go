// config.go implements "mdast config": get and set configuration.
//
// With no arguments, prints all settings. With a key, prints that value.
// With a key and value, sets it. Writes go to the global config unless
// --local is given.
package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ConnorGray/Markdown/internal/config"
	"github.com/ConnorGray/Markdown/internal/log"
)

var configLocal bool

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Get or set configuration",
	Long: `Get or set mdast configuration.

Keys:
  author.name          Author attribution for the audit log
  author.email         Author email
  render.list_marker   Bullet for unordered lists: *, - or +
  render.fence_tokens  Minimum fence length for fenced code blocks`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

func runConfig(c *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		all := cfg.All()
		keys := make([]string, 0, len(all))
		for k := range all {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(Out(), "%s = %s\n", k, all[k])
		}
		return nil

	case 1:
		v, err := cfg.Get(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(Out(), v)
		return nil

	default:
		key, value := args[0], args[1]
		scope := config.ScopeGlobal
		if configLocal {
			scope = config.ScopeLocal
		}

		target, err := config.LoadScope(scope)
		if err != nil {
			return err
		}
		if err := target.Set(key, value); err != nil {
			return err
		}
		err = target.SaveScope(scope)

		log.Event("cli:config", "set").Author(Author()).Detail("key", key).Write(err)

		return err
	}
}

func init() {
	configCmd.Flags().BoolVar(&configLocal, "local", false, "Write to .mdast/config.yaml instead of ~/.mdast/config.yaml")
	rootCmd.AddCommand(configCmd)
}
