package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// statsCmd represents the stats command.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the current tree's order, height, and key count",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess := sessionFromContext(cmd.Context())
		entry, err := sess.reg.GetOrCreate(sess.tree)
		if err != nil {
			return err
		}
		entry.Lock()
		defer entry.Unlock()

		fmt.Printf("tree:   %s\n", entry.Name)
		fmt.Printf("order:  %d\n", entry.Tree.Order())
		fmt.Printf("height: %d\n", entry.Tree.Height())
		fmt.Printf("count:  %d\n", entry.Tree.Count())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
