package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// findCmd represents the find command.
var findCmd = &cobra.Command{
	Use:   "find <key>",
	Short: "Look up a single key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := strconv.ParseInt(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("parsing key %q: %w", args[0], err)
		}

		sess := sessionFromContext(cmd.Context())
		entry, ok := sess.reg.Get(sess.tree)
		if !ok {
			fmt.Println("not found")
			return nil
		}
		entry.Lock()
		rec, found := entry.Tree.Find(int32(key))
		entry.Unlock()

		if !found {
			fmt.Println("not found")
			return nil
		}
		fmt.Printf("%s = %s\n", args[0], formatRecord(rec))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(findCmd)
}
