package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// deleteCmd represents the delete command.
var deleteCmd = &cobra.Command{
	Use:   "delete <key>",
	Short: "Delete a key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := strconv.ParseInt(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("parsing key %q: %w", args[0], err)
		}

		sess := sessionFromContext(cmd.Context())
		entry, err := sess.reg.GetOrCreate(sess.tree)
		if err != nil {
			return err
		}
		entry.Lock()
		found := entry.Tree.Delete(int32(key))
		entry.Unlock()

		if !found {
			fmt.Println("not found")
			return nil
		}
		if err := sess.save(cmd); err != nil {
			return fmt.Errorf("saving snapshot: %w", err)
		}
		fmt.Printf("deleted key %d\n", key)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
