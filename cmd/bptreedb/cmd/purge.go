package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// purgeCmd represents the purge command.
var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Remove every key from the current tree",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess := sessionFromContext(cmd.Context())
		entry, err := sess.reg.GetOrCreate(sess.tree)
		if err != nil {
			return err
		}
		entry.Lock()
		entry.Tree.Purge()
		entry.Unlock()

		if err := sess.save(cmd); err != nil {
			return fmt.Errorf("saving snapshot: %w", err)
		}
		fmt.Println("purged")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(purgeCmd)
}
