package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// setOrderCmd represents the set-order command.
var setOrderCmd = &cobra.Command{
	Use:   "set-order <order>",
	Short: "Change the current tree's fan-out (only while it is empty)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		order, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("parsing order %q: %w", args[0], err)
		}

		sess := sessionFromContext(cmd.Context())
		entry, err := sess.reg.GetOrCreate(sess.tree)
		if err != nil {
			return err
		}
		entry.Lock()
		err = entry.Tree.SetOrder(order)
		got := entry.Tree.Order()
		entry.Unlock()
		if err != nil {
			return err
		}

		if got != order {
			fmt.Printf("tree is non-empty; order remains %d\n", got)
			return nil
		}
		fmt.Printf("order set to %d\n", got)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setOrderCmd)
}
