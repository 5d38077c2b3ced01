package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// rangeCmd represents the range command.
var rangeCmd = &cobra.Command{
	Use:   "range <lo> <hi>",
	Short: "List every key/value pair with lo <= key <= hi",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lo, err := strconv.ParseInt(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("parsing lo %q: %w", args[0], err)
		}
		hi, err := strconv.ParseInt(args[1], 10, 32)
		if err != nil {
			return fmt.Errorf("parsing hi %q: %w", args[1], err)
		}

		sess := sessionFromContext(cmd.Context())
		entry, ok := sess.reg.Get(sess.tree)
		if !ok {
			return nil
		}
		entry.Lock()
		pairs := entry.Tree.Range(int32(lo), int32(hi))
		entry.Unlock()

		for _, kr := range pairs {
			fmt.Printf("%d = %s\n", kr.Key, formatRecord(kr.Record))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rangeCmd)
}
