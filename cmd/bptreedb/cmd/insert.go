package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var insertKind string

// insertCmd represents the insert command.
var insertCmd = &cobra.Command{
	Use:   "insert <key> <value>",
	Short: "Insert a key/value pair",
	Long: `Insert a key/value pair into the tree. If the key is already
present, the stored record is kept and the new value is ignored.

Example:
  bptreedb insert 42 hello --kind data`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := strconv.ParseInt(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("parsing key %q: %w", args[0], err)
		}
		rec, err := parseRecord(insertKind, args[1])
		if err != nil {
			return err
		}

		sess := sessionFromContext(cmd.Context())
		entry, err := sess.reg.GetOrCreate(sess.tree)
		if err != nil {
			return err
		}
		entry.Lock()
		entry.Tree.Insert(int32(key), rec)
		entry.Unlock()

		if err := sess.save(cmd); err != nil {
			return fmt.Errorf("saving snapshot: %w", err)
		}
		fmt.Printf("inserted key %d\n", key)
		return nil
	},
}

func init() {
	insertCmd.Flags().StringVar(&insertKind, "kind", "int", "record kind: int, float, char, data")
	rootCmd.AddCommand(insertCmd)
}
