package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssargent/bptreedb/pkg/snapshot"
)

var importOrder int

// importCmd represents the import command.
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the current tree's contents with a snapshot file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening %s: %w", args[0], err)
		}
		defer f.Close()

		tree, err := snapshot.Import(f, importOrder)
		if err != nil {
			return fmt.Errorf("importing: %w", err)
		}

		sess := sessionFromContext(cmd.Context())
		entry, err := sess.reg.GetOrCreate(sess.tree)
		if err != nil {
			return err
		}
		entry.Lock()
		entry.Tree = tree
		entry.Unlock()

		if err := sess.save(cmd); err != nil {
			return fmt.Errorf("saving snapshot: %w", err)
		}
		fmt.Printf("imported from %s\n", args[0])
		return nil
	},
}

func init() {
	importCmd.Flags().IntVar(&importOrder, "order", 0, "override the tree's order on import (0 keeps the exported order)")
	rootCmd.AddCommand(importCmd)
}
