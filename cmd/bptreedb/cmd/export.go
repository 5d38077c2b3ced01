package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssargent/bptreedb/pkg/snapshot"
)

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write the current tree's contents to a snapshot file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess := sessionFromContext(cmd.Context())
		entry, err := sess.reg.GetOrCreate(sess.tree)
		if err != nil {
			return err
		}

		f, err := os.Create(args[0])
		if err != nil {
			return fmt.Errorf("creating %s: %w", args[0], err)
		}
		defer f.Close()

		entry.Lock()
		err = snapshot.Export(f, entry.Tree)
		entry.Unlock()
		if err != nil {
			return fmt.Errorf("exporting: %w", err)
		}
		fmt.Printf("exported to %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
