package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ssargent/bptreedb/pkg/api"
	"github.com/ssargent/bptreedb/pkg/snapshot"
)

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the admin HTTP API",
	Long: `Start the admin HTTP API, loading every snapshot found in
--data-dir as a named tree.

Example:
  bptreedb serve --api-key=mysecretkey --port=8080`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetInt("port")
		apiKey, _ := cmd.Flags().GetString("api-key")
		if apiKey == "" {
			return fmt.Errorf("--api-key is required")
		}

		sess := sessionFromContext(cmd.Context())

		matches, err := filepath.Glob(filepath.Join(sess.dataDir, "*.snap"))
		if err != nil {
			return fmt.Errorf("listing snapshots: %w", err)
		}
		for _, path := range matches {
			name := strings.TrimSuffix(filepath.Base(path), ".snap")
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("opening %s: %w", path, err)
			}
			tree, err := snapshot.Import(f, 0)
			f.Close()
			if err != nil {
				return fmt.Errorf("importing %s: %w", path, err)
			}
			entry, err := sess.reg.GetOrCreate(name)
			if err != nil {
				return err
			}
			entry.Lock()
			entry.Tree = tree
			entry.Unlock()
		}

		return api.ListenAndServe(port, sess.reg, apiKey)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	serveCmd.Flags().String("api-key", "", "API key required on /v1 routes")
}
