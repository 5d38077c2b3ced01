/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ssargent/bptreedb/pkg/config"
	"github.com/ssargent/bptreedb/pkg/registry"
	"github.com/ssargent/bptreedb/pkg/snapshot"
)

type ctxKey string

const sessionCtxKey ctxKey = "session"

// session bundles what every subcommand needs to find and persist the
// tree it's operating against.
type session struct {
	cfg     *config.Config
	reg     *registry.Registry
	dataDir string
	tree    string
}

func (s *session) snapshotPath() string {
	return filepath.Join(s.dataDir, s.tree+".snap")
}

// save writes the current tree's contents back to its snapshot file.
// Every mutating subcommand calls this after the mutation succeeds,
// since the registry only holds trees in memory.
func (s *session) save(cmd *cobra.Command) error {
	entry, err := s.reg.GetOrCreate(s.tree)
	if err != nil {
		return err
	}
	entry.Lock()
	defer entry.Unlock()

	f, err := os.Create(s.snapshotPath())
	if err != nil {
		return fmt.Errorf("opening snapshot file: %w", err)
	}
	defer f.Close()

	return snapshot.Export(f, entry.Tree)
}

func sessionFromContext(ctx context.Context) *session {
	return ctx.Value(sessionCtxKey).(*session)
}

var rootCmd = &cobra.Command{
	Use:   "bptreedb",
	Short: "bptreedb - an in-memory B+Tree index engine",
	Long: `bptreedb is a CLI around an in-memory B+Tree index keyed by
signed 32-bit integers, with named trees, JSON-over-HTTP admin access,
and content snapshots for persistence between runs.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		dataDir, _ := cmd.Flags().GetString("data-dir")
		treeName, _ := cmd.Flags().GetString("tree")
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return fmt.Errorf("creating data dir: %w", err)
		}

		cfg := config.DefaultConfig()
		cfg.DataDir = dataDir

		reg := registry.New(cfg.DefaultOrder)
		sess := &session{cfg: cfg, reg: reg, dataDir: dataDir, tree: treeName}

		snapPath := sess.snapshotPath()
		if _, err := os.Stat(snapPath); err == nil {
			f, err := os.Open(snapPath)
			if err != nil {
				return fmt.Errorf("opening snapshot file: %w", err)
			}
			defer f.Close()

			tree, err := snapshot.Import(f, 0)
			if err != nil {
				return fmt.Errorf("importing snapshot: %w", err)
			}
			entry, err := reg.GetOrCreate(treeName)
			if err != nil {
				return err
			}
			entry.Lock()
			entry.Tree = tree
			entry.Unlock()
		} else if _, err := reg.GetOrCreate(treeName); err != nil {
			return err
		}

		cmd.SetContext(context.WithValue(cmd.Context(), sessionCtxKey, sess))
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to
// happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("data-dir", "d", "./data", "Data directory for tree snapshots")
	rootCmd.PersistentFlags().StringP("tree", "t", "default", "Name of the tree to operate against")
}
