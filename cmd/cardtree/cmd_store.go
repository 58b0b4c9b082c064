package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkwell-run/cardtree/pkg/entity"
)

var storeDir string

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Persist and reload the sample card tree through a Badger-backed store",
}

var storeSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Build the sample card tree and snapshot it into a Badger directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		mem, root := demoTree()
		bs, err := entity.OpenBadgerStore(storeDir)
		if err != nil {
			return fmt.Errorf("opening badger store: %w", err)
		}
		defer bs.Close()

		if err := bs.Save(mem.Records(), root); err != nil {
			return fmt.Errorf("saving snapshot: %w", err)
		}
		fmt.Printf("saved %d records to %s (root %s)\n", len(mem.Records()), storeDir, root)
		return nil
	},
}

var storeInspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Reopen a Badger-backed snapshot and print its root and the root's child count",
	RunE: func(cmd *cobra.Command, args []string) error {
		bs, err := entity.OpenBadgerStore(storeDir)
		if err != nil {
			return fmt.Errorf("opening badger store: %w", err)
		}
		defer bs.Close()

		root, ok := bs.Root()
		if !ok {
			return fmt.Errorf("no snapshot found in %s", storeDir)
		}
		fmt.Printf("root: %s\n", root)
		fmt.Printf("children of root: %d\n", len(bs.ChildrenOf(root)))
		return nil
	},
}

func init() {
	storeCmd.PersistentFlags().StringVar(&storeDir, "dir", "./cardtree-store", "Badger database directory")
	storeCmd.AddCommand(storeSaveCmd, storeInspectCmd)
	rootCmd.AddCommand(storeCmd)
}
