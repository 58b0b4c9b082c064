package main

import (
	"github.com/spf13/cobra"

	"github.com/inkwell-run/cardtree/pkg/config"
)

var (
	cfgPath string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "cardtree",
	Short: "Walk, render, and route card-shaped content trees",
	Long: `cardtree builds a small in-memory content tree (headings, paragraphs,
block quotes, lists, code) and walks it with a depth-first visitor,
producing either CommonMark+GFM markdown or a styled terminal buffer.

Examples:
  cardtree demo render --format markdown
  cardtree demo render --format tui
  cardtree route check routes.yaml`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to cardtree.yaml (default ~/.cardtree/cardtree.yaml)")
}
