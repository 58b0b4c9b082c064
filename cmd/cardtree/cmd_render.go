package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/inkwell-run/cardtree/pkg/render/markdown"
	"github.com/inkwell-run/cardtree/pkg/render/tui"
	"github.com/inkwell-run/cardtree/pkg/walk"
)

var renderFormat string

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Commands that operate on a built-in sample card tree",
}

var demoRenderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the built-in sample card tree",
	Long: `Renders a small sample card tree built from pkg/entity's Spec/Builder
helpers. --format selects markdown or tui; "auto" (the default) picks tui
when stdout is an interactive terminal and falls back to markdown
otherwise.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, root := demoTree()
		w := walk.New(store)

		format := renderFormat
		if format == "auto" {
			if isatty.IsTerminal(os.Stdout.Fd()) {
				format = "tui"
			} else {
				format = "markdown"
			}
		}

		switch format {
		case "markdown":
			r := markdown.New()
			w.WalkCard(r, root)
			fmt.Print(r.String())
		case "tui":
			width, height := cfg.Tui.Width, cfg.Tui.Height
			buf := tui.NewBuffer(width, height)
			area := tui.Rect{X: 0, Y: 0, Width: width, Height: height}
			r := tui.New(buf, area, tui.DefaultConfig())
			w.WalkCard(r, root)
			fmt.Println(buf.String())
		default:
			return fmt.Errorf("unknown render format %q (want markdown, tui, or auto)", format)
		}
		return nil
	},
}

func init() {
	demoRenderCmd.Flags().StringVar(&renderFormat, "format", "auto", "output format: markdown, tui, or auto")
	demoCmd.AddCommand(demoRenderCmd)
	rootCmd.AddCommand(demoCmd)
}
