package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/inkwell-run/cardtree/pkg/render/tui"
	"github.com/inkwell-run/cardtree/pkg/walk"
)

var demoInteractiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Render the sample card tree into a scrollable bubbletea viewport",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, root := demoTree()
		width, height := cfg.Tui.Width, cfg.Tui.Height
		buf := tui.NewBuffer(width, height*4) // taller than the viewport so it scrolls
		area := tui.Rect{X: 0, Y: 0, Width: width, Height: height * 4}
		r := tui.New(buf, area, tui.DefaultConfig())
		walk.New(store).WalkCard(r, root)

		m := interactiveModel{content: buf.String(), width: width, height: height}
		p := tea.NewProgram(m)
		_, err := p.Run()
		return err
	},
}

type interactiveModel struct {
	content       string
	width, height int
	vp            viewport.Model
	ready         bool
}

func (m interactiveModel) Init() tea.Cmd { return nil }

func (m interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		if !m.ready {
			m.vp = viewport.New(m.width, m.height)
			m.vp.SetContent(m.content)
			m.ready = true
		}
	}
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m interactiveModel) View() string {
	if !m.ready {
		return fmt.Sprintf("%s\n(press q to quit)\n", m.content)
	}
	return m.vp.View() + "\n(press q to quit, arrows/space to scroll)"
}

func init() {
	demoCmd.AddCommand(demoInteractiveCmd)
}
