package tui

import "github.com/charmbracelet/lipgloss"

// Config controls the cosmetic choices TuiRenderer makes while painting a
// card subtree (spec.md §4.6's "Configuration").
type Config struct {
	HeadingStyle   lipgloss.Style
	H1Gap          int
	QuoteIndent    int
	QuoteBarGlyph  rune
	BulletGlyph    rune
	LinkColor      lipgloss.Color
	RuleGlyph      rune
	CodeBackground lipgloss.Color
}

// DefaultConfig mirrors the teacher's ocean-teal palette (pkg/ux in the
// reference CLI) applied to the card renderer's own style needs.
func DefaultConfig() Config {
	return Config{
		HeadingStyle:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2CD7C7")),
		H1Gap:          1,
		QuoteIndent:    2,
		QuoteBarGlyph:  '│',
		BulletGlyph:    '•',
		LinkColor:      lipgloss.Color("#1D9EA3"),
		RuleGlyph:      '─',
		CodeBackground: lipgloss.Color("#0C424E"),
	}
}

func (c Config) styleFor(style nodeBits) lipgloss.Style {
	s := lipgloss.NewStyle()
	if style.bold {
		s = s.Bold(true)
	}
	if style.italic {
		s = s.Italic(true)
	}
	if style.code {
		s = s.Background(c.CodeBackground)
	}
	if style.strike {
		s = s.Strikethrough(true)
	}
	if style.link {
		s = s.Underline(true).Foreground(c.LinkColor)
	}
	return s
}

// nodeBits is the renderer-local decoding of node.InlineStyle into the
// lipgloss attributes spec.md §4.6 names explicitly.
type nodeBits struct {
	bold, italic, code, strike, link bool
}
