package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles the styles and symbols the renderers pull from.
// All UI helpers read the active theme via Current().
type Theme struct {
	Name string

	Title  lipgloss.Style
	Accent lipgloss.Style
	Muted  lipgloss.Style
	Help   lipgloss.Style
	Error  lipgloss.Style

	// Panel frames a whole page.
	Panel lipgloss.Style

	// Rule char under the banner, button brackets.
	H        string
	BtnOpen  string
	BtnClose string
}

var current Theme

func init() {
	SetTheme("classic")
}

// SetTheme installs a named theme; unknown names fall back to classic.
// "mono" is plain ASCII with no color, for pipes and automation.
func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Name:   "neon",
			Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Accent: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Muted:  lipgloss.NewStyle().Faint(true),
			Help:   lipgloss.NewStyle().Faint(true),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Panel: lipgloss.NewStyle().
				Border(lipgloss.DoubleBorder()).
				BorderForeground(lipgloss.Color("13")).
				Padding(0, 1),
			H: "─", BtnOpen: "⟨ ", BtnClose: " ⟩",
		}
	case "mono":
		plain := lipgloss.NewStyle()
		asciiBorder := lipgloss.Border{
			Top: "-", Bottom: "-", Left: "|", Right: "|",
			TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
		}
		current = Theme{
			Name:  "mono",
			Title: plain, Accent: plain, Muted: plain, Help: plain, Error: plain,
			Panel: lipgloss.NewStyle().Border(asciiBorder).Padding(0, 1),
			H:     "-", BtnOpen: "[ ", BtnClose: " ]",
		}
	default: // classic
		current = Theme{
			Name:   "classic",
			Title:  lipgloss.NewStyle().Bold(true),
			Accent: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Muted:  lipgloss.NewStyle().Faint(true),
			Help:   lipgloss.NewStyle().Faint(true),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Panel: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("8")).
				Padding(0, 1),
			H: "─", BtnOpen: "[ ", BtnClose: " ]",
		}
	}
}

// Expose what renderers need
func Current() Theme { return current }
