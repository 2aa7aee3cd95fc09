package vdom

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/clicker/internal/ui"
)

// Renderer draws a view tree as terminal text using a theme.
type Renderer struct {
	theme ui.Theme
}

func NewRenderer(t ui.Theme) *Renderer {
	return &Renderer{theme: t}
}

// Render returns the text for n and everything under it. Kinds the renderer
// does not know render their children, so a partial tree still displays.
func (r *Renderer) Render(n *Node) string {
	if n == nil {
		return ""
	}
	switch n.Kind {
	case "header":
		title := r.theme.Title.Render(n.Text)
		rule := r.theme.Muted.Render(strings.Repeat(r.theme.H, lipgloss.Width(n.Text)+2))
		return title + "\n" + rule
	case "p":
		return n.Text
	case "button":
		return r.theme.Accent.Render(r.theme.BtnOpen + n.Text + r.theme.BtnClose)
	default:
		parts := make([]string, 0, len(n.Children)+1)
		if n.Text != "" {
			parts = append(parts, n.Text)
		}
		for _, c := range n.Children {
			if s := r.Render(c); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "\n")
	}
}
