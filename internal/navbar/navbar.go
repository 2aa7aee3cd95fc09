// Package navbar provides the page banner. The counter view takes it as an
// injected Banner, so tests can swap in a stub without the stock styling.
package navbar

import "github.com/idilsaglam/clicker/internal/vdom"

// Banner renders a static header for a title.
type Banner interface {
	Render(title string) *vdom.Node
}

// NavBar is the stock banner. It holds no state: the same title always yields
// the same header node, and nothing else on the page can change it.
type NavBar struct{}

func (NavBar) Render(title string) *vdom.Node {
	return vdom.Header(title, map[string]string{"id": "navbar"})
}
