// Package counter holds the page's one piece of state: a click counter owned
// by a single view.
package counter

import (
	"fmt"

	"github.com/idilsaglam/clicker/internal/navbar"
	"github.com/idilsaglam/clicker/internal/vdom"
)

// DefaultTitle is the banner title used when none is configured.
const DefaultTitle = "React App"

const buttonLabel = "Click Me"

// View owns the counter: a non-negative integer starting at 0 that moves up
// by exactly one per activation. Nothing else may read or write it.
type View struct {
	banner navbar.Banner
	title  string
	count  int
}

// New mounts a view with count 0. An empty title falls back to DefaultTitle.
func New(banner navbar.Banner, title string) *View {
	if title == "" {
		title = DefaultTitle
	}
	return &View{banner: banner, title: title}
}

// Count returns the current counter value.
func (v *View) Count() int { return v.count }

// Title returns the banner title the view was mounted with.
func (v *View) Title() string { return v.title }

// Activate advances the counter by one. It ignores any event payload and
// cannot fail.
func (v *View) Activate() { v.count++ }

// OutputText is the text the output element shows for a given count.
func OutputText(count int) string {
	return fmt.Sprintf("You clicked %d times ...", count)
}

// Render builds the page: the banner, the output line, and the button. The
// output always reflects the in-memory count at the time of the call, and
// rendering mutates nothing, so repeated calls yield identical trees.
func (v *View) Render() *vdom.Node {
	return vdom.Div(nil,
		v.banner.Render(v.title),
		vdom.Paragraph(OutputText(v.count), map[string]string{"id": "output"}),
		vdom.Button(buttonLabel, map[string]string{"id": "add-button"}, v.Activate),
	)
}
