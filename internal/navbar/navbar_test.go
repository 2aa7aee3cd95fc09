package navbar_test

import (
	"testing"

	"github.com/idilsaglam/clicker/internal/navbar"
)

func TestNavBarIsStatic(t *testing.T) {
	nb := navbar.NavBar{}
	a := nb.Render("React App")
	b := nb.Render("React App")

	if a.Kind != "header" {
		t.Fatalf("kind = %q, want header", a.Kind)
	}
	if a.Text != "React App" {
		t.Fatalf("text = %q", a.Text)
	}
	if a.ID() != "navbar" {
		t.Fatalf("id = %q", a.ID())
	}
	if a.Text != b.Text || a.Kind != b.Kind || a.ID() != b.ID() {
		t.Fatal("same title rendered differently across calls")
	}
}
