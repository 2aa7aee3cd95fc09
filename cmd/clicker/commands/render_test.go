package commands

import (
	"bytes"
	"strings"
	"testing"
)

func runRender(t *testing.T, args ...string) string {
	t.Helper()
	cmd := rootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute %v: %v", args, err)
	}
	return buf.String()
}

func TestRenderZeroClicks(t *testing.T) {
	out := runRender(t, "render", "--plain")
	if !strings.Contains(out, "You clicked 0 times ...") {
		t.Fatalf("output:\n%s", out)
	}
	if !strings.Contains(out, "React App") {
		t.Fatalf("banner missing:\n%s", out)
	}
}

func TestRenderThreeClicks(t *testing.T) {
	out := runRender(t, "render", "--plain", "--clicks", "3")
	if !strings.Contains(out, "You clicked 3 times ...") {
		t.Fatalf("output:\n%s", out)
	}
	if !strings.Contains(out, "[ Click Me ]") {
		t.Fatalf("button missing:\n%s", out)
	}
}

func TestRenderCustomTitle(t *testing.T) {
	out := runRender(t, "render", "--plain", "--title", "Dashboard")
	if !strings.Contains(out, "Dashboard") {
		t.Fatalf("output:\n%s", out)
	}
}

func TestRenderNegativeClicks(t *testing.T) {
	cmd := rootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"render", "--clicks", "-1"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("negative clicks accepted")
	}
}
