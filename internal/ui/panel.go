package ui

// Panel frames content with the active theme's border.
func Panel(inner string) string {
	return current.Panel.Render(inner)
}
