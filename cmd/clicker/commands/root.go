package commands

import (
	"github.com/spf13/cobra"

	"github.com/idilsaglam/clicker/internal/counter"
	"github.com/idilsaglam/clicker/internal/navbar"
	"github.com/idilsaglam/clicker/internal/tui"
	"github.com/idilsaglam/clicker/internal/ui"
)

var (
	themeName string
	title     string
)

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clicker",
		Short: "A one-button counter page for the terminal",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ui.SetTheme(themeName)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(counter.New(navbar.NavBar{}, title))
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&themeName, "theme", "classic", "theme: classic, neon or mono")
	cmd.PersistentFlags().StringVar(&title, "title", counter.DefaultTitle, "banner title")

	cmd.AddCommand(renderCmd())
	return cmd
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd().Execute()
}
