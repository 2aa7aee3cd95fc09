package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/clicker/internal/counter"
	"github.com/idilsaglam/clicker/internal/navbar"
	"github.com/idilsaglam/clicker/internal/ui"
	"github.com/idilsaglam/clicker/internal/vdom"
)

func renderCmd() *cobra.Command {
	var (
		clicks int
		plain  bool
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the page after N clicks and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			if clicks < 0 {
				return fmt.Errorf("clicks must be >= 0, got %d", clicks)
			}
			if plain {
				ui.SetTheme("mono")
			}

			v := counter.New(navbar.NavBar{}, title)
			for i := 0; i < clicks; i++ {
				vdom.Activate(v.Render(), "add-button")
			}

			r := vdom.NewRenderer(ui.Current())
			fmt.Fprintln(cmd.OutOrStdout(), ui.Panel(r.Render(v.Render())))
			return nil
		},
	}
	cmd.Flags().IntVarP(&clicks, "clicks", "n", 0, "number of button activations before rendering")
	cmd.Flags().BoolVar(&plain, "plain", false, "plain ASCII output without color")
	return cmd
}
