package cmd

import (
	"github.com/spf13/cobra"

	"github.com/aallbrig/verse/menu"
	"github.com/aallbrig/verse/render"
)

func (a *app) runTree(cmd *cobra.Command, inv *menu.Invocation) error {
	output, _ := inv.ValueNamed("output")
	filter, _ := inv.ValueNamed("filter")
	opts := render.Options{
		Filter:  filter,
		Output:  output,
		NoColor: a.cfg.NoColor || inv.FlagNamed("no-color"),
		Stats:   inv.FlagNamed("stats"),
		Colors:  a.cfg.Colors,
	}
	root, err := render.Select(render.MenuTree(a.menu), inv.Rest()...)
	if err != nil {
		return err
	}
	return render.New(opts).Render(cmd.OutOrStdout(), root)
}
