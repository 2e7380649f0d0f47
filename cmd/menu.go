package cmd

import (
	"strings"

	"github.com/aallbrig/verse/constraint"
	"github.com/aallbrig/verse/menu"
	"github.com/aallbrig/verse/render"
)

// NewMenu declares the verse command line. Each call returns a new menu.
func NewMenu(settings ...menu.MenuSetting) *menu.Menu {
	build := menu.NewStatement("build", menu.AsVerb(),
		menu.WithSummary("Compile verse sources."),
		menu.WithFlags(menu.NewFlag("verbose", "v")),
		menu.WithOptions(
			menu.NewOption([]string{"out", "o"},
				menu.AsRequired(),
				menu.WithPlaceholder("PATH"),
				menu.WithDescription("Where to write the compiled output.")),
			menu.NewOption([]string{"jobs", "j"},
				menu.WithPlaceholder("N"),
				menu.WithDefault("1"),
				menu.WithConstraints(constraint.Int(constraint.Gt(0))),
				menu.WithDescription("Number of parallel jobs.")),
			menu.NewOption([]string{"define", "D"},
				menu.AsRepeatable(),
				menu.WithPlaceholder("NAME=VALUE"),
				menu.WithConstraints(constraint.MustMatch(`[A-Za-z_][A-Za-z0-9_]*=.*`)),
				menu.WithDescription("Define a compile-time constant.")),
		),
		menu.WithResidue(menu.ResidueRequired, "SOURCE"),
	)

	tree := menu.NewStatement("tree", menu.AsVerb(),
		menu.WithSummary("Show this command line as a tree."),
		menu.WithResidue(menu.ResidueAllowed, "STATEMENT"),
		menu.WithFlags(menu.NewFlag("no-color"), menu.NewFlag("stats")),
		menu.WithOptions(
			menu.NewOption([]string{"output", "O"},
				menu.WithPlaceholder("FORMAT"),
				menu.WithDefault("text"),
				menu.WithConstraints(constraint.MustMatch(strings.Join(render.Formats, "|"))),
				menu.WithDescription("Output format: text, json or yaml.")),
			menu.NewOption([]string{"filter"},
				menu.WithPlaceholder("PATTERN"),
				menu.WithDescription("Only show statements whose name contains PATTERN.")),
		),
	)

	history := menu.NewStatement("history", menu.AsVerb(),
		menu.WithSummary("List, delete or clear recorded invocations."),
		menu.WithFlags(menu.NewFlag("clear")),
		menu.WithOptions(
			menu.NewOption([]string{"limit", "n"},
				menu.WithPlaceholder("N"),
				menu.WithDefault("20"),
				menu.WithConstraints(constraint.Int(constraint.Gt(0))),
				menu.WithDescription("Number of entries to list.")),
			menu.NewOption([]string{"delete"},
				menu.WithPlaceholder("ID"),
				menu.WithConstraints(constraint.MustMatch(`[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`)),
				menu.WithDescription("Delete the entry with this ID.")),
		),
	)

	version := menu.NewStatement("version", menu.AsVerb(),
		menu.WithSummary("Print version information."))

	settings = append([]menu.MenuSetting{
		menu.WithEpilogue("Set VERSE_NO_HISTORY=1 to stop recording invocations."),
		menu.WithStatements(menu.GlobalHelp(), menu.CommandHelp(), build, tree, history, version),
	}, settings...)
	return menu.New("verse", "Compile a verse code.", settings...)
}
