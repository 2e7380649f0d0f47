package menu_test

import (
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aallbrig/verse/constraint"
	"github.com/aallbrig/verse/menu"
)

func helpMenu() *menu.Menu {
	build := menu.NewStatement("build", menu.AsVerb(),
		menu.WithSummary("Compile sources."),
		menu.WithFlags(menu.NewFlag("verbose", "v")),
		menu.WithOptions(
			menu.NewOption([]string{"out", "o"},
				menu.AsRequired(),
				menu.WithPlaceholder("PATH"),
				menu.WithDescription("Where to write output.")),
			menu.NewOption([]string{"jobs", "j"},
				menu.WithPlaceholder("N"),
				menu.WithDefault("1"),
				menu.WithConstraints(constraint.Int(constraint.Gt(0)))),
		),
		menu.WithResidue(menu.ResidueAllowed, "SOURCE"),
	)
	return menu.New("verse", "Compile a verse code.",
		menu.WithEpilogue("See docs."),
		menu.WithStatements(menu.GlobalHelp(), menu.CommandHelp(), build))
}

func platform(s string) string {
	if runtime.GOOS == "windows" {
		return strings.ReplaceAll(s, "\n", "\r\n")
	}
	return s
}

func TestRenderHelp(t *testing.T) {
	want := platform(`verse -- Compile a verse code.

help

  verse [--help]
    Show this help screen.

help on command

  verse help STATEMENT
    Show help for one statement.

build

  verse build [--verbose] --out PATH [--jobs N] [SOURCE...]
    Compile sources.
    --out, -o PATH
        Where to write output.
    --jobs, -j N
        must satisfy: > 0
        default: 1

See docs.
`)
	m := helpMenu()
	got := m.RenderHelp()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RenderHelp() mismatch (-want +got):\n%s", diff)
	}
	if again := m.RenderHelp(); again != got {
		t.Error("RenderHelp() is not stable across calls")
	}
}

func TestRenderHelpWithoutEpilogue(t *testing.T) {
	m := menu.New("tiny", "Does little.", menu.WithStatements(menu.NewStatement("go", menu.AsVerb())))
	want := platform("tiny -- Does little.\n\ngo\n\n  tiny go\n")
	if got := m.RenderHelp(); got != want {
		t.Errorf("RenderHelp() = %q, want %q", got, want)
	}
}

func TestRenderStatementHelp(t *testing.T) {
	m := helpMenu()
	got, err := m.RenderStatementHelp("build")
	if err != nil {
		t.Fatalf("RenderStatementHelp() error: %v", err)
	}
	if !strings.HasPrefix(got, platform("build\n\n  verse build ")) {
		t.Errorf("RenderStatementHelp() = %q, want build extract", got)
	}
	if !strings.Contains(m.RenderHelp(), got) {
		t.Error("statement extract should appear verbatim in the full help")
	}

	_, err = m.RenderStatementHelp("nope")
	if ie := invocationErr(t, err); ie.Kind != menu.UnknownCommand || ie.Token != "nope" {
		t.Errorf("got %s %q, want unknown-command nope", ie.Kind, ie.Token)
	}
	if _, err := m.RenderStatementHelp(""); err == nil {
		t.Error("RenderStatementHelp(\"\") should fail its precondition")
	}
}

func TestUsage(t *testing.T) {
	tests := []struct {
		stmt *menu.Statement
		want string
	}{
		{menu.GlobalHelp(), "prog [--help]"},
		{menu.CommandHelp(), "prog help STATEMENT"},
		{menu.NewStatement("cat", menu.AsVerb(), menu.WithResidue(menu.ResidueRequired, "FILE")), "prog cat FILE..."},
		{menu.NewStatement("tag", menu.AsVerb(), menu.WithOptions(
			menu.NewOption([]string{"label"}, menu.AsRepeatable()))), "prog tag [--label LABEL]..."},
		{menu.NewStatement("short", menu.WithFlags(menu.NewFlag("x")), menu.WithOptions(
			menu.NewOption([]string{"n"}, menu.AsRequired()))), "prog [-x] -n VALUE"},
	}
	m := menu.New("prog", "d")
	for _, tt := range tests {
		if got := m.Usage(tt.stmt); got != tt.want {
			t.Errorf("Usage(%s) = %q, want %q", tt.stmt.Name(), got, tt.want)
		}
	}
}
