// Package cobramenu runs a menu.Menu as a cobra command. Cobra provides the
// process plumbing (output streams, argument source, error silencing); the
// menu does all argument parsing.
package cobramenu

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aallbrig/verse/menu"
)

// Handler runs a parsed invocation. Help invocations never reach it.
type Handler func(cmd *cobra.Command, inv *menu.Invocation) error

// NewCommand returns a root command for m. Flag parsing is disabled so every
// argument reaches m.Parse unchanged.
func NewCommand(m *menu.Menu, handler Handler) *cobra.Command {
	return &cobra.Command{
		Use:                m.Name(),
		Short:              m.Description(),
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := m.Validate(); err != nil {
				return err
			}
			inv, err := m.Parse(args)
			if err != nil {
				return err
			}
			return dispatch(cmd, m, inv, handler)
		},
	}
}

func dispatch(cmd *cobra.Command, m *menu.Menu, inv *menu.Invocation, handler Handler) error {
	switch s := inv.Statement(); {
	case s.IsGlobalHelp():
		fmt.Fprint(cmd.OutOrStdout(), m.RenderHelp())
		return nil
	case s.IsCommandHelp():
		text, err := m.RenderStatementHelp(inv.Topic())
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), text)
		return nil
	case handler == nil:
		return fmt.Errorf("no handler for statement %q", s.Name())
	default:
		return handler(cmd, inv)
	}
}

// Execute runs c, reports any error on c's error stream and returns the
// process exit code for it.
func Execute(c *cobra.Command) int {
	err := c.Execute()
	if err == nil {
		return menu.ExitOK
	}
	fmt.Fprintln(c.ErrOrStderr(), "Error:", err)
	var ie *menu.InvocationError
	if errors.As(err, &ie) {
		fmt.Fprintf(c.ErrOrStderr(), "Run '%s --help' for usage.\n", c.Name())
	}
	return menu.ExitCode(err)
}
