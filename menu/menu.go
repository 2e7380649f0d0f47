// Package menu declares, validates and parses command-line menus.
//
// A Menu holds Statements; a Statement holds Flags and Options; Options may
// carry constraints from package constraint. A program builds its Menu once,
// calls Validate (a failure there is a bug in the program, not in user input)
// and then uses Parse for every argument vector:
//
//	verbose := menu.NewFlag("verbose", "v")
//	out := menu.NewOption([]string{"out", "o"}, menu.AsRequired(), menu.WithPlaceholder("PATH"))
//	m := menu.New("verse", "Compile a verse code.",
//		menu.WithStatements(
//			menu.GlobalHelp(),
//			menu.NewStatement("build", menu.AsVerb(), menu.WithFlags(verbose), menu.WithOptions(out)),
//		))
//	m.MustValidate()
//	inv, err := m.Parse(os.Args[1:])
//
// A validated Menu is never modified and can be shared between goroutines.
package menu

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/aallbrig/verse/contract"
)

// Menu is the full command-line surface of a program.
type Menu struct {
	name        string
	description string
	epilogue    string
	statements  []*Statement
	log         zerolog.Logger
}

// MenuSetting configures a Menu in New.
type MenuSetting func(*Menu)

// WithEpilogue sets text printed at the end of the help screen.
func WithEpilogue(e string) MenuSetting { return func(m *Menu) { m.epilogue = e } }

// WithStatements appends statements; Parse tries them in this order.
func WithStatements(stmts ...*Statement) MenuSetting {
	return func(m *Menu) { m.statements = append(m.statements, stmts...) }
}

// WithLogger sets the logger used for parse tracing at debug level.
func WithLogger(l zerolog.Logger) MenuSetting { return func(m *Menu) { m.log = l } }

// New declares a menu for the program called name.
func New(name, description string, settings ...MenuSetting) *Menu {
	m := &Menu{name: name, description: description, log: zerolog.Nop()}
	for _, s := range settings {
		s(m)
	}
	return m
}

func (m *Menu) Name() string        { return m.name }
func (m *Menu) Description() string { return m.description }
func (m *Menu) Epilogue() string    { return m.epilogue }

// Statements returns the statements in declaration order.
func (m *Menu) Statements() []*Statement { return append([]*Statement(nil), m.statements...) }

// Statement returns the first statement called name, or nil.
func (m *Menu) Statement(name string) *Statement {
	for _, s := range m.statements {
		if s != nil && s.name == name {
			return s
		}
	}
	return nil
}

// Validate checks every statement and the menu as a whole. It returns a
// *DefinitionError holding every cause found, or nil when the menu is well
// formed.
func (m *Menu) Validate() error {
	var c causes
	if len(m.statements) == 0 {
		c.add(EmptyMenu, "", m.name, "menu has no statements")
	}
	seen := map[string]bool{}
	for i, s := range m.statements {
		if err := contract.NotNil(contract.Invariant, s, fmt.Sprintf("statement #%d", i+1)); err != nil {
			c.add(InvalidStatementName, "", "", err.Error())
			continue
		}
		c.merge(s.Validate())
		if seen[s.name] {
			c.add(StatementNameCollision, "", s.name, "")
		}
		seen[s.name] = true
	}
	err := c.err()
	if err != nil {
		m.log.Debug().Int("causes", len(c.list)).Str("menu", m.name).Msg("menu validation failed")
	}
	return err
}

// MustValidate panics when Validate fails.
func (m *Menu) MustValidate() *Menu {
	if err := m.Validate(); err != nil {
		panic(err)
	}
	return m
}

// Parse matches argv against each statement in declaration order. The first
// statement that accepts argv, successfully or with an *InvocationError,
// decides the result. When none does, Parse returns an unknown-command
// *InvocationError.
func (m *Menu) Parse(argv []string) (*Invocation, error) {
	for _, s := range m.statements {
		inv, err := s.TryParse(argv)
		if errors.Is(err, ErrNoMatch) {
			m.log.Debug().Str("statement", s.name).Msg("no match")
			continue
		}
		if err != nil {
			m.log.Debug().Str("statement", s.name).Err(err).Msg("parse failed")
			return nil, err
		}
		if s.kind == kindCommandHelp {
			topic := inv.rest[0]
			if m.Statement(topic) == nil {
				return nil, &InvocationError{Kind: UnknownCommand, Statement: s.name, Token: topic}
			}
		}
		m.log.Debug().Str("statement", s.name).Strs("argv", argv).Msg("matched")
		return inv, nil
	}
	e := &InvocationError{Kind: UnknownCommand}
	if len(argv) > 0 {
		e.Token = argv[0]
	}
	return nil, e
}
