package menu

import (
	"fmt"
	"strings"

	"github.com/aallbrig/verse/contract"
)

// Residue says what a statement does with positional arguments left over
// after flags and options are consumed.
type Residue int

const (
	ResidueForbidden Residue = iota
	ResidueAllowed
	ResidueRequired
)

func (r Residue) String() string {
	switch r {
	case ResidueForbidden:
		return "forbidden"
	case ResidueAllowed:
		return "allowed"
	case ResidueRequired:
		return "required"
	default:
		return "unknown"
	}
}

type statementKind int

const (
	kindPlain statementKind = iota
	kindGlobalHelp
	kindCommandHelp
)

// Statement is one command form of a menu: a name, its flags and options,
// and a policy for positional residue.
//
// A verb statement is selected by its name appearing as the first token
// ("build --out x"). Other statements are flag driven and are selected by
// their first flag, option or positional.
type Statement struct {
	name      string
	summary   string
	verb      string
	flags     []*Flag
	options   []*Option
	residue   Residue
	residueOf string
	// maxResidue caps the positional tail; 0 means unlimited.
	maxResidue int
	kind       statementKind
}

// StatementSetting configures a Statement in NewStatement.
type StatementSetting func(*Statement)

// AsVerb makes the statement's name a literal first token.
func AsVerb() StatementSetting { return func(s *Statement) { s.verb = s.name } }

// WithSummary sets a one-line description shown under the usage line.
func WithSummary(summary string) StatementSetting {
	return func(s *Statement) { s.summary = summary }
}

// WithFlags appends flags in declaration order.
func WithFlags(flags ...*Flag) StatementSetting {
	return func(s *Statement) { s.flags = append(s.flags, flags...) }
}

// WithOptions appends options in declaration order.
func WithOptions(options ...*Option) StatementSetting {
	return func(s *Statement) { s.options = append(s.options, options...) }
}

// WithResidue sets the positional policy and the placeholder used in help.
func WithResidue(r Residue, placeholder string) StatementSetting {
	return func(s *Statement) {
		s.residue = r
		s.residueOf = placeholder
	}
}

// NewStatement declares a statement. Problems are reported by Validate.
func NewStatement(name string, settings ...StatementSetting) *Statement {
	s := &Statement{name: name}
	for _, fn := range settings {
		fn(s)
	}
	if s.residueOf == "" {
		s.residueOf = "ARGS"
	}
	return s
}

func (s *Statement) Name() string     { return s.name }
func (s *Statement) Summary() string  { return s.summary }
func (s *Statement) IsVerb() bool     { return s.verb != "" }
func (s *Statement) Residue() Residue { return s.residue }

// Verb returns the literal first token that selects the statement, or "".
func (s *Statement) Verb() string { return s.verb }

// IsGlobalHelp reports whether s was built by GlobalHelp.
func (s *Statement) IsGlobalHelp() bool { return s.kind == kindGlobalHelp }

// IsCommandHelp reports whether s was built by CommandHelp.
func (s *Statement) IsCommandHelp() bool { return s.kind == kindCommandHelp }

func (s *Statement) Flags() []*Flag     { return append([]*Flag(nil), s.flags...) }
func (s *Statement) Options() []*Option { return append([]*Option(nil), s.options...) }

// ResiduePlaceholder is the name shown for positional arguments in help.
func (s *Statement) ResiduePlaceholder() string { return s.residueOf }

// Flag returns the flag declaring alias, or nil.
func (s *Statement) Flag(alias string) *Flag {
	f, _ := s.lookup(alias)
	return f
}

// Option returns the option declaring alias, or nil.
func (s *Statement) Option(alias string) *Option {
	_, o := s.lookup(alias)
	return o
}

func (s *Statement) lookup(alias string) (*Flag, *Option) {
	for _, f := range s.flags {
		for _, n := range f.names {
			if n == alias {
				return f, nil
			}
		}
	}
	for _, o := range s.options {
		for _, n := range o.names {
			if n == alias {
				return nil, o
			}
		}
	}
	return nil, nil
}

// Validate checks the statement on its own: alias syntax, option settings and
// alias collisions between different flags and options. It returns a
// *DefinitionError listing every problem, or nil.
func (s *Statement) Validate() error {
	var c causes
	s.validate(&c)
	return c.err()
}

func (s *Statement) validate(c *causes) {
	if err := contract.NotEmpty(contract.Invariant, s.name, "statement name"); err != nil {
		c.add(InvalidStatementName, "", s.name, err.Error())
	} else if err := contract.Check(contract.Invariant, !strings.ContainsAny(s.name, "\r\n"),
		"statement name %q to have no line breaks", s.name); err != nil {
		c.add(InvalidStatementName, "", s.name, err.Error())
	}
	if s.verb != "" && strings.ContainsAny(s.verb, " \t\r\n") {
		c.add(InvalidStatementName, s.name, s.verb, "verb must be a single token")
	}

	for i, f := range s.flags {
		if err := contract.NotNil(contract.Invariant, f, fmt.Sprintf("flag #%d", i+1)); err != nil {
			c.add(InvalidFlagName, s.name, "", err.Error())
			continue
		}
		f.validate(s.name, c)
	}
	for i, o := range s.options {
		if err := contract.NotNil(contract.Invariant, o, fmt.Sprintf("option #%d", i+1)); err != nil {
			c.add(InvalidOptionName, s.name, "", err.Error())
			continue
		}
		o.validate(s.name, c)
	}

	owners := map[string]string{}
	owned := map[string]any{}
	claim := func(owner any, label, alias string) {
		prev, ok := owned[alias]
		if !ok {
			owned[alias] = owner
			owners[alias] = label
			return
		}
		if prev != owner {
			c.add(AliasCollision, s.name, alias, "declared by "+owners[alias]+" and "+label)
		}
	}
	for _, f := range s.flags {
		if f == nil {
			continue
		}
		for _, n := range f.names {
			claim(f, "flag "+Display(f.Name()), n)
		}
	}
	for _, o := range s.options {
		if o == nil {
			continue
		}
		for _, n := range o.names {
			claim(o, "option "+Display(o.Name()), n)
		}
	}
}
