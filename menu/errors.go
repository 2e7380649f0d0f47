package menu

import (
	"errors"
	"fmt"
	"strings"
)

// DefinitionKind classifies a mistake in how a menu was declared.
type DefinitionKind string

const (
	InvalidFlagName           DefinitionKind = "invalid-flag-name"
	InvalidOptionName         DefinitionKind = "invalid-option-name"
	InvalidStatementName      DefinitionKind = "invalid-statement-name"
	AliasCollision            DefinitionKind = "alias-collision"
	StatementNameCollision    DefinitionKind = "statement-name-collision"
	RequiredWithDefault       DefinitionKind = "required-with-default"
	DefaultViolatesConstraint DefinitionKind = "default-violates-constraint"
	EmptyMenu                 DefinitionKind = "empty-menu"
)

// DefinitionCause is one problem found while validating a menu.
type DefinitionCause struct {
	Kind      DefinitionKind
	Statement string // empty for menu-level causes
	Name      string // offending alias or statement name
	Detail    string
}

func (c *DefinitionCause) Error() string {
	var b strings.Builder
	b.WriteString(string(c.Kind))
	if c.Statement != "" {
		fmt.Fprintf(&b, " in statement %q", c.Statement)
	}
	if c.Name != "" {
		fmt.Fprintf(&b, ": %q", c.Name)
	}
	if c.Detail != "" {
		b.WriteString(" (" + c.Detail + ")")
	}
	return b.String()
}

// DefinitionError collects every cause found by Validate so a developer sees
// all problems at once. It is only returned with at least one cause.
type DefinitionError struct {
	Causes []*DefinitionCause
}

func (e *DefinitionError) Error() string {
	if len(e.Causes) == 1 {
		return "invalid menu: " + e.Causes[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "invalid menu: %d problems", len(e.Causes))
	for _, c := range e.Causes {
		b.WriteString("\n  - " + c.Error())
	}
	return b.String()
}

// Unwrap exposes the causes to errors.Is and errors.As.
func (e *DefinitionError) Unwrap() []error {
	errs := make([]error, len(e.Causes))
	for i, c := range e.Causes {
		errs[i] = c
	}
	return errs
}

// Count returns how many causes have the given kind.
func (e *DefinitionError) Count(kind DefinitionKind) int {
	n := 0
	for _, c := range e.Causes {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// Has reports whether any cause has the given kind.
func (e *DefinitionError) Has(kind DefinitionKind) bool { return e.Count(kind) > 0 }

// causes accumulates definition problems; the zero value is ready to use.
type causes struct {
	list []*DefinitionCause
}

func (c *causes) add(kind DefinitionKind, statement, name, detail string) {
	c.list = append(c.list, &DefinitionCause{Kind: kind, Statement: statement, Name: name, Detail: detail})
}

func (c *causes) merge(err error) {
	var de *DefinitionError
	if errors.As(err, &de) {
		c.list = append(c.list, de.Causes...)
	}
}

func (c *causes) err() error {
	if len(c.list) == 0 {
		return nil
	}
	return &DefinitionError{Causes: c.list}
}

// InvocationKind classifies a mistake in the user's argument vector.
type InvocationKind string

const (
	UnknownCommand       InvocationKind = "unknown-command"
	UnknownOption        InvocationKind = "unknown-option"
	MissingValue         InvocationKind = "missing-value"
	UnexpectedValue      InvocationKind = "unexpected-value"
	MissingRequired      InvocationKind = "missing-required"
	DuplicateOption      InvocationKind = "duplicate-option"
	ConstraintViolated   InvocationKind = "constraint-violated"
	UnexpectedPositional InvocationKind = "unexpected-positional"
	MissingPositional    InvocationKind = "missing-positional"
)

// InvocationError reports the first problem found in an argument vector.
type InvocationError struct {
	Kind       InvocationKind
	Statement  string // statement being parsed, if one matched
	Name       string // option or flag name, or the residue placeholder
	Token      string // offending argv token
	Constraint string // description of the failing constraint
}

func (e *InvocationError) Error() string {
	switch e.Kind {
	case UnknownCommand:
		if e.Token != "" {
			return fmt.Sprintf("unknown command %q", e.Token)
		}
		return "command did not match any statement"
	case UnknownOption:
		return fmt.Sprintf("unknown option %s", e.Token)
	case MissingValue:
		return fmt.Sprintf("option %s requires a value", Display(e.Name))
	case UnexpectedValue:
		return fmt.Sprintf("flag %s does not take a value", Display(e.Name))
	case MissingRequired:
		return fmt.Sprintf("missing required option %s", Display(e.Name))
	case DuplicateOption:
		return fmt.Sprintf("option %s given more than once", Display(e.Name))
	case ConstraintViolated:
		return fmt.Sprintf("invalid value %q for %s: must satisfy %s", e.Token, Display(e.Name), e.Constraint)
	case UnexpectedPositional:
		return fmt.Sprintf("unexpected argument %q", e.Token)
	case MissingPositional:
		return fmt.Sprintf("missing positional argument %s", e.Name)
	default:
		return string(e.Kind)
	}
}

// ErrNoMatch is returned by Statement.TryParse when argv does not belong to
// the statement. Menu.Parse moves on to the next statement.
var ErrNoMatch = errors.New("menu: statement does not match")
