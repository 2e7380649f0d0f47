package menu

import (
	"strings"

	"github.com/aallbrig/verse/constraint"
)

// Option is a named argument carrying a string value. Values are passed
// through unchanged once they satisfy every constraint; converting them to
// other types is up to the caller.
type Option struct {
	names       []string
	placeholder string
	required    bool
	repeatable  bool
	description string
	def         string
	hasDefault  bool
	constraints []constraint.Constraint[string]
}

// OptionSetting configures an Option in NewOption.
type OptionSetting func(*Option)

// WithPlaceholder sets the value placeholder shown in help, e.g. "PATH".
func WithPlaceholder(p string) OptionSetting { return func(o *Option) { o.placeholder = p } }

// AsRequired makes the option mandatory.
func AsRequired() OptionSetting { return func(o *Option) { o.required = true } }

// AsRepeatable lets the option appear more than once; all values are kept.
func AsRepeatable() OptionSetting { return func(o *Option) { o.repeatable = true } }

// WithDescription sets the help text.
func WithDescription(d string) OptionSetting { return func(o *Option) { o.description = d } }

// WithDefault sets the value used when the option is absent.
func WithDefault(v string) OptionSetting {
	return func(o *Option) {
		o.def = v
		o.hasDefault = true
	}
}

// WithConstraints appends constraints that every value must satisfy.
func WithConstraints(cs ...constraint.Constraint[string]) OptionSetting {
	return func(o *Option) { o.constraints = append(o.constraints, cs...) }
}

// NewOption declares an option with the given aliases.
func NewOption(names []string, settings ...OptionSetting) *Option {
	o := &Option{names: append([]string(nil), names...)}
	for _, s := range settings {
		s(o)
	}
	if o.placeholder == "" {
		o.placeholder = "VALUE"
		if n := preferred(o.names); len(n) > 1 {
			o.placeholder = strings.ToUpper(strings.ReplaceAll(n, "-", "_"))
		}
	}
	return o
}

func (o *Option) Names() []string         { return append([]string(nil), o.names...) }
func (o *Option) Name() string            { return preferred(o.names) }
func (o *Option) Placeholder() string     { return o.placeholder }
func (o *Option) Required() bool          { return o.required }
func (o *Option) Repeatable() bool        { return o.repeatable }
func (o *Option) Description() string     { return o.description }
func (o *Option) Default() (string, bool) { return o.def, o.hasDefault }

// Constraints returns the option's constraints in declaration order.
func (o *Option) Constraints() []constraint.Constraint[string] {
	return append([]constraint.Constraint[string](nil), o.constraints...)
}

// Accept checks raw against every constraint and returns it unchanged, or a
// constraint-violated *InvocationError naming the first failing constraint.
func (o *Option) Accept(raw string) (string, error) {
	if failed, ok := constraint.All(raw, o.constraints...); !ok {
		return "", &InvocationError{
			Kind:       ConstraintViolated,
			Name:       o.Name(),
			Token:      raw,
			Constraint: constraint.Describe(failed),
		}
	}
	return raw, nil
}

func (o *Option) validate(statement string, c *causes) {
	if len(o.names) == 0 {
		c.add(InvalidOptionName, statement, "", "option has no names")
	}
	for _, n := range o.names {
		if reason := checkName(n); reason != "" {
			c.add(InvalidOptionName, statement, n, reason)
		}
	}
	if o.required && o.hasDefault {
		c.add(RequiredWithDefault, statement, o.Name(), "default "+o.def)
	}
	if o.hasDefault {
		if failed, ok := constraint.All(o.def, o.constraints...); !ok {
			c.add(DefaultViolatesConstraint, statement, o.Name(),
				"default "+o.def+" does not satisfy "+constraint.Describe(failed))
		}
	}
}
