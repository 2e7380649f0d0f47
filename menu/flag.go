package menu

// Flag is a binary switch. It is absent (false) unless one of its aliases
// appears in argv. Flags compare by identity: the same alias may be declared
// on different statements as different flags.
type Flag struct {
	names []string
	// reserved flags skip the lexical rule; used for the built-in "-?" alias.
	reserved bool
}

// NewFlag declares a flag with one or more aliases. Invalid aliases are
// reported by Validate, not here.
func NewFlag(names ...string) *Flag {
	return &Flag{names: append([]string(nil), names...)}
}

// Names returns the flag's aliases in declaration order.
func (f *Flag) Names() []string { return append([]string(nil), f.names...) }

// Name returns the alias used in help and canonical argv.
func (f *Flag) Name() string { return preferred(f.names) }

func (f *Flag) validate(statement string, c *causes) {
	if len(f.names) == 0 {
		c.add(InvalidFlagName, statement, "", "flag has no names")
		return
	}
	if f.reserved {
		return
	}
	for _, n := range f.names {
		if reason := checkName(n); reason != "" {
			c.add(InvalidFlagName, statement, n, reason)
		}
	}
}
