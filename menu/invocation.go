package menu

import "slices"

// Invocation is the result of parsing one argument vector. It is never
// modified after Parse returns it.
type Invocation struct {
	statement *Statement
	flags     map[*Flag]bool
	values    map[*Option][]string
	rest      []string
}

func newInvocation(s *Statement) *Invocation {
	inv := &Invocation{
		statement: s,
		flags:     make(map[*Flag]bool, len(s.flags)),
		values:    make(map[*Option][]string, len(s.options)),
	}
	for _, f := range s.flags {
		inv.flags[f] = false
	}
	return inv
}

// Statement returns the statement that matched.
func (inv *Invocation) Statement() *Statement { return inv.statement }

// Flag reports whether f was set.
func (inv *Invocation) Flag(f *Flag) bool { return inv.flags[f] }

// Value returns o's value, or its first value when o is repeatable. ok is
// false when o was absent and has no default.
func (inv *Invocation) Value(o *Option) (value string, ok bool) {
	vs := inv.values[o]
	if len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

// Values returns every value given for o in argv order.
func (inv *Invocation) Values(o *Option) []string {
	return slices.Clone(inv.values[o])
}

// Rest returns the positional tail.
func (inv *Invocation) Rest() []string { return slices.Clone(inv.rest) }

// Flags returns a copy of the flag map. Every declared flag has an entry.
func (inv *Invocation) Flags() map[*Flag]bool {
	m := make(map[*Flag]bool, len(inv.flags))
	for f, v := range inv.flags {
		m[f] = v
	}
	return m
}

// Options returns a copy of the option map. Options that were absent and have
// no default have no entry.
func (inv *Invocation) Options() map[*Option][]string {
	m := make(map[*Option][]string, len(inv.values))
	for o, vs := range inv.values {
		m[o] = slices.Clone(vs)
	}
	return m
}

// FlagNamed looks a flag up by any alias on the matched statement.
func (inv *Invocation) FlagNamed(alias string) bool {
	if f := inv.statement.Flag(alias); f != nil {
		return inv.flags[f]
	}
	return false
}

// ValueNamed looks an option value up by any alias on the matched statement.
func (inv *Invocation) ValueNamed(alias string) (string, bool) {
	if o := inv.statement.Option(alias); o != nil {
		return inv.Value(o)
	}
	return "", false
}

// ValuesNamed looks option values up by any alias on the matched statement.
func (inv *Invocation) ValuesNamed(alias string) []string {
	if o := inv.statement.Option(alias); o != nil {
		return inv.Values(o)
	}
	return nil
}

// Tokens renders the invocation back into a canonical argument vector: the
// verb, each set flag, each option as --name=value in declaration order, then
// the positional tail. Parsing the result yields an Equal invocation.
func (inv *Invocation) Tokens() []string {
	s := inv.statement
	var out []string
	if s.kind == kindGlobalHelp {
		if len(s.flags) > 0 && inv.flags[s.flags[0]] {
			out = append(out, "--help")
		}
		return append(out, inv.rest...)
	}
	if s.verb != "" {
		out = append(out, s.verb)
	}
	done := map[*Flag]bool{}
	for _, f := range s.flags {
		if inv.flags[f] && !done[f] {
			done[f] = true
			out = append(out, "--"+f.Name())
		}
	}
	emitted := map[*Option]bool{}
	for _, o := range s.options {
		if emitted[o] {
			continue
		}
		emitted[o] = true
		for _, v := range inv.values[o] {
			out = append(out, "--"+o.Name()+"="+v)
		}
	}
	if len(inv.rest) > 0 {
		if slices.ContainsFunc(inv.rest, func(t string) bool { return t == "--" || optionLike(t) }) {
			out = append(out, "--")
		}
		out = append(out, inv.rest...)
	}
	return out
}

// Equal reports whether two invocations matched the same statement with the
// same flags, option values and positional tail.
func (inv *Invocation) Equal(other *Invocation) bool {
	if inv == nil || other == nil {
		return inv == other
	}
	if inv.statement != other.statement || !slices.Equal(inv.rest, other.rest) {
		return false
	}
	if len(inv.flags) != len(other.flags) || len(inv.values) != len(other.values) {
		return false
	}
	for f, v := range inv.flags {
		if ov, ok := other.flags[f]; !ok || ov != v {
			return false
		}
	}
	for o, vs := range inv.values {
		ovs, ok := other.values[o]
		if !ok || !slices.Equal(vs, ovs) {
			return false
		}
	}
	return true
}
