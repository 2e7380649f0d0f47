// Package constraint defines predicates used to validate option values.
//
// A Constraint is anything with a SatisfiedBy method. The package ships the
// ordered comparisons (Gt, Gte, Lt, Lte) and two regex variants (Match, Search);
// callers may supply their own implementations or wrap a function with Func.
// Built-ins implement fmt.Stringer so failures can name what was expected.
package constraint

import (
	"cmp"
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cast"

	"github.com/aallbrig/verse/contract"
)

// Constraint is a predicate over a value of type T.
type Constraint[T any] interface {
	SatisfiedBy(value T) bool
}

// Describe returns a human-readable form of c for help and error text.
func Describe[T any](c Constraint[T]) string {
	if s, ok := c.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", c)
}

// All reports whether value satisfies every constraint in cs. It returns the
// first failing constraint, or nil.
func All[T any](value T, cs ...Constraint[T]) (Constraint[T], bool) {
	for _, c := range cs {
		if !c.SatisfiedBy(value) {
			return c, false
		}
	}
	return nil, true
}

type gt[T cmp.Ordered] struct{ rhs T }

// Gt is satisfied by values strictly greater than rhs.
func Gt[T cmp.Ordered](rhs T) Constraint[T] { return gt[T]{rhs} }

func (c gt[T]) SatisfiedBy(v T) bool { return v > c.rhs }
func (c gt[T]) String() string       { return fmt.Sprintf("> %v", c.rhs) }

type gte[T cmp.Ordered] struct{ rhs T }

// Gte is satisfied by values greater than or equal to rhs.
func Gte[T cmp.Ordered](rhs T) Constraint[T] { return gte[T]{rhs} }

func (c gte[T]) SatisfiedBy(v T) bool { return v >= c.rhs }
func (c gte[T]) String() string       { return fmt.Sprintf(">= %v", c.rhs) }

type lt[T cmp.Ordered] struct{ rhs T }

// Lt is satisfied by values strictly less than rhs.
func Lt[T cmp.Ordered](rhs T) Constraint[T] { return lt[T]{rhs} }

func (c lt[T]) SatisfiedBy(v T) bool { return v < c.rhs }
func (c lt[T]) String() string       { return fmt.Sprintf("< %v", c.rhs) }

type lte[T cmp.Ordered] struct{ rhs T }

// Lte is satisfied by values less than or equal to rhs.
func Lte[T cmp.Ordered](rhs T) Constraint[T] { return lte[T]{rhs} }

func (c lte[T]) SatisfiedBy(v T) bool { return v <= c.rhs }
func (c lte[T]) String() string       { return fmt.Sprintf("<= %v", c.rhs) }

type match struct {
	rhs      *regexp.Regexp
	anchored *regexp.Regexp
}

// Match is satisfied by strings the whole of which match re.
func Match(re *regexp.Regexp) (Constraint[string], error) {
	if err := contract.NotNil(contract.Precondition, re, "regex"); err != nil {
		return nil, err
	}
	anchored, err := regexp.Compile(`^(?:` + re.String() + `)$`)
	if err != nil {
		return nil, fmt.Errorf("anchor %q: %w", re.String(), err)
	}
	return match{rhs: re, anchored: anchored}, nil
}

// MustMatch compiles expr and returns its Match constraint, panicking on error.
func MustMatch(expr string) Constraint[string] {
	c, err := Match(regexp.MustCompile(expr))
	if err != nil {
		panic(err)
	}
	return c
}

func (c match) SatisfiedBy(v string) bool { return c.anchored.MatchString(v) }
func (c match) String() string            { return "matches " + c.rhs.String() }

type search struct{ rhs *regexp.Regexp }

// Search is satisfied by strings containing a match for re anywhere.
func Search(re *regexp.Regexp) (Constraint[string], error) {
	if err := contract.NotNil(contract.Precondition, re, "regex"); err != nil {
		return nil, err
	}
	return search{rhs: re}, nil
}

// MustSearch compiles expr and returns its Search constraint.
func MustSearch(expr string) Constraint[string] {
	return search{rhs: regexp.MustCompile(expr)}
}

func (c search) SatisfiedBy(v string) bool { return c.rhs.MatchString(v) }
func (c search) String() string            { return "contains " + c.rhs.String() }

type fn[T any] struct {
	desc string
	f    func(T) bool
}

// Func adapts a plain predicate; desc is used in help and error text.
func Func[T any](desc string, f func(T) bool) Constraint[T] { return fn[T]{desc, f} }

func (c fn[T]) SatisfiedBy(v T) bool {
	if c.f == nil {
		return false
	}
	return c.f(v)
}
func (c fn[T]) String() string { return c.desc }

// numeric lifts a constraint over numbers onto raw option strings.
// Strings that do not parse never satisfy it.
type numeric[T any] struct {
	inner Constraint[T]
	parse func(string) (T, error)
}

func (c numeric[T]) SatisfiedBy(s string) bool {
	if s == "" || c.inner == nil {
		return false
	}
	v, err := c.parse(s)
	if err != nil {
		return false
	}
	return c.inner.SatisfiedBy(v)
}

func (c numeric[T]) String() string { return Describe(c.inner) }

var decimal = regexp.MustCompile(`^[+-]?[0-9]+$`)

// ParseInt reads s as a base-10 integer. Leading zeros are ignored rather than
// read as octal, and base prefixes or digit separators are rejected.
func ParseInt(s string) (int, error) {
	if !decimal.MatchString(s) {
		return 0, fmt.Errorf("%q is not a decimal integer", s)
	}
	sign := ""
	if s[0] == '+' || s[0] == '-' {
		sign, s = s[:1], s[1:]
	}
	if s = strings.TrimLeft(s, "0"); s == "" {
		s = "0"
	}
	return cast.ToIntE(sign + s)
}

// Int applies c to a string value read with ParseInt.
func Int(c Constraint[int]) Constraint[string] {
	return numeric[int]{inner: c, parse: ParseInt}
}

// Float applies c to a string value parsed as a float64. NaN satisfies no
// ordered constraint.
func Float(c Constraint[float64]) Constraint[string] {
	return numeric[float64]{inner: c, parse: func(s string) (float64, error) { return cast.ToFloat64E(s) }}
}
