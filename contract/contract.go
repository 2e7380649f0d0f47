// Package contract provides design-by-contract checks that report failures as
// errors instead of panicking.
package contract

import (
	"fmt"
	"reflect"
	"strings"
)

// Kind identifies which side of a contract a check guards.
type Kind int

const (
	// Precondition guards a caller's use of a function's parameters.
	Precondition Kind = iota
	// Postcondition guards that a function produced what it promised.
	Postcondition
	// Invariant guards state that must hold at all times.
	Invariant
)

func (k Kind) String() string {
	switch k {
	case Precondition:
		return "precondition"
	case Postcondition:
		return "postcondition"
	case Invariant:
		return "invariant"
	default:
		return fmt.Sprintf("contract(%d)", int(k))
	}
}

// Violation is returned when a contract check fails.
type Violation struct {
	Kind     Kind
	Contract string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("%s violated: expected %s", v.Kind, v.Contract)
}

// Check returns a *Violation when ok is false. contract is a short phrase
// ("a positive offset"), expanded with args like fmt.Sprintf.
func Check(kind Kind, ok bool, contract string, args ...any) error {
	if ok {
		return nil
	}
	if len(args) > 0 {
		contract = fmt.Sprintf(contract, args...)
	}
	return &Violation{Kind: kind, Contract: contract}
}

// NotNil fails when v is nil, including typed nil pointers, maps, slices,
// funcs, channels and interfaces.
func NotNil(kind Kind, v any, expr string) error {
	return Check(kind, !isNil(v), "%s to be non-nil", expr)
}

// NotEmpty fails when s is empty.
func NotEmpty(kind Kind, s string, expr string) error {
	return Check(kind, s != "", "%s to be non-empty", expr)
}

// LineCount fails unless s holds between min and max lines inclusive. Both
// "\n" and "\r" count as breaks; an empty string has zero lines.
func LineCount(kind Kind, s string, min, max int, expr string) error {
	n := countLines(s)
	return Check(kind, n >= min && n <= max,
		"%s to have %d..%d line(s), got %d", expr, min, max, n)
}

func countLines(s string) int {
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Count(strings.TrimSuffix(s, "\n"), "\n") + 1
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
