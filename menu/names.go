package menu

import (
	"regexp"

	"github.com/aallbrig/verse/contract"
)

// MaxNameLength is the longest alias a flag or option may have.
const MaxNameLength = 32

var nameRe = regexp.MustCompile(`^[A-Za-z0-9_-]{1,32}$`)

// checkName returns a reason when name breaks the alias lexical rule.
func checkName(name string) string {
	if err := contract.LineCount(contract.Precondition, name, 1, 1, "name"); err != nil {
		return err.Error()
	}
	if len(name) > MaxNameLength {
		return "longer than 32 characters"
	}
	if !nameRe.MatchString(name) {
		return "only letters, digits, '-' and '_' are allowed"
	}
	return ""
}

// Display renders an alias the way it is typed: "-v" or "--verbose".
func Display(name string) string {
	if len(name) == 1 {
		return "-" + name
	}
	return "--" + name
}

// preferred returns the first alias longer than one character, or the first
// alias when all are single characters.
func preferred(names []string) string {
	for _, n := range names {
		if len(n) > 1 {
			return n
		}
	}
	if len(names) > 0 {
		return names[0]
	}
	return ""
}
