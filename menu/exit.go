package menu

import "errors"

// Exit codes for programs that use a Menu as their entry point.
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitUsage      = 2
	ExitDefinition = 64
)

// ExitCode maps an error from Validate, Parse or the program's own handler to
// a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var de *DefinitionError
	if errors.As(err, &de) {
		return ExitDefinition
	}
	var ie *InvocationError
	if errors.As(err, &ie) {
		return ExitUsage
	}
	return ExitFailure
}
