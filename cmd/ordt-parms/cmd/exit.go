package cmd

import (
	"errors"
	"fmt"

	mdwerror "github.com/msto63/ordt/foundation/core/error"
)

// Exit statuses
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitValidation = 2
	ExitSyntax     = 8
)

// exitError carries an explicit exit status
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func validationFailure(n int) error {
	return &exitError{
		code: ExitValidation,
		err:  fmt.Errorf("%d parameter value(s) rejected", n),
	}
}

// ExitCode maps an error returned by Execute to a process exit status:
// syntax errors exit 8, rejected values under --fail-on-error exit 2 and
// every other failure exits 1.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	if mdwerror.HasCode(err, mdwerror.CodeSyntax) {
		return ExitSyntax
	}
	return ExitFailure
}
