package nvrtc

// Status defined on a separate file, so it will work with enumer.

import (
	"fmt"

	"github.com/pkg/errors"
)

// Status is a raw status code of the runtime-compilation library, as returned
// by every native call crossing the API boundary.
//
// Status implements error, so sentinel comparisons work through wrapped
// errors: errors.Is(err, nvrtc.ErrorCompilation).
type Status int32

//go:generate go tool enumer -type=Status status.go

// Values copied from nvrtcResult.
const (
	Success                                Status = 0
	ErrorOutOfMemory                       Status = 1
	ErrorProgramCreationFailure            Status = 2
	ErrorInvalidInput                      Status = 3
	ErrorInvalidProgram                    Status = 4
	ErrorInvalidOption                     Status = 5
	ErrorCompilation                       Status = 6
	ErrorBuiltinOperationFailure           Status = 7
	ErrorNoNameExpressionsAfterCompilation Status = 8
	ErrorNoLoweredNamesBeforeCompilation   Status = 9
	ErrorNameExpressionNotValid            Status = 10
	ErrorInternalError                     Status = 11
)

// Error implements the error interface, so a Status can be wrapped and later
// matched with errors.Is.
func (s Status) Error() string {
	if s.IsAStatus() {
		return fmt.Sprintf("NVRTC status %s (code=%d)", s.String(), int32(s))
	}
	return fmt.Sprintf("NVRTC status code=%d", int32(s))
}

// statusToError translates a native status code into a Go error carrying an
// identity-qualified message, or nil on Success.
func statusToError(status Status, what string) error {
	if status == Success {
		return nil
	}
	return errors.Wrap(status, what)
}
