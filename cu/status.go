package cu

// Status defined on a separate file, so it will work with enumer -- it
// doesn't work with files using cgo.

import (
	"fmt"

	"github.com/pkg/errors"
)

// Status is a raw CUDA driver status code, as returned by every native call
// crossing the Driver boundary.
//
// Status implements error, so sentinel comparisons work through wrapped
// errors: errors.Is(err, cu.ErrorNotReady).
type Status int32

//go:generate go tool enumer -type=Status status.go

// Values copied from the driver API's CUresult (plus NotYetImplemented,
// which the runtime defines and this layer synthesizes for version-gated
// operations).
const (
	Success                Status = 0
	ErrorInvalidValue      Status = 1
	ErrorOutOfMemory       Status = 2
	ErrorNotInitialized    Status = 3
	ErrorDeinitialized     Status = 4
	ErrorNotYetImplemented Status = 31
	ErrorInvalidContext    Status = 201
	ErrorInvalidHandle     Status = 400
	ErrorNotFound          Status = 500
	ErrorNotReady          Status = 600
	ErrorNotSupported      Status = 801
	ErrorUnknown           Status = 999
)

// Error implements the error interface, so a Status can be wrapped and later
// matched with errors.Is.
func (s Status) Error() string {
	if s.IsAStatus() {
		return fmt.Sprintf("CUDA status %s (code=%d)", s.String(), int32(s))
	}
	return fmt.Sprintf("CUDA status code=%d", int32(s))
}

// statusToError translates a native status code into a Go error carrying an
// identity-qualified message, or nil on Success. The message should name the
// affected resource -- see identity.go.
func statusToError(status Status, what string) error {
	if status == Success {
		return nil
	}
	return errors.Wrap(status, what)
}

// ErrValueOutOfRange reports a representation failure: a value that cannot be
// expressed in the native attribute's numeric type. It is checked before
// issuing the native call, and is distinct from any operational Status.
var ErrValueOutOfRange = errors.New("value exceeds the representation range of the native attribute type")
