package quadrature

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the failures of a run.
type ErrorKind int

const (
	// InputError is returned when a border cannot be read or fails validation.
	InputError ErrorKind = iota + 1
	// AllocationError is returned when the storage for result rows is exhausted.
	AllocationError
	// FormattingError is returned when a result row cannot be rendered to text.
	FormattingError
	// OutputError is returned when a write to the output sink fails.
	OutputError
)

// Sentinel errors matching, through errors.Is, the errors of the corresponding kind.
var (
	ErrInput      = errors.New("input error")
	ErrAllocation = errors.New("allocation error")
	ErrFormatting = errors.New("formatting error")
	ErrOutput     = errors.New("output error")
)

var sentinels = map[ErrorKind]error{
	InputError:      ErrInput,
	AllocationError: ErrAllocation,
	FormattingError: ErrFormatting,
	OutputError:     ErrOutput,
}

func (k ErrorKind) String() string {
	if err, ok := sentinels[k]; ok {
		return err.Error()
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is the error type returned by the operations of this package.
// Index is the experiment (row) index the failure relates to, or -1.
type Error struct {
	Kind  ErrorKind
	Msg   string
	Index int
	Err   error
}

func newError(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg, Index: -1}
}

func (e *Error) Error() string {
	msg := e.Msg
	if e.Index >= 0 {
		msg = fmt.Sprintf("%s in experiment %d", msg, e.Index)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap makes the kind sentinel and the underlying cause visible to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	errs := []error{}
	if s, ok := sentinels[e.Kind]; ok {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}
