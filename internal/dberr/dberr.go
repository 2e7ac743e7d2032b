// Package dberr classifies MongoDB driver errors.
//
// It turns driver-level failures (no documents, duplicate keys,
// timeouts) into a small set of application codes so the service layer
// and the global error handler can branch on meaning instead of on
// driver internals.
package dberr

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// Code is the application-level category of a driver error.
type Code int

const (
	// Other is any driver error the mapping does not recognize.
	Other Code = iota

	// NotFound: a single-document lookup matched nothing.
	NotFound

	// DuplicateKey: an insert or update violated a unique index.
	DuplicateKey

	// Timeout: the operation exceeded its deadline.
	Timeout

	// Network: the driver could not reach the server.
	Network
)

// Error wraps a driver error with its mapped Code.
type Error struct {
	Code      Code
	Message   string
	driverErr error
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the original driver error for errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.driverErr
}

// Convert maps a raw driver error into *Error.
func Convert(err error) *Error {
	return &Error{
		Code:      classify(err),
		Message:   err.Error(),
		driverErr: err,
	}
}

// ErrCode reports the mapped Code for err, walking the error chain.
// Unrecognized errors report Other.
func ErrCode(err error) Code {
	var derr *Error
	if errors.As(err, &derr) {
		return derr.Code
	}
	return classify(err)
}

// IsNotFound reports whether err means "no matching document".
func IsNotFound(err error) bool {
	return ErrCode(err) == NotFound
}

// IsDuplicate reports whether err is a unique-index violation.
func IsDuplicate(err error) bool {
	return ErrCode(err) == DuplicateKey
}

func classify(err error) Code {
	switch {
	case err == nil:
		return Other
	case errors.Is(err, mongo.ErrNoDocuments):
		return NotFound
	case mongo.IsDuplicateKeyError(err):
		return DuplicateKey
	case mongo.IsTimeout(err):
		return Timeout
	case mongo.IsNetworkError(err):
		return Network
	default:
		return Other
	}
}
