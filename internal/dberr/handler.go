package dberr

import (
	"github.com/rakhadavedra/blogstack/internal/errs"
)

// HandleError converts a driver error that escaped the service layer
// into an *errs.HTTPError for the global error funnel.
//
// Services normally intercept NotFound themselves (they know which
// entity was being resolved and phrase the message accordingly); this
// mapping is the fallback for errors nothing else classified.
// Unrecognized errors keep their driver detail in the 500 message.
func HandleError(err error) error {
	switch ErrCode(err) {
	case NotFound:
		return errs.NewNotFoundError("Resource not found in the database", false, nil)

	case DuplicateKey:
		return errs.NewBadRequestError("Resource already exists", false, nil, nil, nil)

	case Timeout:
		return errs.NewOperationError("database operation", err)

	case Network:
		return errs.NewOperationError("database connection", err)

	default:
		return errs.NewOperationError("processing request", err)
	}
}
