package apierr

import "fmt"

// Error is a transport-facing failure: a fixed HTTP status code paired with a
// fixed message. Services return these values; handlers render them verbatim.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d %s", e.Code, e.Message)
}

// The complete failure taxonomy. No operation introduces any other kind.
var (
	BadRequest       = &Error{Code: 400, Message: "bad request"}
	NotFound         = &Error{Code: 404, Message: "resource not found"}
	MethodNotAllowed = &Error{Code: 405, Message: "method not allowed"}
	Unprocessable    = &Error{Code: 422, Message: "unprocessable"}
	Internal         = &Error{Code: 500, Message: "internal server error"}
)

// From coerces an arbitrary error into one of the five kinds. Anything that is
// not already a taxonomy value surfaces as Internal rather than leaking detail.
func From(err error) *Error {
	if apiErr, ok := err.(*Error); ok {
		return apiErr
	}
	return Internal
}
