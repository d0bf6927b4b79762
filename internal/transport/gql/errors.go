package gql

import "pollbase/internal/apperr"

// extendedError carries the categorical error code and originating HTTP
// status into the GraphQL response extensions, so clients can distinguish
// NotFound failures from generic ones.
type extendedError struct {
	err    error
	code   string
	status int
}

func (e *extendedError) Error() string {
	return e.err.Error()
}

// Extensions implements gqlerrors.ExtendedError.
func (e *extendedError) Extensions() map[string]interface{} {
	return map[string]interface{}{
		"code":           e.code,
		"httpStatusCode": e.status,
	}
}

func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		return &extendedError{err: err, code: "NOT_FOUND", status: 404}
	case apperr.KindInvalid:
		return &extendedError{err: err, code: "BAD_USER_INPUT", status: 400}
	case apperr.KindConflict:
		return &extendedError{err: err, code: "CONFLICT", status: 409}
	default:
		return &extendedError{err: err, code: "INTERNAL_SERVER_ERROR", status: 500}
	}
}
