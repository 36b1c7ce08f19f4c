package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Name classifies an Error. The values double as the text prefix of Error().
type Name string

const (
	NameValidation         Name = "ValidationError"
	NameFileNotFound       Name = "FileNotFoundError"
	NameAuthentication     Name = "AuthenticationError"
	NameAuthorization      Name = "AuthorizationError"
	NameBadRequest         Name = "BadRequestError"
	NameConflict           Name = "ConflictError"
	NameNotFound           Name = "NotFoundError"
	NameInternalServer     Name = "InternalServerError"
	NameServiceUnavailable Name = "ServiceUnavailableError"
)

// Sentinels for errors.Is. Any *Error with the same Name matches.
var (
	ErrValidation         = &Error{Name: NameValidation}
	ErrFileNotFound       = &Error{Name: NameFileNotFound}
	ErrAuthentication     = &Error{Name: NameAuthentication}
	ErrAuthorization      = &Error{Name: NameAuthorization}
	ErrBadRequest         = &Error{Name: NameBadRequest}
	ErrConflict           = &Error{Name: NameConflict}
	ErrNotFound           = &Error{Name: NameNotFound}
	ErrInternalServer     = &Error{Name: NameInternalServer}
	ErrServiceUnavailable = &Error{Name: NameServiceUnavailable}
)

// Error is a named error with a message and an optional cause.
type Error struct {
	Name    Name
	Message string

	// Err is the underlying cause, if any
	Err error
}

// Error implements the error interface
func (e *Error) Error() string {
	name := e.Name
	if name == "" {
		name = NameInternalServer
	}
	switch {
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", name, e.Message, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", name, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", name, e.Err)
	default:
		return string(name)
	}
}

// Unwrap returns the underlying error for error chain support
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same Name.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Name == e.Name
}

// HTTPStatus maps the error name to the matching HTTP status code.
func (e *Error) HTTPStatus() int {
	switch e.Name {
	case NameValidation, NameBadRequest:
		return http.StatusBadRequest
	case NameAuthentication:
		return http.StatusUnauthorized
	case NameAuthorization:
		return http.StatusForbidden
	case NameFileNotFound, NameNotFound:
		return http.StatusNotFound
	case NameConflict:
		return http.StatusConflict
	case NameServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// New creates an Error with the given name and message.
func New(name Name, message string) *Error {
	return &Error{Name: name, Message: message}
}

// Newf creates an Error with a formatted message.
func Newf(name Name, format string, args ...any) *Error {
	return &Error{Name: name, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a name and message to err. A nil err still yields an Error.
func Wrap(name Name, err error, message string) *Error {
	return &Error{Name: name, Message: message, Err: err}
}

func Validation(message string) *Error         { return New(NameValidation, message) }
func FileNotFound(message string) *Error       { return New(NameFileNotFound, message) }
func Authentication(message string) *Error     { return New(NameAuthentication, message) }
func Authorization(message string) *Error      { return New(NameAuthorization, message) }
func BadRequest(message string) *Error         { return New(NameBadRequest, message) }
func Conflict(message string) *Error           { return New(NameConflict, message) }
func NotFound(message string) *Error           { return New(NameNotFound, message) }
func InternalServer(message string) *Error     { return New(NameInternalServer, message) }
func ServiceUnavailable(message string) *Error { return New(NameServiceUnavailable, message) }

// As returns the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	ok := stderrors.As(err, &e)
	return e, ok
}

// NameOf returns the Name of the first *Error in err's chain, or "" if there is none.
func NameOf(err error) Name {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Name
	}
	return ""
}

// HTTPStatus returns the status code for err. Errors outside this family map to 500.
func HTTPStatus(err error) int {
	var e *Error
	if stderrors.As(err, &e) {
		return e.HTTPStatus()
	}
	return http.StatusInternalServerError
}
