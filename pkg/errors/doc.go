// Package errors provides the named error family shared by the util-kit packages.
//
// Every error is an *Error carrying a Name (ValidationError, NotFoundError, ...),
// a human readable message and an optional cause:
//
//	err := errors.Validation("password pattern produced an empty character pool")
//	fmt.Println(err) // ValidationError: password pattern produced an empty character pool
//
// Errors with the same Name match each other under the standard library's errors.Is,
// so callers can test against the exported sentinels:
//
//	if stderrors.Is(err, errors.ErrFileNotFound) {
//	    // create the file
//	}
//
// HTTPStatus maps a Name onto the status code an HTTP handler should answer with.
package errors
