package errors

import "errors"

// Application-level sentinel errors. Services wrap these so the API layer can
// map them to HTTP status codes with errors.Is without knowing which package
// produced the failure.

var (
	// ErrNotFound signifies that a requested log date or setting does not exist.
	// Mapped to 404 Not Found.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation signifies that client input failed validation, e.g. a
	// malformed log date or a time of day that does not parse.
	// Mapped to 400 Bad Request.
	ErrValidation = errors.New("validation failed")

	// ErrConflict signifies that an operation conflicts with the current state.
	// Mapped to 409 Conflict.
	ErrConflict = errors.New("resource conflict")

	// ErrPermission signifies that the caller may not perform the action.
	// Mapped to 403 Forbidden.
	ErrPermission = errors.New("permission denied")

	// ErrUnprocessable signifies well-formed input that could not be stored,
	// e.g. a chat line that failed to serialize even with its interactive
	// metadata stripped.
	// Mapped to 422 Unprocessable Entity.
	ErrUnprocessable = errors.New("unprocessable entity")

	// ErrInternal signifies an unexpected server-side failure.
	// Mapped to 500 Internal Server Error.
	ErrInternal = errors.New("internal server error")
)
