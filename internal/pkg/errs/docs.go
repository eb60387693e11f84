// Package errs provides standardized error types for the coordination platform.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers two groups of errors:
//   - Input errors: ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError
//   - Domain outcome errors: ObjectNotFoundError, ForbiddenError, ConflictError,
//     InvalidStateError
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrConflict)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause where a cause makes sense
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify against the sentinel
//
// The HTTP adapter maps the sentinels onto status codes in a single place,
// so handlers and use cases never deal with status codes directly.
package errs
