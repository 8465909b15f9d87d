// Package errs provides standardized error types for the order lifecycle
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package covers two groups of errors:
//
// Validation errors raised while constructing domain objects:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is invalid
//
// Operation errors returned by use cases to callers:
//   - ObjectNotFoundError: a referenced order/item/assignment is absent
//   - ForbiddenError: the actor lacks role or ownership for the action
//   - InvalidStateError: a transition was attempted from the wrong state
//   - ConflictError: a concurrent claim lost the race
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// Use cases never swallow these errors; the HTTP adapter maps them onto
// status codes at the edge.
package errs
