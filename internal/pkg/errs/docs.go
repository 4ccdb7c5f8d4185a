// Package errs provides standardized error types for the order management
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package includes error types for the common failure scenarios:
//   - ObjectNotFoundError: a referenced order or item does not exist
//   - ValueIsInvalidError: a value violates domain rules
//   - ValueIsOutOfRangeError: a numeric value lies outside its bounds
//   - ValueIsRequiredError: a required value is missing
//
// Each error type follows the same shape:
//   - a sentinel error variable (e.g. ErrObjectNotFound)
//   - a struct type with fields for error details
//   - constructor functions with and without cause
//   - Error() for formatting and Unwrap() for errors.Is support
//
// Business outcomes are not errors: a failed validation check inside the
// commerce pipeline is reported through its ProcessingResult, never through
// this package.
package errs
