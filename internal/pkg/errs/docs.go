// Package errs provides standardized error types for the food-delivery application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the error taxonomy of the system:
//   - ValueIsRequiredError: a required value is missing (validation failures)
//   - ValueIsInvalidError: a value is present but invalid (validation failures)
//   - ObjectNotFoundError: an object or reference cannot be resolved
//   - AuthenticationFailedError: credentials or the secret answer do not match;
//     deliberately generic so callers cannot tell which field was wrong
//
// Each error type follows the same pattern: a sentinel error variable usable with
// errors.Is, a struct carrying the error details, constructor functions with and
// without a cause, and Error/Unwrap methods.
package errs
