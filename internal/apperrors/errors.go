package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUnauthorized indicates that the caller presented no credential or an invalid one.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the caller is authenticated but not allowed to act.
var ErrForbidden = errors.New("forbidden")

// ErrNoStore indicates that an authenticated user has no associated store,
// which makes every reporting request unanswerable.
var ErrNoStore = errors.New("no store associated with user")

// ErrUpstream indicates that the record store is wholly unreachable. This is the
// only failure that aborts a report request; individual sub-query failures are
// absorbed and zeroed instead.
var ErrUpstream = errors.New("record store unavailable")
