package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the resource is not in the state the caller expected,
// typically because a concurrent update won the race. Callers should refetch and retry.
var ErrConflict = errors.New("resource state conflict")

// ErrForbidden indicates the actor lacks the role required for the requested action.
var ErrForbidden = errors.New("action forbidden")

// ErrUnauthorized indicates the request carries no valid identity.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// ErrExternalLookup indicates a lookup against an external source (such as an
// exchange rate) failed. It is downgraded to a warning at service boundaries.
var ErrExternalLookup = errors.New("external lookup failed")

// ErrNotification indicates a fire-and-forget side effect (email, calendar)
// failed after the underlying state change was already committed.
var ErrNotification = errors.New("notification dispatch failed")
