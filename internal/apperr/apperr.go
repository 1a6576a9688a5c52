package apperr

import "errors"

// Sentinel errors for the business-rule failure taxonomy. Repositories and
// services wrap these with fmt.Errorf("...: %w", ...); handlers map them to
// HTTP status codes with errors.Is.
var (
	// ErrNotFound: the root entity, target, or relation membership is absent.
	ErrNotFound = errors.New("not found")
	// ErrForbidden: the actor is not the owning user for a mutating operation.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidInput: a required field is missing or an id is malformed.
	ErrInvalidInput = errors.New("invalid input")
	// ErrConflict: a uniqueness violation (duplicate username/email/subscription,
	// or a lost reaction race).
	ErrConflict = errors.New("conflict")
	// ErrUpstream: the asset store or another collaborator failed.
	ErrUpstream = errors.New("upstream failure")
)
