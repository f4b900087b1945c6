package usecase

import "github.com/cockroachdb/errors"

// Sentinels classify failures for the HTTP layer; wrap them with %w.
var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	ErrConflict              = errors.New("conflict")
	// ErrPartialReconciliation means a goal event was stored but the match score could not be updated.
	ErrPartialReconciliation = errors.New("goal stored but score not reconciled")
)
