package repositories

import "errors"

// Sentinel errors returned by the role-scoped repositories. NotFound and
// Forbidden are deliberately distinct so controllers can answer 404 vs 403.
var (
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrAlreadyExists     = errors.New("already exists")
	ErrInvalidTransition = errors.New("invalid status transition")
)
