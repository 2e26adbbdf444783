package ledger

import "errors"

// Error taxonomy for ledger operations. Callers match with errors.Is; the
// HTTP boundary maps these to status codes (validation 400, not found 404,
// transition/state/conflict 409, anything else 500).
var (
	ErrNotFound          = errors.New("not found")
	ErrValidation        = errors.New("validation failed")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrInvalidState      = errors.New("invalid state")
	ErrConflict          = errors.New("conflict")
)
