package market

import "errors"

// Error kinds surfaced by the transfer engine. Callers match them with
// errors.Is to decide retryability: ErrNotAvailable, ErrConflict and
// ErrUnavailable are safe to retry with fresh state, the rest are not
// without changing inputs.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrPolicyViolation   = errors.New("policy violation")
	ErrInsufficientFunds = errors.New("insufficient budget")
	ErrNotAvailable      = errors.New("player not available for transfer")
	ErrConflict          = errors.New("transaction conflict")
	ErrUnavailable       = errors.New("storage unavailable")
)
