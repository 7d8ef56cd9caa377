package consume

import "errors"

var (
	ErrSessionKeyRequired = errors.New("session_key_required")
	ErrSubstanceNotFound  = errors.New("substance_not_found")
	ErrSessionNotFound    = errors.New("session_not_found")
)

// ToleranceError rejects a consume at the tolerance ceiling. Carries the
// payload the 429 response needs.
type ToleranceError struct {
	Tolerance         int
	CooldownRemaining float64
}

func (e *ToleranceError) Error() string { return "tolerance_exceeded" }

// InsufficientBalanceError rejects a consume the session cannot afford.
type InsufficientBalanceError struct {
	Required float64
	Current  float64
}

func (e *InsufficientBalanceError) Error() string { return "insufficient_balance" }
