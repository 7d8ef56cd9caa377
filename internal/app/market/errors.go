package market

import "errors"

var (
	ErrWalletRequired    = errors.New("wallet_required")
	ErrSubstanceNotFound = errors.New("substance_not_found")
	ErrSignatureRequired = errors.New("signature_required")
	ErrInvalidAmount     = errors.New("invalid_amount")
)
