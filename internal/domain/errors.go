package domain

import "errors"

var (
	ErrInvalidPosition  = errors.New("invalid position")
	ErrEmptyOrder       = errors.New("order has no items")
	ErrOrderFinalized   = errors.New("order is already finalized")
	ErrCurrencyMismatch = errors.New("currency mismatch")
)
