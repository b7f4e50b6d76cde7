package entities

import "errors"

// Contract-violation errors raised by the pricing and quote value objects.
// These indicate a bug in the calling layer, not user-facing invalid input:
// user-entered text is normalized earlier, at the money package boundary.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrEmptyQuote        = errors.New("quote has no items")
	ErrIndexOutOfRange   = errors.New("item index out of range")
)
