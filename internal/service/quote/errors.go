package quote

import "errors"

var (
	ErrInvalidUserID       = errors.New("invalid user id")
	ErrNoItems             = errors.New("quote requires at least one item")
	ErrMissingAddress      = errors.New("both addresses are required")
	ErrDistanceUnavailable = errors.New("distance could not be resolved")

	ErrQuoteNotFound   = errors.New("quote not found")
	ErrQuoteExpired    = errors.New("quote expired")
	ErrQuoteNotPending = errors.New("quote is not pending")
)
