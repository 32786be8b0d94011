package order

import "errors"

var (
	ErrInvalidUserID       = errors.New("invalid user id")
	ErrInvalidOrderID      = errors.New("invalid order id")
	ErrInvalidStatus       = errors.New("invalid order status")
	ErrInvalidCompany      = errors.New("invalid shipping company id")
	ErrQuoteOwnership      = errors.New("quote belongs to another user")
	ErrQuoteAlreadyOrdered = errors.New("quote already has an order")
	ErrOrderNotFound       = errors.New("order not found")
	ErrStatusTransition    = errors.New("status transition not allowed")
	ErrNotConfirmed        = errors.New("order is not confirmed")
)
