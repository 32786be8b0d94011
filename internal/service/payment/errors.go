package payment

import "errors"

var (
	ErrUndefinedStatus = errors.New("undefined payment status")
	ErrMissingOrderID  = errors.New("payment event without order id")
	ErrOrderNotFound   = errors.New("order not found")
)
