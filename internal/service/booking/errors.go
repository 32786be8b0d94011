package booking

import "errors"

var (
	ErrInvalidUserID    = errors.New("invalid user id")
	ErrInvalidBookingID = errors.New("invalid booking id")
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidTime      = errors.New("invalid time")
	ErrInvalidAreaCode  = errors.New("invalid area code")
	ErrInvalidOption    = errors.New("invalid delivery option")
	ErrInvalidTimeRange = errors.New("loading time must be before unloading time")

	ErrSlotNotFound    = errors.New("delivery time slot not found")
	ErrSlotFull        = errors.New("delivery time slot is full")
	ErrAreaNotFound    = errors.New("delivery area restriction not found")
	ErrAreaUnavailable = errors.New("delivery area is unavailable")
	ErrAreaFull        = errors.New("delivery area daily capacity exhausted")

	ErrBookingNotFound  = errors.New("booking not found")
	ErrBookingExpired   = errors.New("temporary booking has expired")
	ErrBookingNotActive = errors.New("booking is not in an active status")
)
