package progress

import "errors"

var (
	ErrInvalidUserID    = errors.New("invalid user id")
	ErrInvalidStep      = errors.New("invalid step name")
	ErrEmptyStepData    = errors.New("empty step data")
	ErrMissingField     = errors.New("missing required field")
	ErrEmptyField       = errors.New("required field is empty")
	ErrInvalidTimeRange = errors.New("loading time must precede unloading time")

	ErrPreviousStepIncomplete = errors.New("previous step not completed")
	ErrProgressNotFound       = errors.New("order progress not found")
)
