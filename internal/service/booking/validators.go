package booking

import (
	"fmt"
	"time"

	"service/internal/entities"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

func validateReservation(reservation entities.BookingReservation) error {
	if reservation.UserID <= 0 {
		return ErrInvalidUserID
	}

	if err := validateDate(reservation.Slot.Date); err != nil {
		return err
	}

	if _, err := time.Parse(timeLayout, reservation.Slot.Time); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTime, reservation.Slot.Time)
	}

	if reservation.Slot.AreaCode == "" {
		return ErrInvalidAreaCode
	}

	if !reservation.DeliveryOption.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidOption, reservation.DeliveryOption)
	}

	if _, err := time.Parse(timeLayout, reservation.LoadingTime); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTime, reservation.LoadingTime)
	}
	if _, err := time.Parse(timeLayout, reservation.UnloadingTime); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTime, reservation.UnloadingTime)
	}
	// HH:MM сравнивается лексикографически
	if reservation.LoadingTime >= reservation.UnloadingTime {
		return ErrInvalidTimeRange
	}

	return nil
}

func validateDate(date string) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	return nil
}
