package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"service/internal/entities"

	"github.com/AlekSi/pointer"
)

type Booking struct {
	repository    Repository
	expiryFactory ExpiryFactory
	txManager     TxManager
}

func New(
	repository Repository,
	expiryFactory ExpiryFactory,
	txManager TxManager,
) *Booking {
	return &Booking{
		repository:    repository,
		expiryFactory: expiryFactory,
		txManager:     txManager,
	}
}

// Reserve держит вместимость слота и района временной бронью.
// Инкременты счётчиков и вставка брони идут одной транзакцией,
// откат транзакции возвращает вместимость без компенсаций.
func (b *Booking) Reserve(ctx context.Context, reservation entities.BookingReservation) (*entities.DeliveryBooking, error) {
	if err := validateReservation(reservation); err != nil {
		return nil, err
	}

	var booking *entities.DeliveryBooking
	err := b.txManager.Do(ctx, func(ctx context.Context) error {
		slotID, err := b.repository.IncrementSlotBookings(ctx, reservation.Slot)
		if err != nil {
			return fmt.Errorf("increment slot bookings: %w", err)
		}

		var areaRestrictionID *int64
		restrictionID, err := b.repository.IncrementAreaBookings(ctx, reservation.Slot.Date, reservation.Slot.AreaCode)
		switch {
		case err == nil:
			areaRestrictionID = &restrictionID
		case errors.Is(err, ErrAreaNotFound):
			// район без ограничения, дневной потолок не учитывается
		default:
			return fmt.Errorf("increment area bookings: %w", err)
		}

		now := time.Now().UTC()
		expiresAt := b.expiryFactory.CalculateExpiry(reservation.DeliveryOption, now)

		bookingModify := entities.BookingModify{
			UserID:            &reservation.UserID,
			TimeSlotID:        &slotID,
			AreaRestrictionID: areaRestrictionID,
			Status:            pointer.To(entities.BookingTemporary),
			DeliveryOption:    &reservation.DeliveryOption,
			LoadingTime:       &reservation.LoadingTime,
			UnloadingTime:     &reservation.UnloadingTime,
			ExpiresAt:         &expiresAt,
		}

		booking, err = b.repository.CreateBooking(ctx, bookingModify)
		if err != nil {
			return fmt.Errorf("create booking: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return booking, nil
}

// Confirm переводит временную бронь в подтверждённую. Просроченная
// бронь помечается истёкшей с возвратом вместимости, лениво, не
// дожидаясь фоновой чистки.
func (b *Booking) Confirm(ctx context.Context, bookingID int64) (*entities.DeliveryBooking, error) {
	if bookingID <= 0 {
		return nil, ErrInvalidBookingID
	}

	var (
		confirmed *entities.DeliveryBooking
		expired   bool
	)
	err := b.txManager.Do(ctx, func(ctx context.Context) error {
		booking, err := b.repository.GetBooking(ctx, bookingID)
		if err != nil {
			return fmt.Errorf("get booking: %w", err)
		}

		if booking.Status != entities.BookingTemporary {
			return ErrBookingNotActive
		}

		if booking.ExpiredAt(time.Now().UTC()) {
			if err := b.releaseCapacity(ctx, booking); err != nil {
				return err
			}
			if _, err := b.repository.UpdateBookingStatus(ctx, bookingID, entities.BookingTemporary, entities.BookingExpired); err != nil {
				return fmt.Errorf("expire booking: %w", err)
			}
			// ошибка из замыкания откатила бы пометку и возврат
			// вместимости, поэтому транзакцию коммитим, а ошибку
			// отдаём снаружи
			expired = true
			return nil
		}

		if _, err := b.repository.UpdateBookingStatus(ctx, bookingID, entities.BookingTemporary, entities.BookingConfirmed); err != nil {
			return fmt.Errorf("confirm booking: %w", err)
		}

		booking.Status = entities.BookingConfirmed
		confirmed = booking
		return nil
	})
	if err != nil {
		return nil, err
	}
	if expired {
		return nil, ErrBookingExpired
	}

	return confirmed, nil
}

// Cancel снимает временную или подтверждённую бронь и возвращает
// вместимость слота и района.
func (b *Booking) Cancel(ctx context.Context, bookingID int64) (*entities.DeliveryBooking, error) {
	if bookingID <= 0 {
		return nil, ErrInvalidBookingID
	}

	var cancelled *entities.DeliveryBooking
	err := b.txManager.Do(ctx, func(ctx context.Context) error {
		booking, err := b.repository.GetBooking(ctx, bookingID)
		if err != nil {
			return fmt.Errorf("get booking: %w", err)
		}

		if booking.Status != entities.BookingTemporary && booking.Status != entities.BookingConfirmed {
			return ErrBookingNotActive
		}

		if err := b.releaseCapacity(ctx, booking); err != nil {
			return err
		}

		if _, err := b.repository.UpdateBookingStatus(ctx, bookingID, booking.Status, entities.BookingCancelled); err != nil {
			return fmt.Errorf("cancel booking: %w", err)
		}

		booking.Status = entities.BookingCancelled
		cancelled = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	return cancelled, nil
}

func (b *Booking) GetBooking(ctx context.Context, bookingID int64) (*entities.DeliveryBooking, error) {
	if bookingID <= 0 {
		return nil, ErrInvalidBookingID
	}

	booking, err := b.repository.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	return booking, nil
}

// CleanupExpiredBookings помечает просроченные временные брони
// истёкшими и возвращает их вместимость одним запросом.
func (b *Booking) CleanupExpiredBookings(ctx context.Context) (int64, error) {
	released, err := b.repository.ExpireTemporaryBookings(ctx)
	if err != nil {
		return 0, fmt.Errorf("expire temporary bookings: %w", err)
	}

	return released, nil
}

func (b *Booking) AvailableSlots(ctx context.Context, date, areaCode string) ([]entities.DeliveryTimeSlot, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}
	if areaCode == "" {
		return nil, ErrInvalidAreaCode
	}

	slots, err := b.repository.ListSlots(ctx, date, areaCode)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}

	return slots, nil
}

// ConfirmActiveForUser подтверждает последнюю временную бронь
// пользователя. Отсутствие брони не ошибка, платёж может прийти по
// заказу без брони слота.
func (b *Booking) ConfirmActiveForUser(ctx context.Context, userID int64) (*entities.DeliveryBooking, error) {
	if userID <= 0 {
		return nil, ErrInvalidUserID
	}

	active, err := b.repository.GetActiveByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active booking: %w", err)
	}

	return b.Confirm(ctx, active.ID)
}

// ReleaseActiveForUser снимает активную бронь пользователя, временную
// или подтверждённую, с возвратом вместимости.
func (b *Booking) ReleaseActiveForUser(ctx context.Context, userID int64) (*entities.DeliveryBooking, error) {
	if userID <= 0 {
		return nil, ErrInvalidUserID
	}

	active, err := b.repository.GetActiveByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active booking: %w", err)
	}

	return b.Cancel(ctx, active.ID)
}

func (b *Booking) releaseCapacity(ctx context.Context, booking *entities.DeliveryBooking) error {
	if _, err := b.repository.DecrementSlotBookings(ctx, booking.TimeSlotID); err != nil {
		return fmt.Errorf("decrement slot bookings: %w", err)
	}

	if booking.AreaRestrictionID != nil {
		if _, err := b.repository.DecrementAreaBookings(ctx, *booking.AreaRestrictionID); err != nil {
			return fmt.Errorf("decrement area bookings: %w", err)
		}
	}

	return nil
}
