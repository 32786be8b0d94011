package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"service/internal/entities"
	"service/internal/service/booking"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

const bookingColumns = `id, user_id, time_slot_id, area_restriction_id, status,
		delivery_option, loading_time, unloading_time, expires_at, created_at, updated_at`

const slotColumns = `id, date::text AS date, time, area_code, max_capacity, current_bookings,
		is_loading_available, is_unloading_available, created_at, updated_at`

// IncrementSlotBookings занимает место в слоте одним условным UPDATE.
// Проверка потолка и инкремент атомарны, двум конкурентным броням
// последнее место не раздастся дважды.
func (r *Repository) IncrementSlotBookings(ctx context.Context, key entities.SlotKey) (int64, error) {
	query := `
		UPDATE delivery_time_slots
		SET current_bookings = current_bookings + 1,
			updated_at = NOW()
		WHERE date = $1
		  AND time = $2
		  AND area_code = $3
		  AND current_bookings < max_capacity
		RETURNING id
	`

	var slotID int64
	err := r.querier.QueryRow(ctx, query, key.Date, key.Time, key.AreaCode).Scan(&slotID)
	if err == nil {
		return slotID, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("unexpected booking repository increment slot error: %w", err)
	}

	// UPDATE не сработал: различаем отсутствующий и полный слот
	existsQuery := `
		SELECT 1 FROM delivery_time_slots
		WHERE date = $1 AND time = $2 AND area_code = $3
	`

	var one int
	err = r.querier.QueryRow(ctx, existsQuery, key.Date, key.Time, key.AreaCode).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, booking.ErrSlotNotFound
		}
		return 0, fmt.Errorf("unexpected booking repository increment slot error: %w", err)
	}

	return 0, booking.ErrSlotFull
}

func (r *Repository) DecrementSlotBookings(ctx context.Context, slotID int64) (int64, error) {
	query := `
		UPDATE delivery_time_slots
		SET current_bookings = GREATEST(current_bookings - 1, 0),
			updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, slotID)
	if err != nil {
		return 0, fmt.Errorf("unexpected booking repository decrement slot error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return 0, booking.ErrSlotNotFound
	}

	return result.RowsAffected(), nil
}

// IncrementAreaBookings занимает дневную квоту района. Район без
// строки ограничения считается неограниченным, это решает сервис по
// ErrAreaNotFound.
func (r *Repository) IncrementAreaBookings(ctx context.Context, date, areaCode string) (int64, error) {
	query := `
		UPDATE delivery_area_restrictions
		SET current_bookings = current_bookings + 1,
			updated_at = NOW()
		WHERE date = $1
		  AND area_code = $2
		  AND is_available
		  AND current_bookings < max_daily_capacity
		RETURNING id
	`

	var restrictionID int64
	err := r.querier.QueryRow(ctx, query, date, areaCode).Scan(&restrictionID)
	if err == nil {
		return restrictionID, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("unexpected booking repository increment area error: %w", err)
	}

	stateQuery := `
		SELECT is_available, current_bookings, max_daily_capacity
		FROM delivery_area_restrictions
		WHERE date = $1 AND area_code = $2
	`

	var (
		isAvailable      bool
		currentBookings  int32
		maxDailyCapacity int32
	)
	err = r.querier.QueryRow(ctx, stateQuery, date, areaCode).Scan(&isAvailable, &currentBookings, &maxDailyCapacity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, booking.ErrAreaNotFound
		}
		return 0, fmt.Errorf("unexpected booking repository increment area error: %w", err)
	}

	if !isAvailable {
		return 0, booking.ErrAreaUnavailable
	}

	return 0, booking.ErrAreaFull
}

func (r *Repository) DecrementAreaBookings(ctx context.Context, restrictionID int64) (int64, error) {
	query := `
		UPDATE delivery_area_restrictions
		SET current_bookings = GREATEST(current_bookings - 1, 0),
			updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, restrictionID)
	if err != nil {
		return 0, fmt.Errorf("unexpected booking repository decrement area error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return 0, booking.ErrAreaNotFound
	}

	return result.RowsAffected(), nil
}

func (r *Repository) CreateBooking(ctx context.Context, bookingModify entities.BookingModify) (*entities.DeliveryBooking, error) {
	bookingModifyDB := FromDomainModify(&bookingModify)

	query := `
		INSERT INTO delivery_bookings (user_id, time_slot_id, area_restriction_id,
			status, delivery_option, loading_time, unloading_time, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + bookingColumns

	var bookingDB BookingDB
	err := r.querier.QueryRow(
		ctx,
		query,
		bookingModifyDB.UserID,
		bookingModifyDB.TimeSlotID,
		bookingModifyDB.AreaRestrictionID,
		bookingModifyDB.Status,
		bookingModifyDB.DeliveryOption,
		bookingModifyDB.LoadingTime,
		bookingModifyDB.UnloadingTime,
		bookingModifyDB.ExpiresAt,
	).Scan(
		&bookingDB.ID,
		&bookingDB.UserID,
		&bookingDB.TimeSlotID,
		&bookingDB.AreaRestrictionID,
		&bookingDB.Status,
		&bookingDB.DeliveryOption,
		&bookingDB.LoadingTime,
		&bookingDB.UnloadingTime,
		&bookingDB.ExpiresAt,
		&bookingDB.CreatedAt,
		&bookingDB.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected booking repository create error: %w", err)
	}

	return ToDomain(&bookingDB), nil
}

func (r *Repository) GetBooking(ctx context.Context, id int64) (*entities.DeliveryBooking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM delivery_bookings
		WHERE id = $1
	`

	var bookingDB BookingDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&bookingDB.ID,
		&bookingDB.UserID,
		&bookingDB.TimeSlotID,
		&bookingDB.AreaRestrictionID,
		&bookingDB.Status,
		&bookingDB.DeliveryOption,
		&bookingDB.LoadingTime,
		&bookingDB.UnloadingTime,
		&bookingDB.ExpiresAt,
		&bookingDB.CreatedAt,
		&bookingDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, fmt.Errorf("unexpected booking repository get error: %w", err)
	}

	return ToDomain(&bookingDB), nil
}

// GetActiveByUserID последняя живая бронь пользователя.
func (r *Repository) GetActiveByUserID(ctx context.Context, userID int64) (*entities.DeliveryBooking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM delivery_bookings
		WHERE user_id = $1
		  AND status IN ('temporary', 'confirmed')
		ORDER BY created_at DESC
		LIMIT 1
	`

	var bookingDB BookingDB
	err := r.querier.QueryRow(ctx, query, userID).Scan(
		&bookingDB.ID,
		&bookingDB.UserID,
		&bookingDB.TimeSlotID,
		&bookingDB.AreaRestrictionID,
		&bookingDB.Status,
		&bookingDB.DeliveryOption,
		&bookingDB.LoadingTime,
		&bookingDB.UnloadingTime,
		&bookingDB.ExpiresAt,
		&bookingDB.CreatedAt,
		&bookingDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, fmt.Errorf("unexpected booking repository get active error: %w", err)
	}

	return ToDomain(&bookingDB), nil
}

func (r *Repository) UpdateBookingStatus(ctx context.Context, id int64, from, to entities.BookingStatus) (int64, error) {
	query := `
		UPDATE delivery_bookings
		SET status = $1,
			updated_at = NOW()
		WHERE id = $2
		  AND status = $3
	`

	result, err := r.querier.Exec(ctx, query, to.String(), id, from.String())
	if err != nil {
		return 0, fmt.Errorf("unexpected booking repository update status error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return 0, booking.ErrBookingNotActive
	}

	return result.RowsAffected(), nil
}

// ExpireTemporaryBookings помечает просроченные временные брони и
// возвращает занятую ими вместимость слотов и районов одним
// стейтментом, без окна между пометкой и возвратом.
func (r *Repository) ExpireTemporaryBookings(ctx context.Context) (int64, error) {
	query := `
		WITH expired AS (
			UPDATE delivery_bookings
			SET status = 'expired',
				updated_at = NOW()
			WHERE status = 'temporary'
			  AND expires_at < NOW()
			RETURNING time_slot_id, area_restriction_id
		),
		released_slots AS (
			UPDATE delivery_time_slots s
			SET current_bookings = GREATEST(s.current_bookings - e.cnt, 0),
				updated_at = NOW()
			FROM (
				SELECT time_slot_id, COUNT(*) AS cnt
				FROM expired
				GROUP BY time_slot_id
			) e
			WHERE s.id = e.time_slot_id
		),
		released_areas AS (
			UPDATE delivery_area_restrictions a
			SET current_bookings = GREATEST(a.current_bookings - e.cnt, 0),
				updated_at = NOW()
			FROM (
				SELECT area_restriction_id, COUNT(*) AS cnt
				FROM expired
				WHERE area_restriction_id IS NOT NULL
				GROUP BY area_restriction_id
			) e
			WHERE a.id = e.area_restriction_id
		)
		SELECT COUNT(*) FROM expired
	`

	var expired int64
	err := r.querier.QueryRow(ctx, query).Scan(&expired)
	if err != nil {
		return 0, fmt.Errorf("unexpected booking repository expire error: %w", err)
	}

	return expired, nil
}

func (r *Repository) ListSlots(ctx context.Context, date, areaCode string) ([]entities.DeliveryTimeSlot, error) {
	query := `
		SELECT ` + slotColumns + `
		FROM delivery_time_slots
		WHERE date = $1
		  AND area_code = $2
		ORDER BY time ASC
	`

	rows, err := r.querier.Query(ctx, query, date, areaCode)
	if err != nil {
		return nil, fmt.Errorf("unexpected booking repository list slots error: %w", err)
	}
	defer rows.Close()

	var slots []entities.DeliveryTimeSlot
	for rows.Next() {
		var slotDB TimeSlotDB
		err := rows.Scan(
			&slotDB.ID,
			&slotDB.Date,
			&slotDB.Time,
			&slotDB.AreaCode,
			&slotDB.MaxCapacity,
			&slotDB.CurrentBookings,
			&slotDB.IsLoadingAvailable,
			&slotDB.IsUnloadingAvailable,
			&slotDB.CreatedAt,
			&slotDB.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected booking repository list slots error: %w", err)
		}

		slots = append(slots, *ToSlotDomain(&slotDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected booking repository list slots error: %w", err)
	}

	return slots, nil
}
