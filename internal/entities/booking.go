package entities

import "time"

type DeliveryOption string

const (
	DeliverySameDay DeliveryOption = "same_day"
	DeliveryNextDay DeliveryOption = "next_day"
	DeliveryRegular DeliveryOption = "regular"
)

const DefaultDeliveryOption = DeliveryRegular

func (o DeliveryOption) String() string {
	return string(o)
}

func (o DeliveryOption) Valid() bool {
	switch o {
	case DeliverySameDay, DeliveryNextDay, DeliveryRegular:
		return true
	}
	return false
}

// SlotKey естественный ключ временного слота доставки.
type SlotKey struct {
	Date     string
	Time     string
	AreaCode string
}

// DeliveryTimeSlot слот доставки с потолком вместимости.
// Инвариант current_bookings <= max_capacity держится атомарным
// условным UPDATE на стороне репозитория.
type DeliveryTimeSlot struct {
	ID                   int64
	Date                 string
	Time                 string
	AreaCode             string
	MaxCapacity          int32
	CurrentBookings      int32
	IsLoadingAvailable   bool
	IsUnloadingAvailable bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (s *DeliveryTimeSlot) Remaining() int32 {
	if s.CurrentBookings >= s.MaxCapacity {
		return 0
	}
	return s.MaxCapacity - s.CurrentBookings
}

// DeliveryAreaRestriction дневной потолок бронирований на район.
type DeliveryAreaRestriction struct {
	ID               int64
	AreaCode         string
	Date             string
	IsAvailable      bool
	MaxDailyCapacity int32
	CurrentBookings  int32
	Reason           string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type BookingStatus string

const (
	BookingTemporary BookingStatus = "temporary"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingExpired   BookingStatus = "expired"
)

func (s BookingStatus) String() string {
	return string(s)
}

// DeliveryBooking бронь слота. Временная бронь держит вместимость
// до ExpiresAt и освобождает её при истечении.
type DeliveryBooking struct {
	ID                int64
	UserID            int64
	TimeSlotID        int64
	AreaRestrictionID *int64
	Status            BookingStatus
	DeliveryOption    DeliveryOption
	LoadingTime       string
	UnloadingTime     string
	ExpiresAt         time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (b *DeliveryBooking) ExpiredAt(now time.Time) bool {
	return b.Status == BookingTemporary && now.After(b.ExpiresAt)
}

type BookingModify struct {
	ID                *int64
	UserID            *int64
	TimeSlotID        *int64
	AreaRestrictionID *int64
	Status            *BookingStatus
	DeliveryOption    *DeliveryOption
	LoadingTime       *string
	UnloadingTime     *string
	ExpiresAt         *time.Time
}

// BookingReservation запрос на временную бронь слота.
type BookingReservation struct {
	UserID         int64
	Slot           SlotKey
	DeliveryOption DeliveryOption
	LoadingTime    string
	UnloadingTime  string
}
