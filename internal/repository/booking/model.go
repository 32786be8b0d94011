package booking

import "time"

type TimeSlotDB struct {
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

type BookingDB struct {
	ID                int64
	UserID            int64
	TimeSlotID        int64
	AreaRestrictionID *int64
	Status            string
	DeliveryOption    string
	LoadingTime       string
	UnloadingTime     string
	ExpiresAt         time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type BookingModifyDB struct {
	ID                *int64
	UserID            *int64
	TimeSlotID        *int64
	AreaRestrictionID *int64
	Status            *string
	DeliveryOption    *string
	LoadingTime       *string
	UnloadingTime     *string
	ExpiresAt         *time.Time
}
