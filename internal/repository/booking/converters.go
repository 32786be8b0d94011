package booking

import "service/internal/entities"

func ToDomain(b *BookingDB) *entities.DeliveryBooking {
	if b == nil {
		return nil
	}
	return &entities.DeliveryBooking{
		ID:                b.ID,
		UserID:            b.UserID,
		TimeSlotID:        b.TimeSlotID,
		AreaRestrictionID: b.AreaRestrictionID,
		Status:            entities.BookingStatus(b.Status),
		DeliveryOption:    entities.DeliveryOption(b.DeliveryOption),
		LoadingTime:       b.LoadingTime,
		UnloadingTime:     b.UnloadingTime,
		ExpiresAt:         b.ExpiresAt,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}

func ToSlotDomain(s *TimeSlotDB) *entities.DeliveryTimeSlot {
	if s == nil {
		return nil
	}
	return &entities.DeliveryTimeSlot{
		ID:                   s.ID,
		Date:                 s.Date,
		Time:                 s.Time,
		AreaCode:             s.AreaCode,
		MaxCapacity:          s.MaxCapacity,
		CurrentBookings:      s.CurrentBookings,
		IsLoadingAvailable:   s.IsLoadingAvailable,
		IsUnloadingAvailable: s.IsUnloadingAvailable,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}
}

func FromDomainModify(b *entities.BookingModify) *BookingModifyDB {
	if b == nil {
		return nil
	}
	bookingModifyDB := &BookingModifyDB{
		ID:                b.ID,
		UserID:            b.UserID,
		TimeSlotID:        b.TimeSlotID,
		AreaRestrictionID: b.AreaRestrictionID,
		LoadingTime:       b.LoadingTime,
		UnloadingTime:     b.UnloadingTime,
		ExpiresAt:         b.ExpiresAt,
	}

	if b.Status != nil {
		status := b.Status.String()
		bookingModifyDB.Status = &status
	}
	if b.DeliveryOption != nil {
		option := b.DeliveryOption.String()
		bookingModifyDB.DeliveryOption = &option
	}

	return bookingModifyDB
}
