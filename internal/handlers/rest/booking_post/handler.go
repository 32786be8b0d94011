package booking_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"service/internal/entities"
	"service/internal/handlers/rest/dto"
	"service/internal/service/booking"
	"service/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var bookingCreateDTO dto.BookingCreate
	err := json.NewDecoder(r.Body).Decode(&bookingCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	reservation := entities.BookingReservation{
		UserID: bookingCreateDTO.UserID,
		Slot: entities.SlotKey{
			Date:     bookingCreateDTO.Date,
			Time:     bookingCreateDTO.Time,
			AreaCode: bookingCreateDTO.AreaCode,
		},
		DeliveryOption: entities.DeliveryOption(bookingCreateDTO.DeliveryOption),
		LoadingTime:    bookingCreateDTO.LoadingTime,
		UnloadingTime:  bookingCreateDTO.UnloadingTime,
	}

	bookingEntity, err := h.service.Reserve(r.Context(), reservation)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidUserID),
			errors.Is(err, booking.ErrInvalidDate),
			errors.Is(err, booking.ErrInvalidTime),
			errors.Is(err, booking.ErrInvalidAreaCode),
			errors.Is(err, booking.ErrInvalidOption),
			errors.Is(err, booking.ErrInvalidTimeRange):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, booking.ErrSlotNotFound),
			errors.Is(err, booking.ErrAreaNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, booking.ErrSlotFull),
			errors.Is(err, booking.ErrAreaFull),
			errors.Is(err, booking.ErrAreaUnavailable):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toBookingDTO(bookingEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toBookingDTO(b *entities.DeliveryBooking) dto.Booking {
	return dto.Booking{
		ID:             b.ID,
		UserID:         b.UserID,
		TimeSlotID:     b.TimeSlotID,
		Status:         b.Status.String(),
		DeliveryOption: b.DeliveryOption.String(),
		LoadingTime:    b.LoadingTime,
		UnloadingTime:  b.UnloadingTime,
		ExpiresAt:      b.ExpiresAt,
	}
}
