package booking_cancel_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	bookingEntity, err := h.service.Cancel(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidBookingID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, booking.ErrBookingNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, booking.ErrBookingNotActive):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toBookingDTO(bookingEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
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
