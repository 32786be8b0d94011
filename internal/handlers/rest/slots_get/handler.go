package slots_get

import (
	"encoding/json"
	"errors"
	"net/http"

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
	date := r.URL.Query().Get("date")
	areaCode := r.URL.Query().Get("area_code")

	slots, err := h.service.AvailableSlots(r.Context(), date, areaCode)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidDate),
			errors.Is(err, booking.ErrInvalidAreaCode):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.SlotsResponse{
		Slots: make([]dto.TimeSlot, 0, len(slots)),
	}
	for i := range slots {
		slot := &slots[i]
		response.Slots = append(response.Slots, dto.TimeSlot{
			ID:                   slot.ID,
			Date:                 slot.Date,
			Time:                 slot.Time,
			AreaCode:             slot.AreaCode,
			MaxCapacity:          slot.MaxCapacity,
			CurrentBookings:      slot.CurrentBookings,
			Remaining:            slot.Remaining(),
			IsLoadingAvailable:   slot.IsLoadingAvailable,
			IsUnloadingAvailable: slot.IsUnloadingAvailable,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
