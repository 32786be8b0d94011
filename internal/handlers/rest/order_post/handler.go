package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"service/internal/entities"
	"service/internal/handlers/rest/dto"
	"service/internal/service/order"
	"service/internal/service/quote"
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
	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	options := make([]entities.SelectedOption, 0, len(orderCreateDTO.AdditionalOptions))
	for _, option := range orderCreateDTO.AdditionalOptions {
		options = append(options, entities.SelectedOption{
			Name:     option.Name,
			Price:    option.Price,
			Quantity: option.Quantity,
		})
	}

	orderEntity, err := h.service.CreateOrder(r.Context(), orderCreateDTO.UserID, orderCreateDTO.QuoteID, options)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidUserID),
			errors.Is(err, order.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrQuoteOwnership):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, quote.ErrQuoteNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, quote.ErrQuoteExpired):
			w.WriteHeader(http.StatusGone)
		case errors.Is(err, quote.ErrQuoteNotPending),
			errors.Is(err, order.ErrQuoteAlreadyOrdered):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(toOrderDTO(orderEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
