package quote_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"service/internal/entities"
	"service/internal/handlers/rest/dto"
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
	var quoteCreateDTO dto.QuoteCreate
	err := json.NewDecoder(r.Body).Decode(&quoteCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	quoteEntity, err := h.service.CreateQuote(r.Context(), toQuoteRequest(&quoteCreateDTO))
	if err != nil {
		switch {
		case errors.Is(err, quote.ErrInvalidUserID),
			errors.Is(err, quote.ErrNoItems),
			errors.Is(err, quote.ErrMissingAddress):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, quote.ErrDistanceUnavailable):
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(toQuoteDTO(quoteEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toQuoteRequest(q *dto.QuoteCreate) entities.QuoteRequest {
	items := make([]entities.QuoteItem, 0, len(q.Items))
	for _, item := range q.Items {
		items = append(items, entities.QuoteItem{
			Name:     item.Name,
			Category: item.Category,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	requirements := make([]entities.SpecialRequirement, 0, len(q.SpecialRequirements))
	for _, requirement := range q.SpecialRequirements {
		requirements = append(requirements, entities.SpecialRequirement{
			Type: requirement.Type,
			Fee:  requirement.Fee,
		})
	}

	return entities.QuoteRequest{
		UserID:         q.UserID,
		Items:          items,
		FromAddressID:  q.FromAddressID,
		ToAddressID:    q.ToAddressID,
		FromPostalCode: q.FromPostalCode,
		ToPostalCode:   q.ToPostalCode,
		DistanceKm:     q.DistanceKm,
		FloorInfo: entities.FloorInfo{
			FromFloor:    q.FloorInfo.FromFloor,
			ToFloor:      q.FloorInfo.ToFloor,
			FromElevator: q.FloorInfo.FromElevator,
			ToElevator:   q.FloorInfo.ToElevator,
		},
		SpecialRequirements: requirements,
	}
}

func toQuoteDTO(q *entities.Quote) dto.Quote {
	items := make([]dto.QuoteItem, 0, len(q.Items))
	for _, item := range q.Items {
		items = append(items, dto.QuoteItem{
			Name:     item.Name,
			Category: item.Category,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	return dto.Quote{
		ID:         q.ID,
		UserID:     q.UserID,
		Items:      items,
		DistanceKm: q.DistanceKm,
		Breakdown: dto.PriceBreakdown{
			BasePrice:      q.Breakdown.BasePrice,
			DistanceFee:    q.Breakdown.DistanceFee,
			FloorFee:       q.Breakdown.FloorFee,
			SpecialFee:     q.Breakdown.SpecialFee,
			DiscountAmount: q.Breakdown.DiscountAmount,
			FinalPrice:     q.Breakdown.FinalPrice,
		},
		Status:     q.Status.String(),
		ValidUntil: q.ValidUntil,
	}
}
