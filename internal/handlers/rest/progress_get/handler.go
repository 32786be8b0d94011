package progress_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"service/internal/entities"
	"service/internal/handlers/rest/dto"
	"service/internal/service/progress"
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
	userID, err := strconv.ParseInt(r.URL.Query().Get("user_id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	progressEntity, err := h.service.GetProgress(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, progress.ErrProgressNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, progress.ErrInvalidUserID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(toProgressDTO(progressEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toProgressDTO(p *entities.OrderProgress) dto.OrderProgress {
	progressDTO := dto.OrderProgress{
		ID:          p.ID,
		UserID:      p.UserID,
		CurrentStep: p.CurrentStep.String(),
		TotalPrice:  p.TotalPrice,
		UpdatedAt:   p.UpdatedAt,
	}

	if p.ProductSelection != nil {
		progressDTO.ProductSelection = &dto.ProductSelection{
			Category: p.ProductSelection.Category,
			Product:  p.ProductSelection.Product,
			Details:  p.ProductSelection.Details,
		}
	}
	if p.DateSelection != nil {
		progressDTO.DateSelection = &dto.DateSelection{
			Date:          p.DateSelection.Date,
			LoadingTime:   p.DateSelection.LoadingTime,
			UnloadingTime: p.DateSelection.UnloadingTime,
			IsWeekend:     p.DateSelection.IsWeekend,
			IsHoliday:     p.DateSelection.IsHoliday,
			IsNight:       p.DateSelection.IsNight,
		}
	}
	if p.AddressInfo != nil {
		progressDTO.AddressInfo = &dto.AddressInfo{
			LoadingAddress: dto.Address{
				Address:       p.AddressInfo.LoadingAddress.Address,
				DetailAddress: p.AddressInfo.LoadingAddress.DetailAddress,
				PostalCode:    p.AddressInfo.LoadingAddress.PostalCode,
			},
			UnloadingAddress: dto.Address{
				Address:       p.AddressInfo.UnloadingAddress.Address,
				DetailAddress: p.AddressInfo.UnloadingAddress.DetailAddress,
				PostalCode:    p.AddressInfo.UnloadingAddress.PostalCode,
			},
			DistanceKm: p.AddressInfo.DistanceKm,
		}
	}
	if p.AdditionalOptions != nil {
		options := make([]dto.SelectedOption, 0, len(p.AdditionalOptions.SelectedOptions))
		for _, option := range p.AdditionalOptions.SelectedOptions {
			options = append(options, dto.SelectedOption{
				Name:     option.Name,
				Price:    option.Price,
				Quantity: option.Quantity,
			})
		}
		progressDTO.AdditionalOptions = &dto.AdditionalOptions{SelectedOptions: options}
	}

	return progressDTO
}
