package progress_step_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
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
	step := entities.ProgressStep(mux.Vars(r)["step"])

	var req dto.ProgressStepRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	progressEntity, err := h.service.SaveStepData(r.Context(), req.UserID, step, toStepData(&req))
	if err != nil {
		switch {
		case errors.Is(err, progress.ErrInvalidUserID),
			errors.Is(err, progress.ErrInvalidStep),
			errors.Is(err, progress.ErrEmptyStepData),
			errors.Is(err, progress.ErrMissingField),
			errors.Is(err, progress.ErrEmptyField),
			errors.Is(err, progress.ErrInvalidTimeRange),
			errors.Is(err, progress.ErrPreviousStepIncomplete):
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
