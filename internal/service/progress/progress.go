package progress

import (
	"context"
	"errors"
	"fmt"

	"service/internal/entities"
	"service/pkg/logger"
)

// Service оркестрирует четырёхшаговый мастер заказа: валидация шага,
// контроль порядка, пересчёт текущей цены.
type Service struct {
	log        logger.Logger
	repository Repository
	calculator PriceCalculator
	txManager  TxManager
}

func New(log logger.Logger, repository Repository, calculator PriceCalculator, txManager TxManager) *Service {
	return &Service{
		log:        log.With(),
		repository: repository,
		calculator: calculator,
		txManager:  txManager,
	}
}

// SaveStepData сохраняет payload шага в черновик пользователя.
// Шаг допускается только когда непосредственно предыдущий уже сохранён.
// Повторная отправка шага перезаписывает его слот.
func (s *Service) SaveStepData(ctx context.Context, userID int64, step entities.ProgressStep, data entities.StepData) (*entities.OrderProgress, error) {
	if userID <= 0 {
		return nil, ErrInvalidUserID
	}
	if !step.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStep, step)
	}
	if err := validateStepData(step, data); err != nil {
		return nil, err
	}

	var saved *entities.OrderProgress
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByUserID(ctx, userID)
		if err != nil && !errors.Is(err, ErrProgressNotFound) {
			return fmt.Errorf("get progress: %w", err)
		}

		if previous, ok := step.Previous(); ok {
			if !current.StepCompleted(previous) {
				return fmt.Errorf("%w: %s", ErrPreviousStepIncomplete, previous)
			}
		}

		merged := mergeStep(current, userID, step, data)
		totalPrice := s.calculator.TotalPrice(merged)

		modify := entities.OrderProgressModify{
			UserID:      &userID,
			CurrentStep: &step,
			TotalPrice:  &totalPrice,
		}
		switch step {
		case entities.StepProductSelection:
			modify.ProductSelection = data.ProductSelection
		case entities.StepDateSelection:
			modify.DateSelection = data.DateSelection
		case entities.StepAddressInput:
			modify.AddressInfo = data.AddressInfo
		case entities.StepAdditionalOptions:
			modify.AdditionalOptions = data.AdditionalOptions
		}

		saved, err = s.repository.Upsert(ctx, modify)
		if err != nil {
			return fmt.Errorf("upsert progress: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// GetProgress возвращает текущий черновик пользователя.
func (s *Service) GetProgress(ctx context.Context, userID int64) (*entities.OrderProgress, error) {
	if userID <= 0 {
		return nil, ErrInvalidUserID
	}

	current, err := s.repository.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrProgressNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get progress: %w", err)
	}
	return current, nil
}

// CalculateCurrentPrice текущая цена черновика, 0 когда черновика нет.
func (s *Service) CalculateCurrentPrice(ctx context.Context, userID int64) (int64, error) {
	if userID <= 0 {
		return 0, ErrInvalidUserID
	}

	current, err := s.repository.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrProgressNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("get progress: %w", err)
	}

	if degraded := s.calculator.DegradedTerms(current); len(degraded) > 0 {
		s.log.With(
			logger.NewField("user_id", userID),
			logger.NewField("zero_terms", degraded),
		).Warn("price calculated with missing steps")
	}

	return s.calculator.TotalPrice(current), nil
}

// ClearProgress удаляет черновик, вызывается при подтверждении заказа.
func (s *Service) ClearProgress(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return ErrInvalidUserID
	}

	err := s.repository.DeleteByUserID(ctx, userID)
	if err != nil && !errors.Is(err, ErrProgressNotFound) {
		return fmt.Errorf("clear progress: %w", err)
	}
	return nil
}

func mergeStep(current *entities.OrderProgress, userID int64, step entities.ProgressStep, data entities.StepData) *entities.OrderProgress {
	merged := &entities.OrderProgress{UserID: userID}
	if current != nil {
		*merged = *current
	}

	switch step {
	case entities.StepProductSelection:
		merged.ProductSelection = data.ProductSelection
	case entities.StepDateSelection:
		merged.DateSelection = data.DateSelection
	case entities.StepAddressInput:
		merged.AddressInfo = data.AddressInfo
	case entities.StepAdditionalOptions:
		merged.AdditionalOptions = data.AdditionalOptions
	}
	merged.CurrentStep = step
	return merged
}
