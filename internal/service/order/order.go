package order

import (
	"context"
	"errors"
	"fmt"

	"service/internal/entities"
)

// Service создаёт заказы из принятых предложений и ведёт их статус.
type Service struct {
	repository      Repository
	quoteService    QuoteService
	progressService ProgressService
	txManager       TxManager
}

func New(repository Repository, quoteService QuoteService, progressService ProgressService, txManager TxManager) *Service {
	return &Service{
		repository:      repository,
		quoteService:    quoteService,
		progressService: progressService,
		txManager:       txManager,
	}
}

// CreateOrder одна транзакция: принять предложение, вставить заказ с
// total_price = quote.final_price, очистить черновик. Любой сбой
// откатывает всё целиком.
func (s *Service) CreateOrder(ctx context.Context, userID, quoteID int64, options []entities.SelectedOption) (*entities.Order, error) {
	if userID <= 0 {
		return nil, ErrInvalidUserID
	}

	var created *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		quote, err := s.quoteService.GetQuote(ctx, quoteID)
		if err != nil {
			return fmt.Errorf("get quote: %w", err)
		}
		if quote.UserID != userID {
			return ErrQuoteOwnership
		}

		// уже принятое предложение не принимаем повторно: дубль заказа
		// отсечёт уникальность quote_id в репозитории
		if quote.Status != entities.QuoteAccepted {
			if _, err := s.quoteService.AcceptQuote(ctx, quoteID); err != nil {
				return fmt.Errorf("accept quote: %w", err)
			}
		}

		created, err = s.repository.Create(ctx, entities.OrderCreate{
			UserID:            userID,
			QuoteID:           quote.ID,
			Status:            entities.OrderPending,
			Items:             quote.Items,
			FromAddressID:     quote.FromAddressID,
			ToAddressID:       quote.ToAddressID,
			AdditionalOptions: options,
			TotalPrice:        quote.Breakdown.FinalPrice,
		})
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		if err := s.progressService.ClearProgress(ctx, userID); err != nil {
			return fmt.Errorf("clear progress: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Service) GetOrder(ctx context.Context, id int64) (*entities.Order, error) {
	if id <= 0 {
		return nil, ErrInvalidOrderID
	}

	order, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

func (s *Service) GetOrdersByUser(ctx context.Context, userID int64) ([]entities.Order, error) {
	if userID <= 0 {
		return nil, ErrInvalidUserID
	}

	orders, err := s.repository.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get orders: %w", err)
	}
	return orders, nil
}

// UpdateOrderStatus валидирует переход и коммитит новый статус.
func (s *Service) UpdateOrderStatus(ctx context.Context, id int64, newStatus entities.OrderStatusType) (*entities.Order, error) {
	if id <= 0 {
		return nil, ErrInvalidOrderID
	}
	if !isValidStatus(newStatus) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, newStatus)
	}

	var updated *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if !current.Status.CanTransitionTo(newStatus) {
			return fmt.Errorf("%w: %s -> %s", ErrStatusTransition, current.Status, newStatus)
		}

		updated, err = s.repository.Update(ctx, entities.OrderModify{
			ID:     &id,
			Status: &newStatus,
		})
		if err != nil {
			return fmt.Errorf("update order status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// AssignShippingCompany назначает перевозчика подтверждённому заказу
// и переводит его в shipping_assigned.
func (s *Service) AssignShippingCompany(ctx context.Context, orderID, companyID int64) (*entities.Order, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}
	if companyID <= 0 {
		return nil, ErrInvalidCompany
	}

	var updated *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return err
		}

		if current.Status != entities.OrderConfirmed {
			return fmt.Errorf("%w: %s", ErrNotConfirmed, current.Status)
		}

		newStatus := entities.OrderShippingAssigned
		updated, err = s.repository.Update(ctx, entities.OrderModify{
			ID:                &orderID,
			Status:            &newStatus,
			ShippingCompanyID: &companyID,
		})
		if err != nil {
			return fmt.Errorf("assign shipping company: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func isValidStatus(status entities.OrderStatusType) bool {
	switch status {
	case entities.OrderPending,
		entities.OrderConfirmed,
		entities.OrderShippingAssigned,
		entities.OrderCompleted,
		entities.OrderCancelled:
		return true
	default:
		return false
	}
}
