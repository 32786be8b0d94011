package payment

import (
	"context"
	"errors"
	"fmt"

	"service/internal/entities"
)

type Service struct {
	orderService  OrderService
	statusFactory HandlerFactory
}

func New(orderService OrderService, statusFactory HandlerFactory) *Service {
	return &Service{
		orderService:  orderService,
		statusFactory: statusFactory,
	}
}

func (s *Service) ProcessPaymentStatusChange(ctx context.Context, event entities.PaymentEvent) (*entities.Order, error) {
	if event.OrderID <= 0 {
		return nil, ErrMissingOrderID
	}

	// Сначала убеждаемся, что заказ существует
	order, err := s.orderService.GetOrder(ctx, event.OrderID)
	if err != nil {
		return nil, fmt.Errorf("get order %d: %w", event.OrderID, err)
	}

	executeFn, err := s.statusFactory.GetHandler(event.Status)
	if err != nil {
		// неизвестные статусы платежа пропускаем
		if errors.Is(err, ErrUndefinedStatus) {
			return order, nil
		}
		return order, err
	}

	if err := executeFn(ctx, order.ID); err != nil {
		return nil, err
	}

	return s.orderService.GetOrder(ctx, event.OrderID)
}
