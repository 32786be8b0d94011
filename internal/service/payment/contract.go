//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_test
package payment

import (
	"context"

	"service/internal/entities"
)

type OrderService interface {
	GetOrder(ctx context.Context, id int64) (*entities.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, newStatus entities.OrderStatusType) (*entities.Order, error)
}

type BookingService interface {
	ConfirmActiveForUser(ctx context.Context, userID int64) (*entities.DeliveryBooking, error)
	ReleaseActiveForUser(ctx context.Context, userID int64) (*entities.DeliveryBooking, error)
}

type (
	ExecuteFn      func(ctx context.Context, orderID int64) error
	HandlerFactory interface {
		GetHandler(status entities.PaymentStatusType) (ExecuteFn, error)
	}
)
