//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"service/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, orderCreate entities.OrderCreate) (*entities.Order, error)
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	GetByUserID(ctx context.Context, userID int64) ([]entities.Order, error)
	Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
}

type QuoteService interface {
	GetQuote(ctx context.Context, id int64) (*entities.Quote, error)
	AcceptQuote(ctx context.Context, id int64) (*entities.Quote, error)
}

type ProgressService interface {
	ClearProgress(ctx context.Context, userID int64) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
