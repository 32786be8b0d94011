//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=quote_test
package quote

import (
	"context"

	"service/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, quoteModify entities.QuoteModify) (*entities.Quote, error)
	GetByID(ctx context.Context, id int64) (*entities.Quote, error)
	GetByUserID(ctx context.Context, userID int64) ([]entities.Quote, error)
	UpdateStatus(ctx context.Context, id int64, from, to entities.QuoteStatus) (*entities.Quote, error)
	ExpirePending(ctx context.Context) (int64, error)
}

type Pricer interface {
	Breakdown(req entities.QuoteRequest) entities.PriceBreakdown
}

type DistanceGateway interface {
	Distance(ctx context.Context, fromPostalCode, toPostalCode string) (float64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
