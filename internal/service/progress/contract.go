//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=progress_test
package progress

import (
	"context"

	"service/internal/entities"
)

type Repository interface {
	Upsert(ctx context.Context, progressModify entities.OrderProgressModify) (*entities.OrderProgress, error)
	GetByUserID(ctx context.Context, userID int64) (*entities.OrderProgress, error)
	DeleteByUserID(ctx context.Context, userID int64) error
}

type PriceCalculator interface {
	TotalPrice(progress *entities.OrderProgress) int64
	DegradedTerms(progress *entities.OrderProgress) []string
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
