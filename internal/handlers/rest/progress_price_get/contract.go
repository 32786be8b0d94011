//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=progress_price_get_test
package progress_price_get

import (
	"context"

	"service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CalculateCurrentPrice(ctx context.Context, userID int64) (int64, error)
}
