//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=progress_get_test
package progress_get

import (
	"context"

	"service/internal/entities"
	"service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetProgress(ctx context.Context, userID int64) (*entities.OrderProgress, error)
}
