//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=progress_step_post_test
package progress_step_post

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
	SaveStepData(ctx context.Context, userID int64, step entities.ProgressStep, data entities.StepData) (*entities.OrderProgress, error)
}
