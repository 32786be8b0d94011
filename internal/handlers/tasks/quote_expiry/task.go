package quote_expiry

import (
	"context"
	"time"

	"service/pkg/logger"
)

type Service interface {
	ExpirePendingQuotes(ctx context.Context) (int64, error)
}

type QuoteExpiry struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewQuoteExpiry(log logger.Logger, service Service, interval time.Duration) *QuoteExpiry {
	return &QuoteExpiry{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (q *QuoteExpiry) TTL() time.Duration {
	return q.interval
}

func (q *QuoteExpiry) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, q.interval)
	defer cancel()

	expired, err := q.service.ExpirePendingQuotes(ctxWithTimeout)

	if expired > 0 {
		q.log.With(
			logger.NewField("expired_quotes", expired),
		).Info("quote expiry")
	}

	return err
}

func (q *QuoteExpiry) Info() string {
	return "quote expiry"
}
