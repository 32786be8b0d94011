package booking_cleanup

import (
	"context"
	"time"

	"service/pkg/logger"
)

type Service interface {
	CleanupExpiredBookings(ctx context.Context) (int64, error)
}

type BookingCleanup struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewBookingCleanup(log logger.Logger, service Service, interval time.Duration) *BookingCleanup {
	return &BookingCleanup{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (b *BookingCleanup) TTL() time.Duration {
	return b.interval
}

func (b *BookingCleanup) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, b.interval)
	defer cancel()

	expired, err := b.service.CleanupExpiredBookings(ctxWithTimeout)

	if expired > 0 {
		b.log.With(
			logger.NewField("expired_bookings", expired),
		).Info("booking cleanup")
	}

	return err
}

func (b *BookingCleanup) Info() string {
	return "booking cleanup"
}
