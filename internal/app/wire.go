//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"time"

	distanceGateway "service/internal/gateway/http/distance"
	booking_cancel_post "service/internal/handlers/rest/booking_cancel_post"
	booking_confirm_post "service/internal/handlers/rest/booking_confirm_post"
	booking_post "service/internal/handlers/rest/booking_post"
	order_post "service/internal/handlers/rest/order_post"
	order_shipping_put "service/internal/handlers/rest/order_shipping_put"
	order_status_put "service/internal/handlers/rest/order_status_put"
	progress_get "service/internal/handlers/rest/progress_get"
	progress_price_get "service/internal/handlers/rest/progress_price_get"
	progress_step_post "service/internal/handlers/rest/progress_step_post"
	quote_post "service/internal/handlers/rest/quote_post"
	slots_get "service/internal/handlers/rest/slots_get"
	"service/internal/handlers/tasks/booking_cleanup"
	"service/internal/handlers/tasks/quote_expiry"
	"service/internal/pkg/config"
	"service/internal/pkg/factory/booking_expiry"
	"service/internal/pkg/factory/payment_handle"
	"service/internal/pkg/pricing"

	bookingRepo "service/internal/repository/booking"
	orderRepo "service/internal/repository/order"
	progressRepo "service/internal/repository/progress"
	quoteRepo "service/internal/repository/quote"
	bookingService "service/internal/service/booking"
	orderService "service/internal/service/order"
	paymentService "service/internal/service/payment"
	progressService "service/internal/service/progress"
	quoteService "service/internal/service/quote"

	"service/pkg/background"
	"service/pkg/logger"
	"service/pkg/querier"
	"service/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	BookingCleanupInterval time.Duration
	QuoteExpiryInterval    time.Duration
)

type Application struct {
	ServiceProgress   ServiceProgress
	ServiceQuote      ServiceQuote
	ServiceOrder      ServiceOrder
	ServiceBooking    ServiceBooking
	BackgroundWorkers *background.Worker
}

type ServiceProgress interface {
	progress_step_post.Service
	progress_get.Service
	progress_price_get.Service
}

type ServiceQuote interface {
	quote_post.Service
}

type ServiceOrder interface {
	order_post.Service
	order_status_put.Service
	order_shipping_put.Service
}

type ServiceBooking interface {
	slots_get.Service
	booking_post.Service
	booking_confirm_post.Service
	booking_cancel_post.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideBookingCleanupInterval,
		provideQuoteExpiryInterval,

		provideProgressRepository,
		provideQuoteRepository,
		provideOrderRepository,
		provideBookingRepository,

		pricing.New,
		pricing.NewQuotePricer,
		booking_expiry.New,
		provideHTTPClient,
		provideDistanceGateway,

		provideServiceProgress,
		provideServiceQuote,
		provideServiceOrder,
		provideServiceBooking,

		provideBookingCleanupTask,
		provideQuoteExpiryTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceProgress), new(*progressService.Service)),
		wire.Bind(new(ServiceQuote), new(*quoteService.Service)),
		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceBooking), new(*bookingService.Booking)),

		wire.Bind(new(progressService.Repository), new(*progressRepo.Repository)),
		wire.Bind(new(progressService.PriceCalculator), new(*pricing.Calculator)),
		wire.Bind(new(quoteService.Repository), new(*quoteRepo.Repository)),
		wire.Bind(new(quoteService.Pricer), new(*pricing.QuotePricer)),
		wire.Bind(new(quoteService.DistanceGateway), new(*distanceGateway.DistanceGateway)),
		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.QuoteService), new(*quoteService.Service)),
		wire.Bind(new(orderService.ProgressService), new(*progressService.Service)),
		wire.Bind(new(bookingService.Repository), new(*bookingRepo.Repository)),
		wire.Bind(new(bookingService.ExpiryFactory), new(*booking_expiry.BookingExpiryFactory)),

		wire.Bind(new(progressService.TxManager), new(*tx.Manager)),
		wire.Bind(new(quoteService.TxManager), new(*tx.Manager)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(bookingService.TxManager), new(*tx.Manager)),

		wire.Bind(new(booking_cleanup.Service), new(*bookingService.Booking)),
		wire.Bind(new(quote_expiry.Service), new(*quoteService.Service)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	PaymentService *paymentService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-payment-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideProgressRepository,
		provideQuoteRepository,
		provideOrderRepository,
		provideBookingRepository,

		pricing.New,
		pricing.NewQuotePricer,
		booking_expiry.New,
		provideHTTPClient,
		provideDistanceGateway,

		provideServiceProgress,
		provideServiceQuote,
		provideServiceOrder,
		provideServiceBooking,

		provideStatusHandlerFactory,
		providePaymentService,

		wire.Bind(new(progressService.Repository), new(*progressRepo.Repository)),
		wire.Bind(new(progressService.PriceCalculator), new(*pricing.Calculator)),
		wire.Bind(new(quoteService.Repository), new(*quoteRepo.Repository)),
		wire.Bind(new(quoteService.Pricer), new(*pricing.QuotePricer)),
		wire.Bind(new(quoteService.DistanceGateway), new(*distanceGateway.DistanceGateway)),
		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.QuoteService), new(*quoteService.Service)),
		wire.Bind(new(orderService.ProgressService), new(*progressService.Service)),
		wire.Bind(new(bookingService.Repository), new(*bookingRepo.Repository)),
		wire.Bind(new(bookingService.ExpiryFactory), new(*booking_expiry.BookingExpiryFactory)),
		wire.Bind(new(paymentService.OrderService), new(*orderService.Service)),
		wire.Bind(new(paymentService.BookingService), new(*bookingService.Booking)),
		wire.Bind(new(paymentService.HandlerFactory), new(*payment_handle.StatusHandlerFactory)),

		wire.Bind(new(progressService.TxManager), new(*tx.Manager)),
		wire.Bind(new(quoteService.TxManager), new(*tx.Manager)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(bookingService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideProgressRepository(querier *querier.Querier) *progressRepo.Repository {
	return progressRepo.New(querier)
}

func provideQuoteRepository(querier *querier.Querier) *quoteRepo.Repository {
	return quoteRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideBookingRepository(querier *querier.Querier) *bookingRepo.Repository {
	return bookingRepo.New(querier)
}

func provideHTTPClient() *http.Client {
	return &http.Client{Timeout: 10 * time.Second}
}

func provideDistanceGateway(client *http.Client, cfg *config.Config) *distanceGateway.DistanceGateway {
	return distanceGateway.New(client, cfg.DistanceAPI.BaseURL, cfg.DistanceAPI.APIKey)
}

func provideServiceProgress(
	log logger.Logger,
	repository progressService.Repository,
	calculator progressService.PriceCalculator,
	txManager progressService.TxManager,
) *progressService.Service {
	return progressService.New(log, repository, calculator, txManager)
}

func provideServiceQuote(
	repository quoteService.Repository,
	pricer quoteService.Pricer,
	gateway quoteService.DistanceGateway,
	txManager quoteService.TxManager,
) *quoteService.Service {
	return quoteService.New(repository, pricer, gateway, txManager)
}

func provideServiceOrder(
	repository orderService.Repository,
	quotes orderService.QuoteService,
	progresses orderService.ProgressService,
	txManager orderService.TxManager,
) *orderService.Service {
	return orderService.New(repository, quotes, progresses, txManager)
}

func provideServiceBooking(
	repository bookingService.Repository,
	expiryFactory bookingService.ExpiryFactory,
	txManager bookingService.TxManager,
) *bookingService.Booking {
	return bookingService.New(repository, expiryFactory, txManager)
}

func provideStatusHandlerFactory(
	orders paymentService.OrderService,
	bookings paymentService.BookingService,
) *payment_handle.StatusHandlerFactory {
	return payment_handle.NewStatusHandlerFactory(orders, bookings)
}

// providePaymentService создает paymentService для обработки событий Kafka
func providePaymentService(
	orders paymentService.OrderService,
	handlerFactory paymentService.HandlerFactory,
) *paymentService.Service {
	return paymentService.New(orders, handlerFactory)
}

func provideBookingCleanupInterval(cfg *config.Config) BookingCleanupInterval {
	return BookingCleanupInterval(cfg.Tasks.BookingCleanupInterval)
}

func provideQuoteExpiryInterval(cfg *config.Config) QuoteExpiryInterval {
	return QuoteExpiryInterval(cfg.Tasks.QuoteExpiryInterval)
}

func provideBookingCleanupTask(
	log logger.Logger,
	bookings booking_cleanup.Service,
	interval BookingCleanupInterval,
) *booking_cleanup.BookingCleanup {
	return booking_cleanup.NewBookingCleanup(log, bookings, time.Duration(interval))
}

func provideQuoteExpiryTask(
	log logger.Logger,
	quotes quote_expiry.Service,
	interval QuoteExpiryInterval,
) *quote_expiry.QuoteExpiry {
	return quote_expiry.NewQuoteExpiry(log, quotes, time.Duration(interval))
}

func provideTaskList(
	bookingCleanupTask *booking_cleanup.BookingCleanup,
	quoteExpiryTask *quote_expiry.QuoteExpiry,
) []background.Task {
	return []background.Task{
		bookingCleanupTask,
		quoteExpiryTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
