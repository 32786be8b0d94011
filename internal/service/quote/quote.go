package quote

import (
	"context"
	"errors"
	"fmt"
	"time"

	"service/internal/entities"
)

// ValidityPeriod срок действия предложения с момента создания.
const ValidityPeriod = 7 * 24 * time.Hour

// Service создаёт ценовые предложения и управляет их статусом.
// Принятое предложение неизменяемо, просроченное нельзя принять.
type Service struct {
	repository      Repository
	pricer          Pricer
	distanceGateway DistanceGateway
	txManager       TxManager
}

func New(repository Repository, pricer Pricer, distanceGateway DistanceGateway, txManager TxManager) *Service {
	return &Service{
		repository:      repository,
		pricer:          pricer,
		distanceGateway: distanceGateway,
		txManager:       txManager,
	}
}

// CreateQuote считает разбивку цены и сохраняет предложение со статусом
// pending и сроком действия ValidityPeriod. Расстояние, не пришедшее от
// клиента, запрашивается у внешнего картографического сервиса.
func (s *Service) CreateQuote(ctx context.Context, req entities.QuoteRequest) (*entities.Quote, error) {
	if req.UserID <= 0 {
		return nil, ErrInvalidUserID
	}
	if len(req.Items) == 0 {
		return nil, ErrNoItems
	}
	if req.FromAddressID <= 0 || req.ToAddressID <= 0 {
		return nil, ErrMissingAddress
	}

	if req.DistanceKm <= 0 {
		distance, err := s.distanceGateway.Distance(ctx, req.FromPostalCode, req.ToPostalCode)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrDistanceUnavailable, err)
		}
		req.DistanceKm = distance
	}

	breakdown := s.pricer.Breakdown(req)
	validUntil := time.Now().UTC().Add(ValidityPeriod)
	status := entities.QuotePending

	created, err := s.repository.Create(ctx, entities.QuoteModify{
		UserID:              &req.UserID,
		Items:               req.Items,
		FromAddressID:       &req.FromAddressID,
		ToAddressID:         &req.ToAddressID,
		FromPostalCode:      &req.FromPostalCode,
		ToPostalCode:        &req.ToPostalCode,
		DistanceKm:          &req.DistanceKm,
		FloorInfo:           &req.FloorInfo,
		SpecialRequirements: req.SpecialRequirements,
		Breakdown:           &breakdown,
		Status:              &status,
		ValidUntil:          &validUntil,
	})
	if err != nil {
		return nil, fmt.Errorf("create quote: %w", err)
	}
	return created, nil
}

func (s *Service) GetQuote(ctx context.Context, id int64) (*entities.Quote, error) {
	quote, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrQuoteNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get quote: %w", err)
	}
	return quote, nil
}

func (s *Service) GetQuotesByUser(ctx context.Context, userID int64) ([]entities.Quote, error) {
	if userID <= 0 {
		return nil, ErrInvalidUserID
	}

	quotes, err := s.repository.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get quotes: %w", err)
	}
	return quotes, nil
}

// AcceptQuote переводит pending-предложение в accepted.
// Просроченное предложение сразу помечается expired.
func (s *Service) AcceptQuote(ctx context.Context, id int64) (*entities.Quote, error) {
	return s.transition(ctx, id, entities.QuoteAccepted)
}

func (s *Service) RejectQuote(ctx context.Context, id int64) (*entities.Quote, error) {
	return s.transition(ctx, id, entities.QuoteRejected)
}

// ExpirePendingQuotes помечает просроченные pending-предложения expired
// одним условным UPDATE, вызывается фоновой задачей.
func (s *Service) ExpirePendingQuotes(ctx context.Context) (int64, error) {
	rowsAffected, err := s.repository.ExpirePending(ctx)
	if err != nil {
		return 0, fmt.Errorf("expire quotes: %w", err)
	}
	return rowsAffected, nil
}

func (s *Service) transition(ctx context.Context, id int64, to entities.QuoteStatus) (*entities.Quote, error) {
	var (
		result  *entities.Quote
		expired bool
	)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		quote, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if quote.Status != entities.QuotePending {
			return fmt.Errorf("%w: %s", ErrQuoteNotPending, quote.Status)
		}
		if quote.Expired(time.Now().UTC()) {
			if _, err := s.repository.UpdateStatus(ctx, id, entities.QuotePending, entities.QuoteExpired); err != nil {
				return fmt.Errorf("mark quote expired: %w", err)
			}
			// пометка должна закоммититься, ошибку отдаём после
			// завершения транзакции
			expired = true
			return nil
		}

		result, err = s.repository.UpdateStatus(ctx, id, entities.QuotePending, to)
		if err != nil {
			return fmt.Errorf("update quote status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if expired {
		return nil, ErrQuoteExpired
	}
	return result, nil
}
