package quote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"service/internal/entities"
	"service/internal/service/quote"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

const quoteColumns = `id, user_id, items, from_address_id, to_address_id,
		from_postal_code, to_postal_code, distance_km, floor_info, special_requirements,
		base_price, distance_fee, floor_fee, special_fee, discount_amount, final_price,
		status, valid_until, created_at, updated_at`

func (r *Repository) Create(ctx context.Context, quoteModify entities.QuoteModify) (*entities.Quote, error) {
	items, err := json.Marshal(quoteModify.Items)
	if err != nil {
		return nil, fmt.Errorf("marshal quote items: %w", err)
	}
	floorInfo, err := json.Marshal(quoteModify.FloorInfo)
	if err != nil {
		return nil, fmt.Errorf("marshal floor info: %w", err)
	}
	specialRequirements, err := json.Marshal(quoteModify.SpecialRequirements)
	if err != nil {
		return nil, fmt.Errorf("marshal special requirements: %w", err)
	}

	query := `
		INSERT INTO quotes (user_id, items, from_address_id, to_address_id,
			from_postal_code, to_postal_code, distance_km, floor_info, special_requirements,
			base_price, distance_fee, floor_fee, special_fee, discount_amount, final_price,
			status, valid_until)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING ` + quoteColumns

	var quoteDB QuoteDB
	err = r.querier.QueryRow(
		ctx,
		query,
		quoteModify.UserID,
		items,
		quoteModify.FromAddressID,
		quoteModify.ToAddressID,
		quoteModify.FromPostalCode,
		quoteModify.ToPostalCode,
		quoteModify.DistanceKm,
		floorInfo,
		specialRequirements,
		quoteModify.Breakdown.BasePrice,
		quoteModify.Breakdown.DistanceFee,
		quoteModify.Breakdown.FloorFee,
		quoteModify.Breakdown.SpecialFee,
		quoteModify.Breakdown.DiscountAmount,
		quoteModify.Breakdown.FinalPrice,
		quoteModify.Status,
		quoteModify.ValidUntil,
	).Scan(scanTargets(&quoteDB)...)
	if err != nil {
		return nil, fmt.Errorf("unexpected quote repository create error: %w", err)
	}

	return ToDomain(&quoteDB)
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Quote, error) {
	query := `
		SELECT ` + quoteColumns + `
		FROM quotes
		WHERE id = $1
	`

	var quoteDB QuoteDB
	err := r.querier.QueryRow(ctx, query, id).Scan(scanTargets(&quoteDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, quote.ErrQuoteNotFound
		}
		return nil, fmt.Errorf("unexpected quote repository get error: %w", err)
	}

	return ToDomain(&quoteDB)
}

func (r *Repository) GetByUserID(ctx context.Context, userID int64) ([]entities.Quote, error) {
	query := `
		SELECT ` + quoteColumns + `
		FROM quotes
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.querier.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("unexpected quote repository list error: %w", err)
	}
	defer rows.Close()

	var quotes []entities.Quote
	for rows.Next() {
		var quoteDB QuoteDB
		if err := rows.Scan(scanTargets(&quoteDB)...); err != nil {
			return nil, fmt.Errorf("unexpected quote repository list error: %w", err)
		}

		quoteDomain, err := ToDomain(&quoteDB)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, *quoteDomain)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected quote repository list error: %w", err)
	}

	return quotes, nil
}

// UpdateStatus переводит предложение из from в to одним условным
// UPDATE, гонка двух переводов разрешается на уровне строки.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, from, to entities.QuoteStatus) (*entities.Quote, error) {
	query := `
		UPDATE quotes
		SET status = $1,
			updated_at = NOW()
		WHERE id = $2
		  AND status = $3
		RETURNING ` + quoteColumns

	var quoteDB QuoteDB
	err := r.querier.QueryRow(ctx, query, to, id, from).Scan(scanTargets(&quoteDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, quote.ErrQuoteNotPending
		}
		return nil, fmt.Errorf("unexpected quote repository update status error: %w", err)
	}

	return ToDomain(&quoteDB)
}

func (r *Repository) ExpirePending(ctx context.Context) (int64, error) {
	query := `
		UPDATE quotes
		SET status = 'expired',
			updated_at = NOW()
		WHERE status = 'pending'
		  AND valid_until < NOW()
	`

	result, err := r.querier.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("unexpected quote repository expire error: %w", err)
	}

	return result.RowsAffected(), nil
}

func scanTargets(q *QuoteDB) []interface{} {
	return []interface{}{
		&q.ID,
		&q.UserID,
		&q.Items,
		&q.FromAddressID,
		&q.ToAddressID,
		&q.FromPostalCode,
		&q.ToPostalCode,
		&q.DistanceKm,
		&q.FloorInfo,
		&q.SpecialRequirements,
		&q.BasePrice,
		&q.DistanceFee,
		&q.FloorFee,
		&q.SpecialFee,
		&q.DiscountAmount,
		&q.FinalPrice,
		&q.Status,
		&q.ValidUntil,
		&q.CreatedAt,
		&q.UpdatedAt,
	}
}
