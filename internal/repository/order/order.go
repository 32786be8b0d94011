package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"service/internal/entities"
	"service/internal/repository"
	"service/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

const orderColumns = `id, user_id, quote_id, status, items, from_address_id,
		to_address_id, additional_options, shipping_company_id, total_price,
		created_at, updated_at`

func (r *Repository) Create(ctx context.Context, orderCreate entities.OrderCreate) (*entities.Order, error) {
	items, err := json.Marshal(orderCreate.Items)
	if err != nil {
		return nil, fmt.Errorf("marshal order items: %w", err)
	}
	additionalOptions, err := json.Marshal(orderCreate.AdditionalOptions)
	if err != nil {
		return nil, fmt.Errorf("marshal order additional options: %w", err)
	}

	query := `
		INSERT INTO orders (user_id, quote_id, status, items, from_address_id,
			to_address_id, additional_options, total_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + orderColumns

	var orderDB OrderDB
	err = r.querier.QueryRow(
		ctx,
		query,
		orderCreate.UserID,
		orderCreate.QuoteID,
		orderCreate.Status.String(),
		items,
		orderCreate.FromAddressID,
		orderCreate.ToAddressID,
		additionalOptions,
		orderCreate.TotalPrice,
	).Scan(scanTargets(&orderDB)...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, order.ErrQuoteAlreadyOrdered
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(&orderDB)
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1
	`

	var orderDB OrderDB
	err := r.querier.QueryRow(ctx, query, id).Scan(scanTargets(&orderDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}

	return ToDomain(&orderDB)
}

func (r *Repository) GetByUserID(ctx context.Context, userID int64) ([]entities.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.querier.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	var orders []entities.Order
	for rows.Next() {
		var orderDB OrderDB
		if err := rows.Scan(scanTargets(&orderDB)...); err != nil {
			return nil, fmt.Errorf("unexpected order repository list error: %w", err)
		}

		orderDomain, err := ToDomain(&orderDB)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *orderDomain)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	return orders, nil
}

func (r *Repository) Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	builder := qb.
		Update("orders")

	// опциональные поля
	if orderModify.Status != nil {
		builder = builder.Set("status", orderModify.Status.String())
	}
	if orderModify.ShippingCompanyID != nil {
		builder = builder.Set("shipping_company_id", orderModify.ShippingCompanyID)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": orderModify.ID}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	var orderDB OrderDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(scanTargets(&orderDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return ToDomain(&orderDB)
}

func scanTargets(o *OrderDB) []interface{} {
	return []interface{}{
		&o.ID,
		&o.UserID,
		&o.QuoteID,
		&o.Status,
		&o.Items,
		&o.FromAddressID,
		&o.ToAddressID,
		&o.AdditionalOptions,
		&o.ShippingCompanyID,
		&o.TotalPrice,
		&o.CreatedAt,
		&o.UpdatedAt,
	}
}
