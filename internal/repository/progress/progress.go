package progress

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"service/internal/entities"
	"service/internal/service/progress"
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

const progressColumns = `id, user_id, product_selection, date_selection, address_info,
		additional_options, current_step, total_price, created_at, updated_at`

// Upsert пишет черновик по user_id: вставка либо обновление только
// переданных колонок, нетронутые шаги сохраняются.
func (r *Repository) Upsert(ctx context.Context, progressModify entities.OrderProgressModify) (*entities.OrderProgress, error) {
	progressModifyDB, err := FromDomainModify(&progressModify)
	if err != nil {
		return nil, fmt.Errorf("unexpected progress repository upsert error: %w", err)
	}

	columns := []string{"user_id"}
	values := []interface{}{progressModifyDB.UserID}

	if progressModifyDB.ProductSelection != nil {
		columns = append(columns, "product_selection")
		values = append(values, progressModifyDB.ProductSelection)
	}
	if progressModifyDB.DateSelection != nil {
		columns = append(columns, "date_selection")
		values = append(values, progressModifyDB.DateSelection)
	}
	if progressModifyDB.AddressInfo != nil {
		columns = append(columns, "address_info")
		values = append(values, progressModifyDB.AddressInfo)
	}
	if progressModifyDB.AdditionalOptions != nil {
		columns = append(columns, "additional_options")
		values = append(values, progressModifyDB.AdditionalOptions)
	}
	if progressModifyDB.CurrentStep != nil {
		columns = append(columns, "current_step")
		values = append(values, progressModifyDB.CurrentStep)
	}
	if progressModifyDB.TotalPrice != nil {
		columns = append(columns, "total_price")
		values = append(values, progressModifyDB.TotalPrice)
	}

	updates := make([]string, 0, len(columns))
	for _, column := range columns[1:] {
		updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", column, column))
	}
	updates = append(updates, "updated_at = NOW()")

	builder := qb.
		Insert("order_progress").
		Columns(columns...).
		Values(values...).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET " + strings.Join(updates, ", ")).
		Suffix("RETURNING " + progressColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected progress repository upsert error: %w", err)
	}

	var progressDB OrderProgressDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&progressDB.ID,
		&progressDB.UserID,
		&progressDB.ProductSelection,
		&progressDB.DateSelection,
		&progressDB.AddressInfo,
		&progressDB.AdditionalOptions,
		&progressDB.CurrentStep,
		&progressDB.TotalPrice,
		&progressDB.CreatedAt,
		&progressDB.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected progress repository upsert error: %w", err)
	}

	return ToDomain(&progressDB)
}

func (r *Repository) GetByUserID(ctx context.Context, userID int64) (*entities.OrderProgress, error) {
	query := `
		SELECT ` + progressColumns + `
		FROM order_progress
		WHERE user_id = $1
	`

	var progressDB OrderProgressDB
	err := r.querier.QueryRow(ctx, query, userID).Scan(
		&progressDB.ID,
		&progressDB.UserID,
		&progressDB.ProductSelection,
		&progressDB.DateSelection,
		&progressDB.AddressInfo,
		&progressDB.AdditionalOptions,
		&progressDB.CurrentStep,
		&progressDB.TotalPrice,
		&progressDB.CreatedAt,
		&progressDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, progress.ErrProgressNotFound
		}
		return nil, fmt.Errorf("unexpected progress repository get error: %w", err)
	}

	return ToDomain(&progressDB)
}

func (r *Repository) DeleteByUserID(ctx context.Context, userID int64) error {
	query := `
		DELETE FROM order_progress WHERE user_id = $1
	`

	result, err := r.querier.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("unexpected progress repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return progress.ErrProgressNotFound
	}

	return nil
}
