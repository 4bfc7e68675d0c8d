package repositories

import (
	"context"
	"fmt"

	"github.com/cardswap/matchmaker/cardswap/config"
	"github.com/cardswap/matchmaker/internal/domain/logger"
	"github.com/cardswap/matchmaker/internal/gateways/database/models"
	"github.com/jackc/pgx/v5"
	"github.com/uptrace/bun"
)

// RowQuerier runs raw SQL on the pgx pool.
type RowQuerier interface {
	QueryWithLog(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// KeyCount is a row count for one card variant.
type KeyCount struct {
	BaseCardID int64
	VariantID  int64
	Count      int
}

type UserCardRepository interface {
	GetAllByUserID(ctx context.Context, userID int64) ([]*models.UserCard, error)
	// GetListed returns trade and sell rows of every user except excludeUserID (0 excludes nobody).
	GetListed(ctx context.Context, excludeUserID int64) ([]*models.UserCard, error)
	// GetSellListings returns priced sell rows of one card variant.
	GetSellListings(ctx context.Context, baseCardID, variantID int64) ([]*models.UserCard, error)
	// CountCopies counts rows of any status per card variant.
	CountCopies(ctx context.Context) ([]KeyCount, error)
	// CountListed counts trade and sell rows per card variant.
	CountListed(ctx context.Context) ([]KeyCount, error)
}

type userCardRepository struct {
	*BaseRepository
	raw RowQuerier
}

func NewUserCardRepository(db *bun.DB, raw RowQuerier) UserCardRepository {
	return &userCardRepository{
		BaseRepository: NewBaseRepository(db),
		raw:            raw,
	}
}

func (r *userCardRepository) GetAllByUserID(ctx context.Context, userID int64) ([]*models.UserCard, error) {
	ql := logger.NewQueryLogger("user_cards", "GetAllByUserID", userID)
	var cards []*models.UserCard
	err := r.SelectWithTimeout(ctx, "list", "user_card", func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(&cards).
			Where("user_id = ?", userID).
			Order("id ASC").
			Scan(ctx)
	})
	return cards, ql.Done(err, len(cards))
}

func (r *userCardRepository) GetListed(ctx context.Context, excludeUserID int64) ([]*models.UserCard, error) {
	ql := logger.NewQueryLogger("user_cards", "GetListed", excludeUserID)
	var cards []*models.UserCard
	err := r.SelectWithTimeout(ctx, "list", "user_card", func(ctx context.Context) error {
		q := r.db.NewSelect().
			Model(&cards).
			Where("status IN (?)", bun.In([]string{"trade", "sell"}))
		if excludeUserID != 0 {
			q = q.Where("user_id != ?", excludeUserID)
		}
		return q.Order("id ASC").Scan(ctx)
	})
	return cards, ql.Done(err, len(cards))
}

func (r *userCardRepository) GetSellListings(ctx context.Context, baseCardID, variantID int64) ([]*models.UserCard, error) {
	ql := logger.NewQueryLogger("user_cards", "GetSellListings", baseCardID, variantID)
	var cards []*models.UserCard
	err := r.SelectWithTimeout(ctx, "list", "user_card", func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(&cards).
			Where("base_card_id = ?", baseCardID).
			Where("variant_id = ?", variantID).
			Where("status = ?", "sell").
			Where("price IS NOT NULL").
			Order("id ASC").
			Scan(ctx)
	})
	return cards, ql.Done(err, len(cards))
}

const (
	countCopiesQuery = `
SELECT base_card_id, variant_id, COUNT(*)
FROM user_cards
GROUP BY base_card_id, variant_id`

	countListedQuery = `
SELECT base_card_id, variant_id, COUNT(*)
FROM user_cards
WHERE status IN ('trade', 'sell')
GROUP BY base_card_id, variant_id`
)

func (r *userCardRepository) CountCopies(ctx context.Context) ([]KeyCount, error) {
	return countByKey(ctx, r.BaseRepository, r.raw, "count_copies", "user_card", countCopiesQuery)
}

func (r *userCardRepository) CountListed(ctx context.Context) ([]KeyCount, error) {
	return countByKey(ctx, r.BaseRepository, r.raw, "count_listed", "user_card", countListedQuery)
}

// countByKey runs a (base_card_id, variant_id, count) GROUP BY on the pgx pool.
func countByKey(ctx context.Context, br *BaseRepository, raw RowQuerier, operation, entity, query string) ([]KeyCount, error) {
	ctx, cancel := context.WithTimeout(ctx, config.AggregateTimeout)
	defer cancel()

	rows, err := raw.QueryWithLog(ctx, query)
	if err != nil {
		return nil, br.HandleError(operation, entity, nil, err)
	}
	defer rows.Close()

	counts := make([]KeyCount, 0)
	for rows.Next() {
		var c KeyCount
		if err := rows.Scan(&c.BaseCardID, &c.VariantID, &c.Count); err != nil {
			return nil, br.HandleError(operation, entity, nil, fmt.Errorf("scan: %w", err))
		}
		counts = append(counts, c)
	}
	return counts, br.HandleError(operation, entity, nil, rows.Err())
}
