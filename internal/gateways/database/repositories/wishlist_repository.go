package repositories

import (
	"context"

	"github.com/cardswap/matchmaker/internal/domain/logger"
	"github.com/cardswap/matchmaker/internal/gateways/database/models"
	"github.com/uptrace/bun"
)

type WishlistRepository interface {
	GetByUserID(ctx context.Context, userID int64) ([]*models.Wishlist, error)
	GetAll(ctx context.Context) ([]*models.Wishlist, error)
	// CountByCard counts wishlist entries per card variant across all users.
	CountByCard(ctx context.Context) ([]KeyCount, error)
}

type wishlistRepository struct {
	*BaseRepository
	raw RowQuerier
}

func NewWishlistRepository(db *bun.DB, raw RowQuerier) WishlistRepository {
	return &wishlistRepository{
		BaseRepository: NewBaseRepository(db),
		raw:            raw,
	}
}

func (r *wishlistRepository) GetByUserID(ctx context.Context, userID int64) ([]*models.Wishlist, error) {
	ql := logger.NewQueryLogger("wishlists", "GetByUserID", userID)
	var wishlists []*models.Wishlist
	err := r.SelectWithTimeout(ctx, "list", "wishlist", func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(&wishlists).
			Where("user_id = ?", userID).
			Order("id ASC").
			Scan(ctx)
	})
	return wishlists, ql.Done(err, len(wishlists))
}

func (r *wishlistRepository) GetAll(ctx context.Context) ([]*models.Wishlist, error) {
	ql := logger.NewQueryLogger("wishlists", "GetAll")
	var wishlists []*models.Wishlist
	err := r.SelectWithTimeout(ctx, "list", "wishlist", func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(&wishlists).
			Order("id ASC").
			Scan(ctx)
	})
	return wishlists, ql.Done(err, len(wishlists))
}

const countWishesQuery = `
SELECT base_card_id, variant_id, COUNT(*)
FROM wishlists
GROUP BY base_card_id, variant_id`

func (r *wishlistRepository) CountByCard(ctx context.Context) ([]KeyCount, error) {
	return countByKey(ctx, r.BaseRepository, r.raw, "count_demand", "wishlist", countWishesQuery)
}
