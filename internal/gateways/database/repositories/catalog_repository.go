package repositories

import (
	"context"
	"sync"

	"github.com/cardswap/matchmaker/cardswap/config"
	"github.com/cardswap/matchmaker/internal/domain/logger"
	"github.com/cardswap/matchmaker/internal/gateways/database/models"
	lru "github.com/hashicorp/golang-lru"
	"github.com/uptrace/bun"
)

// CatalogRepository reads base cards and variants. Both are reference data
// that only the schema bootstrap writes, so reads go through an LRU cache.
type CatalogRepository interface {
	GetCards(ctx context.Context, ids []int64) (map[int64]*models.BaseCard, error)
	GetVariants(ctx context.Context) ([]*models.CardVariant, error)
	Purge()
}

type catalogRepository struct {
	*BaseRepository
	cards *lru.Cache

	mu       sync.RWMutex
	variants []*models.CardVariant
}

func NewCatalogRepository(db *bun.DB, cacheSize int) (CatalogRepository, error) {
	if cacheSize <= 0 {
		cacheSize = config.DefaultCatalogCacheSize
	}
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, err
	}
	return &catalogRepository{
		BaseRepository: NewBaseRepository(db),
		cards:          cache,
	}, nil
}

func (r *catalogRepository) GetCards(ctx context.Context, ids []int64) (map[int64]*models.BaseCard, error) {
	out := make(map[int64]*models.BaseCard, len(ids))
	missing := make([]int64, 0)
	for _, id := range ids {
		if v, ok := r.cards.Get(id); ok {
			out[id] = v.(*models.BaseCard)
			continue
		}
		missing = append(missing, id)
	}
	if len(missing) == 0 {
		return out, nil
	}

	ql := logger.NewQueryLogger("base_cards", "GetCards", len(missing))
	var cards []*models.BaseCard
	err := r.SelectWithTimeout(ctx, "list", "base_card", func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(&cards).
			Relation("Series").
			Where("bc.id IN (?)", bun.In(missing)).
			Scan(ctx)
	})
	if err := ql.Done(err, len(cards)); err != nil {
		return nil, err
	}

	for _, c := range cards {
		r.cards.Add(c.ID, c)
		out[c.ID] = c
	}
	return out, nil
}

func (r *catalogRepository) GetVariants(ctx context.Context) ([]*models.CardVariant, error) {
	r.mu.RLock()
	cached := r.variants
	r.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	ql := logger.NewQueryLogger("card_variants", "GetVariants")
	var variants []*models.CardVariant
	err := r.SelectWithTimeout(ctx, "list", "card_variant", func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(&variants).
			Order("rarity_level ASC").
			Scan(ctx)
	})
	if err := ql.Done(err, len(variants)); err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.variants = variants
	r.mu.Unlock()
	return variants, nil
}

// Purge drops cached reference data, for use after the catalog is reseeded.
func (r *catalogRepository) Purge() {
	r.cards.Purge()
	r.mu.Lock()
	r.variants = nil
	r.mu.Unlock()
}
