package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cardswap/matchmaker/cardswap/config"
	"github.com/cardswap/matchmaker/internal/gateways/database/models"
)

// tables in foreign key order
var tables = []any{
	(*models.User)(nil),
	(*models.Series)(nil),
	(*models.BaseCard)(nil),
	(*models.CardVariant)(nil),
	(*models.UserCard)(nil),
	(*models.Wishlist)(nil),
}

var indexes = []string{
	"CREATE INDEX IF NOT EXISTS idx_base_cards_series ON base_cards(series_id);",
	"CREATE UNIQUE INDEX IF NOT EXISTS idx_base_cards_number ON base_cards(series_id, card_number);",
	"CREATE INDEX IF NOT EXISTS idx_user_cards_user_id ON user_cards(user_id);",
	"CREATE INDEX IF NOT EXISTS idx_user_cards_card_variant ON user_cards(base_card_id, variant_id);",
	"CREATE INDEX IF NOT EXISTS idx_user_cards_listed ON user_cards(base_card_id, variant_id) WHERE status IN ('trade', 'sell');",
	"CREATE INDEX IF NOT EXISTS idx_wishlists_user_id ON wishlists(user_id);",
	"CREATE UNIQUE INDEX IF NOT EXISTS idx_wishlists_user_card ON wishlists(user_id, base_card_id, variant_id);",
}

var constraints = []string{
	"ALTER TABLE user_cards DROP CONSTRAINT IF EXISTS chk_user_cards_status;",
	"ALTER TABLE user_cards ADD CONSTRAINT chk_user_cards_status CHECK (status IN ('owned', 'trade', 'sell'));",
	"ALTER TABLE wishlists DROP CONSTRAINT IF EXISTS chk_wishlists_priority;",
	"ALTER TABLE wishlists ADD CONSTRAINT chk_wishlists_priority CHECK (priority IS NULL OR priority BETWEEN 1 AND 4);",
	"ALTER TABLE card_variants DROP CONSTRAINT IF EXISTS chk_card_variants_rarity;",
	"ALTER TABLE card_variants ADD CONSTRAINT chk_card_variants_rarity CHECK (rarity_level BETWEEN 1 AND 6);",
}

// InitializeSchema creates all tables and indexes and seeds the variant tiers. It is idempotent.
func (db *DB) InitializeSchema(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, config.SchemaTimeout)
	defer cancel()

	for _, model := range tables {
		if _, err := db.bunDB.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("failed to create table for %T: %w", model, err)
		}
	}

	for _, stmt := range append(append([]string{}, constraints...), indexes...) {
		if _, err := db.ExecWithLog(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply %q: %w", stmt, err)
		}
	}

	seeded, err := db.SeedVariants(ctx)
	if err != nil {
		return err
	}

	slog.Info("Schema initialized",
		slog.String("type", "db"),
		slog.Int("tables", len(tables)),
		slog.Int("indexes", len(indexes)),
		slog.Int64("variants_seeded", seeded))
	return nil
}

// SeedVariants inserts the six variant tiers, leaving existing rows untouched.
func (db *DB) SeedVariants(ctx context.Context) (int64, error) {
	variants := make([]*models.CardVariant, 0, len(models.DefaultVariants))
	for _, v := range models.DefaultVariants {
		c := *v
		variants = append(variants, &c)
	}

	res, err := db.bunDB.NewInsert().
		Model(&variants).
		On("CONFLICT (name) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to seed variants: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
