package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

type Wishlist struct {
	bun.BaseModel `bun:"table:wishlists,alias:w"`

	ID         int64               `bun:"id,pk,autoincrement"`
	UserID     int64               `bun:"user_id,notnull"`
	BaseCardID int64               `bun:"base_card_id,notnull"`
	VariantID  int64               `bun:"variant_id,notnull"`
	MaxPrice   decimal.NullDecimal `bun:"max_price,type:numeric(10,2)"`
	Priority   int                 `bun:"priority,nullzero"`
	CreatedAt  time.Time           `bun:"created_at,notnull,default:current_timestamp"`
}
