package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

type UserCard struct {
	bun.BaseModel `bun:"table:user_cards,alias:uc"`

	ID         int64               `bun:"id,pk,autoincrement"`
	UserID     int64               `bun:"user_id,notnull"`
	BaseCardID int64               `bun:"base_card_id,notnull"`
	VariantID  int64               `bun:"variant_id,notnull"`
	Status     string              `bun:"status,notnull,default:'owned'"`
	Price      decimal.NullDecimal `bun:"price,type:numeric(10,2)"`
	Condition  string              `bun:"condition,type:text,default:'mint'"`
	AddedAt    time.Time           `bun:"added_at,nullzero,default:current_timestamp"`
}
