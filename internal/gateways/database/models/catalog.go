package models

import (
	"github.com/uptrace/bun"
)

type Series struct {
	bun.BaseModel `bun:"table:series,alias:s"`

	ID   int64  `bun:"id,pk,autoincrement"`
	Name string `bun:"name,notnull"`
	Year int    `bun:"year,notnull"`
}

type BaseCard struct {
	bun.BaseModel `bun:"table:base_cards,alias:bc"`

	ID         int64   `bun:"id,pk,autoincrement"`
	SeriesID   int64   `bun:"series_id,notnull"`
	CardNumber int     `bun:"card_number,notnull"`
	PlayerName string  `bun:"player_name,notnull"`
	Team       string  `bun:"team,type:text,default:''"`
	Position   string  `bun:"position,type:text,default:''"`
	Series     *Series `bun:"rel:belongs-to,join:series_id=id"`
}

// CardVariant is one of the six fixed print variants.
type CardVariant struct {
	bun.BaseModel `bun:"table:card_variants,alias:cv"`

	ID          int64  `bun:"id,pk,autoincrement"`
	Name        string `bun:"name,notnull,unique"`
	ColorCode   string `bun:"color_code,notnull"`
	RarityLevel int    `bun:"rarity_level,notnull"`
}

// DefaultVariants is seeded by the schema bootstrap, rarest last.
var DefaultVariants = []*CardVariant{
	{Name: "Base", ColorCode: "#808080", RarityLevel: 1},
	{Name: "Silver", ColorCode: "#C0C0C0", RarityLevel: 2},
	{Name: "Pink", ColorCode: "#FFC0CB", RarityLevel: 3},
	{Name: "Red", ColorCode: "#FF0000", RarityLevel: 4},
	{Name: "Blue", ColorCode: "#0000FF", RarityLevel: 5},
	{Name: "Epic", ColorCode: "#FFD700", RarityLevel: 6},
}
