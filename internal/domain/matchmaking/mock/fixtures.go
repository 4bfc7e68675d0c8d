package mock

import (
	"time"

	"github.com/cardswap/matchmaker/internal/domain/matchmaking"
	"github.com/shopspring/decimal"
)

const (
	Seller int64 = 1
	Buyer  int64 = 2
)

var Now = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

var EpicKey = matchmaking.Key{BaseCardID: 5, VariantID: 6}

var Variants = map[int64]matchmaking.Variant{
	1: {ID: 1, Name: "Base", ColorCode: "#808080", Rarity: matchmaking.RarityBase},
	2: {ID: 2, Name: "Silver", ColorCode: "#C0C0C0", Rarity: matchmaking.RaritySilver},
	3: {ID: 3, Name: "Pink", ColorCode: "#FFC0CB", Rarity: matchmaking.RarityPink},
	4: {ID: 4, Name: "Red", ColorCode: "#FF0000", Rarity: matchmaking.RarityRed},
	5: {ID: 5, Name: "Blue", ColorCode: "#0000FF", Rarity: matchmaking.RarityBlue},
	6: {ID: 6, Name: "Epic", ColorCode: "#FFD700", Rarity: matchmaking.RarityEpic},
}

var Cards = map[int64]matchmaking.CardMeta{
	5: {ID: 5, CardNumber: 5, PlayerName: "Jan Novak", Team: "Sparta", Position: "GK", SeriesName: "Extraliga", SeriesYear: 2024},
}

var Usernames = map[int64]string{
	Seller: "alice",
	Buyer:  "bob",
}

// Wishlists holds the buyer's single entry: the Epic card at urgent priority, max 1200.
var Wishlists = []matchmaking.WishlistEntry{
	{
		UserID:   Buyer,
		Key:      EpicKey,
		MaxPrice: decimal.NewNullDecimal(decimal.NewFromInt(1200)),
		Priority: matchmaking.PriorityUrgent,
	},
}

// Listings holds the seller's Epic card listed for sale at 1000 an hour ago.
var Listings = []matchmaking.UserCard{
	{
		ID:        100,
		UserID:    Seller,
		Key:       EpicKey,
		Status:    matchmaking.StatusSell,
		Price:     decimal.NewNullDecimal(decimal.NewFromInt(1000)),
		Condition: "mint",
		AddedAt:   Now.Add(-time.Hour),
	},
}

// Demand and Supply are the grouped counts matching Wishlists and Listings.
var (
	Demand = map[matchmaking.Key]int{EpicKey: 1}
	Supply = map[matchmaking.Key]int{EpicKey: 1}
)
