package matchmaking

import (
	"sort"

	"github.com/shopspring/decimal"
)

// MostWanted lists the user's cards that appear on any wishlist, most
// demanded first, then rarest.
func MostWanted(owned []UserCard, idx *DemandSupply, cat Catalog, limit int) []OwnedCardInsight {
	out := make([]OwnedCardInsight, 0)
	for _, c := range owned {
		demand := idx.Demand(c.Key)
		if demand <= 0 {
			continue
		}
		row := ownedInsight(c, cat)
		row.Demand = demand
		out = append(out, row)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Demand != out[j].Demand {
			return out[i].Demand > out[j].Demand
		}
		return out[i].Variant.Rarity > out[j].Variant.Rarity
	})
	return truncate(out, limit)
}

// Rarest lists the user's cards by rarity tier, breaking ties by how few
// copies exist across all users.
func Rarest(owned []UserCard, copies map[Key]int, cat Catalog, limit int) []OwnedCardInsight {
	out := make([]OwnedCardInsight, 0, len(owned))
	for _, c := range owned {
		row := ownedInsight(c, cat)
		row.TotalCopies = copies[c.Key]
		out = append(out, row)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Variant.Rarity != out[j].Variant.Rarity {
			return out[i].Variant.Rarity > out[j].Variant.Rarity
		}
		return out[i].TotalCopies < out[j].TotalCopies
	})
	return truncate(out, limit)
}

// PriceComparisons reports each of userID's sell listings against other
// users' priced sell listings of the same card variant. Listings without a
// single comparable are left out.
func PriceComparisons(userID int64, owned []UserCard, listings []UserCard, cat Catalog) []PriceComparison {
	market := make(map[Key][]decimal.Decimal)
	for _, l := range listings {
		if l.UserID == userID || l.Status != StatusSell || !l.Price.Valid {
			continue
		}
		market[l.Key] = append(market[l.Key], l.Price.Decimal)
	}

	out := make([]PriceComparison, 0)
	for _, c := range owned {
		if c.UserID != userID || c.Status != StatusSell {
			continue
		}
		stats, ok := marketStats(market[c.Key])
		if !ok {
			continue
		}
		cmp := PriceComparison{
			UserCardID: c.ID,
			Card:       cat.card(c.BaseCardID),
			Variant:    cat.variant(c.VariantID),
			OwnPrice:   c.Price,
			Market:     stats,
		}
		if c.Price.Valid {
			cmp.Recommendation = RecommendPrice(c.Price.Decimal, stats)
		} else {
			cmp.Recommendation = noMarketData
		}
		out = append(out, cmp)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].UserCardID < out[j].UserCardID })
	return out
}

// EstimateValue summarises every priced sell listing of k.
func EstimateValue(k Key, listings []UserCard) (MarketStats, bool) {
	var prices []decimal.Decimal
	for _, l := range listings {
		if l.Key == k && l.Status == StatusSell && l.Price.Valid {
			prices = append(prices, l.Price.Decimal)
		}
	}
	return marketStats(prices)
}

// Popular lists card variants that someone wishes for, most demanded first
// and least supplied next.
func Popular(idx *DemandSupply, cat Catalog, limit int) []PopularCard {
	out := make([]PopularCard, 0)
	for _, k := range idx.Keys() {
		demand := idx.Demand(k)
		if demand <= 0 {
			continue
		}
		out = append(out, PopularCard{
			Key:     k,
			Card:    cat.card(k.BaseCardID),
			Variant: cat.variant(k.VariantID),
			Demand:  demand,
			Supply:  idx.Supply(k),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Demand != out[j].Demand {
			return out[i].Demand > out[j].Demand
		}
		return out[i].Supply < out[j].Supply
	})
	return truncate(out, limit)
}

func marketStats(prices []decimal.Decimal) (MarketStats, bool) {
	if len(prices) == 0 {
		return MarketStats{}, false
	}
	return MarketStats{
		Avg:     decimal.Avg(prices[0], prices[1:]...),
		Min:     decimal.Min(prices[0], prices[1:]...),
		Max:     decimal.Max(prices[0], prices[1:]...),
		Samples: len(prices),
	}, true
}

func ownedInsight(c UserCard, cat Catalog) OwnedCardInsight {
	return OwnedCardInsight{
		UserCardID: c.ID,
		Status:     c.Status,
		Price:      c.Price,
		Card:       cat.card(c.BaseCardID),
		Variant:    cat.variant(c.VariantID),
	}
}

func truncate[T any](rows []T, limit int) []T {
	if limit > 0 && len(rows) > limit {
		return rows[:limit]
	}
	return rows
}
