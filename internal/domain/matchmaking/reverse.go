package matchmaking

import (
	"sort"

	"github.com/shopspring/decimal"
)

// ReverseInput is the snapshot a reverse ranking runs over.
type ReverseInput struct {
	// Owned holds the requester's cards; only trade/sell ones are offered.
	Owned     []UserCard
	Wishlists []WishlistEntry
	Catalog   Catalog
}

// priceAccepted reports whether a wisher would take the listing at its price.
// Trade listings always pass and a missing max price means no limit. A sell
// listing without a price never satisfies a set limit.
func priceAccepted(c UserCard, maxPrice decimal.NullDecimal) bool {
	if c.Status == StatusTrade || !maxPrice.Valid {
		return true
	}
	return c.Price.Valid && c.Price.Decimal.LessThanOrEqual(maxPrice.Decimal)
}

// RankReverse finds, for each of userID's listed cards, every other user
// wishing for the same card variant. total_demand counts all of those users
// before the price filter drops anyone.
func RankReverse(userID int64, in ReverseInput, limit int) []ReverseMatch {
	offered := make(map[Key]struct{})
	for _, c := range in.Owned {
		if c.UserID == userID && c.Status.Listed() {
			offered[c.Key] = struct{}{}
		}
	}
	if len(offered) == 0 {
		return []ReverseMatch{}
	}

	interested := make(map[Key][]WishlistEntry, len(offered))
	for _, w := range in.Wishlists {
		if w.UserID == userID {
			continue
		}
		if _, ok := offered[w.Key]; ok {
			interested[w.Key] = append(interested[w.Key], w)
		}
	}

	owned := make([]UserCard, 0, len(in.Owned))
	for _, c := range in.Owned {
		if c.UserID == userID && c.Status.Listed() {
			owned = append(owned, c)
		}
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].ID < owned[j].ID })

	matches := make([]ReverseMatch, 0)
	for _, c := range owned {
		wishers := interested[c.Key]
		sort.Slice(wishers, func(i, j int) bool { return wishers[i].UserID < wishers[j].UserID })
		total := len(wishers)
		variant := in.Catalog.variant(c.VariantID)
		card := in.Catalog.card(c.BaseCardID)

		for _, w := range wishers {
			if !priceAccepted(c, w.MaxPrice) {
				continue
			}
			matches = append(matches, ReverseMatch{
				MyCardID:           c.ID,
				Status:             c.Status,
				Price:              c.Price,
				Card:               card,
				Variant:            variant,
				InterestedUserID:   w.UserID,
				InterestedUsername: in.Catalog.username(w.UserID),
				TheirPriority:      w.Priority,
				TheirMaxPrice:      w.MaxPrice,
				TotalDemand:        total,
				InterestScore:      InterestScore(w.Priority, variant.Rarity, total),
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].InterestScore != matches[j].InterestScore {
			return matches[i].InterestScore > matches[j].InterestScore
		}
		return matches[i].TotalDemand > matches[j].TotalDemand
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// GroupByCard collects reverse matches per offered card. Groups keep the
// order in which their best match appears; users inside a group are sorted
// by interest score descending.
func GroupByCard(matches []ReverseMatch) []CardInterest {
	index := make(map[int64]int)
	groups := make([]CardInterest, 0)

	for _, m := range matches {
		i, ok := index[m.MyCardID]
		if !ok {
			i = len(groups)
			index[m.MyCardID] = i
			groups = append(groups, CardInterest{
				MyCardID: m.MyCardID,
				Status:   m.Status,
				Price:    m.Price,
				Card:     m.Card,
				Variant:  m.Variant,
			})
		}
		groups[i].Interested = append(groups[i].Interested, m)
	}

	for i := range groups {
		g := &groups[i]
		sort.SliceStable(g.Interested, func(a, b int) bool {
			return g.Interested[a].InterestScore > g.Interested[b].InterestScore
		})
		total := 0
		for _, m := range g.Interested {
			total += m.InterestScore
		}
		g.AverageScore = float64(total) / float64(len(g.Interested))
	}
	return groups
}
