package matchmaking

import (
	"sort"
	"time"
)

// ForwardInput is the snapshot a forward ranking runs over.
type ForwardInput struct {
	// Wishlist holds the requester's own entries.
	Wishlist []WishlistEntry
	// Listings holds listed cards of any user; the requester's are skipped.
	Listings []UserCard
	Index    *DemandSupply
	Catalog  Catalog
	Now      time.Time
}

// forwardCandidates keeps other users' trade/sell listings whose card
// variant is on the requester's wishlist.
func forwardCandidates(userID int64, wishlist []WishlistEntry, listings []UserCard) ([]UserCard, map[Key]WishlistEntry) {
	wants := make(map[Key]WishlistEntry, len(wishlist))
	for _, w := range wishlist {
		wants[w.Key] = w
	}
	if len(wants) == 0 {
		return nil, wants
	}

	out := make([]UserCard, 0)
	for _, c := range listings {
		if c.UserID == userID || !c.Status.Listed() {
			continue
		}
		if _, ok := wants[c.Key]; !ok {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, wants
}

// RankForward scores every candidate for userID, sorts by score, demand and
// rarity (all descending) and keeps at most limit rows. limit <= 0 keeps all.
func RankForward(userID int64, in ForwardInput, limit int) []ForwardMatch {
	candidates, wants := forwardCandidates(userID, in.Wishlist, in.Listings)
	matches := make([]ForwardMatch, 0, len(candidates))

	for _, c := range candidates {
		want, ok := wants[c.Key]
		if !ok {
			want = WishlistEntry{UserID: userID, Key: c.Key, Priority: DefaultPriority}
		}
		variant := in.Catalog.variant(c.VariantID)
		demand := in.Index.Demand(c.Key)
		supply := in.Index.Supply(c.Key)
		breakdown := scoreForward(c, want, variant.Rarity, demand, supply, in.Now)

		matches = append(matches, ForwardMatch{
			UserCardID:    c.ID,
			Status:        c.Status,
			Price:         c.Price,
			Condition:     c.Condition,
			AddedAt:       c.AddedAt,
			Card:          in.Catalog.card(c.BaseCardID),
			Variant:       variant,
			OwnerID:       c.UserID,
			OwnerUsername: in.Catalog.username(c.UserID),
			UserPriority:  want.Priority,
			UserMaxPrice:  want.MaxPrice,
			Demand:        demand,
			Supply:        supply,
			MatchScore:    breakdown.Total(),
			Breakdown:     breakdown,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if a.MatchScore != b.MatchScore {
			return a.MatchScore > b.MatchScore
		}
		if a.Demand != b.Demand {
			return a.Demand > b.Demand
		}
		return a.Variant.Rarity > b.Variant.Rarity
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	for i := range matches {
		m := &matches[i]
		m.DemandSupplyRatio = demandSupplyRatio(m.Demand, m.Supply)
		m.IsAffordable = IsAffordable(m.Status, m.Price, m.UserMaxPrice)
		m.RarityText = RarityText(m.Variant.Rarity)
		m.PriorityText = PriorityText(m.UserPriority)
		m.DaysSinceAdded = DaysSince(m.AddedAt, in.Now)
	}
	return matches
}
