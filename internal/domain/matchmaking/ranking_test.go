package matchmaking

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

var (
	testNow     = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	testCatalog = Catalog{
		Cards: map[int64]CardMeta{
			5: {ID: 5, CardNumber: 5, PlayerName: "Jan Novak", SeriesName: "Extraliga"},
		},
		Variants: map[int64]Variant{
			1: {ID: 1, Name: "Base", Rarity: RarityBase},
			3: {ID: 3, Name: "Pink", Rarity: RarityPink},
			6: {ID: 6, Name: "Epic", Rarity: RarityEpic},
		},
		Usernames: map[int64]string{1: "alice", 2: "bob"},
	}
)

func TestRankForward_EpicScenario(t *testing.T) {
	k := Key{BaseCardID: 5, VariantID: 6}
	wishlist := []WishlistEntry{{UserID: 2, Key: k, MaxPrice: price(1200), Priority: PriorityUrgent}}
	listings := []UserCard{{ID: 10, UserID: 1, Key: k, Status: StatusSell, Price: price(1000), AddedAt: testNow.Add(-time.Hour)}}

	got := RankForward(2, ForwardInput{
		Wishlist: wishlist,
		Listings: listings,
		Index:    Aggregate(wishlist, listings),
		Catalog:  testCatalog,
		Now:      testNow,
	}, 0)

	if len(got) != 1 {
		t.Fatalf("RankForward() returned %d matches, want 1", len(got))
	}
	m := got[0]
	want := ScoreBreakdown{Priority: 10, Rarity: 30, Scarcity: 25, Popularity: 3, Affordability: 15, Freshness: 10}
	if m.Breakdown != want {
		t.Errorf("Breakdown = %+v, want %+v", m.Breakdown, want)
	}
	if m.MatchScore != 93 {
		t.Errorf("MatchScore = %d, want 93", m.MatchScore)
	}
	if m.DemandSupplyRatio != 1 {
		t.Errorf("DemandSupplyRatio = %v, want 1", m.DemandSupplyRatio)
	}
	if !m.IsAffordable {
		t.Error("IsAffordable = false, want true")
	}
	if m.OwnerUsername != "alice" || m.RarityText != "Epic" || m.PriorityText != "Urgent" {
		t.Errorf("labels = %q %q %q", m.OwnerUsername, m.RarityText, m.PriorityText)
	}
	if m.DaysSinceAdded != 0 {
		t.Errorf("DaysSinceAdded = %d, want 0", m.DaysSinceAdded)
	}
}

func TestRankForward_EmptyWishlist(t *testing.T) {
	listings := []UserCard{{ID: 1, UserID: 1, Key: Key{5, 6}, Status: StatusTrade}}
	got := RankForward(2, ForwardInput{Listings: listings, Now: testNow}, 10)
	if got == nil || len(got) != 0 {
		t.Errorf("RankForward() = %v, want empty slice", got)
	}
}

func TestRankForward_TieBreaks(t *testing.T) {
	base := Key{BaseCardID: 5, VariantID: 1}
	pink := Key{BaseCardID: 5, VariantID: 3}
	other := Key{BaseCardID: 7, VariantID: 1}
	trade := func(id int64, k Key) UserCard {
		return UserCard{ID: id, UserID: 1, Key: k, Status: StatusTrade, AddedAt: testNow}
	}

	tests := []struct {
		name      string
		wishlist  []WishlistEntry
		listings  []UserCard
		demand    map[Key]int
		wantIDs   []int64
		wantScore []int
	}{
		{
			// popularity saturates at 20 for both, so only demand differs
			name:      "equal score, higher demand first",
			wishlist:  []WishlistEntry{{UserID: 2, Key: base, Priority: PriorityMedium}, {UserID: 2, Key: other, Priority: PriorityMedium}},
			listings:  []UserCard{trade(1, base), trade(2, other)},
			demand:    map[Key]int{base: 7, other: 8},
			wantIDs:   []int64{2, 1},
			wantScore: []int{105, 105},
		},
		{
			// pink: urgent 10 + rarity 15; base: high 20 + rarity 5
			name:      "equal score and demand, rarer first",
			wishlist:  []WishlistEntry{{UserID: 2, Key: base, Priority: PriorityHigh}, {UserID: 2, Key: pink, Priority: PriorityUrgent}},
			listings:  []UserCard{trade(1, base), trade(2, pink)},
			demand:    map[Key]int{base: 2, pink: 2},
			wantIDs:   []int64{2, 1},
			wantScore: []int{81, 81},
		},
		{
			name:      "score wins over demand",
			wishlist:  []WishlistEntry{{UserID: 2, Key: other, Priority: PriorityUrgent}, {UserID: 2, Key: base, Priority: PriorityLow}},
			listings:  []UserCard{trade(1, other), trade(2, base)},
			demand:    map[Key]int{other: 8, base: 1},
			wantIDs:   []int64{2, 1},
			wantScore: []int{98, 85},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			supply := make(map[Key]int, len(tt.listings))
			for _, c := range tt.listings {
				supply[c.Key]++
			}
			got := RankForward(2, ForwardInput{
				Wishlist: tt.wishlist,
				Listings: tt.listings,
				Index:    NewDemandSupply(tt.demand, supply),
				Catalog:  testCatalog,
				Now:      testNow,
			}, 0)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("RankForward() returned %d matches, want %d", len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].UserCardID != id || got[i].MatchScore != tt.wantScore[i] {
					t.Errorf("match %d = card %d score %d, want card %d score %d",
						i, got[i].UserCardID, got[i].MatchScore, id, tt.wantScore[i])
				}
			}
		})
	}
}

func TestRankForward_ExcludesOwnAndUnlisted(t *testing.T) {
	k := Key{BaseCardID: 5, VariantID: 1}
	wishlist := []WishlistEntry{{UserID: 2, Key: k, Priority: PriorityLow}}
	listings := []UserCard{
		{ID: 1, UserID: 2, Key: k, Status: StatusSell, Price: price(5)},
		{ID: 2, UserID: 1, Key: k, Status: StatusOwned},
		{ID: 3, UserID: 1, Key: Key{5, 3}, Status: StatusTrade},
		{ID: 4, UserID: 1, Key: k, Status: StatusTrade},
	}
	got := RankForward(2, ForwardInput{Wishlist: wishlist, Listings: listings, Catalog: testCatalog, Now: testNow}, 0)
	if len(got) != 1 || got[0].UserCardID != 4 {
		t.Fatalf("RankForward() = %+v, want only card 4", got)
	}
	if got[0].DaysSinceAdded != UnknownAge {
		t.Errorf("DaysSinceAdded = %d, want %d", got[0].DaysSinceAdded, UnknownAge)
	}
}

func TestRankForward_OrderingAndBounds(t *testing.T) {
	base := Key{BaseCardID: 5, VariantID: 1}
	pink := Key{BaseCardID: 5, VariantID: 3}
	epic := Key{BaseCardID: 5, VariantID: 6}
	wishlist := []WishlistEntry{
		{UserID: 2, Key: base, Priority: PriorityLow},
		{UserID: 2, Key: pink, Priority: PriorityHigh, MaxPrice: price(50)},
		{UserID: 2, Key: epic, Priority: PriorityUrgent, MaxPrice: price(100)},
	}
	var listings []UserCard
	for i := int64(1); i <= 12; i++ {
		k := []Key{base, pink, epic}[i%3]
		status := StatusSell
		if i%4 == 0 {
			status = StatusTrade
		}
		listings = append(listings, UserCard{
			ID:      i,
			UserID:  10 + i%2,
			Key:     k,
			Status:  status,
			Price:   price(i * 10),
			AddedAt: testNow.Add(-time.Duration(i) * day),
		})
	}
	in := ForwardInput{
		Wishlist: wishlist,
		Listings: listings,
		Index:    Aggregate(wishlist, listings),
		Catalog:  testCatalog,
		Now:      testNow,
	}

	all := RankForward(2, in, 0)
	if len(all) != 12 {
		t.Fatalf("RankForward() returned %d matches, want 12", len(all))
	}
	for i, m := range all {
		if m.MatchScore < 0 || m.MatchScore > MaxMatchScore {
			t.Errorf("match %d score %d out of range", i, m.MatchScore)
		}
		if m.Status == StatusTrade && !m.IsAffordable {
			t.Errorf("trade match %d not affordable", m.UserCardID)
		}
		if i > 0 && all[i-1].MatchScore < m.MatchScore {
			t.Errorf("scores not descending at %d: %d < %d", i, all[i-1].MatchScore, m.MatchScore)
		}
	}

	top := RankForward(2, in, 5)
	if len(top) != 5 {
		t.Fatalf("RankForward(limit 5) returned %d matches", len(top))
	}
	for i := range top {
		if top[i].UserCardID != all[i].UserCardID {
			t.Errorf("limited result %d = card %d, want %d", i, top[i].UserCardID, all[i].UserCardID)
		}
	}
}

func TestRankForward_PartialAffordability(t *testing.T) {
	k := Key{BaseCardID: 5, VariantID: 1}
	wishlist := []WishlistEntry{{UserID: 2, Key: k, MaxPrice: price(100)}}
	listings := []UserCard{
		{ID: 1, UserID: 1, Key: k, Status: StatusSell, Price: price(105)},
		{ID: 2, UserID: 1, Key: k, Status: StatusSell},
	}
	got := RankForward(2, ForwardInput{Wishlist: wishlist, Listings: listings, Catalog: testCatalog, Now: testNow}, 0)
	if len(got) != 2 {
		t.Fatalf("RankForward() returned %d matches, want 2", len(got))
	}
	byID := map[int64]ForwardMatch{got[0].UserCardID: got[0], got[1].UserCardID: got[1]}

	if m := byID[1]; m.Breakdown.Affordability != 10 || m.IsAffordable {
		t.Errorf("priced above max: points %d affordable %v, want 10 false", m.Breakdown.Affordability, m.IsAffordable)
	}
	if m := byID[2]; m.Breakdown.Affordability != 0 || !m.IsAffordable {
		t.Errorf("unpriced: points %d affordable %v, want 0 true", m.Breakdown.Affordability, m.IsAffordable)
	}
}

func TestRankForward_RatioWithoutSupply(t *testing.T) {
	k := Key{BaseCardID: 5, VariantID: 1}
	wishlist := []WishlistEntry{{UserID: 2, Key: k}}
	listings := []UserCard{{ID: 1, UserID: 1, Key: k, Status: StatusTrade}}
	idx := NewDemandSupply(map[Key]int{k: 5}, nil)

	got := RankForward(2, ForwardInput{Wishlist: wishlist, Listings: listings, Index: idx, Catalog: testCatalog, Now: testNow}, 0)
	if len(got) != 1 {
		t.Fatalf("RankForward() returned %d matches, want 1", len(got))
	}
	if got[0].DemandSupplyRatio != 5 {
		t.Errorf("DemandSupplyRatio = %v, want 5", got[0].DemandSupplyRatio)
	}
	if got[0].Breakdown.Scarcity != 30 {
		t.Errorf("Scarcity = %d, want 30", got[0].Breakdown.Scarcity)
	}
}

func TestRankReverse(t *testing.T) {
	sellCard := Key{BaseCardID: 10, VariantID: 1}
	tradeCard := Key{BaseCardID: 11, VariantID: 1}
	unpriced := Key{BaseCardID: 12, VariantID: 1}

	owned := []UserCard{
		{ID: 1, UserID: 1, Key: sellCard, Status: StatusSell, Price: price(150)},
		{ID: 2, UserID: 1, Key: tradeCard, Status: StatusTrade},
		{ID: 3, UserID: 1, Key: unpriced, Status: StatusSell},
		{ID: 4, UserID: 1, Key: Key{13, 1}, Status: StatusOwned},
	}
	wishlists := []WishlistEntry{
		{UserID: 2, Key: sellCard, MaxPrice: price(100)},
		{UserID: 3, Key: sellCard},
		{UserID: 2, Key: tradeCard, MaxPrice: price(1), Priority: PriorityMedium},
		{UserID: 4, Key: unpriced, MaxPrice: price(50)},
		{UserID: 5, Key: unpriced, Priority: PriorityUrgent},
		{UserID: 6, Key: Key{13, 1}, Priority: PriorityUrgent},
		{UserID: 1, Key: sellCard, Priority: PriorityUrgent},
	}

	got := RankReverse(1, ReverseInput{Owned: owned, Wishlists: wishlists, Catalog: testCatalog}, 0)

	want := []struct {
		card, user int64
		total      int
		score      int
	}{
		{3, 5, 2, 47},
		{1, 3, 2, 37},
		{2, 2, 1, 25},
	}
	if len(got) != len(want) {
		t.Fatalf("RankReverse() returned %d matches, want %d: %+v", len(got), len(want), got)
	}
	for i, w := range want {
		m := got[i]
		if m.MyCardID != w.card || m.InterestedUserID != w.user || m.TotalDemand != w.total || m.InterestScore != w.score {
			t.Errorf("match %d = card %d user %d total %d score %d, want %+v",
				i, m.MyCardID, m.InterestedUserID, m.TotalDemand, m.InterestScore, w)
		}
	}

	limited := RankReverse(1, ReverseInput{Owned: owned, Wishlists: wishlists}, 1)
	if len(limited) != 1 || limited[0].InterestedUserID != 5 {
		t.Errorf("RankReverse(limit 1) = %+v", limited)
	}
}

func TestRankReverse_NothingOffered(t *testing.T) {
	owned := []UserCard{{ID: 1, UserID: 1, Key: Key{1, 1}, Status: StatusOwned}}
	wishlists := []WishlistEntry{{UserID: 2, Key: Key{1, 1}}}
	got := RankReverse(1, ReverseInput{Owned: owned, Wishlists: wishlists}, 0)
	if got == nil || len(got) != 0 {
		t.Errorf("RankReverse() = %v, want empty slice", got)
	}
}

func TestGroupByCard(t *testing.T) {
	matches := []ReverseMatch{
		{MyCardID: 1, InterestedUserID: 2, InterestScore: 50},
		{MyCardID: 2, InterestedUserID: 3, InterestScore: 40},
		{MyCardID: 1, InterestedUserID: 4, InterestScore: 30},
	}
	groups := GroupByCard(matches)
	if len(groups) != 2 {
		t.Fatalf("GroupByCard() returned %d groups, want 2", len(groups))
	}
	if groups[0].MyCardID != 1 || len(groups[0].Interested) != 2 || groups[0].AverageScore != 40 {
		t.Errorf("group 0 = %+v", groups[0])
	}
	if groups[1].MyCardID != 2 || groups[1].AverageScore != 40 {
		t.Errorf("group 1 = %+v", groups[1])
	}
}

func TestPriceAccepted(t *testing.T) {
	sell := UserCard{Status: StatusSell, Price: price(150)}
	if priceAccepted(sell, price(100)) {
		t.Error("sell above max accepted")
	}
	if !priceAccepted(sell, decimal.NullDecimal{}) {
		t.Error("sell with no max rejected")
	}
	if !priceAccepted(UserCard{Status: StatusTrade}, price(1)) {
		t.Error("trade rejected on price")
	}
}
