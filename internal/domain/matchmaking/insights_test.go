package matchmaking

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestMostWanted(t *testing.T) {
	owned := []UserCard{
		{ID: 1, UserID: 1, Key: Key{5, 1}},
		{ID: 2, UserID: 1, Key: Key{5, 6}},
		{ID: 3, UserID: 1, Key: Key{5, 3}},
		{ID: 4, UserID: 1, Key: Key{7, 1}},
	}
	idx := NewDemandSupply(map[Key]int{
		{5, 1}: 2,
		{5, 6}: 2,
		{5, 3}: 4,
	}, nil)

	got := MostWanted(owned, idx, testCatalog, 10)
	wantIDs := []int64{3, 2, 1}
	if len(got) != len(wantIDs) {
		t.Fatalf("MostWanted() returned %d rows, want %d", len(got), len(wantIDs))
	}
	for i, id := range wantIDs {
		if got[i].UserCardID != id {
			t.Errorf("row %d = card %d, want %d", i, got[i].UserCardID, id)
		}
	}
	if got := MostWanted(owned, idx, testCatalog, 1); len(got) != 1 {
		t.Errorf("MostWanted(limit 1) returned %d rows", len(got))
	}
}

func TestRarest_TieBrokenByCopies(t *testing.T) {
	owned := []UserCard{
		{ID: 1, UserID: 1, Key: Key{5, 6}},
		{ID: 2, UserID: 1, Key: Key{6, 6}},
		{ID: 3, UserID: 1, Key: Key{5, 1}},
	}
	copies := map[Key]int{
		{5, 6}: 5,
		{6, 6}: 2,
		{5, 1}: 1,
	}
	got := Rarest(owned, copies, testCatalog, 10)
	wantIDs := []int64{2, 1, 3}
	for i, id := range wantIDs {
		if got[i].UserCardID != id {
			t.Errorf("row %d = card %d, want %d", i, got[i].UserCardID, id)
		}
	}
	if got[0].TotalCopies != 2 {
		t.Errorf("TotalCopies = %d, want 2", got[0].TotalCopies)
	}
}

func TestPriceComparisons(t *testing.T) {
	k := Key{5, 1}
	lonely := Key{5, 3}
	owned := []UserCard{
		{ID: 1, UserID: 1, Key: k, Status: StatusSell, Price: price(100)},
		{ID: 2, UserID: 1, Key: lonely, Status: StatusSell, Price: price(50)},
		{ID: 3, UserID: 1, Key: k, Status: StatusTrade},
	}
	listings := []UserCard{
		{ID: 10, UserID: 2, Key: k, Status: StatusSell, Price: price(90)},
		{ID: 11, UserID: 3, Key: k, Status: StatusSell, Price: price(110)},
		{ID: 12, UserID: 3, Key: k, Status: StatusSell},
		{ID: 13, UserID: 2, Key: lonely, Status: StatusTrade, Price: price(10)},
		{ID: 14, UserID: 1, Key: lonely, Status: StatusSell, Price: price(10)},
	}

	got := PriceComparisons(1, owned, listings, testCatalog)
	if len(got) != 1 {
		t.Fatalf("PriceComparisons() returned %d rows, want 1: %+v", len(got), got)
	}
	c := got[0]
	if c.UserCardID != 1 || c.Market.Samples != 2 {
		t.Errorf("row = card %d samples %d", c.UserCardID, c.Market.Samples)
	}
	if !c.Market.Avg.Equal(dec(100)) || !c.Market.Min.Equal(dec(90)) || !c.Market.Max.Equal(dec(110)) {
		t.Errorf("market = avg %s min %s max %s", c.Market.Avg, c.Market.Min, c.Market.Max)
	}
	if c.Recommendation.Severity != SeverityInfo {
		t.Errorf("Recommendation = %+v, want info", c.Recommendation)
	}
}

func TestEstimateValue(t *testing.T) {
	k := Key{5, 6}
	listings := []UserCard{
		{ID: 1, UserID: 1, Key: k, Status: StatusSell, Price: price(200)},
		{ID: 2, UserID: 2, Key: k, Status: StatusSell, Price: price(400)},
		{ID: 3, UserID: 3, Key: k, Status: StatusTrade, Price: price(1)},
	}
	stats, ok := EstimateValue(k, listings)
	if !ok {
		t.Fatal("EstimateValue() found no samples")
	}
	if !stats.Avg.Equal(dec(300)) || stats.Samples != 2 {
		t.Errorf("EstimateValue() = %+v", stats)
	}
	if _, ok := EstimateValue(Key{9, 9}, listings); ok {
		t.Error("EstimateValue() reported samples for an unlisted card")
	}
}

func TestPopular(t *testing.T) {
	a, b, c := Key{1, 1}, Key{2, 1}, Key{3, 1}
	idx := NewDemandSupply(
		map[Key]int{a: 3, b: 3, c: 1},
		map[Key]int{a: 4, b: 1, Key{4, 1}: 7},
	)
	got := Popular(idx, testCatalog, 0)
	want := []Key{b, a, c}
	if len(got) != len(want) {
		t.Fatalf("Popular() returned %d rows, want %d", len(got), len(want))
	}
	for i, k := range want {
		if got[i].Key != k {
			t.Errorf("row %d = %v, want %v", i, got[i].Key, k)
		}
	}
}

func TestRecommendPrice(t *testing.T) {
	market := MarketStats{Avg: dec(100), Min: dec(50), Max: dec(200), Samples: 4}
	tests := []struct {
		name  string
		own   decimal.Decimal
		stats MarketStats
		want  Severity
	}{
		{"below floor", dec(80), MarketStats{Avg: dec(150), Min: dec(100), Max: dec(300), Samples: 3}, SeveritySuccess},
		{"above ceiling", dec(250), market, SeverityError},
		{"cheap", dec(90), market, SeveritySuccess},
		{"expensive", dec(110), market, SeverityWarning},
		{"market price", dec(105), market, SeverityInfo},
		{"no samples", dec(105), MarketStats{}, SeverityNeutral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RecommendPrice(tt.own, tt.stats); got.Severity != tt.want {
				t.Errorf("RecommendPrice() = %+v, want %s", got, tt.want)
			}
		})
	}
	if got := RecommendPrice(dec(80), MarketStats{Avg: dec(150), Min: dec(100), Max: dec(300), Samples: 3}); got.Message != "Price too low, raise it" {
		t.Errorf("RecommendPrice() message = %q", got.Message)
	}
}
