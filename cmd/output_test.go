package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cardswap/matchmaker/internal/domain/matchmaking"
	"github.com/shopspring/decimal"
)

func TestMoney(t *testing.T) {
	if got := money(decimal.NullDecimal{}); got != "-" {
		t.Errorf("money(null) = %q", got)
	}
	if got := money(decimal.NewNullDecimal(decimal.NewFromInt(12))); got != "12.00" {
		t.Errorf("money(12) = %q", got)
	}
}

func TestPrintForward(t *testing.T) {
	matches := []matchmaking.ForwardMatch{{
		UserCardID:     100,
		Status:         matchmaking.StatusSell,
		Price:          decimal.NewNullDecimal(decimal.NewFromInt(1000)),
		Card:           matchmaking.CardMeta{CardNumber: 5, PlayerName: "Jan Novak"},
		Variant:        matchmaking.Variant{Name: "Epic", Rarity: matchmaking.RarityEpic},
		OwnerUsername:  "alice",
		Demand:         1,
		Supply:         1,
		MatchScore:     93,
		IsAffordable:   true,
		RarityText:     "Epic",
		DaysSinceAdded: 0,
	}}

	var buf bytes.Buffer
	if err := printForward(&buf, matches); err != nil {
		t.Fatalf("printForward() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"#005 Jan Novak (Epic)", "alice", "1000.00", "93 (excellent)", "1/1 (Balanced)", "today"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestMatchFilterFlags(t *testing.T) {
	defer func(saved string) { matchesOpts.maxPrice = saved }(matchesOpts.maxPrice)

	matchesOpts.maxPrice = "12.50"
	f, err := matchFilter()
	if err != nil {
		t.Fatalf("matchFilter() error = %v", err)
	}
	if !f.MaxPrice.Equal(decimal.RequireFromString("12.5")) {
		t.Errorf("MaxPrice = %s", f.MaxPrice)
	}

	matchesOpts.maxPrice = "cheap"
	if _, err := matchFilter(); err == nil {
		t.Error("matchFilter() accepted a non-numeric price")
	}
}
