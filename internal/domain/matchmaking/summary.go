package matchmaking

import "github.com/shopspring/decimal"

type MatchSummary struct {
	Total        int
	TradeOnly    int
	ForSale      int
	Affordable   int
	HighPriority int
	RareCards    int
}

func Summarize(matches []ForwardMatch) MatchSummary {
	s := MatchSummary{Total: len(matches)}
	for _, m := range matches {
		switch m.Status {
		case StatusTrade:
			s.TradeOnly++
		case StatusSell:
			s.ForSale++
		}
		if m.IsAffordable {
			s.Affordable++
		}
		if m.UserPriority >= PriorityHigh {
			s.HighPriority++
		}
		if m.Variant.Rarity >= RarityRed {
			s.RareCards++
		}
	}
	return s
}

// MatchFilter narrows ranked forward matches for display. Zero values disable a criterion.
type MatchFilter struct {
	MinScore       int
	MaxPrice       decimal.Decimal
	MinRarity      Rarity
	EpicOnly       bool
	OnlyAffordable bool
}

func (f MatchFilter) Keep(m ForwardMatch) bool {
	if m.MatchScore < f.MinScore {
		return false
	}
	if f.MaxPrice.IsPositive() && m.Status == StatusSell && m.Price.Valid && m.Price.Decimal.GreaterThan(f.MaxPrice) {
		return false
	}
	if f.EpicOnly && m.Variant.Rarity != RarityEpic {
		return false
	}
	if m.Variant.Rarity < f.MinRarity {
		return false
	}
	if f.OnlyAffordable && !m.IsAffordable {
		return false
	}
	return true
}

// Apply returns the matches that pass f, preserving order.
func (f MatchFilter) Apply(matches []ForwardMatch) []ForwardMatch {
	out := make([]ForwardMatch, 0, len(matches))
	for _, m := range matches {
		if f.Keep(m) {
			out = append(out, m)
		}
	}
	return out
}
