package matchmaking

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxMatchScore is the ceiling of a forward match score.
const MaxMatchScore = 145

const day = 24 * time.Hour

var (
	toleranceLow  = decimal.RequireFromString("1.1")
	toleranceHigh = decimal.RequireFromString("1.2")
)

// PriorityPoints: priority 4 scores 10, priority 1 scores 40.
func PriorityPoints(p Priority) int {
	return (5 - int(p.OrDefault())) * 10
}

// RarityPoints: 5 per rarity level, 0 for an unknown variant.
func RarityPoints(r Rarity) int {
	if !r.Valid() {
		return 0
	}
	return int(r) * 5
}

func ScarcityPoints(supply int) int {
	switch {
	case supply <= 0:
		return 30
	case supply == 1:
		return 25
	case supply == 2:
		return 20
	case supply <= 5:
		return 15
	default:
		return max(0, 10-supply)
	}
}

func PopularityPoints(demand int) int {
	return min(max(demand, 0)*3, 20)
}

// AffordabilityPoints grades a listing against the wisher's max price,
// with 10% and 20% tolerance bands for sell listings.
func AffordabilityPoints(status Status, price, maxPrice decimal.NullDecimal) int {
	switch status {
	case StatusTrade:
		return 15
	case StatusSell:
	default:
		return 0
	}
	if !maxPrice.Valid {
		return 10
	}
	if !price.Valid {
		return 0
	}
	switch {
	case price.Decimal.LessThanOrEqual(maxPrice.Decimal):
		return 15
	case price.Decimal.LessThanOrEqual(maxPrice.Decimal.Mul(toleranceLow)):
		return 10
	case price.Decimal.LessThanOrEqual(maxPrice.Decimal.Mul(toleranceHigh)):
		return 5
	}
	return 0
}

// IsAffordable is the plain max price check shown to users. It is
// intentionally more lenient than AffordabilityPoints: a sell listing
// without a price counts as affordable.
func IsAffordable(status Status, price, maxPrice decimal.NullDecimal) bool {
	switch status {
	case StatusTrade:
		return true
	case StatusSell:
		return !maxPrice.Valid || !price.Valid || price.Decimal.LessThanOrEqual(maxPrice.Decimal)
	}
	return false
}

// FreshnessPoints rewards recently listed cards. A zero addedAt scores 0.
func FreshnessPoints(addedAt, now time.Time) int {
	if addedAt.IsZero() {
		return 0
	}
	age := now.Sub(addedAt)
	switch {
	case age <= day:
		return 10
	case age <= 3*day:
		return 7
	case age <= 7*day:
		return 5
	case age <= 30*day:
		return 2
	}
	return 0
}

// UnknownAge is reported as days since added when added_at is missing.
const UnknownAge = 999

func DaysSince(addedAt, now time.Time) int {
	if addedAt.IsZero() {
		return UnknownAge
	}
	d := int(now.Sub(addedAt) / day)
	return max(d, 0)
}

func scoreForward(c UserCard, want WishlistEntry, rarity Rarity, demand, supply int, now time.Time) ScoreBreakdown {
	return ScoreBreakdown{
		Priority:      PriorityPoints(want.Priority),
		Rarity:        RarityPoints(rarity),
		Scarcity:      ScarcityPoints(supply),
		Popularity:    PopularityPoints(demand),
		Affordability: AffordabilityPoints(c.Status, c.Price, want.MaxPrice),
		Freshness:     FreshnessPoints(c.AddedAt, now),
	}
}

// InterestScore ranks a user interested in one of the requester's cards.
func InterestScore(theirPriority Priority, rarity Rarity, totalDemand int) int {
	r := 0
	if rarity.Valid() {
		r = int(rarity)
	}
	return int(theirPriority.OrDefault())*10 + r*3 + totalDemand*2
}
