package matchmaking

import "github.com/shopspring/decimal"

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
	SeverityNeutral Severity = "neutral"
)

type Recommendation struct {
	Message  string
	Severity Severity
}

var (
	cheapBand     = decimal.RequireFromString("0.9")
	expensiveBand = decimal.RequireFromString("1.1")

	noMarketData = Recommendation{"No market data", SeverityNeutral}
)

// RecommendPrice classifies an asking price against market statistics.
// The min/max bounds are checked before the average bands. A price under
// the market floor is reported as a success: there is room to raise it.
func RecommendPrice(own decimal.Decimal, m MarketStats) Recommendation {
	switch {
	case m.Samples <= 0:
		return noMarketData
	case own.LessThan(m.Min):
		return Recommendation{"Price too low, raise it", SeveritySuccess}
	case own.GreaterThan(m.Max):
		return Recommendation{"Price too high, lower it", SeverityError}
	case own.LessThanOrEqual(m.Avg.Mul(cheapBand)):
		return Recommendation{"Good price, will sell fast", SeveritySuccess}
	case own.GreaterThanOrEqual(m.Avg.Mul(expensiveBand)):
		return Recommendation{"Expensive, will sell slowly", SeverityWarning}
	}
	return Recommendation{"Market price, reasonable", SeverityInfo}
}
