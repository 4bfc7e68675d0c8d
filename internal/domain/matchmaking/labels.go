package matchmaking

import "fmt"

var rarityText = map[Rarity]string{
	RarityBase:   "Common",
	RaritySilver: "Rare",
	RarityPink:   "Special",
	RarityRed:    "Very rare",
	RarityBlue:   "Legendary",
	RarityEpic:   "Epic",
}

var priorityText = map[Priority]string{
	PriorityLow:    "Low",
	PriorityMedium: "Medium",
	PriorityHigh:   "High",
	PriorityUrgent: "Urgent",
}

func RarityText(r Rarity) string {
	if s, ok := rarityText[r]; ok {
		return s
	}
	return "Unknown"
}

func PriorityText(p Priority) string {
	if s, ok := priorityText[p]; ok {
		return s
	}
	return "Not set"
}

// ScoreTier labels a match score for display.
func ScoreTier(score int) string {
	switch {
	case score >= 80:
		return fmt.Sprintf("%d (excellent)", score)
	case score >= 60:
		return fmt.Sprintf("%d (good)", score)
	case score >= 40:
		return fmt.Sprintf("%d (fair)", score)
	}
	return fmt.Sprintf("%d", score)
}

// MarketTrend describes the balance of demand and supply for a card variant.
func MarketTrend(demand, supply int) string {
	if supply <= 0 {
		return "No supply"
	}
	ratio := float64(demand) / float64(supply)
	switch {
	case ratio >= 3:
		return "Hot"
	case ratio >= 2:
		return "Wanted"
	case ratio >= 1:
		return "Balanced"
	case ratio >= 0.5:
		return "Oversupplied"
	}
	return "Low demand"
}

// DaysAgo renders a day count relative to today.
func DaysAgo(days int) string {
	switch {
	case days == UnknownAge:
		return "unknown"
	case days <= 0:
		return "today"
	case days == 1:
		return "yesterday"
	case days <= 7:
		return fmt.Sprintf("%d days ago", days)
	case days <= 30:
		return fmt.Sprintf("%d weeks ago", days/7)
	}
	return fmt.Sprintf("%d months ago", days/30)
}

// TradeValue scores swapping my card for theirs. 50 is an even trade.
func TradeValue(myRarity, theirRarity Rarity, myDemand, theirDemand int) (int, string) {
	score := 50 + (int(theirRarity)-int(myRarity))*10 + (theirDemand-myDemand)*5

	switch {
	case score >= 70:
		return score, "Great trade"
	case score >= 55:
		return score, "Good trade"
	case score >= 45:
		return score, "Even trade"
	case score >= 30:
		return score, "Poor trade"
	}
	return score, "Big loss"
}
