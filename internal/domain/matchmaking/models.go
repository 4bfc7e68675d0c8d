package matchmaking

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the listing state of an owned card.
type Status string

const (
	StatusOwned Status = "owned"
	StatusTrade Status = "trade"
	StatusSell  Status = "sell"
)

// Listed reports whether the card is offered to other users.
func (s Status) Listed() bool {
	return s == StatusTrade || s == StatusSell
}

// Rarity is the tier of a card variant. Higher is rarer.
type Rarity int

const (
	RarityBase Rarity = iota + 1
	RaritySilver
	RarityPink
	RarityRed
	RarityBlue
	RarityEpic
)

func (r Rarity) Valid() bool {
	return r >= RarityBase && r <= RarityEpic
}

// Priority is how urgently a user wants a wishlisted card. Higher is more urgent.
type Priority int

const (
	PriorityLow Priority = iota + 1
	PriorityMedium
	PriorityHigh
	PriorityUrgent
)

// DefaultPriority is used whenever a joined row carries no usable priority.
const DefaultPriority = PriorityHigh

func (p Priority) Valid() bool {
	return p >= PriorityLow && p <= PriorityUrgent
}

// OrDefault returns p, or DefaultPriority when p is out of range.
func (p Priority) OrDefault() Priority {
	if !p.Valid() {
		return DefaultPriority
	}
	return p
}

// Key identifies a physical card: a base card in one variant.
type Key struct {
	BaseCardID int64
	VariantID  int64
}

// WishlistEntry is a user's desire for one card variant.
type WishlistEntry struct {
	UserID int64
	Key
	MaxPrice decimal.NullDecimal
	Priority Priority
}

// UserCard is an ownership record. AddedAt is zero when unknown.
type UserCard struct {
	ID     int64
	UserID int64
	Key
	Status    Status
	Price     decimal.NullDecimal
	Condition string
	AddedAt   time.Time
}

type CardMeta struct {
	ID         int64
	CardNumber int
	PlayerName string
	Team       string
	Position   string
	SeriesName string
	SeriesYear int
}

type Variant struct {
	ID        int64
	Name      string
	ColorCode string
	Rarity    Rarity
}

// Catalog is the reference data joined onto ranked rows.
// Missing entries resolve to zero values.
type Catalog struct {
	Cards     map[int64]CardMeta
	Variants  map[int64]Variant
	Usernames map[int64]string
}

func (c Catalog) card(id int64) CardMeta {
	if m, ok := c.Cards[id]; ok {
		return m
	}
	return CardMeta{ID: id}
}

func (c Catalog) variant(id int64) Variant {
	if v, ok := c.Variants[id]; ok {
		return v
	}
	return Variant{ID: id}
}

func (c Catalog) username(id int64) string {
	return c.Usernames[id]
}

// ScoreBreakdown holds the capped components of a match score.
type ScoreBreakdown struct {
	Priority      int
	Rarity        int
	Scarcity      int
	Popularity    int
	Affordability int
	Freshness     int
}

func (b ScoreBreakdown) Total() int {
	return b.Priority + b.Rarity + b.Scarcity + b.Popularity + b.Affordability + b.Freshness
}

// ForwardMatch is another user's listed card that satisfies the requester's wishlist.
type ForwardMatch struct {
	UserCardID int64
	Status     Status
	Price      decimal.NullDecimal
	Condition  string
	AddedAt    time.Time
	Card       CardMeta
	Variant    Variant

	OwnerID       int64
	OwnerUsername string

	UserPriority Priority
	UserMaxPrice decimal.NullDecimal

	Demand     int
	Supply     int
	MatchScore int
	Breakdown  ScoreBreakdown

	DemandSupplyRatio float64
	IsAffordable      bool
	RarityText        string
	PriorityText      string
	DaysSinceAdded    int
}

// ReverseMatch pairs one of the requester's listed cards with a user who wishes for it.
type ReverseMatch struct {
	MyCardID int64
	Status   Status
	Price    decimal.NullDecimal
	Card     CardMeta
	Variant  Variant

	InterestedUserID   int64
	InterestedUsername string
	TheirPriority      Priority
	TheirMaxPrice      decimal.NullDecimal

	TotalDemand   int
	InterestScore int
}

// CardInterest groups reverse matches by the offered card.
type CardInterest struct {
	MyCardID     int64
	Status       Status
	Price        decimal.NullDecimal
	Card         CardMeta
	Variant      Variant
	Interested   []ReverseMatch
	AverageScore float64
}

// OwnedCardInsight is one row of the most-wanted or rarest reports.
type OwnedCardInsight struct {
	UserCardID  int64
	Status      Status
	Price       decimal.NullDecimal
	Card        CardMeta
	Variant     Variant
	Demand      int
	TotalCopies int
}

// MarketStats summarises priced sell listings of one card variant.
type MarketStats struct {
	Avg     decimal.Decimal
	Min     decimal.Decimal
	Max     decimal.Decimal
	Samples int
}

type PriceComparison struct {
	UserCardID     int64
	Card           CardMeta
	Variant        Variant
	OwnPrice       decimal.NullDecimal
	Market         MarketStats
	Recommendation Recommendation
}

type MarketInsights struct {
	MostWanted       []OwnedCardInsight
	Rarest           []OwnedCardInsight
	PriceComparisons []PriceComparison
}

type PopularCard struct {
	Key
	Card    CardMeta
	Variant Variant
	Demand  int
	Supply  int
}
