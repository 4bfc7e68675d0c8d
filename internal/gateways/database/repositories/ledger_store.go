package repositories

import (
	"context"

	"github.com/cardswap/matchmaker/internal/domain/matchmaking"
	"github.com/cardswap/matchmaker/internal/gateways/database/models"
)

// LedgerStore adapts the repositories to the read contract of the matchmaking engine.
type LedgerStore struct {
	users     UserRepository
	wishlists WishlistRepository
	userCards UserCardRepository
	catalog   CatalogRepository
}

var _ matchmaking.Store = (*LedgerStore)(nil)

func NewLedgerStore(users UserRepository, wishlists WishlistRepository, userCards UserCardRepository, catalog CatalogRepository) *LedgerStore {
	return &LedgerStore{
		users:     users,
		wishlists: wishlists,
		userCards: userCards,
		catalog:   catalog,
	}
}

func (s *LedgerStore) UserExists(ctx context.Context, userID int64) (bool, error) {
	return s.users.Exists(ctx, userID)
}

func (s *LedgerStore) ListWishlist(ctx context.Context, userID int64) ([]matchmaking.WishlistEntry, error) {
	rows, err := s.wishlists.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toWishlistEntries(rows), nil
}

func (s *LedgerStore) ListAllWishlists(ctx context.Context) ([]matchmaking.WishlistEntry, error) {
	rows, err := s.wishlists.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return toWishlistEntries(rows), nil
}

func (s *LedgerStore) ListTradeableOrSellable(ctx context.Context, excludeUserID int64) ([]matchmaking.UserCard, error) {
	rows, err := s.userCards.GetListed(ctx, excludeUserID)
	if err != nil {
		return nil, err
	}
	return toUserCards(rows), nil
}

func (s *LedgerStore) ListUserCards(ctx context.Context, userID int64) ([]matchmaking.UserCard, error) {
	rows, err := s.userCards.GetAllByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toUserCards(rows), nil
}

func (s *LedgerStore) ListSellListings(ctx context.Context, k matchmaking.Key) ([]matchmaking.UserCard, error) {
	rows, err := s.userCards.GetSellListings(ctx, k.BaseCardID, k.VariantID)
	if err != nil {
		return nil, err
	}
	return toUserCards(rows), nil
}

func (s *LedgerStore) CountCopies(ctx context.Context) (map[matchmaking.Key]int, error) {
	return toKeyCounts(s.userCards.CountCopies(ctx))
}

func (s *LedgerStore) CountDemand(ctx context.Context) (map[matchmaking.Key]int, error) {
	return toKeyCounts(s.wishlists.CountByCard(ctx))
}

func (s *LedgerStore) CountSupply(ctx context.Context) (map[matchmaking.Key]int, error) {
	return toKeyCounts(s.userCards.CountListed(ctx))
}

func (s *LedgerStore) CardMeta(ctx context.Context, ids []int64) (map[int64]matchmaking.CardMeta, error) {
	cards, err := s.catalog.GetCards(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make(map[int64]matchmaking.CardMeta, len(cards))
	for id, c := range cards {
		out[id] = toCardMeta(c)
	}
	return out, nil
}

func (s *LedgerStore) VariantMeta(ctx context.Context) (map[int64]matchmaking.Variant, error) {
	variants, err := s.catalog.GetVariants(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[int64]matchmaking.Variant, len(variants))
	for _, v := range variants {
		out[v.ID] = toVariant(v)
	}
	return out, nil
}

func (s *LedgerStore) Usernames(ctx context.Context, ids []int64) (map[int64]string, error) {
	return s.users.Usernames(ctx, ids)
}

func toKeyCounts(counts []KeyCount, err error) (map[matchmaking.Key]int, error) {
	if err != nil {
		return nil, err
	}
	out := make(map[matchmaking.Key]int, len(counts))
	for _, c := range counts {
		out[matchmaking.Key{BaseCardID: c.BaseCardID, VariantID: c.VariantID}] = c.Count
	}
	return out, nil
}

func toWishlistEntries(rows []*models.Wishlist) []matchmaking.WishlistEntry {
	out := make([]matchmaking.WishlistEntry, 0, len(rows))
	for _, w := range rows {
		out = append(out, matchmaking.WishlistEntry{
			UserID:   w.UserID,
			Key:      matchmaking.Key{BaseCardID: w.BaseCardID, VariantID: w.VariantID},
			MaxPrice: w.MaxPrice,
			Priority: matchmaking.Priority(w.Priority),
		})
	}
	return out
}

func toUserCards(rows []*models.UserCard) []matchmaking.UserCard {
	out := make([]matchmaking.UserCard, 0, len(rows))
	for _, c := range rows {
		out = append(out, matchmaking.UserCard{
			ID:        c.ID,
			UserID:    c.UserID,
			Key:       matchmaking.Key{BaseCardID: c.BaseCardID, VariantID: c.VariantID},
			Status:    matchmaking.Status(c.Status),
			Price:     c.Price,
			Condition: c.Condition,
			AddedAt:   c.AddedAt,
		})
	}
	return out
}

func toCardMeta(c *models.BaseCard) matchmaking.CardMeta {
	meta := matchmaking.CardMeta{
		ID:         c.ID,
		CardNumber: c.CardNumber,
		PlayerName: c.PlayerName,
		Team:       c.Team,
		Position:   c.Position,
	}
	if c.Series != nil {
		meta.SeriesName = c.Series.Name
		meta.SeriesYear = c.Series.Year
	}
	return meta
}

func toVariant(v *models.CardVariant) matchmaking.Variant {
	return matchmaking.Variant{
		ID:        v.ID,
		Name:      v.Name,
		ColorCode: v.ColorCode,
		Rarity:    matchmaking.Rarity(v.RarityLevel),
	}
}
