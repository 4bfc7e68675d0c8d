package matchmaking

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
)

type Service interface {
	FindMatches(ctx context.Context, userID int64, limit int) ([]ForwardMatch, error)
	FindInterested(ctx context.Context, userID int64, limit int) ([]ReverseMatch, error)
	MarketInsights(ctx context.Context, userID int64) (*MarketInsights, error)
	PopularCards(ctx context.Context, limit int) ([]PopularCard, error)
	EstimateValue(ctx context.Context, k Key) (*MarketStats, error)
}

type Config struct {
	ForwardLimit int
	ReverseLimit int
	InsightLimit int
	// Clock defaults to time.Now.
	Clock func() time.Time
}

func DefaultConfig() Config {
	return Config{
		ForwardLimit: 50,
		ReverseLimit: 30,
		InsightLimit: 10,
	}
}

type service struct {
	store Store
	cfg   Config
	now   func() time.Time
}

// NewService builds the engine over store. Every call reads a fresh snapshot;
// nothing is cached between calls.
func NewService(store Store, cfg Config) *service {
	def := DefaultConfig()
	if cfg.ForwardLimit <= 0 {
		cfg.ForwardLimit = def.ForwardLimit
	}
	if cfg.ReverseLimit <= 0 {
		cfg.ReverseLimit = def.ReverseLimit
	}
	if cfg.InsightLimit <= 0 {
		cfg.InsightLimit = def.InsightLimit
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	return &service{
		store: store,
		cfg:   cfg,
		now:   cfg.Clock,
	}
}

func (s *service) checkUser(ctx context.Context, userID int64, limit int) error {
	if err := validateRequest(userID, limit); err != nil {
		return err
	}
	ok, err := s.store.UserExists(ctx, userID)
	if err != nil {
		return storeErr("user lookup", err)
	}
	if !ok {
		return ErrUnknownUser
	}
	return nil
}

func (s *service) FindMatches(ctx context.Context, userID int64, limit int) ([]ForwardMatch, error) {
	start := time.Now()
	if err := s.checkUser(ctx, userID, limit); err != nil {
		return nil, err
	}
	if limit == 0 {
		limit = s.cfg.ForwardLimit
	}

	var (
		wishlist  []WishlistEntry
		wishlists []WishlistEntry
		listings  []UserCard
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		wishlist, err = s.store.ListWishlist(gctx, userID)
		return storeErr("list wishlist", err)
	})
	g.Go(func() (err error) {
		wishlists, err = s.store.ListAllWishlists(gctx)
		return storeErr("list all wishlists", err)
	})
	g.Go(func() (err error) {
		listings, err = s.store.ListTradeableOrSellable(gctx, 0)
		return storeErr("list listings", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	candidates, _ := forwardCandidates(userID, wishlist, listings)
	if len(candidates) == 0 {
		slog.Debug("No forward candidates",
			slog.String("type", "sys"),
			slog.Int64("user_id", userID),
			slog.Int("wishlist", len(wishlist)))
		return []ForwardMatch{}, nil
	}

	cat, err := s.loadCatalog(ctx, candidates, nil)
	if err != nil {
		return nil, err
	}

	matches := RankForward(userID, ForwardInput{
		Wishlist: wishlist,
		Listings: candidates,
		Index:    Aggregate(wishlists, listings),
		Catalog:  cat,
		Now:      s.now(),
	}, limit)

	slog.Info("Forward matches ranked",
		slog.String("type", "sys"),
		slog.Int64("user_id", userID),
		slog.Int("candidates", len(candidates)),
		slog.Int("returned", len(matches)),
		slog.Duration("took", time.Since(start)))
	return matches, nil
}

func (s *service) FindInterested(ctx context.Context, userID int64, limit int) ([]ReverseMatch, error) {
	start := time.Now()
	if err := s.checkUser(ctx, userID, limit); err != nil {
		return nil, err
	}
	if limit == 0 {
		limit = s.cfg.ReverseLimit
	}

	var (
		owned     []UserCard
		wishlists []WishlistEntry
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		owned, err = s.store.ListUserCards(gctx, userID)
		return storeErr("list user cards", err)
	})
	g.Go(func() (err error) {
		wishlists, err = s.store.ListAllWishlists(gctx)
		return storeErr("list all wishlists", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	matches := RankReverse(userID, ReverseInput{Owned: owned, Wishlists: wishlists}, 0)
	if len(matches) == 0 {
		return matches, nil
	}

	userIDs := make([]int64, 0, len(matches))
	for _, m := range matches {
		userIDs = append(userIDs, m.InterestedUserID)
	}
	cat, err := s.loadCatalog(ctx, owned, userIDs)
	if err != nil {
		return nil, err
	}

	matches = RankReverse(userID, ReverseInput{Owned: owned, Wishlists: wishlists, Catalog: cat}, limit)

	slog.Info("Reverse matches ranked",
		slog.String("type", "sys"),
		slog.Int64("user_id", userID),
		slog.Int("returned", len(matches)),
		slog.Duration("took", time.Since(start)))
	return matches, nil
}

func (s *service) MarketInsights(ctx context.Context, userID int64) (*MarketInsights, error) {
	if err := s.checkUser(ctx, userID, 0); err != nil {
		return nil, err
	}

	var (
		owned    []UserCard
		listings []UserCard
		idx      *DemandSupply
		copies   map[Key]int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		owned, err = s.store.ListUserCards(gctx, userID)
		return storeErr("list user cards", err)
	})
	// price comparisons only look at other users' listings
	g.Go(func() (err error) {
		listings, err = s.store.ListTradeableOrSellable(gctx, userID)
		return storeErr("list listings", err)
	})
	g.Go(func() (err error) {
		idx, err = s.loadIndex(gctx)
		return err
	})
	g.Go(func() (err error) {
		copies, err = s.store.CountCopies(gctx)
		return storeErr("count copies", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(owned) == 0 {
		return &MarketInsights{
			MostWanted:       []OwnedCardInsight{},
			Rarest:           []OwnedCardInsight{},
			PriceComparisons: []PriceComparison{},
		}, nil
	}

	cat, err := s.loadCatalog(ctx, owned, nil)
	if err != nil {
		return nil, err
	}

	return &MarketInsights{
		MostWanted:       MostWanted(owned, idx, cat, s.cfg.InsightLimit),
		Rarest:           Rarest(owned, copies, cat, s.cfg.InsightLimit),
		PriceComparisons: PriceComparisons(userID, owned, listings, cat),
	}, nil
}

func (s *service) PopularCards(ctx context.Context, limit int) ([]PopularCard, error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}
	if limit == 0 {
		limit = s.cfg.InsightLimit
	}

	idx, err := s.loadIndex(ctx)
	if err != nil {
		return nil, err
	}

	keys := idx.Keys()
	cards := make([]UserCard, 0, len(keys))
	for _, k := range keys {
		cards = append(cards, UserCard{Key: k})
	}
	cat, err := s.loadCatalog(ctx, cards, nil)
	if err != nil {
		return nil, err
	}
	return Popular(idx, cat, limit), nil
}

// EstimateValue returns nil when nobody lists the card variant for sale with a price.
func (s *service) EstimateValue(ctx context.Context, k Key) (*MarketStats, error) {
	if err := validateKey(k); err != nil {
		return nil, err
	}
	listings, err := s.store.ListSellListings(ctx, k)
	if err != nil {
		return nil, storeErr("list sell listings", err)
	}
	stats, ok := EstimateValue(k, listings)
	if !ok {
		return nil, nil
	}
	return &stats, nil
}

// loadIndex reads global demand and supply counts grouped by the store.
func (s *service) loadIndex(ctx context.Context) (*DemandSupply, error) {
	var demand, supply map[Key]int
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		demand, err = s.store.CountDemand(gctx)
		return storeErr("count demand", err)
	})
	g.Go(func() (err error) {
		supply, err = s.store.CountSupply(gctx)
		return storeErr("count supply", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return NewDemandSupply(demand, supply), nil
}

// loadCatalog fetches card, variant and username metadata for the given rows.
func (s *service) loadCatalog(ctx context.Context, cards []UserCard, extraUsers []int64) (Catalog, error) {
	cardIDs := make(map[int64]struct{})
	userIDs := make(map[int64]struct{})
	for _, c := range cards {
		cardIDs[c.BaseCardID] = struct{}{}
		if c.UserID != 0 {
			userIDs[c.UserID] = struct{}{}
		}
	}
	for _, id := range extraUsers {
		userIDs[id] = struct{}{}
	}

	var cat Catalog
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		cat.Cards, err = s.store.CardMeta(gctx, sortedIDs(cardIDs))
		return storeErr("card metadata", err)
	})
	g.Go(func() (err error) {
		cat.Variants, err = s.store.VariantMeta(gctx)
		return storeErr("variant metadata", err)
	})
	g.Go(func() (err error) {
		cat.Usernames, err = s.store.Usernames(gctx, sortedIDs(userIDs))
		return storeErr("usernames", err)
	})
	if err := g.Wait(); err != nil {
		return Catalog{}, err
	}
	return cat, nil
}

func sortedIDs(set map[int64]struct{}) []int64 {
	ids := make([]int64, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
