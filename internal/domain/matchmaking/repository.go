package matchmaking

import "context"

//go:generate mockgen -source=repository.go -destination=mock/store.go -package=mock

// Store is the read side of the catalog and the ownership ledger.
type Store interface {
	UserExists(ctx context.Context, userID int64) (bool, error)
	ListWishlist(ctx context.Context, userID int64) ([]WishlistEntry, error)
	ListAllWishlists(ctx context.Context) ([]WishlistEntry, error)
	// ListTradeableOrSellable returns listed cards of every user except excludeUserID (0 excludes nobody).
	ListTradeableOrSellable(ctx context.Context, excludeUserID int64) ([]UserCard, error)
	ListUserCards(ctx context.Context, userID int64) ([]UserCard, error)
	// ListSellListings returns priced sell listings of one card variant, any user.
	ListSellListings(ctx context.Context, k Key) ([]UserCard, error)
	CountCopies(ctx context.Context) (map[Key]int, error)
	// CountDemand counts wishlist entries per card variant across all users.
	CountDemand(ctx context.Context) (map[Key]int, error)
	// CountSupply counts trade and sell listings per card variant across all users.
	CountSupply(ctx context.Context) (map[Key]int, error)
	CardMeta(ctx context.Context, ids []int64) (map[int64]CardMeta, error)
	VariantMeta(ctx context.Context) (map[int64]Variant, error)
	Usernames(ctx context.Context, ids []int64) (map[int64]string, error)
}
