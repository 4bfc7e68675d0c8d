package cmd

import (
	"context"
	"fmt"

	"github.com/cardswap/matchmaker/cardswap"
	"github.com/cardswap/matchmaker/internal/domain/matchmaking"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var matchesOpts struct {
	user       string
	limit      int
	minScore   int
	maxPrice   string
	minRarity  int
	epicOnly   bool
	affordable bool
	summary    bool
}

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "List other users' cards that satisfy your wishlist, best first",
	RunE:  withApp("matches", runMatches),
}

func init() {
	f := matchesCmd.Flags()
	f.StringVarP(&matchesOpts.user, "user", "u", "", "user id or username")
	f.IntVarP(&matchesOpts.limit, "limit", "n", 0, "maximum number of matches (0 uses the configured default)")
	f.IntVar(&matchesOpts.minScore, "min-score", 0, "hide matches scoring below this")
	f.StringVar(&matchesOpts.maxPrice, "max-price", "", "hide sell listings priced above this")
	f.IntVar(&matchesOpts.minRarity, "min-rarity", 0, "hide variants below this rarity level (1-6)")
	f.BoolVar(&matchesOpts.epicOnly, "epic-only", false, "only show Epic variants")
	f.BoolVar(&matchesOpts.affordable, "affordable", false, "only show matches within your max price")
	f.BoolVar(&matchesOpts.summary, "summary", true, "print a summary line")
	rootCmd.AddCommand(matchesCmd)
}

func runMatches(ctx context.Context, app *cardswap.App, cmd *cobra.Command, _ []string) error {
	filter, err := matchFilter()
	if err != nil {
		return err
	}
	userID, _, err := resolveUser(ctx, app, matchesOpts.user)
	if err != nil {
		return err
	}

	matches, err := app.Matchmaking.FindMatches(ctx, userID, matchesOpts.limit)
	if err != nil {
		return err
	}
	matches = filter.Apply(matches)

	out := cmd.OutOrStdout()
	if len(matches) == 0 {
		fmt.Fprintln(out, "No matching cards are listed right now.")
		return nil
	}
	if err := printForward(out, matches); err != nil {
		return err
	}
	if matchesOpts.summary {
		printSummary(out, matchmaking.Summarize(matches))
	}
	return nil
}

func matchFilter() (matchmaking.MatchFilter, error) {
	f := matchmaking.MatchFilter{
		MinScore:       matchesOpts.minScore,
		MinRarity:      matchmaking.Rarity(matchesOpts.minRarity),
		EpicOnly:       matchesOpts.epicOnly,
		OnlyAffordable: matchesOpts.affordable,
	}
	if matchesOpts.maxPrice != "" {
		d, err := decimal.NewFromString(matchesOpts.maxPrice)
		if err != nil {
			return f, fmt.Errorf("invalid --max-price %q: %w", matchesOpts.maxPrice, err)
		}
		f.MaxPrice = d
	}
	return f, nil
}
