package cmd

import (
	"context"
	"fmt"

	"github.com/cardswap/matchmaker/cardswap"
	"github.com/cardswap/matchmaker/internal/domain/matchmaking"
	"github.com/spf13/cobra"
)

var interestsOpts struct {
	user  string
	limit int
	group bool
}

var interestsCmd = &cobra.Command{
	Use:   "interests",
	Short: "List users who wish for the cards you offer for trade or sale",
	RunE:  withApp("interests", runInterests),
}

func init() {
	f := interestsCmd.Flags()
	f.StringVarP(&interestsOpts.user, "user", "u", "", "user id or username")
	f.IntVarP(&interestsOpts.limit, "limit", "n", 0, "maximum number of rows (0 uses the configured default)")
	f.BoolVar(&interestsOpts.group, "group", false, "group interested users per card")
	rootCmd.AddCommand(interestsCmd)
}

func runInterests(ctx context.Context, app *cardswap.App, cmd *cobra.Command, _ []string) error {
	userID, _, err := resolveUser(ctx, app, interestsOpts.user)
	if err != nil {
		return err
	}

	matches, err := app.Matchmaking.FindInterested(ctx, userID, interestsOpts.limit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(matches) == 0 {
		fmt.Fprintln(out, "Nobody is looking for the cards you offer.")
		return nil
	}
	if interestsOpts.group {
		return printGroups(out, matchmaking.GroupByCard(matches))
	}
	return printReverse(out, matches)
}
