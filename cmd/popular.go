package cmd

import (
	"context"
	"fmt"

	"github.com/cardswap/matchmaker/cardswap"
	"github.com/spf13/cobra"
)

var popularLimit int

var popularCmd = &cobra.Command{
	Use:   "popular",
	Short: "List the most wished-for card variants",
	RunE:  withApp("popular", runPopular),
}

func init() {
	popularCmd.Flags().IntVarP(&popularLimit, "limit", "n", 0, "maximum number of rows (0 uses the configured default)")
	rootCmd.AddCommand(popularCmd)
}

func runPopular(ctx context.Context, app *cardswap.App, cmd *cobra.Command, _ []string) error {
	cards, err := app.Matchmaking.PopularCards(ctx, popularLimit)
	if err != nil {
		return err
	}
	if len(cards) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No wishlists yet.")
		return nil
	}
	return printPopular(cmd.OutOrStdout(), cards)
}
