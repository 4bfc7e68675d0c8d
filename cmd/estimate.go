package cmd

import (
	"context"
	"fmt"

	"github.com/cardswap/matchmaker/cardswap"
	"github.com/cardswap/matchmaker/internal/domain/matchmaking"
	"github.com/spf13/cobra"
)

var estimateOpts struct {
	card    int64
	variant int64
}

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate a card variant's value from current sell listings",
	RunE:  withApp("estimate", runEstimate),
}

func init() {
	f := estimateCmd.Flags()
	f.Int64Var(&estimateOpts.card, "card", 0, "base card id")
	f.Int64Var(&estimateOpts.variant, "variant", 0, "variant id")
	_ = estimateCmd.MarkFlagRequired("card")
	_ = estimateCmd.MarkFlagRequired("variant")
	rootCmd.AddCommand(estimateCmd)
}

func runEstimate(ctx context.Context, app *cardswap.App, cmd *cobra.Command, _ []string) error {
	k := matchmaking.Key{BaseCardID: estimateOpts.card, VariantID: estimateOpts.variant}
	stats, err := app.Matchmaking.EstimateValue(ctx, k)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if stats == nil {
		fmt.Fprintln(out, "No priced sell listings for this card variant.")
		return nil
	}
	fmt.Fprintf(out, "avg %s  min %s  max %s  (%d listings)\n",
		stats.Avg.StringFixed(2), stats.Min.StringFixed(2), stats.Max.StringFixed(2), stats.Samples)
	return nil
}
