package cmd

import (
	"context"

	"github.com/cardswap/matchmaker/cardswap"
	"github.com/spf13/cobra"
)

var insightsUser string

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show your most wanted and rarest cards and how your prices compare",
	RunE:  withApp("insights", runInsights),
}

func init() {
	insightsCmd.Flags().StringVarP(&insightsUser, "user", "u", "", "user id or username")
	rootCmd.AddCommand(insightsCmd)
}

func runInsights(ctx context.Context, app *cardswap.App, cmd *cobra.Command, _ []string) error {
	userID, _, err := resolveUser(ctx, app, insightsUser)
	if err != nil {
		return err
	}
	insights, err := app.Matchmaking.MarketInsights(ctx, userID)
	if err != nil {
		return err
	}
	return printInsights(cmd.OutOrStdout(), insights)
}
