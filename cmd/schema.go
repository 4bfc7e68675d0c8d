package cmd

import (
	"context"
	"fmt"

	"github.com/cardswap/matchmaker/cardswap"
	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Create tables and indexes and seed the variant tiers",
	RunE:  withApp("schema", runSchema),
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

func runSchema(ctx context.Context, app *cardswap.App, cmd *cobra.Command, _ []string) error {
	if err := app.DB.InitializeSchema(ctx); err != nil {
		return err
	}
	app.CatalogRepository.Purge()
	fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date.")
	return nil
}
