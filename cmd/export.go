package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cardswap/matchmaker/cardswap"
	"github.com/spf13/cobra"
)

var exportOpts struct {
	user   string
	dir    string
	upload bool
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write your collection and market insights to an xlsx workbook",
	RunE:  withApp("export", runExport),
}

func init() {
	f := exportCmd.Flags()
	f.StringVarP(&exportOpts.user, "user", "u", "", "user id or username")
	f.StringVarP(&exportOpts.dir, "out", "o", ".", "directory to write the workbook to")
	f.BoolVar(&exportOpts.upload, "upload", false, "also upload the workbook to the configured Spaces bucket")
	rootCmd.AddCommand(exportCmd)
}

func runExport(ctx context.Context, app *cardswap.App, cmd *cobra.Command, _ []string) error {
	userID, username, err := resolveUser(ctx, app, exportOpts.user)
	if err != nil {
		return err
	}

	res, err := app.Export.Export(ctx, userID, username, exportOpts.upload)
	if err != nil {
		return err
	}

	path := filepath.Join(exportOpts.dir, res.FileName)
	if err := os.WriteFile(path, res.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Wrote %s\n", path)
	if res.URL != "" {
		fmt.Fprintf(out, "Uploaded to %s\n", res.URL)
	}
	return nil
}
