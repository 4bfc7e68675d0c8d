package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/cardswap/matchmaker/cardswap"
	"github.com/cardswap/matchmaker/cardswap/config"
	"github.com/cardswap/matchmaker/cardswap/logger"
	"github.com/spf13/cobra"
)

var (
	Version = "dev"
	Commit  = "unknown"

	cfgPath string
	envFile string
)

var rootCmd = &cobra.Command{
	Use:           "cardswap",
	Short:         "Matchmaking for a trading card marketplace",
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       Version,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.toml", "path to config")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional dotenv file")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.LogError("Command aborted", err)
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

type runFunc func(ctx context.Context, app *cardswap.App, cmd *cobra.Command, args []string) error

// withApp loads configuration, installs the logger and connects to the
// database before running fn, then logs the outcome of the command.
func withApp(name string, fn runFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := cardswap.LoadEnv(envFile); err != nil {
			return err
		}
		cfg, err := cardswap.LoadConfig(cfgPath)
		if err != nil {
			return err
		}

		runID := logger.Setup(os.Stderr, logger.Options{
			Level:     logger.ParseLevel(cfg.Log.Level),
			AddSource: cfg.Log.AddSource,
			NoColor:   cfg.Log.NoColor,
		})
		slog.Debug("Configuration loaded",
			slog.String("type", "sys"),
			slog.String("path", cfgPath),
			slog.String("run", runID))

		ctx, cancel := context.WithTimeout(cmd.Context(), config.CommandTimeout)
		defer cancel()

		app := cardswap.New(*cfg, Version, Commit)
		start := time.Now()
		if err := app.Connect(ctx); err != nil {
			return err
		}
		defer app.Close()

		err = fn(ctx, app, cmd, args)
		logger.LogCommand(name, time.Since(start), err)
		return err
	}
}

// resolveUser turns the --user flag into a user id.
func resolveUser(ctx context.Context, app *cardswap.App, query string) (int64, string, error) {
	if query == "" {
		return 0, "", fmt.Errorf("--user is required")
	}
	user, err := app.UserSearch.Resolve(ctx, query)
	if err != nil {
		return 0, "", err
	}
	return user.ID, user.Username, nil
}
