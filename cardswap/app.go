package cardswap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cardswap/matchmaker/cardswap/database"
	"github.com/cardswap/matchmaker/cardswap/logger"
	"github.com/cardswap/matchmaker/cardswap/services"
	"github.com/cardswap/matchmaker/internal/domain/matchmaking"
	"github.com/cardswap/matchmaker/internal/gateways/database/repositories"
)

// App holds everything a CLI command needs, built once per invocation.
type App struct {
	Cfg     Config
	Version string
	Commit  string

	DB                *database.DB
	UserRepository    repositories.UserRepository
	CatalogRepository repositories.CatalogRepository
	Store             *repositories.LedgerStore
	Matchmaking       matchmaking.Service
	UserSearch        *services.UserSearchService
	Export            *services.ExportService
	SpacesService     *services.SpacesService
}

func New(cfg Config, version, commit string) *App {
	return &App{
		Cfg:     cfg,
		Version: version,
		Commit:  commit,
	}
}

// Connect opens the database and wires repositories and services on top of it.
func (a *App) Connect(ctx context.Context) error {
	start := time.Now()
	db, err := database.New(ctx, a.Cfg.DB)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	a.DB = db

	bunDB := db.BunDB()
	catalog, err := repositories.NewCatalogRepository(bunDB, a.Cfg.Matchmaking.CatalogCacheSize)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to create catalog cache: %w", err)
	}

	a.UserRepository = repositories.NewUserRepository(bunDB)
	a.CatalogRepository = catalog
	a.Store = repositories.NewLedgerStore(
		a.UserRepository,
		repositories.NewWishlistRepository(bunDB, db),
		repositories.NewUserCardRepository(bunDB, db),
		catalog,
	)
	a.Matchmaking = matchmaking.NewService(a.Store, matchmaking.Config{
		ForwardLimit: a.Cfg.Matchmaking.ForwardLimit,
		ReverseLimit: a.Cfg.Matchmaking.ReverseLimit,
		InsightLimit: a.Cfg.Matchmaking.InsightLimit,
	})
	a.UserSearch = services.NewUserSearchService(a.UserRepository)

	if a.Cfg.Spaces.Enabled() {
		spaces, err := services.NewSpacesService(ctx, a.Cfg.Spaces)
		if err != nil {
			slog.Warn("Spaces disabled",
				slog.String("type", "sys"),
				slog.Any("error", err))
		} else {
			a.SpacesService = spaces
		}
	}
	a.Export = services.NewExportService(a.Store, a.Matchmaking, a.SpacesService)

	logger.LogSystem("Application wired",
		slog.String("version", a.Version),
		slog.Bool("spaces", a.SpacesService != nil),
		slog.Duration("took", time.Since(start)))
	return nil
}

func (a *App) Close() {
	if a.DB != nil {
		a.DB.Close()
	}
}
