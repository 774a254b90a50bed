// Package app wires repositories, services and the HTTP surface together.
// The storage backend is selected at startup: postgres for synced
// deployments, memory for local-only use and tests.
package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/VillePajala/matchops-sync/internal/config"
	"github.com/VillePajala/matchops-sync/internal/domain/game"
	"github.com/VillePajala/matchops-sync/internal/domain/roster"
	"github.com/VillePajala/matchops-sync/internal/domain/season"
	"github.com/VillePajala/matchops-sync/internal/domain/settings"
	"github.com/VillePajala/matchops-sync/internal/infrastructure/repository/memory"
	"github.com/VillePajala/matchops-sync/internal/infrastructure/repository/postgres"
	"github.com/VillePajala/matchops-sync/internal/interfaces/httpapi"
	idgen "github.com/VillePajala/matchops-sync/internal/platform/id"
	"github.com/VillePajala/matchops-sync/internal/platform/logging"
	"github.com/VillePajala/matchops-sync/internal/usecase"
)

type repositories struct {
	games    game.Repository
	roster   roster.Repository
	seasons  season.Repository
	settings settings.Repository
	db       *sqlx.DB
}

func newRepositories(cfg config.Config, ids idgen.Generator, logger *logging.Logger) (repositories, error) {
	// Stale player references are skipped during reconstruction; surfacing
	// them in the logs is the only diagnostic the client gets.
	orphanHook := func(playerID string) {
		logger.Warn("skipping stale player reference", "player_id", playerID)
	}

	if cfg.StorageBackend == config.StorageMemory {
		rosterRepo := memory.NewRosterRepository(ids)
		for _, p := range memory.SeedRoster() {
			if _, err := rosterRepo.Upsert(context.Background(), httpapi.DemoUserID, p); err != nil {
				return repositories{}, fmt.Errorf("seed demo roster: %w", err)
			}
		}
		return repositories{
			games:    memory.NewGameRepository(ids, orphanHook),
			roster:   rosterRepo,
			seasons:  memory.NewSeasonRepository(ids),
			settings: memory.NewSettingsRepository(),
		}, nil
	}

	db, err := otelsqlx.Open("postgres", normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return repositories{}, fmt.Errorf("open database: %w", err)
	}

	return repositories{
		games:    postgres.NewGameRepository(db, ids, orphanHook),
		roster:   postgres.NewRosterRepository(db, ids),
		seasons:  postgres.NewSeasonRepository(db, ids),
		settings: postgres.NewSettingsRepository(db),
		db:       db,
	}, nil
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	ids := idgen.NewRandomGenerator()
	repos, err := newRepositories(cfg, ids, logger)
	if err != nil {
		return nil, err
	}

	gameSvc := usecase.NewGameSyncService(repos.games, repos.roster, logger)
	rosterSvc := usecase.NewRosterService(repos.roster)
	seasonSvc := usecase.NewSeasonService(repos.seasons)
	settingsSvc := usecase.NewSettingsService(repos.settings)
	importSvc := usecase.NewImportService(repos.games, repos.roster, repos.seasons, repos.settings, logger)
	resyncSvc := usecase.NewResyncService(repos.games, repos.roster, logger)

	handler := httpapi.NewHandler(gameSvc, rosterSvc, seasonSvc, settingsSvc, importSvc, resyncSvc, logger, cfg.ImportMaxBodyBytes)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, nil
}
