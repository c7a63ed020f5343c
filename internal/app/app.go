package app

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/uptrace/opentelemetry-go-extra/otelsql"

	"github.com/riskibarqy/cricket-league/internal/config"
	"github.com/riskibarqy/cricket-league/internal/domain/match"
	"github.com/riskibarqy/cricket-league/internal/domain/player"
	"github.com/riskibarqy/cricket-league/internal/domain/team"
	"github.com/riskibarqy/cricket-league/internal/domain/user"
	"github.com/riskibarqy/cricket-league/internal/infrastructure/account/jwtauth"
	"github.com/riskibarqy/cricket-league/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/cricket-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/cricket-league/internal/infrastructure/repository/sqlite"
	"github.com/riskibarqy/cricket-league/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/cricket-league/internal/platform/cache"
	idgen "github.com/riskibarqy/cricket-league/internal/platform/id"
	"github.com/riskibarqy/cricket-league/internal/platform/logging"
	"github.com/riskibarqy/cricket-league/internal/platform/randstats"
	"github.com/riskibarqy/cricket-league/internal/usecase"
)

type repositories struct {
	users   user.Repository
	matches match.Repository
	teams   team.Repository
	players player.Repository
	closer  io.Closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// cacheReportCloser logs read cache effectiveness when storage is released.
type cacheReportCloser struct {
	next   io.Closer
	store  *basecache.Store
	logger *logging.Logger
}

func (c cacheReportCloser) Close() error {
	stats := c.store.Stats()
	c.logger.Info("read cache stats",
		"hits", stats.Hits,
		"misses", stats.Misses,
		"entries", stats.Entries,
	)
	return c.next.Close()
}

// NewHTTPServer wires storage, services and the router. The returned closer
// releases the storage handle and must be called after the server stops.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, io.Closer, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	repos, err := newRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	tokens, err := jwtauth.NewManager(cfg.JWTSecretKey, cfg.JWTIssuer, cfg.JWTAccessTokenTTL, idgen.NewTimeOrdered())
	if err != nil {
		_ = repos.closer.Close()
		return nil, nil, fmt.Errorf("build token manager: %w", err)
	}

	handler := httpapi.NewHandler(
		usecase.NewAuthService(repos.users, tokens, logger),
		usecase.NewMatchService(repos.matches, repos.teams, repos.players),
		usecase.NewTeamService(repos.matches, repos.teams, logger),
		usecase.NewPlayerService(repos.players, randstats.New()),
		logger,
	)
	router := httpapi.NewRouter(handler, tokens, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, repos.closer, nil
}

func newRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, error) {
	var repos repositories

	switch cfg.StorageDriver {
	case config.StorageMemory:
		store := memory.NewStore()
		repos = repositories{
			users:   memory.NewUserRepository(store),
			matches: memory.NewMatchRepository(store),
			teams:   memory.NewTeamRepository(store),
			players: memory.NewPlayerRepository(store),
			closer:  nopCloser{},
		}
		logger.Info("storage ready", "driver", config.StorageMemory)
	case config.StorageSQLite, "":
		conn, err := sqlite.Open(ctx, cfg.DBPath,
			otelsql.WithDBName(dbNameFromPath(cfg.DBPath)),
			otelsql.WithQueryFormatter(formatDBQueryForTrace),
		)
		if err != nil {
			return repositories{}, fmt.Errorf("open sqlite %s: %w", cfg.DBPath, err)
		}
		repos = repositories{
			users:   sqlite.NewUserRepository(conn),
			matches: sqlite.NewMatchRepository(conn),
			teams:   sqlite.NewTeamRepository(conn),
			players: sqlite.NewPlayerRepository(conn),
			closer:  conn,
		}
		logger.Info("storage ready", "driver", config.StorageSQLite, "path", cfg.DBPath)
	default:
		return repositories{}, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		repos.matches = cache.NewMatchRepository(repos.matches, store)
		repos.teams = cache.NewTeamRepository(repos.teams, store)
		repos.players = cache.NewPlayerRepository(repos.players, store)
		repos.closer = cacheReportCloser{next: repos.closer, store: store, logger: logger}
		logger.Info("read cache enabled", "ttl", cfg.CacheTTL.String())
	}

	return repos, nil
}
