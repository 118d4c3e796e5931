package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"

	"github.com/grassrootshq/teamdesk/internal/config"
	"github.com/grassrootshq/teamdesk/internal/domain/availability"
	"github.com/grassrootshq/teamdesk/internal/domain/club"
	"github.com/grassrootshq/teamdesk/internal/domain/event"
	"github.com/grassrootshq/teamdesk/internal/domain/player"
	"github.com/grassrootshq/teamdesk/internal/domain/selection"
	"github.com/grassrootshq/teamdesk/internal/domain/squad"
	"github.com/grassrootshq/teamdesk/internal/domain/team"
	"github.com/grassrootshq/teamdesk/internal/domain/yeargroup"
	"github.com/grassrootshq/teamdesk/internal/infrastructure/account"
	"github.com/grassrootshq/teamdesk/internal/infrastructure/notification"
	"github.com/grassrootshq/teamdesk/internal/infrastructure/repository/memory"
	"github.com/grassrootshq/teamdesk/internal/infrastructure/repository/postgres"
	"github.com/grassrootshq/teamdesk/internal/interfaces/httpapi"
	"github.com/grassrootshq/teamdesk/internal/platform/cache"
	idgen "github.com/grassrootshq/teamdesk/internal/platform/id"
	"github.com/grassrootshq/teamdesk/internal/platform/logging"
	"github.com/grassrootshq/teamdesk/internal/usecase"
)

type repositories struct {
	clubs        club.Repository
	teams        team.Repository
	players      player.Repository
	yearGroups   yeargroup.Repository
	events       event.Repository
	availability availability.Repository
	squads       squad.Repository
	selections   selection.Repository
}

// NewHTTPServer wires repositories, services and the HTTP router. With
// DB_URL set the postgres repositories are used; otherwise the server runs
// on seeded in-memory repositories, which is how local development works.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, err
	}

	var boardCache *cache.Store
	if cfg.CacheEnabled {
		boardCache = cache.NewStore(cfg.CacheTTL)
	}

	var notifier usecase.Notifier
	if cfg.PushEnabled {
		notifier = notification.NewPushClient(notification.PushClientConfig{
			BaseURL: cfg.PushBaseURL,
			APIKey:  cfg.PushAPIKey,
			Timeout: cfg.PushTimeout,
		}, slog.Default())
	}

	ids := idgen.NewRandomGenerator()

	availabilitySvc := usecase.NewAvailabilityService(repos.events, repos.availability, boardCache, logger)
	yearGroupSvc := usecase.NewYearGroupService(repos.clubs, repos.teams, repos.players, repos.yearGroups, ids, logger)
	yearGroupSvc.SetSplitWorkers(cfg.SplitMaxWorkers)
	handler := httpapi.NewHandler(
		usecase.NewTeamService(repos.clubs, repos.teams, repos.players, ids, logger),
		usecase.NewPlayerService(repos.teams, repos.players, ids, logger),
		yearGroupSvc,
		usecase.NewEventService(repos.teams, repos.events, notifier, ids, logger),
		availabilitySvc,
		usecase.NewSquadService(repos.events, repos.players, repos.squads, availabilitySvc, logger),
		usecase.NewSelectionService(repos.teams, repos.squads, repos.selections, logger),
		logger,
	)

	verifier := account.NewClient(
		&http.Client{Timeout: cfg.AccountsTimeout},
		cfg.AccountsBaseURL,
		cfg.AccountsIntrospectPath,
		slog.Default(),
	)

	router := httpapi.NewRouter(handler, verifier, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, error) {
	if cfg.DBURL == "" {
		logger.Info("DB_URL not set, using seeded in-memory repositories")
		return repositories{
			clubs:        memory.NewClubRepository(memory.SeedClubs()),
			teams:        memory.NewTeamRepository(memory.SeedTeams()),
			players:      memory.NewPlayerRepository(memory.SeedPlayers()),
			yearGroups:   memory.NewYearGroupRepository(memory.SeedYearGroups()),
			events:       memory.NewEventRepository(memory.SeedEvents()),
			availability: memory.NewAvailabilityRepository(nil),
			squads:       memory.NewSquadRepository(nil),
			selections:   memory.NewSelectionRepository(nil),
		}, nil
	}

	db, err := connectDB(cfg)
	if err != nil {
		return repositories{}, fmt.Errorf("connect database: %w", err)
	}

	logger.Info("connected to postgres", "db_name", dbNameFromURL(cfg.DBURL))

	return repositories{
		clubs:        postgres.NewClubRepository(db),
		teams:        postgres.NewTeamRepository(db),
		players:      postgres.NewPlayerRepository(db),
		yearGroups:   postgres.NewYearGroupRepository(db),
		events:       postgres.NewEventRepository(db),
		availability: postgres.NewAvailabilityRepository(db),
		squads:       postgres.NewSquadRepository(db),
		selections:   postgres.NewSelectionRepository(db),
	}, nil
}

func connectDB(cfg config.Config) (*sqlx.DB, error) {
	opts := []otelsql.Option{
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
	}
	if name := dbNameFromURL(cfg.DBURL); name != "" {
		opts = append(opts, otelsql.WithDBName(name))
	}

	db, err := otelsqlx.Connect("postgres", cfg.DBURL, opts...)
	if err != nil {
		return nil, err
	}

	return db, nil
}
