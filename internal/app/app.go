package app

import (
	"fmt"
	"net/http"
	"strings"

	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/joaquinrs/poker-league/internal/config"
	"github.com/joaquinrs/poker-league/internal/domain/ranking"
	"github.com/joaquinrs/poker-league/internal/domain/tournament"
	"github.com/joaquinrs/poker-league/internal/infrastructure/repository/memory"
	"github.com/joaquinrs/poker-league/internal/infrastructure/repository/postgres"
	"github.com/joaquinrs/poker-league/internal/interfaces/httpapi"
	"github.com/joaquinrs/poker-league/internal/platform/logging"
	"github.com/joaquinrs/poker-league/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	tournamentRepo, err := newTournamentRepository(cfg, logger)
	if err != nil {
		return nil, err
	}

	calc := ranking.NewCalculator(ranking.Rules{DropAfterDates: cfg.RankingDropAfterDates})

	tournamentSvc := usecase.NewTournamentService(tournamentRepo)
	rankingSvc := usecase.NewRankingService(tournamentRepo, calc)
	overviewSvc := usecase.NewOverviewService(tournamentRepo, rankingSvc, cfg.OverviewWorkers)

	handler := httpapi.NewHandler(tournamentSvc, rankingSvc, overviewSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

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

// newTournamentRepository picks the backing store: postgres when DB_URL is
// set, the seeded in-memory store otherwise.
func newTournamentRepository(cfg config.Config, logger *logging.Logger) (tournament.Repository, error) {
	dbURL := strings.TrimSpace(cfg.DBURL)
	if dbURL == "" {
		logger.Info("using in-memory tournament repository", "reason", "DB_URL empty")
		return memory.NewTournamentRepository(memory.SeedTournaments()), nil
	}

	db, err := otelsqlx.Connect("postgres", connectionURL(dbURL, cfg.DBDisablePreparedBinary),
		otelsql.WithDBName(databaseName(dbURL)),
	)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	logger.Info("using postgres tournament repository", "db", databaseName(dbURL))

	return postgres.NewTournamentRepository(db), nil
}
