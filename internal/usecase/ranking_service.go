package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/joaquinrs/poker-league/internal/domain/ranking"
	"github.com/joaquinrs/poker-league/internal/domain/tournament"
	"github.com/joaquinrs/poker-league/internal/platform/resilience"
)

// RankingService answers the two ranking queries: the full tournament
// leaderboard and a single player's row. Every call recomputes from the
// raw elimination data; nothing is cached between requests, so the result
// can never drift from the source events. Concurrent identical queries
// share one computation via the flight group.
type RankingService struct {
	tournamentRepo tournament.Repository
	calc           *ranking.Calculator
	flight         resilience.SingleFlight
}

func NewRankingService(tournamentRepo tournament.Repository, calc *ranking.Calculator) *RankingService {
	return &RankingService{
		tournamentRepo: tournamentRepo,
		calc:           calc,
	}
}

// GetTournamentRanking computes the current leaderboard. When at least two
// dates are completed the standings one date earlier are recomputed as the
// trend baseline.
func (s *RankingService) GetTournamentRanking(ctx context.Context, tournamentID string) (ranking.TournamentRanking, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.GetTournamentRanking")
	defer span.End()

	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return ranking.TournamentRanking{}, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	value, err, _ := s.flight.Do("ranking:current:"+tournamentID, func() (any, error) {
		return s.computeCurrent(ctx, tournamentID)
	})
	if err != nil {
		return ranking.TournamentRanking{}, err
	}
	return value.(ranking.TournamentRanking), nil
}

// GetTournamentRankingUpToDate computes the leaderboard as it stood after
// maxDate, with the trend baseline one date earlier when available.
func (s *RankingService) GetTournamentRankingUpToDate(ctx context.Context, tournamentID string, maxDate int) (ranking.TournamentRanking, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.GetTournamentRankingUpToDate")
	defer span.End()

	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return ranking.TournamentRanking{}, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}
	if maxDate < 1 {
		return ranking.TournamentRanking{}, fmt.Errorf("%w: upToDate must be greater than zero", ErrInvalidInput)
	}

	key := "ranking:upto:" + tournamentID + ":" + strconv.Itoa(maxDate)
	value, err, _ := s.flight.Do(key, func() (any, error) {
		return s.computeUpToDate(ctx, tournamentID, maxDate)
	})
	if err != nil {
		return ranking.TournamentRanking{}, err
	}
	return value.(ranking.TournamentRanking), nil
}

// GetPlayerRanking computes the tournament leaderboard and extracts one
// player's row from it.
func (s *RankingService) GetPlayerRanking(ctx context.Context, tournamentID, playerID string) (ranking.PlayerRanking, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.GetPlayerRanking")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return ranking.PlayerRanking{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	result, err := s.GetTournamentRanking(ctx, tournamentID)
	if err != nil {
		return ranking.PlayerRanking{}, err
	}

	row, ok := result.PlayerByID(playerID)
	if !ok {
		return ranking.PlayerRanking{}, fmt.Errorf("%w: player=%s tournament=%s", ErrNotFound, playerID, tournamentID)
	}
	return row, nil
}

func (s *RankingService) computeCurrent(ctx context.Context, tournamentID string) (ranking.TournamentRanking, error) {
	data, exists, err := s.tournamentRepo.GetRankingData(ctx, tournamentID)
	if err != nil {
		return ranking.TournamentRanking{}, fmt.Errorf("get tournament ranking data: %w", err)
	}
	if !exists {
		return ranking.TournamentRanking{}, fmt.Errorf("%w: tournament=%s", ErrNotFound, tournamentID)
	}

	baseline, err := s.baselineFor(ctx, tournamentID, data.Tournament.CompletedDates)
	if err != nil {
		return ranking.TournamentRanking{}, err
	}

	result, err := s.calc.Calculate(data.Tournament.RankingInfo(), data.Players, baseline)
	if err != nil {
		return ranking.TournamentRanking{}, wrapRankingError(err)
	}
	return result, nil
}

func (s *RankingService) computeUpToDate(ctx context.Context, tournamentID string, maxDate int) (ranking.TournamentRanking, error) {
	data, exists, err := s.tournamentRepo.GetRankingDataUpToDate(ctx, tournamentID, maxDate)
	if err != nil {
		return ranking.TournamentRanking{}, fmt.Errorf("get tournament ranking data up to date %d: %w", maxDate, err)
	}
	if !exists {
		return ranking.TournamentRanking{}, fmt.Errorf("%w: tournament=%s", ErrNotFound, tournamentID)
	}

	baseline, err := s.baselineFor(ctx, tournamentID, data.Tournament.CompletedDates)
	if err != nil {
		return ranking.TournamentRanking{}, err
	}

	result, err := s.calc.Calculate(data.Tournament.RankingInfo(), data.Players, baseline)
	if err != nil {
		return ranking.TournamentRanking{}, wrapRankingError(err)
	}
	return result, nil
}

// baselineFor recomputes the standings over dates 1..completedDates-1.
// With fewer than two completed dates there is nothing to diff against.
func (s *RankingService) baselineFor(ctx context.Context, tournamentID string, completedDates int) (*ranking.TournamentRanking, error) {
	if completedDates < 2 {
		return nil, nil
	}

	prior, exists, err := s.tournamentRepo.GetRankingDataUpToDate(ctx, tournamentID, completedDates-1)
	if err != nil {
		return nil, fmt.Errorf("get trend baseline data: %w", err)
	}
	if !exists {
		return nil, nil
	}

	previous, err := s.calc.Calculate(prior.Tournament.RankingInfo(), prior.Players, nil)
	if err != nil {
		return nil, wrapRankingError(err)
	}
	return &previous, nil
}

// wrapRankingError maps the engine's sentinels onto the service taxonomy
// so the transport layer can pick a status without knowing the engine.
func wrapRankingError(err error) error {
	switch {
	case errors.Is(err, ranking.ErrDuplicateRecord),
		errors.Is(err, ranking.ErrBrokenDateSequence),
		errors.Is(err, ranking.ErrUnregisteredRecord),
		errors.Is(err, ranking.ErrInvalidRecord):
		return fmt.Errorf("%w: %w", ErrDataIntegrity, err)
	case errors.Is(err, ranking.ErrInvalidPosition),
		errors.Is(err, ranking.ErrInvalidPlayerCount):
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	default:
		return err
	}
}
