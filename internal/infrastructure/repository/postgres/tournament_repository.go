package postgres

import (
	"context"
	"fmt"
	"sort"

	"github.com/jmoiron/sqlx"
	"github.com/joaquinrs/poker-league/internal/domain/ranking"
	"github.com/joaquinrs/poker-league/internal/domain/tournament"
	qb "github.com/joaquinrs/poker-league/internal/platform/querybuilder"
)

type TournamentRepository struct {
	db *sqlx.DB
}

func NewTournamentRepository(db *sqlx.DB) *TournamentRepository {
	return &TournamentRepository{db: db}
}

func (r *TournamentRepository) ListTournaments(ctx context.Context) ([]tournament.Tournament, error) {
	query, args, err := qb.Select("*").From("tournaments").
		Where(qb.IsNull("deleted_at")).
		OrderBy("number").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select tournaments query: %w", err)
	}

	var rows []tournamentTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select tournaments: %w", err)
	}

	out := make([]tournament.Tournament, 0, len(rows))
	for _, row := range rows {
		out = append(out, tournamentFromRow(row))
	}

	return out, nil
}

func (r *TournamentRepository) GetTournament(ctx context.Context, tournamentID string) (tournament.Tournament, bool, error) {
	row, exists, err := r.getTournamentRow(ctx, tournamentID)
	if err != nil || !exists {
		return tournament.Tournament{}, false, err
	}

	return tournamentFromRow(row), true, nil
}

func (r *TournamentRepository) GetRankingData(ctx context.Context, tournamentID string) (tournament.RankingData, bool, error) {
	return r.loadRankingData(ctx, tournamentID, 0)
}

func (r *TournamentRepository) GetRankingDataUpToDate(ctx context.Context, tournamentID string, maxDate int) (tournament.RankingData, bool, error) {
	return r.loadRankingData(ctx, tournamentID, maxDate)
}

// loadRankingData assembles a full RankingData snapshot. maxDate == 0
// means no cap; otherwise registrations and eliminations are narrowed to
// dates 1..maxDate and CompletedDates is capped accordingly.
func (r *TournamentRepository) loadRankingData(ctx context.Context, tournamentID string, maxDate int) (tournament.RankingData, bool, error) {
	row, exists, err := r.getTournamentRow(ctx, tournamentID)
	if err != nil || !exists {
		return tournament.RankingData{}, false, err
	}

	t := tournamentFromRow(row)
	if maxDate > 0 && t.CompletedDates > maxDate {
		t.CompletedDates = maxDate
	}

	registrations, err := r.selectRegistrations(ctx, tournamentID, maxDate)
	if err != nil {
		return tournament.RankingData{}, false, err
	}

	eliminations, err := r.selectEliminations(ctx, tournamentID, maxDate)
	if err != nil {
		return tournament.RankingData{}, false, err
	}

	playerIDs := make([]any, 0, len(registrations))
	seen := make(map[string]struct{}, len(registrations))
	for _, reg := range registrations {
		if _, ok := seen[reg.PlayerPublicID]; ok {
			continue
		}
		seen[reg.PlayerPublicID] = struct{}{}
		playerIDs = append(playerIDs, reg.PlayerPublicID)
	}

	players, err := r.selectPlayers(ctx, playerIDs)
	if err != nil {
		return tournament.RankingData{}, false, err
	}

	inputs := make(map[string]*ranking.PlayerInput, len(players))
	order := make([]string, 0, len(players))
	for _, p := range players {
		inputs[p.PublicID] = &ranking.PlayerInput{
			PlayerID: p.PublicID,
			Name:     p.Name,
			Alias:    p.Alias,
			PhotoURL: p.PhotoURL,
		}
		order = append(order, p.PublicID)
	}

	for _, reg := range registrations {
		input, ok := inputs[reg.PlayerPublicID]
		if !ok {
			continue
		}
		input.RegisteredDates = append(input.RegisteredDates, reg.DateNumber)
	}

	for _, elim := range eliminations {
		input, ok := inputs[elim.PlayerPublicID]
		if !ok {
			// An elimination without a registration row is surfaced to
			// the engine, which refuses it as an integrity violation.
			input = &ranking.PlayerInput{PlayerID: elim.PlayerPublicID}
			inputs[elim.PlayerPublicID] = input
			order = append(order, elim.PlayerPublicID)
		}
		input.Records = append(input.Records, ranking.DateRecord{
			DateNumber:   elim.DateNumber,
			Position:     elim.Position,
			Points:       elim.Points,
			EliminatedBy: elim.EliminatedBy.String,
		})
	}

	out := tournament.RankingData{
		Tournament: t,
		Players:    make([]ranking.PlayerInput, 0, len(order)),
	}
	for _, id := range order {
		out.Players = append(out.Players, *inputs[id])
	}

	return out, true, nil
}

func (r *TournamentRepository) getTournamentRow(ctx context.Context, tournamentID string) (tournamentTableModel, bool, error) {
	query, args, err := qb.Select("*").From("tournaments").
		Where(
			qb.Eq("public_id", tournamentID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return tournamentTableModel{}, false, fmt.Errorf("build get tournament by id query: %w", err)
	}

	var row tournamentTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return tournamentTableModel{}, false, nil
		}
		return tournamentTableModel{}, false, fmt.Errorf("get tournament by id: %w", err)
	}

	return row, true, nil
}

func (r *TournamentRepository) selectRegistrations(ctx context.Context, tournamentID string, maxDate int) ([]registrationTableModel, error) {
	conditions := []qb.Condition{qb.Eq("tournament_public_id", tournamentID)}
	if maxDate > 0 {
		conditions = append(conditions, qb.Lte("date_number", maxDate))
	}

	query, args, err := qb.Select("*").From("tournament_registrations").
		Where(conditions...).
		OrderBy("player_public_id", "date_number").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select registrations query: %w", err)
	}

	var rows []registrationTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select registrations: %w", err)
	}

	return rows, nil
}

func (r *TournamentRepository) selectEliminations(ctx context.Context, tournamentID string, maxDate int) ([]eliminationTableModel, error) {
	conditions := []qb.Condition{qb.Eq("tournament_public_id", tournamentID)}
	if maxDate > 0 {
		conditions = append(conditions, qb.Lte("date_number", maxDate))
	}

	query, args, err := qb.Select("*").From("eliminations").
		Where(conditions...).
		OrderBy("date_number", "position").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select eliminations query: %w", err)
	}

	var rows []eliminationTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select eliminations: %w", err)
	}

	return rows, nil
}

func (r *TournamentRepository) selectPlayers(ctx context.Context, playerIDs []any) ([]playerTableModel, error) {
	if len(playerIDs) == 0 {
		return nil, nil
	}

	query, args, err := qb.Select("*").From("players").
		Where(
			qb.In("public_id", playerIDs),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })

	return rows, nil
}

func tournamentFromRow(row tournamentTableModel) tournament.Tournament {
	return tournament.Tournament{
		ID:             row.PublicID,
		Name:           row.Name,
		Number:         row.Number,
		TotalDates:     row.TotalDates,
		CompletedDates: row.CompletedDates,
	}
}
