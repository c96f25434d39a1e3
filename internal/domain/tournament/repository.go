package tournament

import "context"

type Repository interface {
	ListTournaments(ctx context.Context) ([]Tournament, error)
	GetTournament(ctx context.Context, tournamentID string) (Tournament, bool, error)

	// GetRankingData returns the full raw material for all completed
	// dates. GetRankingDataUpToDate narrows records and registrations to
	// dates 1..maxDate; it feeds the trend baseline computation.
	GetRankingData(ctx context.Context, tournamentID string) (RankingData, bool, error)
	GetRankingDataUpToDate(ctx context.Context, tournamentID string, maxDate int) (RankingData, bool, error)
}
