package memory

import (
	"context"
	"testing"
)

func TestTournamentRepository_ListKeepsSeedOrder(t *testing.T) {
	t.Parallel()

	repo := NewTournamentRepository(SeedTournaments())

	items, err := repo.ListTournaments(context.Background())
	if err != nil {
		t.Fatalf("list tournaments: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 tournaments, got %d", len(items))
	}
	if items[0].ID != TournamentIDTorneo4 || items[1].ID != TournamentIDTorneo5 {
		t.Fatalf("unexpected order: %s, %s", items[0].ID, items[1].ID)
	}
}

func TestTournamentRepository_GetTournamentMissing(t *testing.T) {
	t.Parallel()

	repo := NewTournamentRepository(SeedTournaments())

	_, exists, err := repo.GetTournament(context.Background(), "torneo-99")
	if err != nil {
		t.Fatalf("get tournament: %v", err)
	}
	if exists {
		t.Fatalf("expected tournament to be missing")
	}
}

func TestTournamentRepository_UpToDateFiltersRecords(t *testing.T) {
	t.Parallel()

	repo := NewTournamentRepository(SeedTournaments())

	data, exists, err := repo.GetRankingDataUpToDate(context.Background(), TournamentIDTorneo5, 2)
	if err != nil {
		t.Fatalf("get ranking data up to date: %v", err)
	}
	if !exists {
		t.Fatalf("expected tournament to exist")
	}
	if data.Tournament.CompletedDates != 2 {
		t.Fatalf("expected completed dates capped at 2, got %d", data.Tournament.CompletedDates)
	}

	for _, p := range data.Players {
		for _, rec := range p.Records {
			if rec.DateNumber > 2 {
				t.Fatalf("player %s still has record for date %d", p.PlayerID, rec.DateNumber)
			}
		}
		for _, date := range p.RegisteredDates {
			if date > 2 {
				t.Fatalf("player %s still registered for date %d", p.PlayerID, date)
			}
		}
	}
}

func TestTournamentRepository_RankingDataIsCopied(t *testing.T) {
	t.Parallel()

	repo := NewTournamentRepository(SeedTournaments())
	ctx := context.Background()

	first, _, err := repo.GetRankingData(ctx, TournamentIDTorneo5)
	if err != nil {
		t.Fatalf("get ranking data: %v", err)
	}
	first.Players[0].Records[0].Points = -1

	second, _, err := repo.GetRankingData(ctx, TournamentIDTorneo5)
	if err != nil {
		t.Fatalf("get ranking data: %v", err)
	}
	if second.Players[0].Records[0].Points == -1 {
		t.Fatalf("repository returned shared record slice")
	}
}
