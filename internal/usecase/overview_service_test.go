package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/joaquinrs/poker-league/internal/domain/tournament"
)

// multiTournamentRepo serves several tournaments for overview tests.
type multiTournamentRepo struct {
	byID  map[string]*stubTournamentRepo
	order []string
}

func newMultiTournamentRepo(data ...tournament.RankingData) *multiTournamentRepo {
	out := &multiTournamentRepo{byID: map[string]*stubTournamentRepo{}}
	for _, d := range data {
		out.byID[d.Tournament.ID] = &stubTournamentRepo{data: d, exists: true}
		out.order = append(out.order, d.Tournament.ID)
	}
	return out
}

func (r *multiTournamentRepo) ListTournaments(context.Context) ([]tournament.Tournament, error) {
	out := make([]tournament.Tournament, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id].data.Tournament)
	}
	return out, nil
}

func (r *multiTournamentRepo) GetTournament(ctx context.Context, tournamentID string) (tournament.Tournament, bool, error) {
	repo, ok := r.byID[tournamentID]
	if !ok {
		return tournament.Tournament{}, false, nil
	}
	return repo.GetTournament(ctx, tournamentID)
}

func (r *multiTournamentRepo) GetRankingData(ctx context.Context, tournamentID string) (tournament.RankingData, bool, error) {
	repo, ok := r.byID[tournamentID]
	if !ok {
		return tournament.RankingData{}, false, nil
	}
	return repo.GetRankingData(ctx, tournamentID)
}

func (r *multiTournamentRepo) GetRankingDataUpToDate(ctx context.Context, tournamentID string, maxDate int) (tournament.RankingData, bool, error) {
	repo, ok := r.byID[tournamentID]
	if !ok {
		return tournament.RankingData{}, false, nil
	}
	return repo.GetRankingDataUpToDate(ctx, tournamentID, maxDate)
}

func TestOverviewService_GetLeagueOverview(t *testing.T) {
	t.Parallel()

	finished := threeDateTournament()
	finished.Tournament.ID = "torneo-0"
	finished.Tournament.Name = "Torneo 0"
	finished.Tournament.Number = 0
	finished.Tournament.TotalDates = 3

	pending := tournament.RankingData{
		Tournament: tournament.Tournament{
			ID:         "torneo-2",
			Name:       "Torneo 2",
			Number:     2,
			TotalDates: 10,
		},
	}

	// Listed out of number order on purpose: the overview re-sorts.
	repo := newMultiTournamentRepo(pending, threeDateTournament(), finished)
	rankingSvc := newTestRankingService(repo)
	service := NewOverviewService(repo, rankingSvc, 2)

	got, err := service.GetLeagueOverview(context.Background())
	if err != nil {
		t.Fatalf("get league overview: %v", err)
	}

	if len(got.Tournaments) != 3 {
		t.Fatalf("unexpected tournament count: %d", len(got.Tournaments))
	}
	if got.GeneratedAt.IsZero() {
		t.Fatalf("expected GeneratedAt to be set")
	}

	wantNumbers := []int{0, 1, 2}
	for i, want := range wantNumbers {
		if got.Tournaments[i].Tournament.Number != want {
			t.Fatalf("standing %d: number=%d want=%d", i, got.Tournaments[i].Tournament.Number, want)
		}
	}

	first := got.Tournaments[0]
	if !first.Finished {
		t.Fatalf("expected torneo-0 to be finished")
	}
	if first.Leader == nil || first.Leader.PlayerID != "p-ana" {
		t.Fatalf("unexpected leader for torneo-0: %+v", first.Leader)
	}

	inProgress := got.Tournaments[1]
	if inProgress.Finished {
		t.Fatalf("torneo-1 is not finished")
	}
	if inProgress.Leader == nil {
		t.Fatalf("expected leader for torneo-1")
	}

	notStarted := got.Tournaments[2]
	if notStarted.Leader != nil {
		t.Fatalf("expected no leader before the first date, got %+v", notStarted.Leader)
	}
}

func TestOverviewService_FailsWholeCallOnBrokenTournament(t *testing.T) {
	t.Parallel()

	broken := threeDateTournament()
	broken.Tournament.ID = "torneo-bad"
	broken.Tournament.Number = 9
	broken.Players[0].Records = append(broken.Players[0].Records, broken.Players[0].Records[0])

	repo := newMultiTournamentRepo(threeDateTournament(), broken)
	rankingSvc := newTestRankingService(repo)
	service := NewOverviewService(repo, rankingSvc, 2)

	_, err := service.GetLeagueOverview(context.Background())
	if !errors.Is(err, ErrDataIntegrity) {
		t.Fatalf("expected ErrDataIntegrity, got %v", err)
	}
}

func TestOverviewService_DefaultsWorkerCount(t *testing.T) {
	t.Parallel()

	repo := newMultiTournamentRepo(threeDateTournament())
	service := NewOverviewService(repo, newTestRankingService(repo), 0)

	got, err := service.GetLeagueOverview(context.Background())
	if err != nil {
		t.Fatalf("get league overview: %v", err)
	}
	if len(got.Tournaments) != 1 {
		t.Fatalf("unexpected tournament count: %d", len(got.Tournaments))
	}
}
