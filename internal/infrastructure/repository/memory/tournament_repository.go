package memory

import (
	"context"
	"sync"

	"github.com/joaquinrs/poker-league/internal/domain/ranking"
	"github.com/joaquinrs/poker-league/internal/domain/tournament"
)

type TournamentRepository struct {
	mu     sync.RWMutex
	items  map[string]tournament.RankingData
	orders []string
}

func NewTournamentRepository(data []tournament.RankingData) *TournamentRepository {
	items := make(map[string]tournament.RankingData, len(data))
	orders := make([]string, 0, len(data))

	for _, d := range data {
		items[d.Tournament.ID] = d
		orders = append(orders, d.Tournament.ID)
	}

	return &TournamentRepository{
		items:  items,
		orders: orders,
	}
}

func (r *TournamentRepository) ListTournaments(_ context.Context) ([]tournament.Tournament, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]tournament.Tournament, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id].Tournament)
	}

	return out, nil
}

func (r *TournamentRepository) GetTournament(_ context.Context, tournamentID string) (tournament.Tournament, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.items[tournamentID]
	if !ok {
		return tournament.Tournament{}, false, nil
	}

	return d.Tournament, true, nil
}

func (r *TournamentRepository) GetRankingData(_ context.Context, tournamentID string) (tournament.RankingData, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.items[tournamentID]
	if !ok {
		return tournament.RankingData{}, false, nil
	}

	return cloneRankingData(d), true, nil
}

func (r *TournamentRepository) GetRankingDataUpToDate(_ context.Context, tournamentID string, maxDate int) (tournament.RankingData, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.items[tournamentID]
	if !ok {
		return tournament.RankingData{}, false, nil
	}

	out := cloneRankingData(d)
	if out.Tournament.CompletedDates > maxDate {
		out.Tournament.CompletedDates = maxDate
	}
	for i, p := range out.Players {
		records := make([]ranking.DateRecord, 0, len(p.Records))
		for _, rec := range p.Records {
			if rec.DateNumber <= maxDate {
				records = append(records, rec)
			}
		}
		registered := make([]int, 0, len(p.RegisteredDates))
		for _, date := range p.RegisteredDates {
			if date <= maxDate {
				registered = append(registered, date)
			}
		}
		out.Players[i].Records = records
		out.Players[i].RegisteredDates = registered
	}

	return out, true, nil
}

func cloneRankingData(d tournament.RankingData) tournament.RankingData {
	out := tournament.RankingData{
		Tournament: d.Tournament,
		Players:    make([]ranking.PlayerInput, len(d.Players)),
	}
	for i, p := range d.Players {
		clone := p
		clone.Records = append([]ranking.DateRecord(nil), p.Records...)
		clone.RegisteredDates = append([]int(nil), p.RegisteredDates...)
		out.Players[i] = clone
	}

	return out
}
