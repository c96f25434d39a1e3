package tournament

import "github.com/joaquinrs/poker-league/internal/domain/ranking"

// Tournament is one season-long tournament of the league, played over a
// fixed number of dates.
type Tournament struct {
	ID             string
	Name           string
	Number         int
	TotalDates     int
	CompletedDates int
}

// RankingData is everything the ranking engine needs for one tournament:
// the tournament snapshot plus every player's raw per-date material.
type RankingData struct {
	Tournament Tournament
	Players    []ranking.PlayerInput
}

func (t Tournament) RankingInfo() ranking.TournamentInfo {
	return ranking.TournamentInfo{
		ID:             t.ID,
		Name:           t.Name,
		Number:         t.Number,
		TotalDates:     t.TotalDates,
		CompletedDates: t.CompletedDates,
	}
}
