package memory

import (
	"github.com/joaquinrs/poker-league/internal/domain/ranking"
	"github.com/joaquinrs/poker-league/internal/domain/tournament"
)

const (
	TournamentIDTorneo4 = "torneo-4"
	TournamentIDTorneo5 = "torneo-5"
)

// SeedTournaments returns demo data for local development: one finished
// tournament and one in progress.
func SeedTournaments() []tournament.RankingData {
	return []tournament.RankingData{
		{
			Tournament: tournament.Tournament{
				ID:             TournamentIDTorneo4,
				Name:           "Torneo 4",
				Number:         4,
				TotalDates:     3,
				CompletedDates: 3,
			},
			Players: []ranking.PlayerInput{
				{
					PlayerID:        "p-diego",
					Name:            "Diego Fernandez",
					Alias:           "El Flaco",
					RegisteredDates: []int{1, 2, 3},
					Records: []ranking.DateRecord{
						seedRecord(1, 1, 4),
						seedRecord(2, 2, 4),
						seedRecord(3, 1, 4),
					},
				},
				{
					PlayerID:        "p-martin",
					Name:            "Martin Acosta",
					RegisteredDates: []int{1, 2, 3},
					Records: []ranking.DateRecord{
						seedRecord(1, 2, 4),
						seedRecord(2, 1, 4),
						seedRecord(3, 3, 4),
					},
				},
				{
					PlayerID:        "p-lucia",
					Name:            "Lucia Pereyra",
					RegisteredDates: []int{1, 2, 3},
					Records: []ranking.DateRecord{
						seedRecord(1, 3, 4),
						seedRecord(2, 3, 4),
						seedRecord(3, 2, 4),
					},
				},
				{
					PlayerID:        "p-nico",
					Name:            "Nicolas Bruno",
					Alias:           "Nico",
					RegisteredDates: []int{1, 2, 3},
					Records: []ranking.DateRecord{
						seedRecord(1, 4, 4),
						seedRecord(2, 4, 4),
						seedRecord(3, 4, 4),
					},
				},
			},
		},
		{
			Tournament: tournament.Tournament{
				ID:             TournamentIDTorneo5,
				Name:           "Torneo 5",
				Number:         5,
				TotalDates:     10,
				CompletedDates: 3,
			},
			Players: []ranking.PlayerInput{
				{
					PlayerID:        "p-diego",
					Name:            "Diego Fernandez",
					Alias:           "El Flaco",
					RegisteredDates: []int{1, 2, 3},
					Records: []ranking.DateRecord{
						seedRecord(1, 2, 4),
						seedRecord(2, 1, 3),
						seedRecord(3, 1, 4),
					},
				},
				{
					PlayerID:        "p-martin",
					Name:            "Martin Acosta",
					RegisteredDates: []int{1, 2, 3},
					Records: []ranking.DateRecord{
						seedRecord(1, 1, 4),
						seedRecord(2, 3, 3),
						seedRecord(3, 2, 4),
					},
				},
				{
					PlayerID:        "p-lucia",
					Name:            "Lucia Pereyra",
					RegisteredDates: []int{1, 2, 3},
					Records: []ranking.DateRecord{
						seedRecord(1, 3, 4),
						seedRecord(2, 2, 3),
						seedRecord(3, 3, 4),
					},
				},
				{
					PlayerID:        "p-nico",
					Name:            "Nicolas Bruno",
					Alias:           "Nico",
					RegisteredDates: []int{1, 2, 3},
					Records: []ranking.DateRecord{
						seedRecord(1, 4, 4),
						seedRecord(3, 4, 4),
					},
				},
			},
		},
	}
}

func seedRecord(dateNumber, position, totalPlayers int) ranking.DateRecord {
	points, err := ranking.Points(position, totalPlayers)
	if err != nil {
		panic(err)
	}

	return ranking.DateRecord{
		DateNumber: dateNumber,
		Position:   position,
		Points:     points,
	}
}
