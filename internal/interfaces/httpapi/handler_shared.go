package httpapi

import (
	"context"
	"time"

	"github.com/joaquinrs/poker-league/internal/domain/ranking"
	"github.com/joaquinrs/poker-league/internal/domain/tournament"
	"github.com/joaquinrs/poker-league/internal/usecase"
)

type getRankingRequest struct {
	TournamentID string `validate:"required"`
	UpToDate     int    `validate:"omitempty,min=1"`
}

type tournamentDTO struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Number         int    `json:"number"`
	TotalDates     int    `json:"totalDates"`
	CompletedDates int    `json:"completedDates"`
}

type playerRankingDTO struct {
	Position         int         `json:"position"`
	PlayerID         string      `json:"playerId"`
	PlayerName       string      `json:"playerName"`
	PlayerAlias      string      `json:"playerAlias,omitempty"`
	PlayerPhoto      string      `json:"playerPhoto,omitempty"`
	TotalPoints      int         `json:"totalPoints"`
	DatesPlayed      int         `json:"datesPlayed"`
	PointsByDate     map[int]int `json:"pointsByDate"`
	Trend            string      `json:"trend"`
	PositionsChanged int         `json:"positionsChanged"`
	Elimina1         *int        `json:"elimina1,omitempty"`
	Elimina2         *int        `json:"elimina2,omitempty"`
	FinalScore       *int        `json:"finalScore,omitempty"`
	FirstPlaces      int         `json:"firstPlaces"`
	SecondPlaces     int         `json:"secondPlaces"`
	ThirdPlaces      int         `json:"thirdPlaces"`
	Absences         int         `json:"absences"`
}

type tournamentRankingDTO struct {
	Tournament  tournamentDTO      `json:"tournament"`
	Rankings    []playerRankingDTO `json:"rankings"`
	LastUpdated string             `json:"lastUpdated"`
}

type tournamentStandingDTO struct {
	Tournament tournamentDTO     `json:"tournament"`
	Leader     *playerRankingDTO `json:"leader,omitempty"`
	Finished   bool              `json:"finished"`
}

type leagueOverviewDTO struct {
	Tournaments []tournamentStandingDTO `json:"tournaments"`
	GeneratedAt string                  `json:"generatedAt"`
}

func tournamentToDTO(ctx context.Context, v tournament.Tournament) tournamentDTO {
	_, span := startSpan(ctx, "httpapi.tournamentToDTO")
	defer span.End()

	return tournamentDTO{
		ID:             v.ID,
		Name:           v.Name,
		Number:         v.Number,
		TotalDates:     v.TotalDates,
		CompletedDates: v.CompletedDates,
	}
}

func tournamentInfoToDTO(v ranking.TournamentInfo) tournamentDTO {
	return tournamentDTO{
		ID:             v.ID,
		Name:           v.Name,
		Number:         v.Number,
		TotalDates:     v.TotalDates,
		CompletedDates: v.CompletedDates,
	}
}

func playerRankingToDTO(v ranking.PlayerRanking) playerRankingDTO {
	return playerRankingDTO{
		Position:         v.Position,
		PlayerID:         v.PlayerID,
		PlayerName:       v.Name,
		PlayerAlias:      v.Alias,
		PlayerPhoto:      v.PhotoURL,
		TotalPoints:      v.TotalPoints,
		DatesPlayed:      v.DatesPlayed,
		PointsByDate:     v.PointsByDate,
		Trend:            string(v.Trend.Direction),
		PositionsChanged: v.Trend.PositionsChanged,
		Elimina1:         v.Elimina1,
		Elimina2:         v.Elimina2,
		FinalScore:       v.FinalScore,
		FirstPlaces:      v.FirstPlaces,
		SecondPlaces:     v.SecondPlaces,
		ThirdPlaces:      v.ThirdPlaces,
		Absences:         v.Absences,
	}
}

func tournamentRankingToDTO(ctx context.Context, v ranking.TournamentRanking) tournamentRankingDTO {
	_, span := startSpan(ctx, "httpapi.tournamentRankingToDTO")
	defer span.End()

	rankings := make([]playerRankingDTO, 0, len(v.Rankings))
	for _, item := range v.Rankings {
		rankings = append(rankings, playerRankingToDTO(item))
	}

	return tournamentRankingDTO{
		Tournament:  tournamentInfoToDTO(v.Tournament),
		Rankings:    rankings,
		LastUpdated: v.ComputedAt.Format(time.RFC3339),
	}
}

func leagueOverviewToDTO(ctx context.Context, v usecase.LeagueOverview) leagueOverviewDTO {
	_, span := startSpan(ctx, "httpapi.leagueOverviewToDTO")
	defer span.End()

	items := make([]tournamentStandingDTO, 0, len(v.Tournaments))
	for _, standing := range v.Tournaments {
		item := tournamentStandingDTO{
			Tournament: tournamentToDTO(ctx, standing.Tournament),
			Finished:   standing.Finished,
		}
		if standing.Leader != nil {
			leader := playerRankingToDTO(*standing.Leader)
			item.Leader = &leader
		}
		items = append(items, item)
	}

	return leagueOverviewDTO{
		Tournaments: items,
		GeneratedAt: v.GeneratedAt.Format(time.RFC3339),
	}
}
