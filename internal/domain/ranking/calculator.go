package ranking

import (
	"sort"
	"time"
)

// Calculator turns a tournament snapshot into a sorted, explainable
// leaderboard. It holds no state between calls; every invocation computes
// from scratch so the result can never drift from the source events.
type Calculator struct {
	rules Rules
	now   func() time.Time
}

func NewCalculator(rules Rules) *Calculator {
	return &Calculator{
		rules: rules,
		now:   time.Now,
	}
}

// Calculate aggregates every player, applies the worst-dates adjustment
// when active, sorts with the tie-break chain, assigns dense positions and
// diffs against the optional baseline snapshot for the trend. The baseline
// is expected to cover dates 1..CompletedDates-1 of the same tournament.
func (c *Calculator) Calculate(info TournamentInfo, players []PlayerInput, baseline *TournamentRanking) (TournamentRanking, error) {
	if err := ValidateDateSequences(players); err != nil {
		return TournamentRanking{}, err
	}

	rows := make([]PlayerRanking, 0, len(players))
	for _, player := range players {
		agg, err := AggregatePlayer(player)
		if err != nil {
			return TournamentRanking{}, err
		}

		row := PlayerRanking{
			PlayerID:     player.PlayerID,
			Name:         player.Name,
			Alias:        player.Alias,
			PhotoURL:     player.PhotoURL,
			TotalPoints:  agg.TotalPoints,
			DatesPlayed:  agg.DatesPlayed,
			PointsByDate: agg.PointsByDate,
			FirstPlaces:  agg.FirstPlaces,
			SecondPlaces: agg.SecondPlaces,
			ThirdPlaces:  agg.ThirdPlaces,
			Absences:     agg.Absences,
			Trend:        Trend{Direction: TrendSame},
		}

		if c.rules.adjustmentActive(info.CompletedDates) {
			applyWorstDatesAdjustment(&row)
		}

		rows = append(rows, row)
	}

	sortAndPosition(rows)

	if baseline != nil {
		applyTrend(rows, *baseline)
	}

	return TournamentRanking{
		Tournament: info,
		Rankings:   rows,
		ComputedAt: c.now().UTC(),
	}, nil
}

// applyWorstDatesAdjustment drops the player's two lowest per-date scores,
// ties broken by the earlier date. A player with fewer scored dates than
// drops has the missing drops count as zero.
func applyWorstDatesAdjustment(row *PlayerRanking) {
	type dateScore struct {
		date   int
		points int
	}

	entries := make([]dateScore, 0, len(row.PointsByDate))
	for date, points := range row.PointsByDate {
		entries = append(entries, dateScore{date: date, points: points})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].points != entries[j].points {
			return entries[i].points < entries[j].points
		}
		return entries[i].date < entries[j].date
	})

	dropped := make([]int, dropWorstDates)
	for i := 0; i < dropWorstDates && i < len(entries); i++ {
		dropped[i] = entries[i].points
	}
	// With a single scored date the implicit zero drop is the lower one.
	if dropped[0] > dropped[1] {
		dropped[0], dropped[1] = dropped[1], dropped[0]
	}

	final := row.TotalPoints - dropped[0] - dropped[1]
	row.Elimina1 = &dropped[0]
	row.Elimina2 = &dropped[1]
	row.FinalScore = &final
}

// sortAndPosition orders rows by effective score descending, breaking ties
// by podium counts, then fewer absences, then stable input order, and
// assigns dense positions 1..K.
func sortAndPosition(rows []PlayerRanking) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].EffectiveScore() != rows[j].EffectiveScore() {
			return rows[i].EffectiveScore() > rows[j].EffectiveScore()
		}
		if rows[i].FirstPlaces != rows[j].FirstPlaces {
			return rows[i].FirstPlaces > rows[j].FirstPlaces
		}
		if rows[i].SecondPlaces != rows[j].SecondPlaces {
			return rows[i].SecondPlaces > rows[j].SecondPlaces
		}
		if rows[i].ThirdPlaces != rows[j].ThirdPlaces {
			return rows[i].ThirdPlaces > rows[j].ThirdPlaces
		}
		return rows[i].Absences < rows[j].Absences
	})

	for idx := range rows {
		rows[idx].Position = idx + 1
	}
}

func applyTrend(rows []PlayerRanking, baseline TournamentRanking) {
	previousPosition := make(map[string]int, len(baseline.Rankings))
	for _, row := range baseline.Rankings {
		previousPosition[row.PlayerID] = row.Position
	}

	for idx := range rows {
		old, ok := previousPosition[rows[idx].PlayerID]
		if !ok {
			// First appearance: nothing to compare against.
			rows[idx].Trend = Trend{Direction: TrendSame}
			continue
		}

		diff := old - rows[idx].Position
		switch {
		case diff > 0:
			rows[idx].Trend = Trend{Direction: TrendUp, PositionsChanged: diff}
		case diff < 0:
			rows[idx].Trend = Trend{Direction: TrendDown, PositionsChanged: -diff}
		default:
			rows[idx].Trend = Trend{Direction: TrendSame}
		}
	}
}
