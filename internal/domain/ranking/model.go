package ranking

import "time"

// TournamentInfo is the engine's immutable view of a tournament.
type TournamentInfo struct {
	ID             string
	Name           string
	Number         int
	TotalDates     int
	CompletedDates int
}

// DateRecord is one recorded elimination: the player finished in Position
// on date DateNumber, worth Points. Points are assigned when the
// elimination is recorded and are treated as authoritative here.
type DateRecord struct {
	DateNumber   int
	Position     int
	Points       int
	EliminatedBy string
}

// PlayerInput is the raw material needed to score one player.
// RegisteredDates lists every date the player signed up for; a registered
// date without a matching record counts as an absence.
type PlayerInput struct {
	PlayerID        string
	Name            string
	Alias           string
	PhotoURL        string
	Records         []DateRecord
	RegisteredDates []int
}

type TrendDirection string

const (
	TrendUp   TrendDirection = "up"
	TrendDown TrendDirection = "down"
	TrendSame TrendDirection = "same"
)

// Trend is the change in a player's rank position relative to the
// standings computed one date earlier.
type Trend struct {
	Direction        TrendDirection
	PositionsChanged int
}

// PlayerRanking is one computed leaderboard row. Elimina1, Elimina2 and
// FinalScore are nil until the worst-dates adjustment activates; nil means
// "not applicable", never "zero".
type PlayerRanking struct {
	Position     int
	PlayerID     string
	Name         string
	Alias        string
	PhotoURL     string
	TotalPoints  int
	DatesPlayed  int
	PointsByDate map[int]int
	FirstPlaces  int
	SecondPlaces int
	ThirdPlaces  int
	Absences     int
	Elimina1     *int
	Elimina2     *int
	FinalScore   *int
	Trend        Trend
}

// EffectiveScore is the value players are ordered by: the adjusted final
// score when present, the plain total otherwise.
func (p PlayerRanking) EffectiveScore() int {
	if p.FinalScore != nil {
		return *p.FinalScore
	}
	return p.TotalPoints
}

// TournamentRanking is a full computed leaderboard. Rows are in rank
// order. It is built fresh on every computation and never persisted.
type TournamentRanking struct {
	Tournament TournamentInfo
	Rankings   []PlayerRanking
	ComputedAt time.Time
}

func (t TournamentRanking) PlayerByID(playerID string) (PlayerRanking, bool) {
	for _, row := range t.Rankings {
		if row.PlayerID == playerID {
			return row, true
		}
	}
	return PlayerRanking{}, false
}
