package ranking

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrDuplicateRecord    = errors.New("duplicate elimination record")
	ErrInvalidRecord      = errors.New("invalid elimination record")
	ErrBrokenDateSequence = errors.New("position sequence for date has gaps or duplicates")
	ErrUnregisteredRecord = errors.New("elimination recorded for unregistered date")
)

// PlayerAggregate is the fold of one player's raw per-date data. Absences
// contribute a zero entry to PointsByDate but are excluded from
// DatesPlayed.
type PlayerAggregate struct {
	PointsByDate map[int]int
	TotalPoints  int
	DatesPlayed  int
	Absences     int
	FirstPlaces  int
	SecondPlaces int
	ThirdPlaces  int
}

// AggregatePlayer folds the player's elimination records and registered
// dates into per-date points and the tie-break counters. A date counts as
// played iff a record exists for it; a registered date without a record is
// an absence worth zero points.
func AggregatePlayer(input PlayerInput) (PlayerAggregate, error) {
	agg := PlayerAggregate{
		PointsByDate: make(map[int]int, len(input.RegisteredDates)),
	}

	registered := make(map[int]struct{}, len(input.RegisteredDates))
	for _, date := range input.RegisteredDates {
		registered[date] = struct{}{}
	}

	recorded := make(map[int]struct{}, len(input.Records))
	for _, rec := range input.Records {
		if rec.DateNumber < 1 {
			return PlayerAggregate{}, fmt.Errorf("%w: player=%s date=%d", ErrInvalidRecord, input.PlayerID, rec.DateNumber)
		}
		if rec.Position < 1 {
			return PlayerAggregate{}, fmt.Errorf("%w: player=%s date=%d position=%d", ErrInvalidRecord, input.PlayerID, rec.DateNumber, rec.Position)
		}
		if _, exists := recorded[rec.DateNumber]; exists {
			return PlayerAggregate{}, fmt.Errorf("%w: player=%s date=%d", ErrDuplicateRecord, input.PlayerID, rec.DateNumber)
		}
		if _, ok := registered[rec.DateNumber]; !ok {
			return PlayerAggregate{}, fmt.Errorf("%w: player=%s date=%d", ErrUnregisteredRecord, input.PlayerID, rec.DateNumber)
		}
		recorded[rec.DateNumber] = struct{}{}

		agg.PointsByDate[rec.DateNumber] = rec.Points
		agg.TotalPoints += rec.Points
		agg.DatesPlayed++

		switch rec.Position {
		case 1:
			agg.FirstPlaces++
		case 2:
			agg.SecondPlaces++
		case 3:
			agg.ThirdPlaces++
		}
	}

	for _, date := range input.RegisteredDates {
		if _, played := recorded[date]; played {
			continue
		}
		if _, seen := agg.PointsByDate[date]; seen {
			continue
		}
		agg.PointsByDate[date] = 0
		agg.Absences++
	}

	return agg, nil
}

// ValidateDateSequences checks every date's recorded positions across the
// whole player set: positions on a date must form 1..M without gaps or
// duplicates, where M is the number of records for that date. Bad data is
// refused here so it gets corrected at the source instead of patched after
// the fact.
func ValidateDateSequences(players []PlayerInput) error {
	positionsByDate := make(map[int][]int)
	for _, player := range players {
		for _, rec := range player.Records {
			positionsByDate[rec.DateNumber] = append(positionsByDate[rec.DateNumber], rec.Position)
		}
	}

	dates := make([]int, 0, len(positionsByDate))
	for date := range positionsByDate {
		dates = append(dates, date)
	}
	sort.Ints(dates)

	for _, date := range dates {
		positions := positionsByDate[date]
		sort.Ints(positions)
		for i, pos := range positions {
			if pos != i+1 {
				return fmt.Errorf("%w: date=%d positions=%v", ErrBrokenDateSequence, date, positions)
			}
		}
	}

	return nil
}
