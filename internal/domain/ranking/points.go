package ranking

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPosition    = errors.New("position out of range")
	ErrInvalidPlayerCount = errors.New("player count must be at least one")
)

// fullTierMinPlayers is the smallest field where the podium jumps and the
// middle band exist as distinct tiers. Below it every tier collapses into
// the continuous count-up, which keeps the table dense for small fields
// (3 players score exactly 3/2/1).
const fullTierMinPlayers = 11

// Points maps a finishing position to tournament points for a field of
// totalPlayers. Position 1 is the winner; last place always scores 1.
// Out-of-range input is an error, never clamped.
func Points(position, totalPlayers int) (int, error) {
	if totalPlayers < 1 {
		return 0, fmt.Errorf("%w: totalPlayers=%d", ErrInvalidPlayerCount, totalPlayers)
	}
	if position < 1 || position > totalPlayers {
		return 0, fmt.Errorf("%w: position=%d totalPlayers=%d", ErrInvalidPosition, position, totalPlayers)
	}

	last := totalPlayers
	if position == last {
		return 1, nil
	}

	if last < fullTierMinPlayers {
		return last - position + 1, nil
	}

	// Bottom tier: 10th place down to last, counting up from 1 at last.
	if position >= 10 {
		return last - position + 1, nil
	}

	// 9th place continues the bottom tier by one point.
	pos9 := last - 10 + 2
	if position == 9 {
		return pos9, nil
	}

	// Middle band 4th..8th climbs a single point per rank.
	if position >= 4 {
		return pos9 + (9 - position), nil
	}

	// Podium jumps in steps of three over the 4th-place value.
	pos4 := pos9 + 5
	switch position {
	case 3:
		return pos4 + 3, nil
	case 2:
		return pos4 + 6, nil
	default:
		return pos4 + 9, nil
	}
}
