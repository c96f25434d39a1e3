package ranking

// dropWorstDates is how many of a player's lowest per-date scores are
// discarded once the adjustment activates (ELIMINA1 and ELIMINA2).
const dropWorstDates = 2

// Rules holds the tunable parameters of the ranking computation.
type Rules struct {
	// DropAfterDates is the completed-date count at which the
	// worst-dates adjustment activates. Before that the plain total is
	// the effective score.
	DropAfterDates int
}

func DefaultRules() Rules {
	return Rules{
		DropAfterDates: 9,
	}
}

func (r Rules) adjustmentActive(completedDates int) bool {
	return r.DropAfterDates > 0 && completedDates >= r.DropAfterDates
}
