package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/joaquinrs/poker-league/internal/domain/ranking"
	"github.com/joaquinrs/poker-league/internal/domain/tournament"
)

const defaultOverviewWorkers = 4

// TournamentStanding is one tournament's line in the league overview: the
// current leaderboard head plus completion state. Leader is nil while the
// tournament has no computed dates.
type TournamentStanding struct {
	Tournament tournament.Tournament
	Leader     *ranking.PlayerRanking
	Finished   bool
}

type LeagueOverview struct {
	Tournaments []TournamentStanding
	GeneratedAt time.Time
}

// OverviewService fans the ranking computation out across all tournaments
// of the league on a bounded worker pool.
type OverviewService struct {
	tournamentRepo tournament.Repository
	rankingService *RankingService
	workerCount    int
	now            func() time.Time
}

func NewOverviewService(tournamentRepo tournament.Repository, rankingService *RankingService, workerCount int) *OverviewService {
	if workerCount <= 0 {
		workerCount = defaultOverviewWorkers
	}
	return &OverviewService{
		tournamentRepo: tournamentRepo,
		rankingService: rankingService,
		workerCount:    workerCount,
		now:            time.Now,
	}
}

// GetLeagueOverview computes every tournament's standings concurrently.
// Any tournament failing its integrity checks fails the whole call; a
// partial overview would hide exactly the data problems that need fixing
// at the source.
func (s *OverviewService) GetLeagueOverview(ctx context.Context) (LeagueOverview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OverviewService.GetLeagueOverview")
	defer span.End()

	tournaments, err := s.tournamentRepo.ListTournaments(ctx)
	if err != nil {
		return LeagueOverview{}, fmt.Errorf("list tournaments for overview: %w", err)
	}

	standings := make([]TournamentStanding, len(tournaments))

	pool, err := ants.NewPool(s.workerCount)
	if err != nil {
		return LeagueOverview{}, fmt.Errorf("create overview worker pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for idx, item := range tournaments {
		idx, item := idx, item
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()

			standing := TournamentStanding{
				Tournament: item,
				Finished:   item.TotalDates > 0 && item.CompletedDates >= item.TotalDates,
			}

			if item.CompletedDates > 0 {
				result, rankErr := s.rankingService.GetTournamentRanking(ctx, item.ID)
				if rankErr != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = fmt.Errorf("overview tournament=%s: %w", item.ID, rankErr)
					}
					mu.Unlock()
					return
				}
				if len(result.Rankings) > 0 {
					leader := result.Rankings[0]
					standing.Leader = &leader
				}
			}

			mu.Lock()
			standings[idx] = standing
			mu.Unlock()
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			if firstErr == nil {
				firstErr = fmt.Errorf("submit overview task: %w", submitErr)
			}
			mu.Unlock()
		}
	}
	wg.Wait()

	if firstErr != nil {
		return LeagueOverview{}, firstErr
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Tournament.Number < standings[j].Tournament.Number
	})

	return LeagueOverview{
		Tournaments: standings,
		GeneratedAt: s.now().UTC(),
	}, nil
}
