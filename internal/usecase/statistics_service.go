package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/football-pulse/internal/domain/scorer"
	"github.com/riskibarqy/football-pulse/internal/domain/standing"
	"github.com/riskibarqy/football-pulse/internal/domain/teamstats"
)

const (
	defaultStatsTopTeams      = 5
	defaultStatsFanoutWorkers = 5
)

// CompetitionStatistics is everything the statistics page shows for one competition.
// TeamStats follows the order of the first len(TeamStats) Standings rows.
type CompetitionStatistics struct {
	Scorers   []scorer.Scorer
	Standings []standing.Standing
	TeamStats []teamstats.TeamStats
}

type StatisticsServiceConfig struct {
	TopTeams      int
	FanoutWorkers int
}

type StatisticsService struct {
	scorerRepo    scorer.Repository
	standingRepo  standing.Repository
	teamStatsRepo teamstats.Repository
	topTeams      int
	fanoutWorkers int
}

func NewStatisticsService(
	scorerRepo scorer.Repository,
	standingRepo standing.Repository,
	teamStatsRepo teamstats.Repository,
	cfg StatisticsServiceConfig,
) *StatisticsService {
	if cfg.TopTeams <= 0 {
		cfg.TopTeams = defaultStatsTopTeams
	}
	if cfg.FanoutWorkers <= 0 {
		cfg.FanoutWorkers = defaultStatsFanoutWorkers
	}

	return &StatisticsService{
		scorerRepo:    scorerRepo,
		standingRepo:  standingRepo,
		teamStatsRepo: teamStatsRepo,
		topTeams:      cfg.TopTeams,
		fanoutWorkers: cfg.FanoutWorkers,
	}
}

// GetByCompetition loads scorers and standings in parallel, then the statistics of the
// top teams of the table. Any failure fails the whole call.
func (s *StatisticsService) GetByCompetition(ctx context.Context, competitionID string) (CompetitionStatistics, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatisticsService.GetByCompetition", competitionAttr(competitionID))
	defer span.End()

	id, err := normalizeCompetitionID(competitionID)
	if err != nil {
		return CompetitionStatistics{}, err
	}

	var (
		scorers   []scorer.Scorer
		standings []standing.Standing
	)

	p := pool.New().WithErrors().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		items, err := s.scorerRepo.ListScorersByCompetition(ctx, id)
		if err != nil {
			return fmt.Errorf("list scorers: %w", err)
		}
		scorers = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.standingRepo.ListStandingsByCompetition(ctx, id)
		if err != nil {
			return fmt.Errorf("list standings: %w", err)
		}
		standings = items
		return nil
	})
	if err := p.Wait(); err != nil {
		return CompetitionStatistics{}, err
	}

	stats, err := s.fetchTopTeamStats(ctx, id, standing.TopN(standings, s.topTeams))
	if err != nil {
		return CompetitionStatistics{}, err
	}

	return CompetitionStatistics{
		Scorers:   scorers,
		Standings: standings,
		TeamStats: stats,
	}, nil
}

func (s *StatisticsService) fetchTopTeamStats(ctx context.Context, competitionID string, rows []standing.Standing) ([]teamstats.TeamStats, error) {
	if len(rows) == 0 {
		return []teamstats.TeamStats{}, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	workers := min(s.fanoutWorkers, len(rows))
	workerPool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer workerPool.Release()

	var (
		results  = make([]teamstats.TeamStats, len(rows))
		firstErr error
		errOnce  sync.Once
		wg       sync.WaitGroup
	)

	for i, row := range rows {
		wg.Add(1)
		if err := workerPool.Submit(func() {
			defer wg.Done()

			item, err := s.teamStatsRepo.GetTeamStatistics(ctx, competitionID, row.Team.ID)
			if err != nil {
				errOnce.Do(func() {
					firstErr = fmt.Errorf("get team statistics team_id=%d: %w", row.Team.ID, err)
					cancel()
				})
				return
			}
			results[i] = item
		}); err != nil {
			wg.Done()
			errOnce.Do(func() {
				firstErr = fmt.Errorf("submit team statistics task: %w", err)
				cancel()
			})
			break
		}
	}

	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}
