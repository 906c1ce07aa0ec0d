package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/racha-league/internal/domain/match"
	"github.com/riskibarqy/racha-league/internal/domain/matchday"
	"github.com/riskibarqy/racha-league/internal/domain/racha"
	"github.com/riskibarqy/racha-league/internal/platform/logging"
	"github.com/riskibarqy/racha-league/internal/platform/metrics"
)

type SeasonServiceConfig struct {
	Location       *time.Location
	DefaultWindow  time.Duration
	RankingWorkers int
}

// SeasonWindow is an inclusive range of day keys. Empty bounds fall back to the default window.
type SeasonWindow struct {
	From string
	To   string
}

// SeasonRange is a resolved window: the day keys echoed back to clients and the [Start, End) range.
type SeasonRange struct {
	From  string
	To    string
	Start time.Time
	End   time.Time
}

type SeasonService struct {
	rachaRepo racha.Repository
	matchRepo match.Repository
	location  *time.Location
	window    time.Duration
	workers   int
	metrics   *metrics.Recorder
	logger    *logging.Logger
	now       func() time.Time
}

func NewSeasonService(
	rachaRepo racha.Repository,
	matchRepo match.Repository,
	cfg SeasonServiceConfig,
	recorder *metrics.Recorder,
	logger *logging.Logger,
) *SeasonService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.DefaultWindow <= 0 {
		cfg.DefaultWindow = 365 * 24 * time.Hour
	}
	if cfg.RankingWorkers < 1 {
		cfg.RankingWorkers = 1
	}

	return &SeasonService{
		rachaRepo: rachaRepo,
		matchRepo: matchRepo,
		location:  cfg.Location,
		window:    cfg.DefaultWindow,
		workers:   cfg.RankingWorkers,
		metrics:   recorder,
		logger:    logger,
		now:       time.Now,
	}
}

// GetAthleteSeason builds the season bundle of one athlete. An athlete without presences in the
// window gets a zero bundle.
func (s *SeasonService) GetAthleteSeason(ctx context.Context, rachaID, athleteID string, window SeasonWindow) (matchday.SeasonSummary, SeasonRange, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.GetAthleteSeason")
	defer span.End()

	athleteID = strings.TrimSpace(athleteID)
	if athleteID == "" {
		return matchday.SeasonSummary{}, SeasonRange{}, fmt.Errorf("%w: athlete id is required", ErrInvalidInput)
	}

	matches, resolved, err := s.loadWindow(ctx, rachaID, window)
	if err != nil {
		return matchday.SeasonSummary{}, SeasonRange{}, err
	}

	started := time.Now()
	summary := matchday.SummarizeSeason(matches, athleteID, s.location)
	s.metrics.ObserveDerivation("season", time.Since(started))

	return summary, resolved, nil
}

// Rank summarizes every athlete with a presence in the window and orders them by score,
// champion days and goals. Ties keep first-seen order.
func (s *SeasonService) Rank(ctx context.Context, rachaID string, window SeasonWindow) ([]matchday.SeasonSummary, SeasonRange, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.Rank")
	defer span.End()

	matches, resolved, err := s.loadWindow(ctx, rachaID, window)
	if err != nil {
		return nil, SeasonRange{}, err
	}

	athleteIDs := matchday.AthleteIDs(matches)
	if len(athleteIDs) == 0 {
		return []matchday.SeasonSummary{}, resolved, nil
	}

	started := time.Now()
	rows := make([]matchday.SeasonSummary, len(athleteIDs))

	workerCount := s.workers
	if workerCount > len(athleteIDs) {
		workerCount = len(athleteIDs)
	}
	workerPool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, SeasonRange{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer workerPool.Release()

	var workers sync.WaitGroup
	for i, athleteID := range athleteIDs {
		workers.Add(1)
		if err := workerPool.Submit(func() {
			defer workers.Done()
			rows[i] = matchday.SummarizeSeason(matches, athleteID, s.location)
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, SeasonRange{}, fmt.Errorf("submit ranking task to worker pool: %w", err)
		}
	}
	workers.Wait()

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Score != rows[j].Score {
			return rows[i].Score > rows[j].Score
		}
		if rows[i].ChampionDays != rows[j].ChampionDays {
			return rows[i].ChampionDays > rows[j].ChampionDays
		}
		return rows[i].Goals > rows[j].Goals
	})
	s.metrics.ObserveDerivation("ranking", time.Since(started))

	s.logger.DebugContext(ctx, "season ranking computed",
		"racha_id", rachaID,
		"from", resolved.From,
		"to", resolved.To,
		"athletes", len(rows),
		"workers", workerCount,
	)

	return rows, resolved, nil
}

func (s *SeasonService) loadWindow(ctx context.Context, rachaID string, window SeasonWindow) ([]match.Match, SeasonRange, error) {
	item, err := requireRacha(ctx, s.rachaRepo, rachaID)
	if err != nil {
		return nil, SeasonRange{}, err
	}

	resolved, err := s.resolveWindow(window)
	if err != nil {
		return nil, SeasonRange{}, err
	}

	matches, err := s.matchRepo.ListByRachaBetween(ctx, item.ID, resolved.Start, resolved.End)
	if err != nil {
		return nil, SeasonRange{}, fmt.Errorf("list matches: %w", err)
	}

	return matches, resolved, nil
}

func (s *SeasonService) resolveWindow(window SeasonWindow) (SeasonRange, error) {
	toKey := strings.TrimSpace(window.To)
	if toKey == "" {
		toKey = matchday.DayKey(s.now(), s.location)
	}
	toStart, end, ok := matchday.ParseDay(toKey, s.location)
	if !ok {
		return SeasonRange{}, fmt.Errorf("%w: to must be YYYY-MM-DD, got %q", ErrInvalidInput, window.To)
	}

	fromKey := strings.TrimSpace(window.From)
	if fromKey == "" {
		fromKey = matchday.DayKey(end.Add(-s.window), s.location)
	}
	start, _, ok := matchday.ParseDay(fromKey, s.location)
	if !ok {
		return SeasonRange{}, fmt.Errorf("%w: from must be YYYY-MM-DD, got %q", ErrInvalidInput, window.From)
	}
	if start.After(toStart) {
		return SeasonRange{}, fmt.Errorf("%w: from %s is after to %s", ErrInvalidInput, fromKey, toKey)
	}

	return SeasonRange{From: fromKey, To: toKey, Start: start, End: end}, nil
}
