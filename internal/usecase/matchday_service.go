package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/racha-league/internal/domain/highlight"
	"github.com/riskibarqy/racha-league/internal/domain/match"
	"github.com/riskibarqy/racha-league/internal/domain/matchday"
	"github.com/riskibarqy/racha-league/internal/domain/racha"
	"github.com/riskibarqy/racha-league/internal/platform/logging"
	"github.com/riskibarqy/racha-league/internal/platform/metrics"
	"github.com/sourcegraph/conc/pool"
)

type MatchdayServiceConfig struct {
	Location           *time.Location
	CurrentDayLookback time.Duration
}

// MatchdayService derives standings and highlights for one racha day.
type MatchdayService struct {
	rachaRepo     racha.Repository
	matchRepo     match.Repository
	highlightRepo highlight.Repository
	location      *time.Location
	lookback      time.Duration
	metrics       *metrics.Recorder
	logger        *logging.Logger
	now           func() time.Time
}

func NewMatchdayService(
	rachaRepo racha.Repository,
	matchRepo match.Repository,
	highlightRepo highlight.Repository,
	cfg MatchdayServiceConfig,
	recorder *metrics.Recorder,
	logger *logging.Logger,
) *MatchdayService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.CurrentDayLookback <= 0 {
		cfg.CurrentDayLookback = 30 * 24 * time.Hour
	}

	return &MatchdayService{
		rachaRepo:     rachaRepo,
		matchRepo:     matchRepo,
		highlightRepo: highlightRepo,
		location:      cfg.Location,
		lookback:      cfg.CurrentDayLookback,
		metrics:       recorder,
		logger:        logger,
		now:           time.Now,
	}
}

// GetDay derives one calendar day. A day without matches yields an empty result, not an error.
func (s *MatchdayService) GetDay(ctx context.Context, rachaID, day string) (matchday.DayResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchdayService.GetDay")
	defer span.End()

	item, err := requireRacha(ctx, s.rachaRepo, rachaID)
	if err != nil {
		return matchday.DayResult{}, err
	}

	day = strings.TrimSpace(day)
	start, end, ok := matchday.ParseDay(day, s.location)
	if !ok {
		return matchday.DayResult{}, fmt.Errorf("%w: day must be YYYY-MM-DD, got %q", ErrInvalidInput, day)
	}

	var (
		matches   []match.Match
		overrides highlight.Overrides
	)
	p := pool.New().WithErrors().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		out, err := s.matchRepo.ListByRachaBetween(ctx, item.ID, start, end)
		if err != nil {
			return fmt.Errorf("list matches: %w", err)
		}
		matches = out
		return nil
	})
	p.Go(func(ctx context.Context) error {
		out, _, err := s.highlightRepo.GetOverrides(ctx, item.ID, day)
		if err != nil {
			return fmt.Errorf("get highlight overrides: %w", err)
		}
		overrides = out
		return nil
	})
	if err := p.Wait(); err != nil {
		return matchday.DayResult{}, err
	}

	return s.derive(ctx, item.ID, day, matchday.Bucketize(matches, s.location).Matches(day), overrides), nil
}

// GetCurrentDay derives the most recent day with matches inside the lookback window.
func (s *MatchdayService) GetCurrentDay(ctx context.Context, rachaID string) (matchday.DayResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchdayService.GetCurrentDay")
	defer span.End()

	item, err := requireRacha(ctx, s.rachaRepo, rachaID)
	if err != nil {
		return matchday.DayResult{}, err
	}

	// Both bounds sit on day boundaries so repeated calls within a day share a cache key.
	now := s.now().In(s.location)
	_, end, _ := matchday.ParseDay(matchday.DayKey(now, s.location), s.location)
	start, _, _ := matchday.ParseDay(matchday.DayKey(now.Add(-s.lookback), s.location), s.location)
	matches, err := s.matchRepo.ListByRachaBetween(ctx, item.ID, start, end)
	if err != nil {
		return matchday.DayResult{}, fmt.Errorf("list matches: %w", err)
	}

	buckets := matchday.Bucketize(matches, s.location)
	if buckets.Len() == 0 {
		return matchday.DayResult{}, fmt.Errorf("%w: no matches for racha=%s in the last %s", ErrNotFound, item.ID, s.lookback)
	}
	day := buckets.Days[buckets.Len()-1]

	overrides, _, err := s.highlightRepo.GetOverrides(ctx, item.ID, day)
	if err != nil {
		return matchday.DayResult{}, fmt.Errorf("get highlight overrides: %w", err)
	}

	return s.derive(ctx, item.ID, day, buckets.Matches(day), overrides), nil
}

// Preview derives every day found in matches without touching storage.
func (s *MatchdayService) Preview(ctx context.Context, matches []match.Match, overrides highlight.Overrides) ([]matchday.DayResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchdayService.Preview")
	defer span.End()

	buckets := matchday.Bucketize(matches, s.location)
	if buckets.Len() == 0 {
		return nil, fmt.Errorf("%w: no match has a valid date", ErrInvalidInput)
	}

	out := make([]matchday.DayResult, 0, buckets.Len())
	for _, day := range buckets.Days {
		out = append(out, s.derive(ctx, "preview", day, buckets.Matches(day), overrides))
	}

	return out, nil
}

func (s *MatchdayService) derive(ctx context.Context, rachaID, day string, dayMatches []match.Match, overrides highlight.Overrides) matchday.DayResult {
	started := time.Now()
	result := matchday.DeriveDay(day, dayMatches, overrides)
	s.metrics.ObserveDerivation("day", time.Since(started))

	for _, card := range result.Highlights.Cards() {
		s.metrics.CountHighlightCard(string(card.Role), string(card.Branch))
	}

	championPoints, _ := result.Champion.PointsOf(result.Champion.ChampionKey)
	s.logger.DebugContext(ctx, "matchday derived",
		"racha_id", rachaID,
		"day", day,
		"matches", len(dayMatches),
		"champion", result.Champion.ChampionKey,
		"champion_points", championPoints,
		"points_awarded", result.Champion.TotalPoints(),
		"athletes", result.Stats.Len(),
	)

	return result
}
