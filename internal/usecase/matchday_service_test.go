package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/racha-league/internal/domain/highlight"
	"github.com/riskibarqy/racha-league/internal/domain/match"
	"github.com/riskibarqy/racha-league/internal/domain/matchday"
	"github.com/riskibarqy/racha-league/internal/domain/racha"
	repocache "github.com/riskibarqy/racha-league/internal/infrastructure/repository/cache"
	highlightmock "github.com/riskibarqy/racha-league/internal/mocks/domain/highlight"
	matchmock "github.com/riskibarqy/racha-league/internal/mocks/domain/match"
	rachamock "github.com/riskibarqy/racha-league/internal/mocks/domain/racha"
	basecache "github.com/riskibarqy/racha-league/internal/platform/cache"
	"github.com/riskibarqy/racha-league/internal/platform/logging"
	"github.com/riskibarqy/racha-league/internal/platform/metrics"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type matchdayMocks struct {
	racha     *rachamock.Repository
	match     *matchmock.Repository
	highlight *highlightmock.Repository
}

func newMatchdayServiceForTest(t *testing.T) (*MatchdayService, matchdayMocks) {
	t.Helper()

	mocks := matchdayMocks{
		racha:     rachamock.NewRepository(t),
		match:     matchmock.NewRepository(t),
		highlight: highlightmock.NewRepository(t),
	}
	service := NewMatchdayService(mocks.racha, mocks.match, mocks.highlight, MatchdayServiceConfig{
		Location:           saoPaulo,
		CurrentDayLookback: 14 * 24 * time.Hour,
	}, metrics.NewRecorder(), nil)

	return service, mocks
}

func TestMatchdayService_GetDay_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, mocks := newMatchdayServiceForTest(t)
	start := time.Date(2026, time.March, 7, 0, 0, 0, 0, saoPaulo)

	mocks.racha.
		On("GetByID", mock.Anything, testRachaID).
		Return(testRacha, true, nil).
		Once()
	mocks.match.
		On("ListByRachaBetween", mock.Anything, testRachaID, mock.MatchedBy(timeEqual(start)), mock.MatchedBy(timeEqual(start.AddDate(0, 0, 1)))).
		Return(saturdayMatches(), nil).
		Once()
	mocks.highlight.
		On("GetOverrides", mock.Anything, testRachaID, "2026-03-07").
		Return(highlight.Overrides{Faltou: highlight.VacantRoles{Goleiro: true}}, true, nil).
		Once()

	got, err := service.GetDay(ctx, testRachaID, "2026-03-07")
	if err != nil {
		t.Fatalf("get day: %v", err)
	}
	if !got.HasChampion || got.Champion.ChampionKey != "Leões" {
		t.Fatalf("unexpected champion: %+v", got.Champion)
	}
	if points, _ := got.Champion.PointsOf("Leões"); points != 4 {
		t.Fatalf("unexpected Leões points: %d", points)
	}
	if card := got.Highlights.Goleiro; card == nil || !card.Vacant() {
		t.Fatalf("expected vacant goleiro card, got %+v", card)
	}
	athlete, ok := got.Highlights.Artilheiro.Athlete()
	if !ok || athlete.AthleteID != "leo-ata" {
		t.Fatalf("unexpected artilheiro: %+v", got.Highlights.Artilheiro)
	}
}

func TestMatchdayService_GetDay_InvalidDay(t *testing.T) {
	t.Parallel()

	service, mocks := newMatchdayServiceForTest(t)
	mocks.racha.
		On("GetByID", mock.Anything, testRachaID).
		Return(testRacha, true, nil).
		Once()

	_, err := service.GetDay(context.Background(), testRachaID, "07/03/2026")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMatchdayService_GetDay_RachaNotFound(t *testing.T) {
	t.Parallel()

	service, mocks := newMatchdayServiceForTest(t)
	mocks.racha.
		On("GetByID", mock.Anything, "missing").
		Return(racha.Racha{}, false, nil).
		Once()

	_, err := service.GetDay(context.Background(), "missing", "2026-03-07")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMatchdayService_GetDay_EmptyRachaID(t *testing.T) {
	t.Parallel()

	service, _ := newMatchdayServiceForTest(t)
	_, err := service.GetDay(context.Background(), "  ", "2026-03-07")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMatchdayService_GetDay_RepositoryFailure(t *testing.T) {
	t.Parallel()

	service, mocks := newMatchdayServiceForTest(t)
	errDB := errors.New("connection refused")

	mocks.racha.
		On("GetByID", mock.Anything, testRachaID).
		Return(testRacha, true, nil).
		Once()
	mocks.match.
		On("ListByRachaBetween", mock.Anything, testRachaID, mock.Anything, mock.Anything).
		Return(nil, errDB).
		Once()
	mocks.highlight.
		On("GetOverrides", mock.Anything, testRachaID, "2026-03-07").
		Return(highlight.Overrides{}, false, nil).
		Maybe()

	_, err := service.GetDay(context.Background(), testRachaID, "2026-03-07")
	if !errors.Is(err, errDB) {
		t.Fatalf("expected wrapped repository error, got %v", err)
	}
}

func TestMatchdayService_GetDay_NoMatchesIsEmptyResult(t *testing.T) {
	t.Parallel()

	service, mocks := newMatchdayServiceForTest(t)
	mocks.racha.
		On("GetByID", mock.Anything, testRachaID).
		Return(testRacha, true, nil).
		Once()
	mocks.match.
		On("ListByRachaBetween", mock.Anything, testRachaID, mock.Anything, mock.Anything).
		Return([]match.Match{}, nil).
		Once()
	mocks.highlight.
		On("GetOverrides", mock.Anything, testRachaID, "2026-03-14").
		Return(highlight.Overrides{}, false, nil).
		Once()

	got, err := service.GetDay(context.Background(), testRachaID, "2026-03-14")
	if err != nil {
		t.Fatalf("get day: %v", err)
	}
	if got.HasChampion {
		t.Fatalf("expected no champion")
	}
	if len(got.Highlights.Cards()) != 0 {
		t.Fatalf("expected no cards, got %d", len(got.Highlights.Cards()))
	}
}

func TestMatchdayService_GetCurrentDay_PicksLatestDay(t *testing.T) {
	t.Parallel()

	service, mocks := newMatchdayServiceForTest(t)
	service.now = func() time.Time { return playedAt(10, 12) }

	matches := append([]match.Match{
		scoredMatch("old", playedAt(3, 8), "Leões", "Tigres", 0, 3,
			presence("tig-mei", "Beto", "Meia", "Tigres", 3, 0),
		),
	}, saturdayMatches()...)

	mocks.racha.
		On("GetByID", mock.Anything, testRachaID).
		Return(testRacha, true, nil).
		Once()
	mocks.match.
		On("ListByRachaBetween", mock.Anything, testRachaID,
			mock.MatchedBy(timeEqual(time.Date(2026, time.February, 24, 0, 0, 0, 0, saoPaulo))),
			mock.MatchedBy(timeEqual(time.Date(2026, time.March, 11, 0, 0, 0, 0, saoPaulo)))).
		Return(matches, nil).
		Once()
	mocks.highlight.
		On("GetOverrides", mock.Anything, testRachaID, "2026-03-07").
		Return(highlight.Overrides{}, false, nil).
		Once()

	got, err := service.GetCurrentDay(context.Background(), testRachaID)
	if err != nil {
		t.Fatalf("get current day: %v", err)
	}
	if got.Day != "2026-03-07" {
		t.Fatalf("unexpected current day: %s", got.Day)
	}
	if got.Champion.ChampionKey != "Leões" {
		t.Fatalf("unexpected champion: %s", got.Champion.ChampionKey)
	}
}

func TestMatchdayService_GetCurrentDay_SameDayCallsShareCachedRange(t *testing.T) {
	t.Parallel()

	mocks := matchdayMocks{
		racha:     rachamock.NewRepository(t),
		match:     matchmock.NewRepository(t),
		highlight: highlightmock.NewRepository(t),
	}
	store := basecache.NewStore(time.Hour, basecache.WithName("matches"))
	service := NewMatchdayService(mocks.racha, repocache.NewMatchRepository(mocks.match, store), mocks.highlight, MatchdayServiceConfig{
		Location:           saoPaulo,
		CurrentDayLookback: 14 * 24 * time.Hour,
	}, metrics.NewRecorder(), nil)

	mocks.racha.
		On("GetByID", mock.Anything, testRachaID).
		Return(testRacha, true, nil).
		Times(3)
	mocks.match.
		On("ListByRachaBetween", mock.Anything, testRachaID, mock.Anything, mock.Anything).
		Return(saturdayMatches(), nil).
		Once()
	mocks.highlight.
		On("GetOverrides", mock.Anything, testRachaID, "2026-03-07").
		Return(highlight.Overrides{}, false, nil).
		Times(3)

	for _, hour := range []int{8, 12, 23} {
		service.now = func() time.Time { return playedAt(10, hour) }
		got, err := service.GetCurrentDay(context.Background(), testRachaID)
		if err != nil {
			t.Fatalf("get current day at %dh: %v", hour, err)
		}
		if got.Day != "2026-03-07" {
			t.Fatalf("unexpected current day at %dh: %s", hour, got.Day)
		}
	}
	if store.Len() != 1 {
		t.Fatalf("expected one cached range, got %d", store.Len())
	}
}

func TestMatchdayService_GetCurrentDay_NothingInWindow(t *testing.T) {
	t.Parallel()

	service, mocks := newMatchdayServiceForTest(t)
	mocks.racha.
		On("GetByID", mock.Anything, testRachaID).
		Return(testRacha, true, nil).
		Once()
	mocks.match.
		On("ListByRachaBetween", mock.Anything, testRachaID, mock.Anything, mock.Anything).
		Return(nil, nil).
		Once()

	_, err := service.GetCurrentDay(context.Background(), testRachaID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMatchdayService_Preview(t *testing.T) {
	t.Parallel()

	service, _ := newMatchdayServiceForTest(t)

	t.Run("derives each day in order", func(t *testing.T) {
		matches := append(saturdayMatches(), scoredMatch("m0", playedAt(1, 9), "Leões", "Tigres", 0, 1))
		got, err := service.Preview(context.Background(), matches, highlight.Overrides{})
		if err != nil {
			t.Fatalf("preview: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 days, got %d", len(got))
		}
		if got[0].Day != "2026-03-01" || got[1].Day != "2026-03-07" {
			t.Fatalf("unexpected day order: %s, %s", got[0].Day, got[1].Day)
		}
		if got[0].Champion.ChampionKey != "Tigres" {
			t.Fatalf("unexpected first day champion: %s", got[0].Champion.ChampionKey)
		}
	})

	t.Run("manual zagueiro applies", func(t *testing.T) {
		got, err := service.Preview(context.Background(), saturdayMatches(), highlight.Overrides{ZagueiroID: "tig-mei"})
		if err != nil {
			t.Fatalf("preview: %v", err)
		}
		card := got[0].Highlights.Zagueiro
		if card == nil || card.Branch != matchday.BranchManual {
			t.Fatalf("expected manual zagueiro card, got %+v", card)
		}
	})

	t.Run("no dated match", func(t *testing.T) {
		_, err := service.Preview(context.Background(), []match.Match{{ID: "undated"}}, highlight.Overrides{})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestMatchdayService_DeriveLogsChampionPoints(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	service := NewMatchdayService(nil, nil, nil, MatchdayServiceConfig{Location: saoPaulo}, nil, logging.FromZap(zap.New(core)))

	if _, err := service.Preview(context.Background(), saturdayMatches(), highlight.Overrides{}); err != nil {
		t.Fatalf("preview: %v", err)
	}

	entries := logs.FilterMessage("matchday derived").All()
	if len(entries) != 1 {
		t.Fatalf("expected one derive log, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["champion"] != "Leões" || fields["champion_points"] != int64(4) || fields["points_awarded"] != int64(5) {
		t.Fatalf("unexpected derive log fields: %v", fields)
	}
}
