package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/racha-league/internal/domain/match"
	matchmock "github.com/riskibarqy/racha-league/internal/mocks/domain/match"
	rachamock "github.com/riskibarqy/racha-league/internal/mocks/domain/racha"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSeasonServiceForTest(t *testing.T, workers int) (*SeasonService, *rachamock.Repository, *matchmock.Repository) {
	t.Helper()

	rachaRepo := rachamock.NewRepository(t)
	matchRepo := matchmock.NewRepository(t)
	service := NewSeasonService(rachaRepo, matchRepo, SeasonServiceConfig{
		Location:       saoPaulo,
		DefaultWindow:  7 * 24 * time.Hour,
		RankingWorkers: workers,
	}, nil, nil)
	service.now = func() time.Time { return playedAt(10, 12) }

	return service, rachaRepo, matchRepo
}

// twoSaturdays adds a 2-0 Tigres win on 2026-03-14 to saturdayMatches.
func twoSaturdays() []match.Match {
	return append(saturdayMatches(),
		scoredMatch("m3", playedAt(14, 8), "Tigres", "Leões", 2, 0,
			presence("tig-mei", "Beto", "Meia", "Tigres", 2, 0),
		),
	)
}

func TestSeasonService_Rank_OrdersByScoreThenChampionDaysThenGoals(t *testing.T) {
	t.Parallel()

	for _, workers := range []int{1, 4} {
		service, rachaRepo, matchRepo := newSeasonServiceForTest(t, workers)

		rachaRepo.
			On("GetByID", mock.Anything, testRachaID).
			Return(testRacha, true, nil).
			Once()
		matchRepo.
			On("ListByRachaBetween", mock.Anything, testRachaID,
				mock.MatchedBy(timeEqual(time.Date(2026, time.March, 1, 0, 0, 0, 0, saoPaulo))),
				mock.MatchedBy(timeEqual(time.Date(2026, time.March, 15, 0, 0, 0, 0, saoPaulo)))).
			Return(twoSaturdays(), nil).
			Once()

		rows, resolved, err := service.Rank(context.Background(), testRachaID, SeasonWindow{From: "2026-03-01", To: "2026-03-14"})
		require.NoError(t, err)
		assert.Equal(t, "2026-03-01", resolved.From)
		assert.Equal(t, "2026-03-14", resolved.To)

		require.Len(t, rows, 3)
		ids := []string{rows[0].AthleteID, rows[1].AthleteID, rows[2].AthleteID}
		assert.Equal(t, []string{"tig-mei", "leo-ata", "leo-gol"}, ids, "workers=%d", workers)
		for _, row := range rows {
			assert.Equal(t, 4, row.Score, row.AthleteID)
			assert.Equal(t, 1, row.ChampionDays, row.AthleteID)
		}
	}
}

func TestSeasonService_Rank_EmptyWindow(t *testing.T) {
	t.Parallel()

	service, rachaRepo, matchRepo := newSeasonServiceForTest(t, 2)
	rachaRepo.On("GetByID", mock.Anything, testRachaID).Return(testRacha, true, nil).Once()
	matchRepo.On("ListByRachaBetween", mock.Anything, testRachaID, mock.Anything, mock.Anything).Return(nil, nil).Once()

	rows, _, err := service.Rank(context.Background(), testRachaID, SeasonWindow{})
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.NotNil(t, rows)
}

func TestSeasonService_GetAthleteSeason(t *testing.T) {
	t.Parallel()

	service, rachaRepo, matchRepo := newSeasonServiceForTest(t, 2)
	rachaRepo.On("GetByID", mock.Anything, testRachaID).Return(testRacha, true, nil).Once()
	matchRepo.On("ListByRachaBetween", mock.Anything, testRachaID, mock.Anything, mock.Anything).Return(twoSaturdays(), nil).Once()

	got, _, err := service.GetAthleteSeason(context.Background(), testRachaID, "leo-ata", SeasonWindow{From: "2026-03-01", To: "2026-03-14"})
	require.NoError(t, err)
	assert.Equal(t, 2, got.Games)
	assert.Equal(t, 3, got.Goals)
	assert.Equal(t, 1, got.Assists)
	assert.Equal(t, 1, got.ChampionDays)
	assert.Equal(t, 1, got.Wins)
	assert.Equal(t, 1, got.Draws)
	assert.Equal(t, 50.0, got.AverageWinRate)
	assert.Equal(t, 4, got.Score)
}

func TestSeasonService_GetAthleteSeason_RequiresAthlete(t *testing.T) {
	t.Parallel()

	service, _, _ := newSeasonServiceForTest(t, 1)
	_, _, err := service.GetAthleteSeason(context.Background(), testRachaID, " ", SeasonWindow{})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSeasonService_ResolveWindow(t *testing.T) {
	t.Parallel()

	service, _, _ := newSeasonServiceForTest(t, 1)

	tests := []struct {
		name     string
		window   SeasonWindow
		wantFrom string
		wantTo   string
		wantErr  bool
	}{
		{name: "defaults to trailing window ending today", window: SeasonWindow{}, wantFrom: "2026-03-04", wantTo: "2026-03-10"},
		{name: "explicit range", window: SeasonWindow{From: "2026-01-01", To: "2026-02-28"}, wantFrom: "2026-01-01", wantTo: "2026-02-28"},
		{name: "single day", window: SeasonWindow{From: "2026-03-07", To: "2026-03-07"}, wantFrom: "2026-03-07", wantTo: "2026-03-07"},
		{name: "from after to", window: SeasonWindow{From: "2026-03-08", To: "2026-03-07"}, wantErr: true},
		{name: "bad from", window: SeasonWindow{From: "march"}, wantErr: true},
		{name: "bad to", window: SeasonWindow{To: "2026-13-01"}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := service.resolveWindow(tc.window)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolve window: %v", err)
			}
			if got.From != tc.wantFrom || got.To != tc.wantTo {
				t.Fatalf("unexpected window: got=%s..%s want=%s..%s", got.From, got.To, tc.wantFrom, tc.wantTo)
			}
			if !got.End.After(got.Start) {
				t.Fatalf("expected end after start: %v %v", got.Start, got.End)
			}
		})
	}
}
