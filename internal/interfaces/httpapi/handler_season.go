package httpapi

import (
	"net/http"

	"github.com/riskibarqy/racha-league/internal/usecase"
)

func seasonWindowFromQuery(r *http.Request) usecase.SeasonWindow {
	query := r.URL.Query()
	return usecase.SeasonWindow{
		From: query.Get("from"),
		To:   query.Get("to"),
	}
}

func (h *Handler) GetAthleteSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAthleteSeason")
	defer span.End()

	rachaID, athleteID := r.PathValue("rachaID"), r.PathValue("athleteID")
	summary, window, err := h.seasonService.GetAthleteSeason(ctx, rachaID, athleteID, seasonWindowFromQuery(r))
	if err != nil {
		h.logger.WarnContext(ctx, "get athlete season failed", "racha_id", rachaID, "athlete_id", athleteID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, athleteSeasonDTO{
		Window: windowToDTO(window),
		Season: seasonToDTO(summary),
	})
}

func (h *Handler) GetSeasonRanking(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeasonRanking")
	defer span.End()

	rachaID := r.PathValue("rachaID")
	rows, window, err := h.seasonService.Rank(ctx, rachaID, seasonWindowFromQuery(r))
	if err != nil {
		h.logger.WarnContext(ctx, "get season ranking failed", "racha_id", rachaID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]rankingRowDTO, 0, len(rows))
	for i, row := range rows {
		items = append(items, rankingRowDTO{
			Rank:    i + 1,
			Athlete: seasonToDTO(row),
		})
	}

	writeSuccess(ctx, w, http.StatusOK, seasonRankingDTO{
		Window: windowToDTO(window),
		Items:  items,
	})
}
