package httpapi

import (
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/racha-league/internal/usecase"
)

const maxPreviewBodyBytes = 1 << 20

func (h *Handler) GetDayStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDayStandings")
	defer span.End()

	rachaID, day := r.PathValue("rachaID"), r.PathValue("day")
	result, err := h.matchdayService.GetDay(ctx, rachaID, day)
	if err != nil {
		h.logger.WarnContext(ctx, "get day standings failed", "racha_id", rachaID, "day", day, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingsToDTO(result))
}

func (h *Handler) GetDayHighlights(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDayHighlights")
	defer span.End()

	rachaID, day := r.PathValue("rachaID"), r.PathValue("day")
	result, err := h.matchdayService.GetDay(ctx, rachaID, day)
	if err != nil {
		h.logger.WarnContext(ctx, "get day highlights failed", "racha_id", rachaID, "day", day, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, dayHighlightsToDTO(result))
}

func (h *Handler) GetCurrentHighlights(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCurrentHighlights")
	defer span.End()

	rachaID := r.PathValue("rachaID")
	result, err := h.matchdayService.GetCurrentDay(ctx, rachaID)
	if err != nil {
		h.logger.WarnContext(ctx, "get current highlights failed", "racha_id", rachaID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, dayHighlightsToDTO(result))
}

func (h *Handler) PreviewHighlights(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PreviewHighlights")
	defer span.End()

	var req previewRequest
	decoder := jsoniter.NewDecoder(http.MaxBytesReader(w, r.Body, maxPreviewBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	matches := req.toMatches(h.location)
	results, err := h.matchdayService.Preview(ctx, matches, req.Overrides.toOverrides())
	if err != nil {
		h.logger.WarnContext(ctx, "preview highlights failed", "matches", len(req.Matches), "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]previewDayDTO, 0, len(results))
	for _, result := range results {
		items = append(items, previewDayDTO{
			Standings:  standingsToDTO(result),
			Highlights: dayHighlightsToDTO(result),
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
