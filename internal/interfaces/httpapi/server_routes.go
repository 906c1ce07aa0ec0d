package httpapi

import (
	"net/http"

	"github.com/riskibarqy/racha-league/internal/platform/metrics"
)

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, recorder *metrics.Recorder) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if recorder != nil {
		mux.Handle("GET /metrics", recorder.Handler())
	}
}

func registerRachaRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/rachas", handler.ListRachas)
	mux.HandleFunc("GET /v1/rachas/{rachaID}", handler.GetRacha)
	mux.HandleFunc("GET /v1/rachas/{rachaID}/days/{day}/standings", handler.GetDayStandings)
	mux.HandleFunc("GET /v1/rachas/{rachaID}/days/{day}/highlights", handler.GetDayHighlights)
	mux.HandleFunc("GET /v1/rachas/{rachaID}/highlights/current", handler.GetCurrentHighlights)
	mux.HandleFunc("GET /v1/rachas/{rachaID}/athletes/{athleteID}/season", handler.GetAthleteSeason)
	mux.HandleFunc("GET /v1/rachas/{rachaID}/season/ranking", handler.GetSeasonRanking)
}

func registerPreviewRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/highlights/preview", handler.PreviewHighlights)
}
