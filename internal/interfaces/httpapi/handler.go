package httpapi

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/racha-league/internal/platform/logging"
	"github.com/riskibarqy/racha-league/internal/usecase"
)

type Handler struct {
	rachaService    *usecase.RachaService
	matchdayService *usecase.MatchdayService
	seasonService   *usecase.SeasonService
	location        *time.Location
	logger          *logging.Logger
	validator       *validator.Validate
}

func NewHandler(
	rachaService *usecase.RachaService,
	matchdayService *usecase.MatchdayService,
	seasonService *usecase.SeasonService,
	location *time.Location,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if location == nil {
		location = time.UTC
	}

	return &Handler{
		rachaService:    rachaService,
		matchdayService: matchdayService,
		seasonService:   seasonService,
		location:        location,
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListRachas(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRachas")
	defer span.End()

	rachas, err := h.rachaService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list rachas failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]rachaDTO, 0, len(rachas))
	for _, item := range rachas {
		items = append(items, rachaToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetRacha(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRacha")
	defer span.End()

	rachaID := r.PathValue("rachaID")
	item, err := h.rachaService.Get(ctx, rachaID)
	if err != nil {
		h.logger.WarnContext(ctx, "get racha failed", "racha_id", rachaID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rachaToDTO(item))
}
