package httpapi

import (
	"net/http"

	"github.com/zeeneddie/Sports-League-Management-System/internal/platform/logging"
	"github.com/zeeneddie/Sports-League-Management-System/internal/usecase"
)

type Handler struct {
	dashboardService *usecase.DashboardService
	refreshService   *usecase.RefreshService
	logger           *logging.Logger
}

func NewHandler(
	dashboardService *usecase.DashboardService,
	refreshService *usecase.RefreshService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		dashboardService: dashboardService,
		refreshService:   refreshService,
		logger:           logger,
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) GetData(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetData")
	defer span.End()

	doc, err := h.dashboardService.Data(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get dashboard data failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, doc)
}

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	standings, err := h.dashboardService.Standings(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get standings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standings)
}

func (h *Handler) GetPeriodStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPeriodStandings")
	defer span.End()

	periods, err := h.dashboardService.PeriodStandings(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get period standings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, periods)
}

func (h *Handler) GetLastWeekResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLastWeekResults")
	defer span.End()

	results, err := h.dashboardService.LastWeekResults(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get last week results failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, results)
}

func (h *Handler) GetNextWeekMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetNextWeekMatches")
	defer span.End()

	matches, err := h.dashboardService.NextWeekMatches(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get next week matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matches)
}

func (h *Handler) GetFeaturedTeamMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFeaturedTeamMatches")
	defer span.End()

	matches, err := h.dashboardService.FeaturedTeamMatches(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get featured team matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matches)
}

func (h *Handler) GetWeeklyResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetWeeklyResults")
	defer span.End()

	weekly, err := h.dashboardService.WeeklyResults(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get weekly results failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, weekly)
}

func (h *Handler) GetTeamMatrix(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamMatrix")
	defer span.End()

	matrix, err := h.dashboardService.TeamMatrix(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get team matrix failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matrix)
}

func (h *Handler) GetAllMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAllMatches")
	defer span.End()

	matches, err := h.dashboardService.AllMatches(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get all matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matches)
}

func (h *Handler) RefreshData(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RefreshData")
	defer span.End()

	doc, err := h.refreshService.Refresh(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "manual refresh failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, refreshResultDTO{
		Status:      "refreshed",
		LastUpdated: doc.LastUpdated,
		Teams:       len(doc.LeagueTable),
		Matches:     len(doc.AllMatches),
	})
}

type refreshResultDTO struct {
	Status      string `json:"status"`
	LastUpdated string `json:"last_updated"`
	Teams       int    `json:"teams"`
	Matches     int    `json:"matches"`
}
