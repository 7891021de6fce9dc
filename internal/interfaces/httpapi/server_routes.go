package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerDashboardRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/data", handler.GetData)
	mux.HandleFunc("GET /api/standings", handler.GetStandings)
	mux.HandleFunc("GET /api/period-standings", handler.GetPeriodStandings)
	mux.HandleFunc("GET /api/last-week-results", handler.GetLastWeekResults)
	mux.HandleFunc("GET /api/next-week-matches", handler.GetNextWeekMatches)
	mux.HandleFunc("GET /api/featured-team-matches", handler.GetFeaturedTeamMatches)
	mux.HandleFunc("GET /api/weekly-results", handler.GetWeeklyResults)
	mux.HandleFunc("GET /api/team-matrix", handler.GetTeamMatrix)
	mux.HandleFunc("GET /api/all-matches", handler.GetAllMatches)
	mux.HandleFunc("POST /api/refresh", handler.RefreshData)
}
