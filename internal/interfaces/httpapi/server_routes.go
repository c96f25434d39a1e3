package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerLeagueRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/tournaments", handler.ListTournaments)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}", handler.GetTournament)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/ranking", handler.GetTournamentRanking)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/ranking/players/{playerID}", handler.GetPlayerRanking)
	mux.HandleFunc("GET /v1/overview", handler.GetLeagueOverview)
}
