package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

// registerProxyRoutes exposes a fixed allow-list of football-data.org resources.
func registerProxyRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/competitions", handler.ProxyCompetitions)
	mux.HandleFunc("GET /api/competitions/{competitionID}/{resource}", handler.ProxyCompetitionCollection)
	mux.HandleFunc("GET /api/competitions/{competitionID}/teams/{teamID}/statistics", handler.ProxyTeamStatistics)
	mux.HandleFunc("GET /api/matches", handler.ProxyMatches)
	mux.HandleFunc("GET /api/teams/{teamID}", handler.ProxyTeam)
	mux.HandleFunc("GET /api/persons/{personID}", handler.ProxyPerson)
}
