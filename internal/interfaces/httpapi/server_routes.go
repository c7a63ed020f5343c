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

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /api/admin/signup", handler.Signup)
	mux.HandleFunc("POST /api/admin/login", handler.Login)
	mux.HandleFunc("GET /api/matches", handler.ListMatches)
	mux.HandleFunc("GET /api/matches/{matchID}", handler.GetMatchDetails)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /api/matches", RequireAuth(verifier, http.HandlerFunc(handler.CreateMatch)))
	mux.Handle("POST /api/matches/{matchID}/teams", RequireAuth(verifier, http.HandlerFunc(handler.CreateTeamForMatch)))
	mux.Handle("POST /api/teams/{teamID}/squad", RequireAuth(verifier, http.HandlerFunc(handler.AddPlayerToSquad)))
	mux.Handle("GET /api/players/{playerID}/stats", RequireAuth(verifier, http.HandlerFunc(handler.GetPlayerStatistics)))
}
