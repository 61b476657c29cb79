package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/tournaments", handler.ListTournaments)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}", handler.GetTournament)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/odds", handler.ListTournamentOdds)
	mux.HandleFunc("GET /v1/golfers", handler.ListGolfers)
	mux.HandleFunc("GET /v1/golfers/{golferID}", handler.GetGolfer)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	registerAuthorizedLeagueRoutes(mux, handler, verifier)
	registerAuthorizedEntryRoutes(mux, handler, verifier)
	registerAuthorizedTeamRoutes(mux, handler, verifier)
}

func registerAuthorizedLeagueRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/leagues", RequireAuth(verifier, http.HandlerFunc(handler.CreateLeague)))
	mux.Handle("GET /v1/leagues", RequireAuth(verifier, http.HandlerFunc(handler.ListMyLeagues)))
	mux.Handle("POST /v1/leagues/join", RequireAuth(verifier, http.HandlerFunc(handler.JoinLeague)))
	mux.Handle("GET /v1/leagues/{leagueID}", RequireAuth(verifier, http.HandlerFunc(handler.GetLeague)))
	mux.Handle("DELETE /v1/leagues/{leagueID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteLeague)))
	mux.Handle("POST /v1/leagues/{leagueID}/status", RequireAuth(verifier, http.HandlerFunc(handler.AdvanceLeagueStatus)))
	mux.Handle("GET /v1/leagues/{leagueID}/entries", RequireAuth(verifier, http.HandlerFunc(handler.ListLeagueEntries)))
	mux.Handle("GET /v1/leagues/{leagueID}/leaderboard", RequireAuth(verifier, http.HandlerFunc(handler.GetLeagueLeaderboard)))
	mux.Handle("POST /v1/leagues/{leagueID}/leaderboard/refresh", RequireAuth(verifier, http.HandlerFunc(handler.RefreshLeagueLeaderboard)))
}

func registerAuthorizedEntryRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/entries/me", RequireAuth(verifier, http.HandlerFunc(handler.ListMyEntries)))
	mux.Handle("GET /v1/entries/{entryID}", RequireAuth(verifier, http.HandlerFunc(handler.GetEntry)))
	mux.Handle("DELETE /v1/entries/{entryID}", RequireAuth(verifier, http.HandlerFunc(handler.LeaveLeague)))
	mux.Handle("POST /v1/entries/{entryID}/checkout", RequireAuth(verifier, http.HandlerFunc(handler.RequestEntryCheckout)))
	mux.Handle("GET /v1/entries/{entryID}/team", RequireAuth(verifier, http.HandlerFunc(handler.GetTeamByEntry)))
}

func registerAuthorizedTeamRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/teams", RequireAuth(verifier, http.HandlerFunc(handler.CreateTeam)))
	mux.Handle("GET /v1/teams/{teamID}", RequireAuth(verifier, http.HandlerFunc(handler.GetTeam)))
	mux.Handle("PUT /v1/teams/{teamID}", RequireAuth(verifier, http.HandlerFunc(handler.ReplaceTeam)))
	mux.Handle("DELETE /v1/teams/{teamID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteTeam)))
}

func registerWebhookRoutes(mux *http.ServeMux, handler *Handler) {
	// Authenticated by HMAC signature over the body, not by bearer token.
	mux.HandleFunc("POST /v1/payments/webhook", handler.PaymentWebhook)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/leaderboards/refresh", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunLeaderboardRefreshJob)))
	mux.Handle("PUT /v1/internal/entries/{entryID}/score", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.UpdateEntryScore)))
}
