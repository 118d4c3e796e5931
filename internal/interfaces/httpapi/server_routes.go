package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/formations", handler.ListFormations)
	mux.HandleFunc("GET /v1/clubs/{clubID}/teams", handler.ListTeamsByClub)
	mux.HandleFunc("GET /v1/clubs/{clubID}/year-groups", handler.ListYearGroupsByClub)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /v1/teams/{teamID}/players", handler.ListPlayersByTeam)
	mux.HandleFunc("GET /v1/teams/{teamID}/events", handler.ListEventsByTeam)
	mux.HandleFunc("GET /v1/year-groups/{yearGroupID}", handler.GetYearGroup)
	mux.HandleFunc("GET /v1/year-groups/{yearGroupID}/teams", handler.ListTeamsByYearGroup)
	mux.HandleFunc("GET /v1/events/{eventID}", handler.GetEvent)
	mux.HandleFunc("GET /v1/events/{eventID}/availability", handler.GetAvailabilityBoard)
	mux.HandleFunc("GET /v1/events/{eventID}/teams/{teamID}/squad", handler.ListSquadPlayers)
	mux.HandleFunc("GET /v1/events/{eventID}/teams/{teamID}/selections", handler.GetSelection)
	mux.HandleFunc("GET /v1/events/{eventID}/teams/{teamID}/selections/positions", handler.GetSelectionPositions)
	mux.HandleFunc("GET /v1/events/{eventID}/teams/{teamID}/selections/conflicts", handler.GetSelectionConflicts)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	registerAuthorizedRosterRoutes(mux, handler, verifier)
	registerAuthorizedEventRoutes(mux, handler, verifier)
	registerAuthorizedSelectionRoutes(mux, handler, verifier)
}

func registerAuthorizedRosterRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/teams", RequireAuth(verifier, http.HandlerFunc(handler.CreateTeam)))
	mux.Handle("PUT /v1/teams/{teamID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateTeam)))
	mux.Handle("DELETE /v1/teams/{teamID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteTeam)))
	mux.Handle("POST /v1/year-groups", RequireAuth(verifier, http.HandlerFunc(handler.CreateYearGroup)))
	mux.Handle("PUT /v1/year-groups/{yearGroupID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateYearGroup)))
	mux.Handle("DELETE /v1/year-groups/{yearGroupID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteYearGroup)))
	mux.Handle("POST /v1/year-groups/{yearGroupID}/split", RequireAuth(verifier, http.HandlerFunc(handler.SplitYearGroup)))
	mux.Handle("POST /v1/players", RequireAuth(verifier, http.HandlerFunc(handler.CreatePlayer)))
	mux.Handle("PUT /v1/players/{playerID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdatePlayer)))
	mux.Handle("PUT /v1/players/{playerID}/team", RequireAuth(verifier, http.HandlerFunc(handler.ReassignPlayer)))
	mux.Handle("DELETE /v1/players/{playerID}", RequireAuth(verifier, http.HandlerFunc(handler.DeletePlayer)))
}

func registerAuthorizedEventRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/events", RequireAuth(verifier, http.HandlerFunc(handler.CreateEvent)))
	mux.Handle("PUT /v1/events/{eventID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateEvent)))
	mux.Handle("DELETE /v1/events/{eventID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteEvent)))
	mux.Handle("PUT /v1/events/{eventID}/availability", RequireAuth(verifier, http.HandlerFunc(handler.SubmitAvailability)))
	mux.Handle("POST /v1/events/{eventID}/teams/{teamID}/squad/players", RequireAuth(verifier, http.HandlerFunc(handler.AddSquadPlayer)))
	mux.Handle("DELETE /v1/events/{eventID}/teams/{teamID}/squad/players/{playerID}", RequireAuth(verifier, http.HandlerFunc(handler.RemoveSquadPlayer)))
	mux.Handle("PUT /v1/events/{eventID}/teams/{teamID}/squad/captain", RequireAuth(verifier, http.HandlerFunc(handler.SetSquadCaptain)))
}

func registerAuthorizedSelectionRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("PUT /v1/events/{eventID}/teams/{teamID}/selections", RequireAuth(verifier, http.HandlerFunc(handler.SaveSelection)))
}
