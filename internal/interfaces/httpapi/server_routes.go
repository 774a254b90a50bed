package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerGameRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/games", handler.ListGames)
	mux.HandleFunc("POST /v1/games", handler.SaveGame)
	mux.HandleFunc("GET /v1/games/{gameID}", handler.GetGame)
	mux.HandleFunc("DELETE /v1/games/{gameID}", handler.ArchiveGame)
	mux.HandleFunc("GET /v1/games/{gameID}/timer", handler.GetTimerState)
	mux.HandleFunc("PUT /v1/games/{gameID}/timer", handler.SaveTimerState)
}

func registerLibraryRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/roster", handler.ListRoster)
	mux.HandleFunc("POST /v1/roster", handler.UpsertPlayer)
	mux.HandleFunc("DELETE /v1/roster/{playerID}", handler.RemovePlayer)
	mux.HandleFunc("GET /v1/seasons", handler.ListSeasons)
	mux.HandleFunc("POST /v1/seasons", handler.UpsertSeason)
	mux.HandleFunc("GET /v1/tournaments", handler.ListTournaments)
	mux.HandleFunc("POST /v1/tournaments", handler.UpsertTournament)
	mux.HandleFunc("GET /v1/settings", handler.GetSettings)
	mux.HandleFunc("PUT /v1/settings", handler.SaveSettings)
}

func registerSyncRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/import", handler.ImportBackup)
	mux.HandleFunc("POST /v1/resync", handler.RunResync)
}
