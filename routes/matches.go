package routes

import (
	"teamup_server/controllers"
	"teamup_server/services"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes sets up routes for match lookups under /api/matches
func RegisterMatchRoutes(r *mux.Router, matchService *services.MatchService) {
	controller := controllers.NewMatchController(matchService)

	matchRouter := r.PathPrefix("/api/matches").Subrouter()
	matchRouter.HandleFunc("/team/{teamId}", controller.HandleGetMatchesForTeam).Methods("GET")
	matchRouter.HandleFunc("/{matchId}", controller.HandleGetMatch).Methods("GET")
}
