package routes

import (
	"teamup_server/controllers"
	"teamup_server/services"

	"github.com/gorilla/mux"
)

// RegisterTeamRoutes sets up routes for team lifecycle operations under /api/teams
func RegisterTeamRoutes(r *mux.Router, teamService *services.TeamService) {
	controller := controllers.NewTeamController(teamService)

	teamRouter := r.PathPrefix("/api/teams").Subrouter()
	teamRouter.HandleFunc("", controller.HandleCreateTeam).Methods("POST")
	teamRouter.HandleFunc("/mine", controller.HandleGetMyTeams).Methods("GET")
	teamRouter.HandleFunc("/disband", controller.HandleDisbandTeam).Methods("POST")
	teamRouter.HandleFunc("/{teamId}", controller.HandleGetTeam).Methods("GET")
}
