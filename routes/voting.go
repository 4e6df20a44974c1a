package routes

import (
	"teamup_server/controllers"
	"teamup_server/services"

	"github.com/gorilla/mux"
)

// RegisterVotingRoutes sets up routes for voting-session operations under /api/voting
func RegisterVotingRoutes(r *mux.Router, votingService *services.VotingService) {
	controller := controllers.NewVotingController(votingService)

	votingRouter := r.PathPrefix("/api/voting").Subrouter()
	votingRouter.HandleFunc("/vote", controller.HandleCastVote).Methods("POST")
	votingRouter.HandleFunc("/sessions/{teamId}", controller.HandleGetSessions).Methods("GET")
}
