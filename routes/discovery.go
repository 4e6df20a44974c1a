package routes

import (
	"teamup_server/controllers"
	"teamup_server/services"

	"github.com/gorilla/mux"
)

// RegisterDiscoveryRoutes sets up the swipe-deck route under /api/discovery
func RegisterDiscoveryRoutes(r *mux.Router, discoveryService *services.DiscoveryService) {
	controller := controllers.NewDiscoveryController(discoveryService)

	discoveryRouter := r.PathPrefix("/api/discovery").Subrouter()
	discoveryRouter.HandleFunc("/{teamId}", controller.HandleGetCandidates).Methods("GET")
}
