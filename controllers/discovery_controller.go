package controllers

import (
	"net/http"

	"teamup_server/services"

	"github.com/gorilla/mux"
)

// DiscoveryController struct
type DiscoveryController struct {
	DiscoveryService *services.DiscoveryService
}

// NewDiscoveryController initializes the controller
func NewDiscoveryController(service *services.DiscoveryService) *DiscoveryController {
	return &DiscoveryController{DiscoveryService: service}
}

// HandleGetCandidates - Fetch the swipe deck for a team
func (c *DiscoveryController) HandleGetCandidates(w http.ResponseWriter, r *http.Request) {
	teamID := mux.Vars(r)["teamId"]

	candidates, err := c.DiscoveryService.GetCandidateTeams(r.Context(), teamID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, candidates)
}
