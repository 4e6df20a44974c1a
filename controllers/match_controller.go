package controllers

import (
	"net/http"

	"teamup_server/services"

	"github.com/gorilla/mux"
)

// MatchController struct
type MatchController struct {
	MatchService *services.MatchService
}

// NewMatchController initializes the controller
func NewMatchController(service *services.MatchService) *MatchController {
	return &MatchController{MatchService: service}
}

// HandleGetMatch - Fetch a match by ID
func (c *MatchController) HandleGetMatch(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["matchId"]

	match, err := c.MatchService.GetMatch(r.Context(), matchID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, match)
}

// HandleGetMatchesForTeam - Fetch a team's matches, most recently active first
func (c *MatchController) HandleGetMatchesForTeam(w http.ResponseWriter, r *http.Request) {
	teamID := mux.Vars(r)["teamId"]

	matches, err := c.MatchService.GetMatchesForTeam(r.Context(), teamID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, matches)
}
