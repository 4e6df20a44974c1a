package controllers

import (
	"encoding/json"
	"net/http"

	"teamup_server/services"

	"github.com/gorilla/mux"
)

// VotingController struct
type VotingController struct {
	VotingService *services.VotingService
}

// NewVotingController initializes the controller
func NewVotingController(service *services.VotingService) *VotingController {
	return &VotingController{VotingService: service}
}

// HandleCastVote - A member casts a vote in their team's session
func (c *VotingController) HandleCastVote(w http.ResponseWriter, r *http.Request) {
	var request struct {
		TeamID   string `json:"teamId"`
		RoundID  string `json:"roundId"`
		MemberID string `json:"memberId"`
		Choice   string `json:"choice"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	session, err := c.VotingService.CastVote(r.Context(), request.TeamID, request.RoundID, request.MemberID, request.Choice)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// HandleGetSessions - Fetch all voting sessions owned by a team
func (c *VotingController) HandleGetSessions(w http.ResponseWriter, r *http.Request) {
	teamID := mux.Vars(r)["teamId"]

	sessions, err := c.VotingService.ListSessionsForTeam(r.Context(), teamID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, sessions)
}
