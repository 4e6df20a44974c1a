package controllers

import (
	"encoding/json"
	"net/http"

	"teamup_server/services"
)

// InterestController struct
type InterestController struct {
	InterestService *services.InterestService
}

// NewInterestController initializes the controller
func NewInterestController(service *services.InterestService) *InterestController {
	return &InterestController{InterestService: service}
}

// HandleRecordInterest - One team likes another team
func (c *InterestController) HandleRecordInterest(w http.ResponseWriter, r *http.Request) {
	var request struct {
		FromTeamID string `json:"fromTeamId"`
		ToTeamID   string `json:"toTeamId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if err := c.InterestService.RecordInterest(r.Context(), request.FromTeamID, request.ToTeamID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "success", "message": "Interest recorded"})
}

// HandleCheckMutual - Check whether two teams like each other
func (c *InterestController) HandleCheckMutual(w http.ResponseWriter, r *http.Request) {
	teamA := r.URL.Query().Get("teamA")
	teamB := r.URL.Query().Get("teamB")
	if teamA == "" || teamB == "" {
		http.Error(w, `{"error": "teamA and teamB are required"}`, http.StatusBadRequest)
		return
	}

	mutual, err := c.InterestService.HasMutualInterest(r.Context(), teamA, teamB)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"mutual": mutual})
}
