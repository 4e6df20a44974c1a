package controllers

import (
	"encoding/json"
	"net/http"

	"teamup_server/models"
	"teamup_server/services"

	"github.com/gorilla/mux"
)

// TeamController struct
type TeamController struct {
	TeamService *services.TeamService
}

// NewTeamController initializes the controller
func NewTeamController(service *services.TeamService) *TeamController {
	return &TeamController{TeamService: service}
}

// HandleCreateTeam - Create a new team
func (c *TeamController) HandleCreateTeam(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Name          string              `json:"name"`
		CreatedBy     string              `json:"createdBy"`
		Members       []models.TeamMember `json:"members"`
		LookingFor    string              `json:"lookingFor"`
		AgeMin        int                 `json:"ageMin"`
		AgeMax        int                 `json:"ageMax"`
		MaxDistanceKm float64             `json:"maxDistanceKm"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	team, err := c.TeamService.CreateTeam(r.Context(), services.CreateTeamInput{
		Name:          request.Name,
		CreatedBy:     request.CreatedBy,
		Members:       request.Members,
		LookingFor:    request.LookingFor,
		AgeMin:        request.AgeMin,
		AgeMax:        request.AgeMax,
		MaxDistanceKm: request.MaxDistanceKm,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, team)
}

// HandleGetTeam - Fetch a team by ID
func (c *TeamController) HandleGetTeam(w http.ResponseWriter, r *http.Request) {
	teamID := mux.Vars(r)["teamId"]

	team, err := c.TeamService.GetTeam(r.Context(), teamID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, team)
}

// HandleGetMyTeams - Fetch all teams a user belongs to
func (c *TeamController) HandleGetMyTeams(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, `{"error": "userId is required"}`, http.StatusBadRequest)
		return
	}

	teams, err := c.TeamService.GetTeamsForUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, teams)
}

// HandleDisbandTeam - Deactivate a team
func (c *TeamController) HandleDisbandTeam(w http.ResponseWriter, r *http.Request) {
	var request struct {
		TeamID string `json:"teamId"`
		UserID string `json:"userId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if err := c.TeamService.DisbandTeam(r.Context(), request.TeamID, request.UserID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "success", "message": "Team disbanded"})
}
