package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"teamup_server/services"

	"github.com/gorilla/mux"
)

// ChatController struct
type ChatController struct {
	ChatService *services.ChatService
}

// NewChatController initializes the controller
func NewChatController(service *services.ChatService) *ChatController {
	return &ChatController{ChatService: service}
}

// HandleSendMessage - Send a message in a match channel
func (c *ChatController) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	var request struct {
		MatchID  string  `json:"matchId"`
		SenderID string  `json:"senderId"`
		Content  string  `json:"content"`
		ImageURL *string `json:"imageUrl,omitempty"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	message, err := c.ChatService.SendMessage(r.Context(), request.MatchID, request.SenderID, request.Content, request.ImageURL)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, message)
}

// HandleGetMessages - Fetch the latest messages for a match
func (c *ChatController) HandleGetMessages(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["matchId"]
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	messages, err := c.ChatService.GetMessages(r.Context(), matchID, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, messages)
}

// HandleMarkRead - Mark a message as read by a user
func (c *ChatController) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	var request struct {
		MatchID   string `json:"matchId"`
		CreatedAt string `json:"createdAt"`
		UserID    string `json:"userId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if err := c.ChatService.MarkMessageRead(r.Context(), request.MatchID, request.CreatedAt, request.UserID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "success", "message": "Message marked as read"})
}
