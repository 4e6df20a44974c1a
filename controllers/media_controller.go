package controllers

import (
	"encoding/json"
	"net/http"

	"teamup_server/services"
)

// MediaController struct
type MediaController struct {
	MediaService *services.MediaService
}

// NewMediaController initializes the controller
func NewMediaController(service *services.MediaService) *MediaController {
	return &MediaController{MediaService: service}
}

// HandleGetUploadURL - Generate a presigned URL for uploading a team photo
func (c *MediaController) HandleGetUploadURL(w http.ResponseWriter, r *http.Request) {
	var request struct {
		FileName string `json:"fileName"`
		FileType string `json:"fileType"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.FileName == "" {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	url, key, err := c.MediaService.GenerateUploadURL(r.Context(), request.FileName, request.FileType)
	if err != nil {
		http.Error(w, `{"error": "Failed to generate upload URL"}`, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"uploadUrl": url, "key": key})
}

// HandleGetReadURL - Generate a presigned URL for reading a stored photo
func (c *MediaController) HandleGetReadURL(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, `{"error": "key is required"}`, http.StatusBadRequest)
		return
	}

	url, err := c.MediaService.GenerateReadURL(r.Context(), key)
	if err != nil {
		http.Error(w, `{"error": "Failed to generate read URL"}`, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"readUrl": url})
}
