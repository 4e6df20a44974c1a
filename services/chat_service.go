package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"teamup_server/models"
	"teamup_server/storage"

	"github.com/google/uuid"
)

// ChatService handles the chat stream owned by a match.
type ChatService struct {
	Messages storage.MessageStorage
	Matches  *MatchService
}

// SendMessage appends a message to a match channel and bumps the match's
// last-activity marker.
func (s *ChatService) SendMessage(ctx context.Context, matchID, senderID, content string, imageURL *string) (*models.MatchMessage, error) {
	if strings.TrimSpace(content) == "" && imageURL == nil {
		return nil, ErrEmptyMessage
	}

	match, err := s.Matches.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !match.HasMember(senderID) {
		return nil, ErrNotTeamMember
	}

	message := &models.MatchMessage{
		MatchID:   matchID,
		CreatedAt: time.Now().Format(time.RFC3339Nano),
		MessageID: uuid.New().String(),
		SenderID:  senderID,
		Content:   content,
		ImageURL:  imageURL,
		IsRead:    map[string]bool{senderID: true},
	}

	if err := s.Messages.Append(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}

	if err := s.Matches.TouchActivity(ctx, matchID); err != nil {
		log.Printf("⚠️ Failed to touch activity for match %s: %v", matchID, err)
	}

	log.Printf("📩 Message from %s in match %s", senderID, matchID)
	return message, nil
}

// GetMessages returns the latest messages for a match, oldest first.
func (s *ChatService) GetMessages(ctx context.Context, matchID string, limit int) ([]*models.MatchMessage, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.Messages.ListLatest(ctx, matchID, limit)
}

// MarkMessageRead records that a user has read a message.
func (s *ChatService) MarkMessageRead(ctx context.Context, matchID, createdAt, userID string) error {
	return s.Messages.MarkRead(ctx, matchID, createdAt, userID)
}
