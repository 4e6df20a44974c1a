package services_test

import (
	"context"
	"testing"
	"time"

	"teamup_server/models"
	"teamup_server/services"
	testutils "teamup_server/services/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatFixture(t *testing.T) (*fixture, *services.ChatService, *models.Match) {
	t.Helper()
	f := newFixture(t)
	chat := &services.ChatService{
		Messages: testutils.NewMemoryMessageStorage(),
		Matches:  f.matchService,
	}

	match := &models.Match{
		MatchID:      "round-1",
		TeamAID:      "team-a",
		TeamBID:      "team-b",
		AllMembers:   []string{"a1", "a2", "b1", "b2"},
		Status:       models.MatchStatusActive,
		CreatedAt:    time.Now().Add(-time.Hour),
		LastActivity: time.Now().Add(-time.Hour),
	}
	require.NoError(t, f.matches.CreateIfAbsent(context.Background(), match))
	return f, chat, match
}

func TestSendMessageRejectsOutsiderAndEmptyBody(t *testing.T) {
	_, chat, match := newChatFixture(t)
	ctx := context.Background()

	_, err := chat.SendMessage(ctx, match.MatchID, "stranger", "hi there", nil)
	assert.ErrorIs(t, err, services.ErrNotTeamMember)

	_, err = chat.SendMessage(ctx, match.MatchID, "a1", "   ", nil)
	assert.ErrorIs(t, err, services.ErrEmptyMessage)

	_, err = chat.SendMessage(ctx, "no-such-match", "a1", "hi", nil)
	assert.ErrorIs(t, err, services.ErrMatchNotFound)
}

func TestSendMessageAllowsImageOnly(t *testing.T) {
	_, chat, match := newChatFixture(t)
	imageURL := "https://example.com/pic.jpg"

	message, err := chat.SendMessage(context.Background(), match.MatchID, "b1", "", &imageURL)
	require.NoError(t, err)
	assert.Equal(t, &imageURL, message.ImageURL)
}

func TestSendMessageTouchesMatchActivity(t *testing.T) {
	f, chat, match := newChatFixture(t)
	ctx := context.Background()

	before, err := f.matchService.GetMatch(ctx, match.MatchID)
	require.NoError(t, err)

	message, err := chat.SendMessage(ctx, match.MatchID, "a1", "brunch saturday?", nil)
	require.NoError(t, err)
	assert.True(t, message.IsRead["a1"], "sender has read their own message")

	after, err := f.matchService.GetMatch(ctx, match.MatchID)
	require.NoError(t, err)
	assert.True(t, after.LastActivity.After(before.LastActivity))
}

func TestGetMessagesOrderAndLimit(t *testing.T) {
	_, chat, match := newChatFixture(t)
	ctx := context.Background()

	var sent []*models.MatchMessage
	for _, body := range []string{"first", "second", "third"} {
		message, err := chat.SendMessage(ctx, match.MatchID, "a1", body, nil)
		require.NoError(t, err)
		sent = append(sent, message)
		time.Sleep(time.Millisecond) // distinct RFC3339Nano sort keys
	}

	messages, err := chat.GetMessages(ctx, match.MatchID, 0)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "first", messages[0].Content)
	assert.Equal(t, "third", messages[2].Content)

	messages, err = chat.GetMessages(ctx, match.MatchID, 2)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "second", messages[0].Content, "limit keeps the newest messages")

	require.NoError(t, chat.MarkMessageRead(ctx, match.MatchID, sent[0].CreatedAt, "b1"))
	messages, err = chat.GetMessages(ctx, match.MatchID, 0)
	require.NoError(t, err)
	assert.True(t, messages[0].IsRead["b1"])
}
