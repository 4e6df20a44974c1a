package models

// MatchMessage represents a chat message inside a match channel.
// CreatedAt doubles as the sort key, so it is kept as an RFC3339 string.
type MatchMessage struct {
	MatchID   string          `dynamodbav:"matchId" json:"matchId"`     // Partition key
	CreatedAt string          `dynamodbav:"createdAt" json:"createdAt"` // Sort key (timestamp)
	MessageID string          `dynamodbav:"messageId" json:"messageId"`
	SenderID  string          `dynamodbav:"senderId" json:"senderId"`
	Content   string          `dynamodbav:"content,omitempty" json:"content,omitempty"`
	ImageURL  *string         `dynamodbav:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	IsRead    map[string]bool `dynamodbav:"isRead" json:"isRead"` // read status per user
}

// MatchMessagesTable is the DynamoDB table name for match chat messages
const MatchMessagesTable = "MatchMessages"
