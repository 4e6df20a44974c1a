package models

import "time"

// Match is the permanent outcome of both sides of a round approving each
// other. MatchID is the round ID, so both racing promoters derive the same
// key and the conditional create keeps the pair to exactly one match.
type Match struct {
	MatchID      string    `dynamodbav:"matchId" json:"matchId"`
	TeamAID      string    `dynamodbav:"teamAId" json:"teamAId"` // lexically smaller team ID
	TeamBID      string    `dynamodbav:"teamBId" json:"teamBId"`
	AllMembers   []string  `dynamodbav:"allMembers" json:"allMembers"` // union of both member snapshots
	Status       string    `dynamodbav:"status" json:"status"`         // active, archived
	CreatedAt    time.Time `dynamodbav:"createdAt" json:"createdAt"`
	LastActivity time.Time `dynamodbav:"lastActivity" json:"lastActivity"` // bumped on chat traffic, used for ordering
}

// HasMember reports whether userID belongs to either side of the match.
func (m *Match) HasMember(userID string) bool {
	for _, id := range m.AllMembers {
		if id == userID {
			return true
		}
	}
	return false
}

// MatchesTable is the DynamoDB table name for matches
const MatchesTable = "Matches"
