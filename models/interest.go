package models

import "time"

// Interest is a one-directional "we like them" edge between two teams.
// The pair (FromTeamID, ToTeamID) is the identity; recording it twice must
// not produce a second row.
type Interest struct {
	PK         string    `dynamodbav:"PK" json:"PK"` // "TEAM#<fromTeamId>"
	SK         string    `dynamodbav:"SK" json:"SK"` // "INTEREST#<toTeamId>"
	FromTeamID string    `dynamodbav:"fromTeamId" json:"fromTeamId"`
	ToTeamID   string    `dynamodbav:"toTeamId" json:"toTeamId"`
	CreatedAt  time.Time `dynamodbav:"createdAt" json:"createdAt"`
}

// InterestKeys returns the composite key for an interest edge.
func InterestKeys(fromTeamID, toTeamID string) (pk, sk string) {
	return "TEAM#" + fromTeamID, "INTEREST#" + toTeamID
}

// InterestsTable is the DynamoDB table name for the interest ledger
const InterestsTable = "Interests"
