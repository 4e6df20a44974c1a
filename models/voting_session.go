package models

import "time"

// VotingSession is one team's internal ballot about matching with one
// specific target team. Sessions are always created in pairs, one per side,
// sharing a round ID, which makes the counterpart session addressable as
// ("TEAM#<targetTeamId>", "SESSION#<roundId>").
type VotingSession struct {
	PK           string            `dynamodbav:"PK" json:"PK"` // "TEAM#<ownerTeamId>"
	SK           string            `dynamodbav:"SK" json:"SK"` // "SESSION#<roundId>"
	OwnerTeamID  string            `dynamodbav:"ownerTeamId" json:"ownerTeamId"`
	TargetTeamID string            `dynamodbav:"targetTeamId" json:"targetTeamId"`
	RoundID      string            `dynamodbav:"roundId" json:"roundId"`
	TeamMembers  []string          `dynamodbav:"teamMembers" json:"teamMembers"` // member snapshot at creation
	Votes        map[string]string `dynamodbav:"votes" json:"votes"`             // member ID -> "yes" | "no"
	Status       string            `dynamodbav:"status" json:"status"`
	Consumed     bool              `dynamodbav:"consumed" json:"consumed"` // set once a match has been created from this session
	CreatedAt    time.Time         `dynamodbav:"createdAt,unixtime" json:"createdAt"`
	ExpiresAt    time.Time         `dynamodbav:"expiresAt,unixtime" json:"expiresAt"`
}

// SessionKeys returns the composite key for a voting session.
func SessionKeys(ownerTeamID, roundID string) (pk, sk string) {
	return "TEAM#" + ownerTeamID, "SESSION#" + roundID
}

// IsExpired reports whether the voting window has closed. Checked at every
// mutation entry point, not only at display time.
func (s *VotingSession) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// IsTerminal reports whether the session has left the pending state.
func (s *VotingSession) IsTerminal() bool {
	return s.Status != SessionStatusPending
}

// AllMembersVoted reports whether every member of the creation-time snapshot
// has cast a vote.
func (s *VotingSession) AllMembersVoted() bool {
	for _, m := range s.TeamMembers {
		if _, ok := s.Votes[m]; !ok {
			return false
		}
	}
	return true
}

// Outcome tallies the votes under strict-majority rule. A tie is a
// rejection; there is no tie-breaking toward approval.
func (s *VotingSession) Outcome() string {
	yes := 0
	for _, v := range s.Votes {
		if v == VoteYes {
			yes++
		}
	}
	if yes*2 > len(s.Votes) {
		return SessionStatusApproved
	}
	return SessionStatusRejected
}

// VotingSessionsTable is the DynamoDB table name for voting sessions
const VotingSessionsTable = "VotingSessions"
