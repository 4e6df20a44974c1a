package models

// Voting session statuses
const (
	SessionStatusPending  = "pending"
	SessionStatusApproved = "approved"
	SessionStatusRejected = "rejected"
	SessionStatusExpired  = "expired"
)

// Vote choices
const (
	VoteYes = "yes"
	VoteNo  = "no"
)

// Match statuses
const (
	MatchStatusActive   = "active"
	MatchStatusArchived = "archived"
)
