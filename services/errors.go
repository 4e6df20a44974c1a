package services

import "errors"

// Validation errors: reported to the caller, never silently swallowed.
var (
	ErrEmptyTeam       = errors.New("a team needs at least one member")
	ErrMissingTeamName = errors.New("team name is required")
	ErrNotTeamMember   = errors.New("user is not a member of this team")
	ErrInvalidChoice   = errors.New("vote choice must be yes or no")
	ErrSelfInterest    = errors.New("a team cannot record interest in itself")
	ErrEmptyMessage    = errors.New("message content is required")
)

// Stale-state errors: the referenced entity no longer exists, the caller
// should refresh rather than retry.
var (
	ErrTeamNotFound    = errors.New("team not found")
	ErrSessionNotFound = errors.New("voting session not found")
	ErrMatchNotFound   = errors.New("match not found")
)

// Lifecycle errors: the session exists but no longer accepts votes. Expiry
// is distinct from resolution so clients can render the two differently.
var (
	ErrSessionExpired  = errors.New("voting session has expired")
	ErrSessionResolved = errors.New("voting session is already resolved")
)
