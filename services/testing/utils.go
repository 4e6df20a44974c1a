// Package testutils provides in-memory implementations of the storage
// interfaces. They reproduce the conditional-write semantics of the DynamoDB
// implementations (create-if-absent, guarded updates) so the concurrency
// behavior of the services can be exercised without a live table.
package testutils

import (
	"context"
	"sort"
	"sync"
	"time"

	"teamup_server/models"
	"teamup_server/storage"
)

// MemoryTeamStorage is an in-memory TeamStorage.
type MemoryTeamStorage struct {
	mu    sync.Mutex
	teams map[string]*models.Team
}

func NewMemoryTeamStorage() *MemoryTeamStorage {
	return &MemoryTeamStorage{teams: make(map[string]*models.Team)}
}

func (s *MemoryTeamStorage) Create(_ context.Context, team *models.Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.teams[team.TeamID]; ok {
		return storage.ErrConditionFailed
	}
	s.teams[team.TeamID] = copyTeam(team)
	return nil
}

func (s *MemoryTeamStorage) Get(_ context.Context, teamID string) (*models.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	team, ok := s.teams[teamID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return copyTeam(team), nil
}

func (s *MemoryTeamStorage) ListActive(_ context.Context) ([]*models.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var teams []*models.Team
	for _, team := range s.teams {
		if team.Active {
			teams = append(teams, copyTeam(team))
		}
	}
	return teams, nil
}

func (s *MemoryTeamStorage) ListByMember(_ context.Context, userID string) ([]*models.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var teams []*models.Team
	for _, team := range s.teams {
		if team.HasMember(userID) {
			teams = append(teams, copyTeam(team))
		}
	}
	return teams, nil
}

func (s *MemoryTeamStorage) SetActive(_ context.Context, teamID string, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	team, ok := s.teams[teamID]
	if !ok {
		return storage.ErrConditionFailed
	}
	team.Active = active
	return nil
}

// MemoryInterestStorage is an in-memory InterestStorage.
type MemoryInterestStorage struct {
	mu        sync.Mutex
	interests map[string]*models.Interest
}

func NewMemoryInterestStorage() *MemoryInterestStorage {
	return &MemoryInterestStorage{interests: make(map[string]*models.Interest)}
}

func (s *MemoryInterestStorage) CreateIfAbsent(_ context.Context, interest *models.Interest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := interest.PK + "|" + interest.SK
	if _, ok := s.interests[key]; ok {
		return storage.ErrConditionFailed
	}
	clone := *interest
	s.interests[key] = &clone
	return nil
}

func (s *MemoryInterestStorage) Put(_ context.Context, interest *models.Interest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *interest
	s.interests[interest.PK+"|"+interest.SK] = &clone
	return nil
}

func (s *MemoryInterestStorage) Get(_ context.Context, fromTeamID, toTeamID string) (*models.Interest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pk, sk := models.InterestKeys(fromTeamID, toTeamID)
	interest, ok := s.interests[pk+"|"+sk]
	if !ok {
		return nil, storage.ErrNotFound
	}
	clone := *interest
	return &clone, nil
}

// All returns every ledger row, for assertions.
func (s *MemoryInterestStorage) All() []*models.Interest {
	s.mu.Lock()
	defer s.mu.Unlock()
	var all []*models.Interest
	for _, interest := range s.interests {
		clone := *interest
		all = append(all, &clone)
	}
	return all
}

// MemorySessionStorage is an in-memory SessionStorage.
type MemorySessionStorage struct {
	mu       sync.Mutex
	sessions map[string]*models.VotingSession
}

func NewMemorySessionStorage() *MemorySessionStorage {
	return &MemorySessionStorage{sessions: make(map[string]*models.VotingSession)}
}

func (s *MemorySessionStorage) CreateIfAbsent(_ context.Context, session *models.VotingSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := session.PK + "|" + session.SK
	if _, ok := s.sessions[key]; ok {
		return storage.ErrConditionFailed
	}
	s.sessions[key] = copySession(session)
	return nil
}

func (s *MemorySessionStorage) Get(_ context.Context, ownerTeamID, roundID string) (*models.VotingSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[memSessionKey(ownerTeamID, roundID)]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return copySession(session), nil
}

func (s *MemorySessionStorage) ListByOwner(_ context.Context, ownerTeamID string) ([]*models.VotingSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var sessions []*models.VotingSession
	for _, session := range s.sessions {
		if session.OwnerTeamID == ownerTeamID {
			sessions = append(sessions, copySession(session))
		}
	}
	return sessions, nil
}

func (s *MemorySessionStorage) ListByPair(_ context.Context, ownerTeamID, targetTeamID string) ([]*models.VotingSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var sessions []*models.VotingSession
	for _, session := range s.sessions {
		if session.OwnerTeamID == ownerTeamID && session.TargetTeamID == targetTeamID {
			sessions = append(sessions, copySession(session))
		}
	}
	return sessions, nil
}

func (s *MemorySessionStorage) CastVote(_ context.Context, ownerTeamID, roundID, memberID, choice string, now time.Time) (*models.VotingSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[memSessionKey(ownerTeamID, roundID)]
	if !ok {
		return nil, storage.ErrConditionFailed
	}
	// Same guard the DynamoDB condition expression enforces.
	if session.Status != models.SessionStatusPending || !now.Before(session.ExpiresAt) {
		return nil, storage.ErrConditionFailed
	}
	if session.Votes == nil {
		session.Votes = map[string]string{}
	}
	session.Votes[memberID] = choice
	return copySession(session), nil
}

func (s *MemorySessionStorage) UpdateStatus(_ context.Context, ownerTeamID, roundID, from, to string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[memSessionKey(ownerTeamID, roundID)]
	if !ok || session.Status != from {
		return storage.ErrConditionFailed
	}
	session.Status = to
	return nil
}

func (s *MemorySessionStorage) MarkConsumed(_ context.Context, ownerTeamID, roundID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[memSessionKey(ownerTeamID, roundID)]
	if !ok {
		return storage.ErrConditionFailed
	}
	session.Consumed = true
	return nil
}

// Seed installs a session verbatim, bypassing the create guard. Tests use it
// to plant sessions with custom timestamps or statuses.
func (s *MemorySessionStorage) Seed(session *models.VotingSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.PK+"|"+session.SK] = copySession(session)
}

// All returns every stored session, for assertions.
func (s *MemorySessionStorage) All() []*models.VotingSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	var all []*models.VotingSession
	for _, session := range s.sessions {
		all = append(all, copySession(session))
	}
	return all
}

// MemoryMatchStorage is an in-memory MatchStorage.
type MemoryMatchStorage struct {
	mu      sync.Mutex
	matches map[string]*models.Match
}

func NewMemoryMatchStorage() *MemoryMatchStorage {
	return &MemoryMatchStorage{matches: make(map[string]*models.Match)}
}

func (s *MemoryMatchStorage) CreateIfAbsent(_ context.Context, match *models.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.matches[match.MatchID]; ok {
		return storage.ErrConditionFailed
	}
	s.matches[match.MatchID] = copyMatch(match)
	return nil
}

func (s *MemoryMatchStorage) Get(_ context.Context, matchID string) (*models.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	match, ok := s.matches[matchID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return copyMatch(match), nil
}

func (s *MemoryMatchStorage) ListByTeam(_ context.Context, teamID string) ([]*models.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var matches []*models.Match
	for _, match := range s.matches {
		if match.TeamAID == teamID || match.TeamBID == teamID {
			matches = append(matches, copyMatch(match))
		}
	}
	return matches, nil
}

func (s *MemoryMatchStorage) TouchActivity(_ context.Context, matchID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	match, ok := s.matches[matchID]
	if !ok {
		return storage.ErrConditionFailed
	}
	match.LastActivity = at
	return nil
}

// All returns every stored match, for assertions.
func (s *MemoryMatchStorage) All() []*models.Match {
	s.mu.Lock()
	defer s.mu.Unlock()
	var all []*models.Match
	for _, match := range s.matches {
		all = append(all, copyMatch(match))
	}
	return all
}

// MemoryMessageStorage is an in-memory MessageStorage.
type MemoryMessageStorage struct {
	mu       sync.Mutex
	messages []*models.MatchMessage
}

func NewMemoryMessageStorage() *MemoryMessageStorage {
	return &MemoryMessageStorage{}
}

func (s *MemoryMessageStorage) Append(_ context.Context, message *models.MatchMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *message
	clone.IsRead = copyBoolMap(message.IsRead)
	s.messages = append(s.messages, &clone)
	return nil
}

func (s *MemoryMessageStorage) ListLatest(_ context.Context, matchID string, limit int) ([]*models.MatchMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []*models.MatchMessage
	for _, message := range s.messages {
		if message.MatchID == matchID {
			clone := *message
			clone.IsRead = copyBoolMap(message.IsRead)
			matched = append(matched, &clone)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt < matched[j].CreatedAt
	})
	if len(matched) > limit {
		matched = matched[len(matched)-limit:]
	}
	return matched, nil
}

func (s *MemoryMessageStorage) MarkRead(_ context.Context, matchID, createdAt, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, message := range s.messages {
		if message.MatchID == matchID && message.CreatedAt == createdAt {
			if message.IsRead == nil {
				message.IsRead = map[string]bool{}
			}
			message.IsRead[userID] = true
			return nil
		}
	}
	return storage.ErrConditionFailed
}

func copyTeam(team *models.Team) *models.Team {
	clone := *team
	clone.MemberIDs = append([]string(nil), team.MemberIDs...)
	clone.Members = append([]models.TeamMember(nil), team.Members...)
	return &clone
}

func copySession(session *models.VotingSession) *models.VotingSession {
	clone := *session
	clone.TeamMembers = append([]string(nil), session.TeamMembers...)
	clone.Votes = make(map[string]string, len(session.Votes))
	for member, choice := range session.Votes {
		clone.Votes[member] = choice
	}
	return &clone
}

func copyMatch(match *models.Match) *models.Match {
	clone := *match
	clone.AllMembers = append([]string(nil), match.AllMembers...)
	return &clone
}

func copyBoolMap(m map[string]bool) map[string]bool {
	clone := make(map[string]bool, len(m))
	for k, v := range m {
		clone[k] = v
	}
	return clone
}

func memSessionKey(ownerTeamID, roundID string) string {
	pk, sk := models.SessionKeys(ownerTeamID, roundID)
	return pk + "|" + sk
}
