package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"teamup_server/models"
	"teamup_server/storage"
)

// MatchService promotes mutually-approved session pairs into matches and
// serves match lookups.
type MatchService struct {
	Matches  storage.MatchStorage
	Sessions storage.SessionStorage
	Teams    storage.TeamStorage
}

// PromoteIfMutual is invoked when one session of a pair reaches approved. If
// the counterpart session (same round, owned by the target team) is also
// approved, exactly one match is created for the pair: the match ID is the
// round ID, so both racing promoters derive the same key and the
// create-if-absent keeps it to one document. A rejected or expired
// counterpart permanently kills the round.
func (s *MatchService) PromoteIfMutual(ctx context.Context, session *models.VotingSession) (*models.Match, error) {
	counterpart, err := s.Sessions.Get(ctx, session.TargetTeamID, session.RoundID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Printf("⚠️ Round %s: counterpart session for team %s missing", session.RoundID, session.TargetTeamID)
			return nil, nil
		}
		return nil, err
	}

	if counterpart.Status != models.SessionStatusApproved {
		// Pending: wait for the other side. Rejected or expired: the round
		// is dead and never retried.
		return nil, nil
	}

	now := time.Now()
	match := &models.Match{
		MatchID:      session.RoundID,
		TeamAID:      minString(session.OwnerTeamID, session.TargetTeamID),
		TeamBID:      maxString(session.OwnerTeamID, session.TargetTeamID),
		AllMembers:   unionMembers(session.TeamMembers, counterpart.TeamMembers),
		Status:       models.MatchStatusActive,
		CreatedAt:    now,
		LastActivity: now,
	}

	if err := s.Matches.CreateIfAbsent(ctx, match); err != nil {
		if !errors.Is(err, storage.ErrConditionFailed) {
			return nil, fmt.Errorf("failed to create match: %w", err)
		}
		// The other side's promoter won the race; the match exists.
		log.Printf("🤝 Round %s already promoted by the counterpart", session.RoundID)
	} else {
		log.Printf("🎉 Match created: %s 🤝 %s (round %s)", match.TeamAID, match.TeamBID, session.RoundID)
	}

	s.consume(ctx, session.OwnerTeamID, session.RoundID)
	s.consume(ctx, session.TargetTeamID, session.RoundID)

	// A match consumes both teams: they leave the discovery pool but are
	// never hard-deleted.
	s.deactivate(ctx, session.OwnerTeamID)
	s.deactivate(ctx, session.TargetTeamID)

	return match, nil
}

// GetMatch fetches a match by ID.
func (s *MatchService) GetMatch(ctx context.Context, matchID string) (*models.Match, error) {
	match, err := s.Matches.Get(ctx, matchID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return match, nil
}

// GetMatchesForTeam lists a team's matches, most recently active first.
func (s *MatchService) GetMatchesForTeam(ctx context.Context, teamID string) ([]*models.Match, error) {
	matches, err := s.Matches.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].LastActivity.After(matches[j].LastActivity)
	})
	return matches, nil
}

// TouchActivity bumps the match's last-activity marker, used for chat
// ordering.
func (s *MatchService) TouchActivity(ctx context.Context, matchID string) error {
	err := s.Matches.TouchActivity(ctx, matchID, time.Now())
	if errors.Is(err, storage.ErrConditionFailed) {
		return ErrMatchNotFound
	}
	return err
}

func (s *MatchService) consume(ctx context.Context, teamID, roundID string) {
	if err := s.Sessions.MarkConsumed(ctx, teamID, roundID); err != nil {
		log.Printf("⚠️ Failed to mark session consumed (team %s, round %s): %v", teamID, roundID, err)
	}
}

func (s *MatchService) deactivate(ctx context.Context, teamID string) {
	if s.Teams == nil {
		return
	}
	if err := s.Teams.SetActive(ctx, teamID, false); err != nil {
		log.Printf("⚠️ Failed to deactivate matched team %s: %v", teamID, err)
	}
}

func unionMembers(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	union := make([]string, 0, len(a)+len(b))
	for _, id := range a {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			union = append(union, id)
		}
	}
	for _, id := range b {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			union = append(union, id)
		}
	}
	return union
}

func minString(a, b string) string {
	if a < b {
		return a
	}
	return b
}

func maxString(a, b string) string {
	if a < b {
		return b
	}
	return a
}
