package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"teamup_server/models"
	"teamup_server/storage"
)

// InterestService is the interest ledger: it records one-directional
// team-to-team interest, detects mutuality, and opens the voting round when
// both directions exist.
type InterestService struct {
	Interests storage.InterestStorage
	Sessions  storage.SessionStorage
	Teams     storage.TeamStorage
	Voting    *VotingService
}

// RecordInterest records fromTeam's interest in toTeam and runs the mutual
// check synchronously. Repeated calls for the same pair are idempotent. When
// the reverse edge already exists and the pair has no live or consumed
// round, a session pair is opened; the round ID is derived from the pair
// state, so two clients detecting mutuality at the same instant mint the
// same round and collide on the conditional session creates instead of
// opening two pairs.
func (s *InterestService) RecordInterest(ctx context.Context, fromTeamID, toTeamID string) error {
	if fromTeamID == toTeamID {
		return ErrSelfInterest
	}

	fromTeam, err := s.activeTeam(ctx, fromTeamID)
	if err != nil {
		return err
	}
	toTeam, err := s.activeTeam(ctx, toTeamID)
	if err != nil {
		return err
	}

	now := time.Now()
	pairSessions, err := s.Sessions.ListByPair(ctx, fromTeamID, toTeamID)
	if err != nil {
		return err
	}
	blocked := roundInFlight(pairSessions, now)

	pk, sk := models.InterestKeys(fromTeamID, toTeamID)
	interest := &models.Interest{
		PK:         pk,
		SK:         sk,
		FromTeamID: fromTeamID,
		ToTeamID:   toTeamID,
		CreatedAt:  now,
	}

	if err := s.Interests.CreateIfAbsent(ctx, interest); err != nil {
		if !errors.Is(err, storage.ErrConditionFailed) {
			return err
		}
		if blocked {
			// Duplicate like while a round is open or the pair already
			// matched: nothing to do.
			log.Printf("ℹ️ Interest %s -> %s already recorded, round in flight", fromTeamID, toTeamID)
			return nil
		}
		// The previous round died (rejected or expired); refresh the edge
		// so this counts as a new attempt.
		if err := s.Interests.Put(ctx, interest); err != nil {
			return err
		}
	}

	log.Printf("💖 Team %s likes team %s", fromTeamID, toTeamID)

	// Mutual check: has the target already liked us back?
	if _, err := s.Interests.Get(ctx, toTeamID, fromTeamID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return err
	}
	if blocked {
		return nil
	}

	roundID := mintRoundID(fromTeamID, toTeamID, len(pairSessions))
	log.Printf("💞 Mutual interest between %s and %s, opening round %s", fromTeamID, toTeamID, roundID)
	return s.Voting.OpenSessionPair(ctx, fromTeam, toTeam, roundID)
}

// HasMutualInterest reports whether both directed edges exist.
func (s *InterestService) HasMutualInterest(ctx context.Context, teamA, teamB string) (bool, error) {
	if _, err := s.Interests.Get(ctx, teamA, teamB); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if _, err := s.Interests.Get(ctx, teamB, teamA); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *InterestService) activeTeam(ctx context.Context, teamID string) (*models.Team, error) {
	team, err := s.Teams.Get(ctx, teamID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	if !team.Active {
		return nil, ErrTeamNotFound
	}
	return team, nil
}

// roundInFlight reports whether the ordered pair already has a round that
// must not be reopened: a consumed session (the pair matched), an approved
// session (its counterpart may still complete), or a pending session inside
// its window. Rejected, expired, and pending-past-window sessions are dead
// rounds and do not block a fresh attempt.
func roundInFlight(sessions []*models.VotingSession, now time.Time) bool {
	for _, session := range sessions {
		if session.Consumed {
			return true
		}
		switch session.Status {
		case models.SessionStatusApproved:
			return true
		case models.SessionStatusPending:
			if !session.IsExpired(now) {
				return true
			}
		}
	}
	return false
}

// mintRoundID derives the round key from the unordered pair plus the number
// of rounds already attempted, so both sides of a simultaneous mutual
// detection compute the same key.
func mintRoundID(teamA, teamB string, priorRounds int) string {
	lo, hi := minString(teamA, teamB), maxString(teamA, teamB)
	return fmt.Sprintf("%s#%s#r%d", lo, hi, priorRounds)
}
