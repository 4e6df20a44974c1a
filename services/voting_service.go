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

// VotingService runs the per-team consensus ballots. Each session is a
// bounded-time internal vote about one target team; the pair of sessions
// sharing a round ID together decide whether a match is created.
type VotingService struct {
	Sessions storage.SessionStorage
	Promoter *MatchService
	Window   time.Duration // voting window, canonically 24h
}

// OpenSessionPair creates both sides' pending sessions for a round. Session
// keys derive from the round ID, so a concurrent opener for the same round
// collides on the conditional create instead of producing a second pair.
func (s *VotingService) OpenSessionPair(ctx context.Context, teamA, teamB *models.Team, roundID string) error {
	now := time.Now()
	expiresAt := now.Add(s.Window)

	for _, pair := range [][2]*models.Team{{teamA, teamB}, {teamB, teamA}} {
		owner, target := pair[0], pair[1]
		pk, sk := models.SessionKeys(owner.TeamID, roundID)
		session := &models.VotingSession{
			PK:           pk,
			SK:           sk,
			OwnerTeamID:  owner.TeamID,
			TargetTeamID: target.TeamID,
			RoundID:      roundID,
			TeamMembers:  append([]string(nil), owner.MemberIDs...),
			Votes:        map[string]string{},
			Status:       models.SessionStatusPending,
			CreatedAt:    now,
			ExpiresAt:    expiresAt,
		}
		if err := s.Sessions.CreateIfAbsent(ctx, session); err != nil {
			if errors.Is(err, storage.ErrConditionFailed) {
				// A concurrent opener already created this side.
				continue
			}
			return fmt.Errorf("failed to create voting session for team %s: %w", owner.TeamID, err)
		}
	}

	log.Printf("🗳️ Voting round %s opened for teams %s and %s", roundID, teamA.TeamID, teamB.TeamID)
	return nil
}

// CastVote records one member's ballot and, once the whole member snapshot
// has voted, resolves the session by strict majority. Re-voting overwrites
// the member's previous choice.
func (s *VotingService) CastVote(ctx context.Context, ownerTeamID, roundID, memberID, choice string) (*models.VotingSession, error) {
	if choice != models.VoteYes && choice != models.VoteNo {
		return nil, ErrInvalidChoice
	}

	session, err := s.Sessions.Get(ctx, ownerTeamID, roundID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	now := time.Now()
	if session.IsTerminal() {
		if session.Status == models.SessionStatusExpired {
			return nil, ErrSessionExpired
		}
		// An approved session that was never consumed means an earlier
		// promotion attempt failed mid-flight; the round-keyed match ID
		// makes re-running it safe.
		s.retryPromotion(ctx, session)
		return nil, ErrSessionResolved
	}
	if session.IsExpired(now) {
		s.expireLazily(ctx, session)
		return nil, ErrSessionExpired
	}
	if !memberInSnapshot(session, memberID) {
		return nil, ErrNotTeamMember
	}

	updated, err := s.Sessions.CastVote(ctx, ownerTeamID, roundID, memberID, choice, now)
	if err != nil {
		if errors.Is(err, storage.ErrConditionFailed) {
			// Lost the guard: the session expired or resolved between our
			// read and the write. Re-read to report the right condition.
			return nil, s.classifyGuardLoss(ctx, ownerTeamID, roundID, now)
		}
		return nil, err
	}

	log.Printf("🗳️ Vote recorded: %s voted %s on round %s (team %s)", memberID, choice, roundID, ownerTeamID)

	if updated.AllMembersVoted() {
		return s.resolve(ctx, updated)
	}
	return updated, nil
}

// ListSessionsForTeam returns a team's sessions. Pending sessions whose
// window has closed are reported as expired; the persisted flip is lazy and
// best-effort, correctness never depends on it.
func (s *VotingService) ListSessionsForTeam(ctx context.Context, teamID string) ([]*models.VotingSession, error) {
	sessions, err := s.Sessions.ListByOwner(ctx, teamID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	for _, session := range sessions {
		if session.Status == models.SessionStatusPending && session.IsExpired(now) {
			s.expireLazily(ctx, session)
			session.Status = models.SessionStatusExpired
		}
		// Approved but never consumed: promotion did not complete, retry it.
		s.retryPromotion(ctx, session)
	}
	return sessions, nil
}

// resolve tallies a fully-voted session and transitions it out of pending.
// The transition is conditional, so when the last two voters race only one
// caller performs it; the loser adopts whatever status won.
func (s *VotingService) resolve(ctx context.Context, session *models.VotingSession) (*models.VotingSession, error) {
	outcome := session.Outcome()

	err := s.Sessions.UpdateStatus(ctx, session.OwnerTeamID, session.RoundID, models.SessionStatusPending, outcome)
	if err != nil {
		if !errors.Is(err, storage.ErrConditionFailed) {
			return nil, fmt.Errorf("failed to resolve voting session: %w", err)
		}
		latest, gerr := s.Sessions.Get(ctx, session.OwnerTeamID, session.RoundID)
		if gerr != nil {
			return nil, gerr
		}
		return latest, nil
	}
	session.Status = outcome

	log.Printf("🗳️ Round %s: team %s resolved %s (%d votes)", session.RoundID, session.OwnerTeamID, outcome, len(session.Votes))

	if outcome == models.SessionStatusApproved && s.Promoter != nil {
		if _, perr := s.Promoter.PromoteIfMutual(ctx, session); perr != nil {
			// The ballot and the resolution are already durable; report the
			// session to the voter and leave the match for the retry path.
			log.Printf("⚠️ Promotion failed for round %s (team %s), will retry: %v", session.RoundID, session.OwnerTeamID, perr)
		}
	}
	return session, nil
}

// retryPromotion re-runs the promoter for an approved session whose match
// creation never completed. PromoteIfMutual is idempotent (the match ID is
// the round ID), so re-running it after a transient storage failure either
// finishes the promotion or confirms it already happened.
func (s *VotingService) retryPromotion(ctx context.Context, session *models.VotingSession) {
	if s.Promoter == nil || session.Consumed || session.Status != models.SessionStatusApproved {
		return
	}
	if _, err := s.Promoter.PromoteIfMutual(ctx, session); err != nil {
		log.Printf("⚠️ Promotion retry failed for round %s (team %s): %v", session.RoundID, session.OwnerTeamID, err)
	}
}

// expireLazily persists the pending -> expired flip the first time an
// operation touches a stale session. A concurrent flip is fine.
func (s *VotingService) expireLazily(ctx context.Context, session *models.VotingSession) {
	err := s.Sessions.UpdateStatus(ctx, session.OwnerTeamID, session.RoundID, models.SessionStatusPending, models.SessionStatusExpired)
	if err != nil && !errors.Is(err, storage.ErrConditionFailed) {
		log.Printf("⚠️ Failed to persist expiry for round %s (team %s): %v", session.RoundID, session.OwnerTeamID, err)
	}
}

func (s *VotingService) classifyGuardLoss(ctx context.Context, ownerTeamID, roundID string, now time.Time) error {
	latest, err := s.Sessions.Get(ctx, ownerTeamID, roundID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrSessionNotFound
		}
		return err
	}
	if latest.Status == models.SessionStatusExpired || latest.IsExpired(now) {
		return ErrSessionExpired
	}
	return ErrSessionResolved
}

func memberInSnapshot(session *models.VotingSession, memberID string) bool {
	for _, m := range session.TeamMembers {
		if m == memberID {
			return true
		}
	}
	return false
}
