package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"teamup_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedApprovedPair(t *testing.T, f *fixture, roundID string) (a, b *models.VotingSession) {
	t.Helper()

	f.seedTeam(t, "team-a", "2-3", "a1", "a2")
	f.seedTeam(t, "team-b", "2-3", "b1", "b2")

	mk := func(owner, target string) *models.VotingSession {
		pk, sk := models.SessionKeys(owner, roundID)
		return &models.VotingSession{
			PK:           pk,
			SK:           sk,
			OwnerTeamID:  owner,
			TargetTeamID: target,
			RoundID:      roundID,
			TeamMembers:  []string{owner + "-m1", owner + "-m2"},
			Votes:        map[string]string{owner + "-m1": models.VoteYes, owner + "-m2": models.VoteYes},
			Status:       models.SessionStatusApproved,
			CreatedAt:    time.Now(),
			ExpiresAt:    time.Now().Add(24 * time.Hour),
		}
	}
	a, b = mk("team-a", "team-b"), mk("team-b", "team-a")
	f.sessions.Seed(a)
	f.sessions.Seed(b)
	return a, b
}

func TestPromoteCreatesSingleMatchUnderConcurrency(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sessionA, sessionB := seedApprovedPair(t, f, "round-1")

	// Both sides' last voters finish at the same instant: each evaluates the
	// counterpart, sees approved, and races to create the match.
	var wg sync.WaitGroup
	for _, session := range []*models.VotingSession{sessionA, sessionB} {
		wg.Add(1)
		go func(s *models.VotingSession) {
			defer wg.Done()
			_, err := f.matchService.PromoteIfMutual(ctx, s)
			assert.NoError(t, err)
		}(session)
	}
	wg.Wait()

	matches := f.matches.All()
	require.Len(t, matches, 1, "exactly one match per session pair per round")
	match := matches[0]
	assert.Equal(t, "round-1", match.MatchID)
	assert.Equal(t, "team-a", match.TeamAID)
	assert.Equal(t, "team-b", match.TeamBID)
	assert.ElementsMatch(t, []string{"team-a-m1", "team-a-m2", "team-b-m1", "team-b-m2"}, match.AllMembers)

	for _, owner := range []string{"team-a", "team-b"} {
		stored, err := f.sessions.Get(ctx, owner, "round-1")
		require.NoError(t, err)
		assert.True(t, stored.Consumed, "promoted sessions are marked consumed")
	}

	// A match consumes both teams.
	for _, teamID := range []string{"team-a", "team-b"} {
		team, err := f.teams.Get(ctx, teamID)
		require.NoError(t, err)
		assert.False(t, team.Active)
	}
}

func TestPromoteIsIdempotentOnRerun(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sessionA, _ := seedApprovedPair(t, f, "round-2")

	_, err := f.matchService.PromoteIfMutual(ctx, sessionA)
	require.NoError(t, err)
	_, err = f.matchService.PromoteIfMutual(ctx, sessionA)
	require.NoError(t, err)

	assert.Len(t, f.matches.All(), 1)
}

func TestPromoteWaitsForPendingCounterpart(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sessionA, sessionB := seedApprovedPair(t, f, "round-3")
	sessionB.Status = models.SessionStatusPending
	f.sessions.Seed(sessionB)

	match, err := f.matchService.PromoteIfMutual(ctx, sessionA)
	require.NoError(t, err)
	assert.Nil(t, match)
	assert.Empty(t, f.matches.All(), "no match while the counterpart is still voting")
}

func TestRejectionKillsTheRound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sessionA, sessionB := seedApprovedPair(t, f, "round-4")
	sessionB.Status = models.SessionStatusRejected
	f.sessions.Seed(sessionB)

	match, err := f.matchService.PromoteIfMutual(ctx, sessionA)
	require.NoError(t, err)
	assert.Nil(t, match)

	// Re-checking later never resurrects the round.
	match, err = f.matchService.PromoteIfMutual(ctx, sessionA)
	require.NoError(t, err)
	assert.Nil(t, match)
	assert.Empty(t, f.matches.All())
}

func TestFullFlowVotesToMatch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedTeam(t, "team-a", "2-3", "a1", "a2")
	f.seedTeam(t, "team-b", "2-3", "b1")
	session := f.openRound(t, "team-a", "team-b")

	for _, vote := range []struct{ team, member string }{
		{"team-a", "a1"},
		{"team-a", "a2"},
		{"team-b", "b1"},
	} {
		_, err := f.votingService.CastVote(ctx, vote.team, session.RoundID, vote.member, models.VoteYes)
		require.NoError(t, err)
	}

	matches := f.matches.All()
	require.Len(t, matches, 1, "both sides approved: the last vote promotes the match")
	assert.ElementsMatch(t, []string{"a1", "a2", "b1"}, matches[0].AllMembers)

	forTeam, err := f.matchService.GetMatchesForTeam(ctx, "team-a")
	require.NoError(t, err)
	require.Len(t, forTeam, 1)
	assert.Equal(t, matches[0].MatchID, forTeam[0].MatchID)
}

func TestOneSidedRejectionProducesNoMatch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedTeam(t, "team-a", "2-3", "a1")
	f.seedTeam(t, "team-b", "2-3", "b1")
	session := f.openRound(t, "team-a", "team-b")

	_, err := f.votingService.CastVote(ctx, "team-a", session.RoundID, "a1", models.VoteYes)
	require.NoError(t, err)
	_, err = f.votingService.CastVote(ctx, "team-b", session.RoundID, "b1", models.VoteNo)
	require.NoError(t, err)

	assert.Empty(t, f.matches.All())
}
