package services_test

import (
	"context"
	"testing"
	"time"

	"teamup_server/models"
	"teamup_server/services"
	testutils "teamup_server/services/testing"

	"github.com/stretchr/testify/require"
)

// fixture wires the full service graph over in-memory storage.
type fixture struct {
	teams     *testutils.MemoryTeamStorage
	interests *testutils.MemoryInterestStorage
	sessions  *testutils.MemorySessionStorage
	matches   *testutils.MemoryMatchStorage

	teamService      *services.TeamService
	discoveryService *services.DiscoveryService
	interestService  *services.InterestService
	votingService    *services.VotingService
	matchService     *services.MatchService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		teams:     testutils.NewMemoryTeamStorage(),
		interests: testutils.NewMemoryInterestStorage(),
		sessions:  testutils.NewMemorySessionStorage(),
		matches:   testutils.NewMemoryMatchStorage(),
	}

	f.teamService = &services.TeamService{Teams: f.teams}
	f.discoveryService = &services.DiscoveryService{Teams: f.teams}
	f.matchService = &services.MatchService{Matches: f.matches, Sessions: f.sessions, Teams: f.teams}
	f.votingService = &services.VotingService{
		Sessions: f.sessions,
		Promoter: f.matchService,
		Window:   24 * time.Hour,
	}
	f.interestService = &services.InterestService{
		Interests: f.interests,
		Sessions:  f.sessions,
		Teams:     f.teams,
		Voting:    f.votingService,
	}
	return f
}

// seedTeam installs an active team with a fixed ID and the given members.
func (f *fixture) seedTeam(t *testing.T, teamID, lookingFor string, memberIDs ...string) *models.Team {
	t.Helper()

	members := make([]models.TeamMember, 0, len(memberIDs))
	for _, id := range memberIDs {
		members = append(members, models.TeamMember{UserID: id, Name: id, Age: 25})
	}
	team := &models.Team{
		TeamID:     teamID,
		Name:       "team " + teamID,
		MemberIDs:  memberIDs,
		Members:    members,
		CreatedBy:  memberIDs[0],
		LookingFor: lookingFor,
		Active:     true,
		CreatedAt:  time.Now(),
	}
	require.NoError(t, f.teams.Create(context.Background(), team))
	return team
}

// openRound records mutual interest between two seeded teams and returns the
// round's pending session owned by teamA.
func (f *fixture) openRound(t *testing.T, teamA, teamB string) *models.VotingSession {
	t.Helper()

	ctx := context.Background()
	require.NoError(t, f.interestService.RecordInterest(ctx, teamA, teamB))
	require.NoError(t, f.interestService.RecordInterest(ctx, teamB, teamA))

	sessions, err := f.sessions.ListByPair(ctx, teamA, teamB)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	return sessions[0]
}
