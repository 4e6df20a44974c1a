package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"teamup_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidateIDs(teams []*models.Team) []string {
	ids := make([]string, 0, len(teams))
	for _, team := range teams {
		ids = append(ids, team.TeamID)
	}
	return ids
}

// seedCustomTeam installs an active team built by the caller, for tests that
// need age or location fields the plain seedTeam helper does not set.
func seedCustomTeam(t *testing.T, f *fixture, team *models.Team) {
	t.Helper()
	if team.CreatedAt.IsZero() {
		team.CreatedAt = time.Now()
	}
	team.Active = true
	require.NoError(t, f.teams.Create(context.Background(), team))
}

func teamWithAges(teamID, lookingFor string, ages ...int) *models.Team {
	members := make([]models.TeamMember, 0, len(ages))
	ids := make([]string, 0, len(ages))
	for i, age := range ages {
		id := fmt.Sprintf("%s-m%d", teamID, i+1)
		members = append(members, models.TeamMember{UserID: id, Name: id, Age: age})
		ids = append(ids, id)
	}
	return &models.Team{
		TeamID:     teamID,
		Name:       teamID,
		MemberIDs:  ids,
		Members:    members,
		CreatedBy:  ids[0],
		LookingFor: lookingFor,
	}
}

func TestDiscoveryEmptyForUnknownOrInactiveRequester(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	teams, err := f.discoveryService.GetCandidateTeams(ctx, "ghost-team")
	require.NoError(t, err, "an empty feed is not an error")
	assert.Empty(t, teams)

	f.seedTeam(t, "team-a", "2-3", "a1")
	require.NoError(t, f.teams.SetActive(ctx, "team-a", false))
	teams, err = f.discoveryService.GetCandidateTeams(ctx, "team-a")
	require.NoError(t, err)
	assert.Empty(t, teams)
}

func TestDiscoveryExcludesSelfAndInactiveTeams(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedTeam(t, "team-a", "2-3", "a1", "a2")
	f.seedTeam(t, "team-b", "2-3", "b1", "b2")
	f.seedTeam(t, "team-c", "2-3", "c1", "c2")
	require.NoError(t, f.teams.SetActive(ctx, "team-c", false))

	teams, err := f.discoveryService.GetCandidateTeams(ctx, "team-a")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"team-b"}, candidateIDs(teams))
}

func TestDiscoverySizeCompatibilityBoundaries(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// "5+" resolves to {5..8} and "2-3" to {2,3}: no overlap in either
	// direction, so neither team may see the other.
	f.seedTeam(t, "team-big", "5+", "g1", "g2")
	f.seedTeam(t, "team-small", "2-3", "s1", "s2")

	teams, err := f.discoveryService.GetCandidateTeams(ctx, "team-big")
	require.NoError(t, err)
	assert.NotContains(t, candidateIDs(teams), "team-small")

	teams, err = f.discoveryService.GetCandidateTeams(ctx, "team-small")
	require.NoError(t, err)
	assert.NotContains(t, candidateIDs(teams), "team-big")

	// "3-4" and "4-5" share size 4 and must be mutually discoverable.
	f.seedTeam(t, "team-mid", "3-4", "m1", "m2")
	f.seedTeam(t, "team-upper", "4-5", "u1", "u2")

	teams, err = f.discoveryService.GetCandidateTeams(ctx, "team-mid")
	require.NoError(t, err)
	assert.Contains(t, candidateIDs(teams), "team-upper")

	teams, err = f.discoveryService.GetCandidateTeams(ctx, "team-upper")
	require.NoError(t, err)
	assert.Contains(t, candidateIDs(teams), "team-mid")
}

func TestDiscoveryAgeFilter(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	requester := teamWithAges("team-a", "2-3", 25, 27)
	requester.AgeMin = 21
	requester.AgeMax = 30
	seedCustomTeam(t, f, requester)

	seedCustomTeam(t, f, teamWithAges("team-young", "2-3", 19, 22))
	seedCustomTeam(t, f, teamWithAges("team-ok", "2-3", 22, 29))
	seedCustomTeam(t, f, teamWithAges("team-old", "2-3", 28, 34))

	teams, err := f.discoveryService.GetCandidateTeams(ctx, "team-a")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"team-ok"}, candidateIDs(teams),
		"every candidate member must fall inside the requester's age range")
}

func TestDiscoveryDistanceFilter(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	coord := func(lat, lon float64) (*float64, *float64) { return &lat, &lon }

	requester := teamWithAges("team-a", "2-3", 25)
	requester.MaxDistanceKm = 50
	requester.Members[0].Lat, requester.Members[0].Lon = coord(40.7128, -74.0060) // NYC
	seedCustomTeam(t, f, requester)

	near := teamWithAges("team-near", "2-3", 25)
	near.Members[0].Lat, near.Members[0].Lon = coord(40.7357, -74.1724) // Newark
	seedCustomTeam(t, f, near)

	far := teamWithAges("team-far", "2-3", 25)
	far.Members[0].Lat, far.Members[0].Lon = coord(42.3601, -71.0589) // Boston
	seedCustomTeam(t, f, far)

	// No coordinates at all: distance cannot be evaluated, team passes.
	unlocated := teamWithAges("team-unlocated", "2-3", 25)
	seedCustomTeam(t, f, unlocated)

	teams, err := f.discoveryService.GetCandidateTeams(ctx, "team-a")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"team-near", "team-unlocated"}, candidateIDs(teams))
}
