package services_test

import (
	"context"
	"testing"

	"teamup_server/models"
	"teamup_server/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTeamValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.teamService.CreateTeam(ctx, services.CreateTeamInput{
		Name:    "  ",
		Members: []models.TeamMember{{UserID: "u1"}},
	})
	assert.ErrorIs(t, err, services.ErrMissingTeamName)

	_, err = f.teamService.CreateTeam(ctx, services.CreateTeamInput{
		Name: "Brunch Crew",
	})
	assert.ErrorIs(t, err, services.ErrEmptyTeam)
}

func TestCreateTeamSnapshotsMembers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	team, err := f.teamService.CreateTeam(ctx, services.CreateTeamInput{
		Name:      "Brunch Crew",
		CreatedBy: "u1",
		Members: []models.TeamMember{
			{UserID: "u1", Name: "Uma", Age: 27},
			{UserID: "u2", Name: "Vik", Age: 29},
		},
		LookingFor: "2-3",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, team.TeamID)
	assert.True(t, team.Active)
	assert.Equal(t, []string{"u1", "u2"}, team.MemberIDs)

	stored, err := f.teamService.GetTeam(ctx, team.TeamID)
	require.NoError(t, err)
	assert.Equal(t, "Brunch Crew", stored.Name)
	assert.Len(t, stored.Members, 2)
}

func TestGetTeamNotFound(t *testing.T) {
	f := newFixture(t)
	_, err := f.teamService.GetTeam(context.Background(), "nope")
	assert.ErrorIs(t, err, services.ErrTeamNotFound)
}

func TestGetTeamsForUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedTeam(t, "team-a", "2-3", "u1", "u2")
	f.seedTeam(t, "team-b", "2-3", "u1", "u3")
	f.seedTeam(t, "team-c", "2-3", "u4")

	teams, err := f.teamService.GetTeamsForUser(ctx, "u1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"team-a", "team-b"}, candidateIDs(teams))

	teams, err = f.teamService.GetTeamsForUser(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, teams)
}

func TestDisbandTeam(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedTeam(t, "team-a", "2-3", "u1", "u2")

	err := f.teamService.DisbandTeam(ctx, "team-a", "outsider")
	assert.ErrorIs(t, err, services.ErrNotTeamMember)

	require.NoError(t, f.teamService.DisbandTeam(ctx, "team-a", "u2"))

	team, err := f.teamService.GetTeam(ctx, "team-a")
	require.NoError(t, err, "disbanded teams remain readable")
	assert.False(t, team.Active)
}
