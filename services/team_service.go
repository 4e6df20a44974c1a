package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"teamup_server/models"
	"teamup_server/storage"

	"github.com/google/uuid"
)

// TeamService handles team lifecycle: creation, lookup, and disbanding.
type TeamService struct {
	Teams storage.TeamStorage
}

// CreateTeamInput carries everything needed to assemble a team. Members are
// snapshotted into the team document so discovery never joins against user
// profiles.
type CreateTeamInput struct {
	Name          string
	CreatedBy     string
	Members       []models.TeamMember
	LookingFor    string
	AgeMin        int
	AgeMax        int
	MaxDistanceKm float64
}

// CreateTeam validates the input and stores a new active team.
func (s *TeamService) CreateTeam(ctx context.Context, in CreateTeamInput) (*models.Team, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, ErrMissingTeamName
	}
	if len(in.Members) == 0 {
		return nil, ErrEmptyTeam
	}

	memberIDs := make([]string, 0, len(in.Members))
	for _, m := range in.Members {
		memberIDs = append(memberIDs, m.UserID)
	}

	team := &models.Team{
		TeamID:        uuid.New().String(),
		Name:          in.Name,
		MemberIDs:     memberIDs,
		Members:       in.Members,
		CreatedBy:     in.CreatedBy,
		LookingFor:    in.LookingFor,
		AgeMin:        in.AgeMin,
		AgeMax:        in.AgeMax,
		MaxDistanceKm: in.MaxDistanceKm,
		Active:        true,
		CreatedAt:     time.Now(),
	}

	if err := s.Teams.Create(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	log.Printf("✅ Team created: %s (%s) with %d members", team.Name, team.TeamID, len(memberIDs))
	return team, nil
}

// GetTeam fetches a team by ID.
func (s *TeamService) GetTeam(ctx context.Context, teamID string) (*models.Team, error) {
	team, err := s.Teams.Get(ctx, teamID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return team, nil
}

// GetTeamsForUser lists every team the user belongs to.
func (s *TeamService) GetTeamsForUser(ctx context.Context, userID string) ([]*models.Team, error) {
	return s.Teams.ListByMember(ctx, userID)
}

// DisbandTeam deactivates a team. Teams are never hard-deleted; the record
// stays as an audit trail and to keep old sessions resolvable.
func (s *TeamService) DisbandTeam(ctx context.Context, teamID, userID string) error {
	team, err := s.GetTeam(ctx, teamID)
	if err != nil {
		return err
	}
	if !team.HasMember(userID) {
		return ErrNotTeamMember
	}

	if err := s.Teams.SetActive(ctx, teamID, false); err != nil {
		if errors.Is(err, storage.ErrConditionFailed) {
			return ErrTeamNotFound
		}
		return fmt.Errorf("failed to disband team: %w", err)
	}

	log.Printf("👋 Team %s disbanded by %s", teamID, userID)
	return nil
}
