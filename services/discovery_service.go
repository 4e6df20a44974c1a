package services

import (
	"context"
	"errors"
	"log"
	"math/rand"

	"teamup_server/models"
	"teamup_server/storage"
	"teamup_server/utils"
)

// DiscoveryService produces the candidate feed for the swipe deck: active
// teams compatible with the requester's size, age, and distance preferences.
type DiscoveryService struct {
	Teams storage.TeamStorage
}

// GetCandidateTeams returns the discoverable teams for the requesting team,
// in randomized order. A missing or inactive requester yields an empty feed,
// not an error.
func (s *DiscoveryService) GetCandidateTeams(ctx context.Context, teamID string) ([]*models.Team, error) {
	requester, err := s.Teams.Get(ctx, teamID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return []*models.Team{}, nil
		}
		return nil, err
	}
	if !requester.Active {
		return []*models.Team{}, nil
	}

	teams, err := s.Teams.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	candidates := make([]*models.Team, 0, len(teams))
	for _, candidate := range teams {
		if candidate.TeamID == requester.TeamID {
			continue
		}
		if !teamsCompatible(requester, candidate) {
			continue
		}
		candidates = append(candidates, candidate)
	}

	// The feed is intentionally unranked; shuffle so repeated calls don't
	// surface the same teams first.
	rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	log.Printf("🔍 Discovery for team %s: %d candidates out of %d active teams", teamID, len(candidates), len(teams))
	return candidates, nil
}

// teamsCompatible applies the requester's filters against one candidate:
// mutual size-range overlap, every candidate member inside the requester's
// age range, and pairwise distance when both members carry coordinates.
func teamsCompatible(requester, candidate *models.Team) bool {
	requesterSizes := utils.LookingForSizes(requester.LookingFor)
	candidateSizes := utils.LookingForSizes(candidate.LookingFor)
	if !utils.SizesOverlap(requesterSizes, candidateSizes) {
		return false
	}

	for _, member := range candidate.Members {
		if requester.AgeMin > 0 && member.Age < requester.AgeMin {
			return false
		}
		if requester.AgeMax > 0 && member.Age > requester.AgeMax {
			return false
		}
	}

	if requester.MaxDistanceKm > 0 && !withinDistance(requester, candidate) {
		return false
	}

	return true
}

func withinDistance(requester, candidate *models.Team) bool {
	for _, a := range requester.Members {
		if a.Lat == nil || a.Lon == nil {
			continue
		}
		for _, b := range candidate.Members {
			if b.Lat == nil || b.Lon == nil {
				continue
			}
			if utils.HaversineKm(*a.Lat, *a.Lon, *b.Lat, *b.Lon) > requester.MaxDistanceKm {
				return false
			}
		}
	}
	// No located member on either side: distance cannot be checked, let the
	// candidate through.
	return true
}
