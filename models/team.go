package models

import "time"

// TeamMember is a snapshot of a user's profile data taken when the team is
// assembled, so the discovery filters do not need a join against UserProfiles.
type TeamMember struct {
	UserID string   `dynamodbav:"userId" json:"userId"`
	Name   string   `dynamodbav:"name" json:"name"`
	Age    int      `dynamodbav:"age" json:"age"`
	Lat    *float64 `dynamodbav:"lat,omitempty" json:"lat,omitempty"`
	Lon    *float64 `dynamodbav:"lon,omitempty" json:"lon,omitempty"`
}

// Team represents one friend group acting as a single matching unit.
type Team struct {
	TeamID        string       `dynamodbav:"teamId" json:"teamId"`
	Name          string       `dynamodbav:"name" json:"name"`
	MemberIDs     []string     `dynamodbav:"memberIds" json:"memberIds"`
	Members       []TeamMember `dynamodbav:"members" json:"members"`
	CreatedBy     string       `dynamodbav:"createdBy" json:"createdBy"`
	LookingFor    string       `dynamodbav:"lookingFor" json:"lookingFor"` // size-range token, e.g. "2-3", "5+"
	AgeMin        int          `dynamodbav:"ageMin" json:"ageMin"`
	AgeMax        int          `dynamodbav:"ageMax" json:"ageMax"`
	MaxDistanceKm float64      `dynamodbav:"maxDistanceKm" json:"maxDistanceKm"` // 0 = no distance filter
	Active        bool         `dynamodbav:"active" json:"active"`
	CreatedAt     time.Time    `dynamodbav:"createdAt" json:"createdAt"`
}

// HasMember reports whether userID currently belongs to the team.
func (t *Team) HasMember(userID string) bool {
	for _, id := range t.MemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// TeamsTable is the DynamoDB table name for teams
const TeamsTable = "Teams"
