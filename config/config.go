package config

import "github.com/kelseyhightower/envconfig"

// Config holds application configuration loaded from environment variables.
type Config struct {
	Port              string `envconfig:"PORT" default:"8080"`
	AWSRegion         string `envconfig:"AWS_REGION" default:"us-east-1"`
	S3Bucket          string `envconfig:"S3_BUCKET_NAME" default:""`
	VotingWindowHours int    `envconfig:"VOTING_WINDOW_HOURS" default:"24"`

	TeamsTable         string `envconfig:"TEAMS_TABLE" default:"Teams"`
	InterestsTable     string `envconfig:"INTERESTS_TABLE" default:"Interests"`
	SessionsTable      string `envconfig:"VOTING_SESSIONS_TABLE" default:"VotingSessions"`
	MatchesTable       string `envconfig:"MATCHES_TABLE" default:"Matches"`
	MatchMessagesTable string `envconfig:"MATCH_MESSAGES_TABLE" default:"MatchMessages"`
}

// Load reads configuration from environment variables into a Config struct.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
