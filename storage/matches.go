package storage

import (
	"context"
	"fmt"
	"time"

	"teamup_server/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// MatchStorage persists matches. Creation is create-if-absent keyed by the
// round-derived match ID, which is what keeps a racing session pair down to
// a single match.
type MatchStorage interface {
	CreateIfAbsent(ctx context.Context, match *models.Match) error
	Get(ctx context.Context, matchID string) (*models.Match, error)
	ListByTeam(ctx context.Context, teamID string) ([]*models.Match, error)
	TouchActivity(ctx context.Context, matchID string, at time.Time) error
}

type DynamoMatchStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoMatchStorage) CreateIfAbsent(ctx context.Context, match *models.Match) error {
	item, err := attributevalue.MarshalMap(match)
	if err != nil {
		return fmt.Errorf("failed to marshal match: %w", err)
	}
	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &s.TableName,
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(matchId)"),
	})
	if err != nil {
		return translateConditionErr(err)
	}
	return nil
}

func (s *DynamoMatchStorage) Get(ctx context.Context, matchID string) (*models.Match, error) {
	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.TableName,
		Key: map[string]types.AttributeValue{
			"matchId": &types.AttributeValueMemberS{Value: matchID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get match '%s': %w", matchID, err)
	}
	if out.Item == nil {
		return nil, ErrNotFound
	}

	var match models.Match
	if err := attributevalue.UnmarshalMap(out.Item, &match); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}
	return &match, nil
}

func (s *DynamoMatchStorage) ListByTeam(ctx context.Context, teamID string) ([]*models.Match, error) {
	out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName:        &s.TableName,
		FilterExpression: aws.String("teamAId = :team OR teamBId = :team"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":team": &types.AttributeValueMemberS{Value: teamID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan matches for team '%s': %w", teamID, err)
	}

	var matches []*models.Match
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &matches); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match list: %w", err)
	}
	return matches, nil
}

func (s *DynamoMatchStorage) TouchActivity(ctx context.Context, matchID string, at time.Time) error {
	atAttr, err := attributevalue.Marshal(at)
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}
	_, err = s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: &s.TableName,
		Key: map[string]types.AttributeValue{
			"matchId": &types.AttributeValueMemberS{Value: matchID},
		},
		UpdateExpression:    aws.String("SET lastActivity = :at"),
		ConditionExpression: aws.String("attribute_exists(matchId)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":at": atAttr,
		},
	})
	if err != nil {
		return translateConditionErr(err)
	}
	return nil
}
