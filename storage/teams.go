package storage

import (
	"context"
	"fmt"

	"teamup_server/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// TeamStorage persists teams.
type TeamStorage interface {
	Create(ctx context.Context, team *models.Team) error
	Get(ctx context.Context, teamID string) (*models.Team, error)
	ListActive(ctx context.Context) ([]*models.Team, error)
	ListByMember(ctx context.Context, userID string) ([]*models.Team, error)
	SetActive(ctx context.Context, teamID string, active bool) error
}

type DynamoTeamStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoTeamStorage) Create(ctx context.Context, team *models.Team) error {
	item, err := attributevalue.MarshalMap(team)
	if err != nil {
		return fmt.Errorf("failed to marshal team: %w", err)
	}
	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &s.TableName,
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(teamId)"),
	})
	if err != nil {
		return translateConditionErr(err)
	}
	return nil
}

func (s *DynamoTeamStorage) Get(ctx context.Context, teamID string) (*models.Team, error) {
	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.TableName,
		Key: map[string]types.AttributeValue{
			"teamId": &types.AttributeValueMemberS{Value: teamID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get team '%s': %w", teamID, err)
	}
	if out.Item == nil {
		return nil, ErrNotFound
	}

	var team models.Team
	if err := attributevalue.UnmarshalMap(out.Item, &team); err != nil {
		return nil, fmt.Errorf("failed to unmarshal team: %w", err)
	}
	return &team, nil
}

func (s *DynamoTeamStorage) ListActive(ctx context.Context) ([]*models.Team, error) {
	out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName:        &s.TableName,
		FilterExpression: aws.String("active = :true"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan teams: %w", err)
	}

	var teams []*models.Team
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &teams); err != nil {
		return nil, fmt.Errorf("failed to unmarshal team list: %w", err)
	}
	return teams, nil
}

func (s *DynamoTeamStorage) ListByMember(ctx context.Context, userID string) ([]*models.Team, error) {
	out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName:        &s.TableName,
		FilterExpression: aws.String("contains(memberIds, :userId)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":userId": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan teams for member '%s': %w", userID, err)
	}

	var teams []*models.Team
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &teams); err != nil {
		return nil, fmt.Errorf("failed to unmarshal team list: %w", err)
	}
	return teams, nil
}

func (s *DynamoTeamStorage) SetActive(ctx context.Context, teamID string, active bool) error {
	_, err := s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: &s.TableName,
		Key: map[string]types.AttributeValue{
			"teamId": &types.AttributeValueMemberS{Value: teamID},
		},
		UpdateExpression:    aws.String("SET active = :active"),
		ConditionExpression: aws.String("attribute_exists(teamId)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":active": &types.AttributeValueMemberBOOL{Value: active},
		},
	})
	if err != nil {
		return translateConditionErr(err)
	}
	return nil
}
