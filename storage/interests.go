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

// InterestStorage persists the interest ledger.
type InterestStorage interface {
	// CreateIfAbsent writes the edge only if it does not already exist,
	// returning ErrConditionFailed otherwise.
	CreateIfAbsent(ctx context.Context, interest *models.Interest) error
	// Put overwrites the edge unconditionally (used to refresh a pair for a
	// new round after the previous one died).
	Put(ctx context.Context, interest *models.Interest) error
	Get(ctx context.Context, fromTeamID, toTeamID string) (*models.Interest, error)
}

type DynamoInterestStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoInterestStorage) CreateIfAbsent(ctx context.Context, interest *models.Interest) error {
	item, err := attributevalue.MarshalMap(interest)
	if err != nil {
		return fmt.Errorf("failed to marshal interest: %w", err)
	}
	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &s.TableName,
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(PK) AND attribute_not_exists(SK)"),
	})
	if err != nil {
		return translateConditionErr(err)
	}
	return nil
}

func (s *DynamoInterestStorage) Put(ctx context.Context, interest *models.Interest) error {
	item, err := attributevalue.MarshalMap(interest)
	if err != nil {
		return fmt.Errorf("failed to marshal interest: %w", err)
	}
	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.TableName,
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to put interest: %w", err)
	}
	return nil
}

func (s *DynamoInterestStorage) Get(ctx context.Context, fromTeamID, toTeamID string) (*models.Interest, error) {
	pk, sk := models.InterestKeys(fromTeamID, toTeamID)
	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.TableName,
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: pk},
			"SK": &types.AttributeValueMemberS{Value: sk},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get interest %s -> %s: %w", fromTeamID, toTeamID, err)
	}
	if out.Item == nil {
		return nil, ErrNotFound
	}

	var interest models.Interest
	if err := attributevalue.UnmarshalMap(out.Item, &interest); err != nil {
		return nil, fmt.Errorf("failed to unmarshal interest: %w", err)
	}
	return &interest, nil
}
