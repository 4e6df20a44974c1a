package storage

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"teamup_server/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// SessionStorage persists voting sessions. Vote writes and status
// transitions are conditional single-item updates so that concurrent voters
// merge field-wise instead of overwriting each other's ballots.
type SessionStorage interface {
	CreateIfAbsent(ctx context.Context, session *models.VotingSession) error
	Get(ctx context.Context, ownerTeamID, roundID string) (*models.VotingSession, error)
	ListByOwner(ctx context.Context, ownerTeamID string) ([]*models.VotingSession, error)
	ListByPair(ctx context.Context, ownerTeamID, targetTeamID string) ([]*models.VotingSession, error)
	// CastVote merges one member's choice into the vote map, guarded on the
	// session still being pending and inside its voting window. Returns the
	// session as written, or ErrConditionFailed if the guard lost.
	CastVote(ctx context.Context, ownerTeamID, roundID, memberID, choice string, now time.Time) (*models.VotingSession, error)
	// UpdateStatus transitions from -> to, failing with ErrConditionFailed
	// if another writer got there first.
	UpdateStatus(ctx context.Context, ownerTeamID, roundID, from, to string) error
	MarkConsumed(ctx context.Context, ownerTeamID, roundID string) error
}

type DynamoSessionStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoSessionStorage) CreateIfAbsent(ctx context.Context, session *models.VotingSession) error {
	item, err := attributevalue.MarshalMap(session)
	if err != nil {
		return fmt.Errorf("failed to marshal voting session: %w", err)
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

func (s *DynamoSessionStorage) Get(ctx context.Context, ownerTeamID, roundID string) (*models.VotingSession, error) {
	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.TableName,
		Key:       sessionKey(ownerTeamID, roundID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get voting session: %w", err)
	}
	if out.Item == nil {
		return nil, ErrNotFound
	}

	var session models.VotingSession
	if err := attributevalue.UnmarshalMap(out.Item, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal voting session: %w", err)
	}
	return &session, nil
}

func (s *DynamoSessionStorage) ListByOwner(ctx context.Context, ownerTeamID string) ([]*models.VotingSession, error) {
	out, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              &s.TableName,
		KeyConditionExpression: aws.String("PK = :pk AND begins_with(SK, :prefix)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk":     &types.AttributeValueMemberS{Value: "TEAM#" + ownerTeamID},
			":prefix": &types.AttributeValueMemberS{Value: "SESSION#"},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions for team '%s': %w", ownerTeamID, err)
	}

	var sessions []*models.VotingSession
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &sessions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session list: %w", err)
	}
	return sessions, nil
}

func (s *DynamoSessionStorage) ListByPair(ctx context.Context, ownerTeamID, targetTeamID string) ([]*models.VotingSession, error) {
	out, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              &s.TableName,
		KeyConditionExpression: aws.String("PK = :pk AND begins_with(SK, :prefix)"),
		FilterExpression:       aws.String("targetTeamId = :target"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk":     &types.AttributeValueMemberS{Value: "TEAM#" + ownerTeamID},
			":prefix": &types.AttributeValueMemberS{Value: "SESSION#"},
			":target": &types.AttributeValueMemberS{Value: targetTeamID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions for pair %s -> %s: %w", ownerTeamID, targetTeamID, err)
	}

	var sessions []*models.VotingSession
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &sessions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session list: %w", err)
	}
	return sessions, nil
}

func (s *DynamoSessionStorage) CastVote(ctx context.Context, ownerTeamID, roundID, memberID, choice string, now time.Time) (*models.VotingSession, error) {
	out, err := s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           &s.TableName,
		Key:                 sessionKey(ownerTeamID, roundID),
		UpdateExpression:    aws.String("SET votes.#member = :choice"),
		ConditionExpression: aws.String("#status = :pending AND expiresAt > :now"),
		ExpressionAttributeNames: map[string]string{
			"#member": memberID,
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":choice":  &types.AttributeValueMemberS{Value: choice},
			":pending": &types.AttributeValueMemberS{Value: models.SessionStatusPending},
			":now":     &types.AttributeValueMemberN{Value: strconv.FormatInt(now.Unix(), 10)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return nil, translateConditionErr(err)
	}

	var session models.VotingSession
	if err := attributevalue.UnmarshalMap(out.Attributes, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal voting session: %w", err)
	}
	return &session, nil
}

func (s *DynamoSessionStorage) UpdateStatus(ctx context.Context, ownerTeamID, roundID, from, to string) error {
	_, err := s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           &s.TableName,
		Key:                 sessionKey(ownerTeamID, roundID),
		UpdateExpression:    aws.String("SET #status = :to"),
		ConditionExpression: aws.String("#status = :from"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: from},
			":to":   &types.AttributeValueMemberS{Value: to},
		},
	})
	if err != nil {
		return translateConditionErr(err)
	}
	return nil
}

func (s *DynamoSessionStorage) MarkConsumed(ctx context.Context, ownerTeamID, roundID string) error {
	_, err := s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           &s.TableName,
		Key:                 sessionKey(ownerTeamID, roundID),
		UpdateExpression:    aws.String("SET consumed = :true"),
		ConditionExpression: aws.String("attribute_exists(PK)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		return translateConditionErr(err)
	}
	return nil
}

func sessionKey(ownerTeamID, roundID string) map[string]types.AttributeValue {
	pk, sk := models.SessionKeys(ownerTeamID, roundID)
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: pk},
		"SK": &types.AttributeValueMemberS{Value: sk},
	}
}
