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

// MessageStorage persists match chat messages.
type MessageStorage interface {
	Append(ctx context.Context, message *models.MatchMessage) error
	// ListLatest returns the newest limit messages, oldest first.
	ListLatest(ctx context.Context, matchID string, limit int) ([]*models.MatchMessage, error)
	MarkRead(ctx context.Context, matchID, createdAt, userID string) error
}

type DynamoMessageStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoMessageStorage) Append(ctx context.Context, message *models.MatchMessage) error {
	item, err := attributevalue.MarshalMap(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}
	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.TableName,
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to store message: %w", err)
	}
	return nil
}

func (s *DynamoMessageStorage) ListLatest(ctx context.Context, matchID string, limit int) ([]*models.MatchMessage, error) {
	out, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              &s.TableName,
		KeyConditionExpression: aws.String("matchId = :matchId"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":matchId": &types.AttributeValueMemberS{Value: matchID},
		},
		Limit:            aws.Int32(int32(limit)),
		ScanIndexForward: aws.Bool(false), // newest first, reversed below
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query messages for match '%s': %w", matchID, err)
	}

	var messages []*models.MatchMessage
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &messages); err != nil {
		return nil, fmt.Errorf("failed to unmarshal message list: %w", err)
	}

	// Oldest first so the latest message lands at the bottom of the chat.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

func (s *DynamoMessageStorage) MarkRead(ctx context.Context, matchID, createdAt, userID string) error {
	_, err := s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: &s.TableName,
		Key: map[string]types.AttributeValue{
			"matchId":   &types.AttributeValueMemberS{Value: matchID},
			"createdAt": &types.AttributeValueMemberS{Value: createdAt},
		},
		UpdateExpression:    aws.String("SET isRead.#userId = :true"),
		ConditionExpression: aws.String("attribute_exists(matchId)"),
		ExpressionAttributeNames: map[string]string{
			"#userId": userID,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		return translateConditionErr(err)
	}
	return nil
}
