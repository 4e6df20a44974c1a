package storage

import (
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ErrNotFound is returned when a requested item does not exist in storage.
var ErrNotFound = errors.New("item not found in storage")

// ErrConditionFailed is returned when a conditional write loses to a
// concurrent writer (item already exists, or the guarded field changed).
var ErrConditionFailed = errors.New("conditional check failed")

// translateConditionErr maps the DynamoDB conditional-check failure onto the
// storage sentinel so callers never match on AWS error strings.
func translateConditionErr(err error) error {
	if err == nil {
		return nil
	}
	var ccf *types.ConditionalCheckFailedException
	if errors.As(err, &ccf) {
		return ErrConditionFailed
	}
	return err
}
