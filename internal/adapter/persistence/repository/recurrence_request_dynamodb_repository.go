package repository

import (
	"context"
	"errors"
	"time"

	"fieldpilot/internal/domain/entities"
	"fieldpilot/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRecurrenceRequestsTableName = "recurrence_requests"
	engagementIndexName                = "engagement_id-index"
)

type recurrenceRequestItem struct {
	ID               string `dynamodbav:"id"`
	EngagementID     string `dynamodbav:"engagement_id"`
	OwnerID          string `dynamodbav:"owner_id"`
	FrequencyDays    int    `dynamodbav:"frequency_days"`
	RequestedWeekday *int   `dynamodbav:"requested_weekday,omitempty"`
	Status           string `dynamodbav:"status"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// RecurrenceRequestDynamoRepository persists RecurrenceRequest entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI engagement_id-index: engagement_id

type RecurrenceRequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRecurrenceRequestRepository = (*RecurrenceRequestDynamoRepository)(nil)

func NewRecurrenceRequestDynamoRepository(ddb *dynamodb.Client) *RecurrenceRequestDynamoRepository {
	return &RecurrenceRequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RECURRENCE_REQUESTS_TABLE", defaultRecurrenceRequestsTableName),
	}
}

func (r *RecurrenceRequestDynamoRepository) Create(ctx context.Context, req entities.RecurrenceRequest) (entities.RecurrenceRequest, error) {
	av, err := attributevalue.MarshalMap(toRecurrenceRequestItem(req))
	if err != nil {
		return entities.RecurrenceRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.RecurrenceRequest{}, err
	}
	return req, nil
}

func (r *RecurrenceRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.RecurrenceRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RecurrenceRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.RecurrenceRequest{}, nil
	}

	var it recurrenceRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RecurrenceRequest{}, err
	}
	return fromRecurrenceRequestItem(it), nil
}

func (r *RecurrenceRequestDynamoRepository) ListByEngagement(ctx context.Context, engagementID string) ([]entities.RecurrenceRequest, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(engagementIndexName),
		KeyConditionExpression: aws.String("#eng = :eng"),
		ExpressionAttributeNames: map[string]string{
			"#eng": "engagement_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":eng": &types.AttributeValueMemberS{Value: engagementID},
		},
	})
	if err != nil {
		return nil, err
	}

	var items []recurrenceRequestItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}
	reqs := make([]entities.RecurrenceRequest, 0, len(items))
	for _, it := range items {
		reqs = append(reqs, fromRecurrenceRequestItem(it))
	}
	return reqs, nil
}

func (r *RecurrenceRequestDynamoRepository) UpdateStatus(ctx context.Context, id string, expected, next entities.RecurrenceRequestStatus) (entities.RecurrenceRequest, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :expected"),
		UpdateExpression:    aws.String("SET #status = :next, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected":   &types.AttributeValueMemberS{Value: string(expected)},
			":next":       &types.AttributeValueMemberS{Value: string(next)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.RecurrenceRequest{}, nil
		}
		return entities.RecurrenceRequest{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.RecurrenceRequest{}, nil
	}

	var it recurrenceRequestItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.RecurrenceRequest{}, err
	}
	return fromRecurrenceRequestItem(it), nil
}

func toRecurrenceRequestItem(req entities.RecurrenceRequest) recurrenceRequestItem {
	return recurrenceRequestItem{
		ID:               req.ID,
		EngagementID:     req.EngagementID,
		OwnerID:          req.OwnerID,
		FrequencyDays:    req.FrequencyDays,
		RequestedWeekday: req.RequestedWeekday,
		Status:           string(req.Status),
		CreatedAt:        req.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        req.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromRecurrenceRequestItem(it recurrenceRequestItem) entities.RecurrenceRequest {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.RecurrenceRequest{
		ID:               it.ID,
		EngagementID:     it.EngagementID,
		OwnerID:          it.OwnerID,
		FrequencyDays:    it.FrequencyDays,
		RequestedWeekday: it.RequestedWeekday,
		Status:           entities.RecurrenceRequestStatus(it.Status),
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
}
