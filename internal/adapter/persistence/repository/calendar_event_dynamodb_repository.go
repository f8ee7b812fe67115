package repository

import (
	"context"
	"time"

	"fieldpilot/internal/domain/entities"
	"fieldpilot/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCalendarEventsTableName = "calendar_events"

type calendarEventItem struct {
	ID           string `dynamodbav:"id"`
	Title        string `dynamodbav:"title"`
	Start        string `dynamodbav:"start"`
	End          string `dynamodbav:"end"`
	Type         string `dynamodbav:"type"`
	EngagementID string `dynamodbav:"engagement_id,omitempty"`
	OwnerID      string `dynamodbav:"owner_id,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// CalendarEventDynamoRepository persists CalendarEvent entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Job events are written through the engagement repository's creation
// transaction; this repository only adds the standalone blocked/personal
// blocks and serves the read side.

type CalendarEventDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICalendarEventRepository = (*CalendarEventDynamoRepository)(nil)

func NewCalendarEventDynamoRepository(ddb *dynamodb.Client) *CalendarEventDynamoRepository {
	return &CalendarEventDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CALENDAR_EVENTS_TABLE", defaultCalendarEventsTableName),
	}
}

func (r *CalendarEventDynamoRepository) Create(ctx context.Context, ev entities.CalendarEvent) (entities.CalendarEvent, error) {
	av, err := attributevalue.MarshalMap(toCalendarEventItem(ev))
	if err != nil {
		return entities.CalendarEvent{}, err
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
		return entities.CalendarEvent{}, err
	}
	return ev, nil
}

func (r *CalendarEventDynamoRepository) ListAll(ctx context.Context) ([]entities.CalendarEvent, error) {
	return r.scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
}

// ListForOwner returns the owner's events plus the ownerless blocked
// blocks, which apply to everyone's availability.
func (r *CalendarEventDynamoRepository) ListForOwner(ctx context.Context, ownerID string) ([]entities.CalendarEvent, error) {
	return r.scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#owner = :owner OR #type = :blocked"),
		ExpressionAttributeNames: map[string]string{
			"#owner": "owner_id",
			"#type":  "type",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner":   &types.AttributeValueMemberS{Value: ownerID},
			":blocked": &types.AttributeValueMemberS{Value: string(entities.CalendarEventTypeBlocked)},
		},
	})
}

func (r *CalendarEventDynamoRepository) scan(ctx context.Context, input *dynamodb.ScanInput) ([]entities.CalendarEvent, error) {
	var out []entities.CalendarEvent
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []calendarEventItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromCalendarEventItem(it))
		}
	}
	return out, nil
}

func toCalendarEventItem(ev entities.CalendarEvent) calendarEventItem {
	return calendarEventItem{
		ID:           ev.ID,
		Title:        ev.Title,
		Start:        ev.Start.UTC().Format(time.RFC3339Nano),
		End:          ev.End.UTC().Format(time.RFC3339Nano),
		Type:         string(ev.Type),
		EngagementID: ev.EngagementID,
		OwnerID:      ev.OwnerID,
		CreatedAt:    ev.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromCalendarEventItem(it calendarEventItem) entities.CalendarEvent {
	start, _ := time.Parse(time.RFC3339Nano, it.Start)
	end, _ := time.Parse(time.RFC3339Nano, it.End)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.CalendarEvent{
		ID:           it.ID,
		Title:        it.Title,
		Start:        start,
		End:          end,
		Type:         entities.CalendarEventType(it.Type),
		EngagementID: it.EngagementID,
		OwnerID:      it.OwnerID,
		CreatedAt:    createdAt,
	}
}
