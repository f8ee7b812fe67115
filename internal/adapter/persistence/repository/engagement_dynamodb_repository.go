package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"fieldpilot/internal/domain/entities"
	"fieldpilot/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEngagementsTableName = "engagements"
	ownerIndexName              = "owner_id-index"
	quoteRefIndexName           = "external_quote_ref-index"
	invoiceRefIndexName         = "external_invoice_ref-index"
)

type lineItemRecord struct {
	Description     string `dynamodbav:"description"`
	Quantity        int64  `dynamodbav:"quantity"`
	UnitAmountCents int64  `dynamodbav:"unit_amount_cents"`
}

// Line items live embedded in the engagement item: they are owned
// exclusively by it, die with it, and the derived total stays readable in
// one consistent fetch. The external refs use omitempty so the sparse GSIs
// only index engagements that actually carry a reference.
type engagementItem struct {
	ID                 string           `dynamodbav:"id"`
	OwnerID            string           `dynamodbav:"owner_id"`
	Title              string           `dynamodbav:"title"`
	Description        string           `dynamodbav:"description"`
	Status             string           `dynamodbav:"status"`
	Recurrence         string           `dynamodbav:"recurrence_pattern"`
	LineItems          []lineItemRecord `dynamodbav:"line_items"`
	TotalAmountCents   int64            `dynamodbav:"total_amount_cents"`
	Due                string           `dynamodbav:"due,omitempty"`
	ExternalQuoteRef   string           `dynamodbav:"external_quote_ref,omitempty"`
	ExternalInvoiceRef string           `dynamodbav:"external_invoice_ref,omitempty"`
	CreatedAt          string           `dynamodbav:"created_at"`
	UpdatedAt          string           `dynamodbav:"updated_at"`
}

// EngagementDynamoRepository persists Engagement entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI owner_id-index: owner_id
//   - GSI external_quote_ref-index: external_quote_ref (sparse)
//   - GSI external_invoice_ref-index: external_invoice_ref (sparse)
//
// Status writes are conditional on the expected current status, so a racing
// writer loses cleanly instead of overwriting. Rows are never deleted.

type EngagementDynamoRepository struct {
	ddb         *dynamodb.Client
	tableName   string
	eventsTable string
}

var _ interfaces.IEngagementRepository = (*EngagementDynamoRepository)(nil)

func NewEngagementDynamoRepository(ddb *dynamodb.Client) *EngagementDynamoRepository {
	return &EngagementDynamoRepository{
		ddb:         ddb,
		tableName:   getenvDefault("ENGAGEMENTS_TABLE", defaultEngagementsTableName),
		eventsTable: getenvDefault("CALENDAR_EVENTS_TABLE", defaultCalendarEventsTableName),
	}
}

// Create writes the engagement and its optional paired calendar event in
// one TransactWriteItems call: either both rows commit or neither does.
func (r *EngagementDynamoRepository) Create(ctx context.Context, e entities.Engagement, event *entities.CalendarEvent) (entities.Engagement, error) {
	engAV, err := attributevalue.MarshalMap(toEngagementItem(e))
	if err != nil {
		return entities.Engagement{}, err
	}

	writes := []types.TransactWriteItem{
		{
			Put: &types.Put{
				TableName:           aws.String(r.tableName),
				Item:                engAV,
				ConditionExpression: aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			},
		},
	}

	if event != nil {
		evAV, err := attributevalue.MarshalMap(toCalendarEventItem(*event))
		if err != nil {
			return entities.Engagement{}, err
		}
		writes = append(writes, types.TransactWriteItem{
			Put: &types.Put{
				TableName:           aws.String(r.eventsTable),
				Item:                evAV,
				ConditionExpression: aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: writes})
	if err != nil {
		return entities.Engagement{}, err
	}
	return e, nil
}

func (r *EngagementDynamoRepository) GetByID(ctx context.Context, id string) (entities.Engagement, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Engagement{}, err
	}
	if len(out.Item) == 0 {
		return entities.Engagement{}, nil
	}

	var it engagementItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Engagement{}, err
	}
	return fromEngagementItem(it), nil
}

func (r *EngagementDynamoRepository) ListByOwner(ctx context.Context, ownerID string, status entities.EngagementStatus) ([]entities.Engagement, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ownerIndexName),
		KeyConditionExpression: aws.String("#owner = :owner"),
		ExpressionAttributeNames: map[string]string{
			"#owner": "owner_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner": &types.AttributeValueMemberS{Value: ownerID},
		},
	}
	if status != "" {
		input.FilterExpression = aws.String("#status = :status")
		input.ExpressionAttributeNames["#status"] = "status"
		input.ExpressionAttributeValues[":status"] = &types.AttributeValueMemberS{Value: string(status)}
	}

	var out []entities.Engagement
	paginator := dynamodb.NewQueryPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []engagementItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromEngagementItem(it))
		}
	}
	return out, nil
}

func (r *EngagementDynamoRepository) GetByQuoteRef(ctx context.Context, ref string) (entities.Engagement, error) {
	return r.getByRefIndex(ctx, quoteRefIndexName, "external_quote_ref", ref)
}

func (r *EngagementDynamoRepository) GetByInvoiceRef(ctx context.Context, ref string) (entities.Engagement, error) {
	return r.getByRefIndex(ctx, invoiceRefIndexName, "external_invoice_ref", ref)
}

func (r *EngagementDynamoRepository) getByRefIndex(ctx context.Context, index, attribute, ref string) (entities.Engagement, error) {
	if ref == "" {
		return entities.Engagement{}, nil
	}
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#ref = :ref"),
		ExpressionAttributeNames: map[string]string{
			"#ref": attribute,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ref": &types.AttributeValueMemberS{Value: ref},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Engagement{}, err
	}
	if len(out.Items) == 0 {
		return entities.Engagement{}, nil
	}

	var it engagementItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Engagement{}, err
	}
	// GSIs are eventually consistent; re-read by PK for the authoritative row.
	return r.GetByID(ctx, it.ID)
}

func (r *EngagementDynamoRepository) UpdateStatus(ctx context.Context, id string, expected, next entities.EngagementStatus) (entities.Engagement, error) {
	return r.conditionalStatusUpdate(ctx, id, expected, next, "", "")
}

func (r *EngagementDynamoRepository) UpdateStatusWithQuoteRef(ctx context.Context, id string, expected, next entities.EngagementStatus, quoteRef string) (entities.Engagement, error) {
	return r.conditionalStatusUpdate(ctx, id, expected, next, quoteRef, "")
}

func (r *EngagementDynamoRepository) UpdateStatusWithInvoiceRef(ctx context.Context, id string, expected, next entities.EngagementStatus, invoiceRef string) (entities.Engagement, error) {
	return r.conditionalStatusUpdate(ctx, id, expected, next, "", invoiceRef)
}

// UpdateItems replaces the embedded line items and the derived total. The
// write is conditional on the status still being the one the caller read,
// so a concurrent transition out of the mutable set rejects the edit.
func (r *EngagementDynamoRepository) UpdateItems(ctx context.Context, id string, expected entities.EngagementStatus, items []entities.LineItem, total int64) (entities.Engagement, error) {
	records := make([]lineItemRecord, 0, len(items))
	for _, li := range items {
		records = append(records, lineItemRecord(li))
	}
	itemsAV, err := attributevalue.MarshalList(records)
	if err != nil {
		return entities.Engagement{}, err
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :expected"),
		UpdateExpression:    aws.String("SET #line_items = :line_items, #total = :total, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#line_items": "line_items",
			"#total":      "total_amount_cents",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected":   &types.AttributeValueMemberS{Value: string(expected)},
			":line_items": &types.AttributeValueMemberL{Value: itemsAV},
			":total":      &types.AttributeValueMemberN{Value: strconv.FormatInt(total, 10)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Engagement{}, nil
		}
		return entities.Engagement{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Engagement{}, nil
	}

	var it engagementItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Engagement{}, err
	}
	return fromEngagementItem(it), nil
}

// conditionalStatusUpdate is the from-state guard at the store level: the
// write only commits while the persisted status still equals expected. A
// failed condition returns the zero value, matching the read-miss
// convention, and the caller decides what the conflict means.
func (r *EngagementDynamoRepository) conditionalStatusUpdate(ctx context.Context, id string, expected, next entities.EngagementStatus, quoteRef, invoiceRef string) (entities.Engagement, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	updateExpr := "SET #status = :next, #updated_at = :updated_at"
	names := map[string]string{
		"#id":         "id",
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":next":       &types.AttributeValueMemberS{Value: string(next)},
		":expected":   &types.AttributeValueMemberS{Value: string(expected)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	if quoteRef != "" {
		updateExpr += ", #quote_ref = :quote_ref"
		names["#quote_ref"] = "external_quote_ref"
		values[":quote_ref"] = &types.AttributeValueMemberS{Value: quoteRef}
	}
	if invoiceRef != "" {
		updateExpr += ", #invoice_ref = :invoice_ref"
		names["#invoice_ref"] = "external_invoice_ref"
		values[":invoice_ref"] = &types.AttributeValueMemberS{Value: invoiceRef}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :expected"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Engagement{}, nil
		}
		return entities.Engagement{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Engagement{}, nil
	}

	var it engagementItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Engagement{}, err
	}
	return fromEngagementItem(it), nil
}

func toEngagementItem(e entities.Engagement) engagementItem {
	items := make([]lineItemRecord, 0, len(e.LineItems))
	for _, li := range e.LineItems {
		items = append(items, lineItemRecord(li))
	}
	due := ""
	if e.Due != nil {
		due = e.Due.UTC().Format(time.RFC3339Nano)
	}
	return engagementItem{
		ID:                 e.ID,
		OwnerID:            e.OwnerID,
		Title:              e.Title,
		Description:        e.Description,
		Status:             string(e.Status),
		Recurrence:         string(e.Recurrence),
		LineItems:          items,
		TotalAmountCents:   e.TotalAmountCents,
		Due:                due,
		ExternalQuoteRef:   e.ExternalQuoteRef,
		ExternalInvoiceRef: e.ExternalInvoiceRef,
		CreatedAt:          e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:          e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromEngagementItem(it engagementItem) entities.Engagement {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	var due *time.Time
	if it.Due != "" {
		if d, err := time.Parse(time.RFC3339Nano, it.Due); err == nil {
			due = &d
		}
	}
	items := make([]entities.LineItem, 0, len(it.LineItems))
	for _, li := range it.LineItems {
		items = append(items, entities.LineItem(li))
	}
	return entities.Engagement{
		ID:                 it.ID,
		OwnerID:            it.OwnerID,
		Title:              it.Title,
		Description:        it.Description,
		Status:             entities.EngagementStatus(it.Status),
		Recurrence:         entities.RecurrencePattern(it.Recurrence),
		LineItems:          items,
		TotalAmountCents:   it.TotalAmountCents,
		Due:                due,
		ExternalQuoteRef:   it.ExternalQuoteRef,
		ExternalInvoiceRef: it.ExternalInvoiceRef,
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}
}
