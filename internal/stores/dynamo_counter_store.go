package stores

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"tracking-pixel/internal/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/goccy/go-json"
)

// DynamoDBAPI is the subset of the DynamoDB client used by the counter store.
//
//go:generate mockgen -source=dynamo_counter_store.go -destination=./mocks/dynamodb_api_mock.go -package=mocks
type DynamoDBAPI interface {
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// dynamoCounterItem is a counter row: PK = "COUNTER#<type>", SK = facet value.
type dynamoCounterItem struct {
	PK    string `dynamodbav:"PK"`
	SK    string `dynamodbav:"SK"`
	Count int64  `dynamodbav:"count"`
	TTL   int64  `dynamodbav:"ttl"`
}

// dynamoRecentEventItem is a recent-event row: PK = "EVENT#recent", SK = "<ts>/<requestId>".
// The payload is kept as its JSON text so that text and JSON payloads survive the round trip.
type dynamoRecentEventItem struct {
	PK        string            `dynamodbav:"PK"`
	SK        string            `dynamodbav:"SK"`
	Ts        string            `dynamodbav:"ts"`
	RequestID string            `dynamodbav:"requestId"`
	Method    string            `dynamodbav:"method"`
	Path      string            `dynamodbav:"path"`
	IP        string            `dynamodbav:"ip"`
	UserAgent string            `dynamodbav:"ua,omitempty"`
	Referer   string            `dynamodbav:"referer,omitempty"`
	Query     map[string]string `dynamodbav:"query,omitempty"`
	Payload   string            `dynamodbav:"payload,omitempty"`
	Browser   string            `dynamodbav:"browser"`
	OS        string            `dynamodbav:"os"`
	Device    string            `dynamodbav:"device"`
	TTL       int64             `dynamodbav:"ttl"`
}

type dynamoCounterStore struct {
	client DynamoDBAPI
	table  string
}

func NewDynamoCounterStore(client DynamoDBAPI, table string) CounterStore {
	return &dynamoCounterStore{client: client, table: table}
}

func (s *dynamoCounterStore) Increment(ctx context.Context, key models.CounterKey, n int64, expiresAt time.Time) error {
	_, err := s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(s.table),
		Key:              primaryKey(key.Facet.PartitionKey(), key.Value),
		UpdateExpression: aws.String("ADD #count :inc SET #ttl = :ttl"),
		ExpressionAttributeNames: map[string]string{
			"#count": "count",
			"#ttl":   "ttl",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":inc": &types.AttributeValueMemberN{Value: strconv.FormatInt(n, 10)},
			":ttl": &types.AttributeValueMemberN{Value: strconv.FormatInt(expiresAt.Unix(), 10)},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to increment counter %s/%s: %w", key.Facet, key.Value, err)
	}
	return nil
}

func (s *dynamoCounterStore) PutRecentEvent(ctx context.Context, event *models.Event, expiresAt time.Time) error {
	item := dynamoRecentEventItem{
		PK:        models.RecentEventsPartition,
		SK:        event.RecentEventKey(),
		Ts:        event.Ts,
		RequestID: event.RequestID,
		Method:    event.Method,
		Path:      event.Path,
		IP:        event.IP,
		UserAgent: event.UserAgent,
		Referer:   event.Referer,
		Query:     event.Query,
		Browser:   event.Browser,
		OS:        event.OS,
		Device:    event.Device,
		TTL:       expiresAt.Unix(),
	}
	if !event.Payload.IsMissing() {
		payload, err := json.Marshal(event.Payload)
		if err != nil {
			return fmt.Errorf("failed to marshal payload: %w", err)
		}
		item.Payload = string(payload)
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal recent event: %w", err)
	}

	if _, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      av,
	}); err != nil {
		return fmt.Errorf("failed to put recent event: %w", err)
	}
	return nil
}

func (s *dynamoCounterStore) GetCount(ctx context.Context, key models.CounterKey) (int64, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.table),
		Key:            primaryKey(key.Facet.PartitionKey(), key.Value),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to get counter %s/%s: %w", key.Facet, key.Value, err)
	}
	if len(out.Item) == 0 {
		return 0, nil
	}

	var item dynamoCounterItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return 0, fmt.Errorf("failed to unmarshal counter: %w", err)
	}
	return item.Count, nil
}

func (s *dynamoCounterStore) ListCounters(ctx context.Context, facet models.FacetType) ([]models.FacetCount, error) {
	paginator := dynamodb.NewQueryPaginator(s.client, &dynamodb.QueryInput{
		TableName:                 aws.String(s.table),
		KeyConditionExpression:    aws.String("#PK = :pk"),
		ExpressionAttributeNames:  map[string]string{"#PK": "PK"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":pk": &types.AttributeValueMemberS{Value: facet.PartitionKey()}},
	})

	var result []models.FacetCount
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to query %s counters: %w", facet, err)
		}

		var items []dynamoCounterItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s counters: %w", facet, err)
		}
		for _, item := range items {
			result = append(result, models.FacetCount{Value: item.SK, Count: item.Count})
		}
	}
	return result, nil
}

func (s *dynamoCounterStore) ListRecentEvents(ctx context.Context, limit int) ([]*models.Event, error) {
	out, err := s.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(s.table),
		KeyConditionExpression:    aws.String("#PK = :pk"),
		ExpressionAttributeNames:  map[string]string{"#PK": "PK"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":pk": &types.AttributeValueMemberS{Value: models.RecentEventsPartition}},
		ScanIndexForward:          aws.Bool(false),
		Limit:                     aws.Int32(int32(limit)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query recent events: %w", err)
	}

	var items []dynamoRecentEventItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal recent events: %w", err)
	}

	events := make([]*models.Event, 0, len(items))
	for _, item := range items {
		event := &models.Event{
			Ts:        item.Ts,
			RequestID: item.RequestID,
			Method:    item.Method,
			Path:      item.Path,
			IP:        item.IP,
			UserAgent: item.UserAgent,
			Referer:   item.Referer,
			Query:     item.Query,
			Browser:   item.Browser,
			OS:        item.OS,
			Device:    item.Device,
		}
		if item.Payload != "" {
			if err := json.Unmarshal([]byte(item.Payload), &event.Payload); err != nil {
				return nil, fmt.Errorf("failed to unmarshal payload of %s: %w", item.SK, err)
			}
		}
		events = append(events, event)
	}
	return events, nil
}

func primaryKey(pk, sk string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: pk},
		"SK": &types.AttributeValueMemberS{Value: sk},
	}
}
