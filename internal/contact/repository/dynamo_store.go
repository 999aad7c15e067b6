package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/starfolio/portfolio-backend/internal/contact/domain"
)

// DynamoAPI is the slice of the DynamoDB client the store uses, narrowed so
// tests can substitute a fake.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

// DynamoStore persists contact submissions in a DynamoDB table keyed by id.
type DynamoStore struct {
	client DynamoAPI
	table  string
}

// NewDynamoStore creates a DynamoStore writing to the given table.
func NewDynamoStore(client DynamoAPI, table string) *DynamoStore {
	return &DynamoStore{client: client, table: table}
}

// Ensure DynamoStore implements Store at compile time.
var _ Store = (*DynamoStore)(nil)

// dynamoTimeLayout is ISO-8601 with a fixed-width fractional second.
// DynamoDB compares S attributes byte-wise, so the width must not vary or
// `createdAt >= :since` stops agreeing with chronological order.
const dynamoTimeLayout = "2006-01-02T15:04:05.000000000Z"

// dynamoRecord is the persisted item shape. createdAt is stored as an
// ISO-8601 string.
type dynamoRecord struct {
	ID        int64  `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Email     string `dynamodbav:"email"`
	Subject   string `dynamodbav:"subject"`
	Message   string `dynamodbav:"message"`
	CreatedAt string `dynamodbav:"createdAt"`
}

func toRecord(sub *domain.Submission) dynamoRecord {
	return dynamoRecord{
		ID:        sub.ID,
		Name:      sub.Name,
		Email:     sub.Email,
		Subject:   sub.Subject,
		Message:   sub.Message,
		CreatedAt: sub.CreatedAt.UTC().Format(dynamoTimeLayout),
	}
}

func (r dynamoRecord) toSubmission() (*domain.Submission, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, r.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse createdAt: %w", err)
	}
	return &domain.Submission{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Subject:   r.Subject,
		Message:   r.Message,
		CreatedAt: createdAt,
	}, nil
}

// Save persists the submission as a single PutItem.
func (s *DynamoStore) Save(ctx context.Context, sub *domain.Submission) error {
	item, err := attributevalue.MarshalMap(toRecord(sub))
	if err != nil {
		return fmt.Errorf("failed to marshal submission: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to save submission: %w", err)
	}
	return nil
}

// Get retrieves a submission by ID.
func (s *DynamoStore) Get(ctx context.Context, id int64) (*domain.Submission, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", id)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, domain.ErrSubmissionNotFound
	}

	var rec dynamoRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal submission: %w", err)
	}
	return rec.toSubmission()
}

// CountSince counts submissions created at or after since. DynamoDB has no
// secondary time index here, so this is a filtered COUNT scan paged to the
// end; it only runs from the nightly digest job.
func (s *DynamoStore) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var total int64
	var startKey map[string]types.AttributeValue

	for {
		out, err := s.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(s.table),
			Select:           types.SelectCount,
			FilterExpression: aws.String("createdAt >= :since"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":since": &types.AttributeValueMemberS{
					Value: since.UTC().Format(dynamoTimeLayout),
				},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return 0, fmt.Errorf("failed to count submissions: %w", err)
		}
		total += int64(out.Count)
		if out.LastEvaluatedKey == nil {
			return total, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

// Ping verifies the table is reachable.
func (s *DynamoStore) Ping(ctx context.Context) error {
	_, err := s.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(s.table),
	})
	if err != nil {
		return fmt.Errorf("contact table unreachable: %w", err)
	}
	return nil
}
