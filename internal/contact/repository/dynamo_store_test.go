package repository

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/starfolio/portfolio-backend/internal/contact/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDynamo implements DynamoAPI over an in-memory map keyed by the id
// attribute.
type fakeDynamo struct {
	items   map[string]map[string]types.AttributeValue
	failPut bool
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamo) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.failPut {
		return nil, errors.New("provisioned throughput exceeded")
	}
	id := params.Item["id"].(*types.AttributeValueMemberN).Value
	f.items[id] = params.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	id := params.Key["id"].(*types.AttributeValueMemberN).Value
	item, ok := f.items[id]
	if !ok {
		return &dynamodb.GetItemOutput{}, nil
	}
	return &dynamodb.GetItemOutput{Item: item}, nil
}

func (f *fakeDynamo) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	since := params.ExpressionAttributeValues[":since"].(*types.AttributeValueMemberS).Value
	var count int32
	for _, item := range f.items {
		createdAt := item["createdAt"].(*types.AttributeValueMemberS).Value
		if createdAt >= since {
			count++
		}
	}
	return &dynamodb.ScanOutput{Count: count}, nil
}

func (f *fakeDynamo) DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	return &dynamodb.DescribeTableOutput{}, nil
}

func TestDynamoStore_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	fake := newFakeDynamo()
	store := NewDynamoStore(fake, "contact_submissions")

	t.Run("round-trips a submission", func(t *testing.T) {
		now := time.Now().UTC().Truncate(time.Millisecond)
		sub := testSubmission(now.UnixMilli(), now)

		require.NoError(t, store.Save(ctx, sub))

		got, err := store.Get(ctx, sub.ID)
		require.NoError(t, err)
		assert.Equal(t, sub.ID, got.ID)
		assert.Equal(t, sub.Message, got.Message)
		assert.True(t, sub.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("stores createdAt as an ISO-8601 string", func(t *testing.T) {
		now := time.Date(2026, 8, 30, 9, 30, 0, 0, time.UTC)
		sub := testSubmission(now.UnixMilli(), now)
		require.NoError(t, store.Save(ctx, sub))

		item := fake.items[strconv.FormatInt(sub.ID, 10)]
		require.NotNil(t, item)

		var rec dynamoRecord
		require.NoError(t, attributevalue.UnmarshalMap(item, &rec))
		parsed, err := time.Parse(time.RFC3339Nano, rec.CreatedAt)
		require.NoError(t, err)
		assert.True(t, now.Equal(parsed))
	})

	t.Run("returns not-found for an unknown id", func(t *testing.T) {
		_, err := store.Get(ctx, 42)
		assert.Equal(t, domain.ErrSubmissionNotFound, err)
	})

	t.Run("surfaces write failures", func(t *testing.T) {
		fake.failPut = true
		defer func() { fake.failPut = false }()

		now := time.Now().UTC()
		err := store.Save(ctx, testSubmission(now.UnixMilli(), now))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to save submission")
	})
}

func TestDynamoStore_CountSince(t *testing.T) {
	ctx := context.Background()
	fake := newFakeDynamo()
	store := NewDynamoStore(fake, "contact_submissions")

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		createdAt := base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, store.Save(ctx, testSubmission(createdAt.UnixMilli(), createdAt)))
	}

	n, err := store.CountSince(ctx, base.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

// DynamoDB filters S attributes byte-wise, so timestamps with a fractional
// second must not sort below a whole-second cutoff.
func TestDynamoStore_CountSinceFractionalSecondBoundary(t *testing.T) {
	ctx := context.Background()
	fake := newFakeDynamo()
	store := NewDynamoStore(fake, "contact_submissions")

	cutoff := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	inRange := []time.Time{
		cutoff.Add(500 * time.Millisecond),
		cutoff.Add(time.Second),
		cutoff,
	}
	for _, createdAt := range inRange {
		require.NoError(t, store.Save(ctx, testSubmission(createdAt.UnixMilli(), createdAt)))
	}
	before := cutoff.Add(-250 * time.Millisecond)
	require.NoError(t, store.Save(ctx, testSubmission(before.UnixMilli(), before)))

	n, err := store.CountSince(ctx, cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(len(inRange)), n)

	// The stored strings are fixed width, so lexicographic and
	// chronological order agree.
	for _, item := range fake.items {
		createdAt := item["createdAt"].(*types.AttributeValueMemberS).Value
		assert.Len(t, createdAt, len(dynamoTimeLayout))
	}
}

func TestDynamoStore_Ping(t *testing.T) {
	store := NewDynamoStore(newFakeDynamo(), "contact_submissions")
	assert.NoError(t, store.Ping(context.Background()))
}
