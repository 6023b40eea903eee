package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"commerce_2checkout/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func sampleRecord() entities.OrderCorrelationRecord {
	return entities.OrderCorrelationRecord{
		FlowKind:  entities.FlowKind2CO,
		Token:     "tok-1",
		IsOffsite: true,
		CreatedAt: time.Date(2026, 5, 6, 7, 8, 9, 123000000, time.UTC),
	}
}

func TestCorrelationMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewCorrelationMemoryRepository()

	missing, err := repo.GetByOrderID(ctx, 1)
	if err != nil || missing.Exists() {
		t.Fatalf("expected zero record, got %+v (%v)", missing, err)
	}

	ref := "4550"
	rec := sampleRecord()
	rec.PayerReference = &ref
	if err := repo.Save(ctx, 1, rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ref = "mutated"

	got, _ := repo.GetByOrderID(ctx, 1)
	if got.OrderID != 1 || got.Token != "tok-1" || got.PayerReference == nil || *got.PayerReference != "4550" {
		t.Fatalf("unexpected record: %+v", got)
	}

	next := sampleRecord()
	next.Token = "tok-2"
	_ = repo.Save(ctx, 1, next)
	got, _ = repo.GetByOrderID(ctx, 1)
	if got.Token != "tok-2" || got.Consumed() {
		t.Fatalf("expected overwrite, got %+v", got)
	}
}

func TestCorrelationMemoryRepository_Concurrent(t *testing.T) {
	ctx := context.Background()
	repo := NewCorrelationMemoryRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(id int64) {
			defer wg.Done()
			_ = repo.Save(ctx, id%5+1, sampleRecord())
		}(int64(i))
		go func(id int64) {
			defer wg.Done()
			_, _ = repo.GetByOrderID(ctx, id%5+1)
		}(int64(i))
	}
	wg.Wait()

	for id := int64(1); id <= 5; id++ {
		if rec, _ := repo.GetByOrderID(ctx, id); !rec.Exists() {
			t.Fatalf("expected record for order %d", id)
		}
	}
}

type fakeDynamo struct {
	items  map[string]map[string]types.AttributeValue
	putErr error
	lastPK string
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	pk := in.Item["order_id"].(*types.AttributeValueMemberN).Value
	f.lastPK = *in.TableName + "/" + pk
	f.items[pk] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if in.ConsistentRead == nil || !*in.ConsistentRead {
		return nil, errors.New("expected consistent read")
	}
	pk := in.Key["order_id"].(*types.AttributeValueMemberN).Value
	return &dynamodb.GetItemOutput{Item: f.items[pk]}, nil
}

func TestCorrelationDynamoRepository(t *testing.T) {
	ctx := context.Background()
	ddb := &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
	repo := NewCorrelationDynamoRepository(ddb, "corr")

	missing, err := repo.GetByOrderID(ctx, 42)
	if err != nil || missing.Exists() {
		t.Fatalf("expected zero record, got %+v (%v)", missing, err)
	}

	rec := sampleRecord()
	if err := repo.Save(ctx, 42, rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ddb.lastPK != "corr/42" {
		t.Fatalf("unexpected put target %s", ddb.lastPK)
	}
	if _, ok := ddb.items["42"]["payerid"]; ok {
		t.Fatalf("payerid must be omitted while unset")
	}

	got, err := repo.GetByOrderID(ctx, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.OrderID != 42 || got.Token != "tok-1" || got.FlowKind != "2co" || !got.IsOffsite || !got.CreatedAt.Equal(rec.CreatedAt) || got.Consumed() {
		t.Fatalf("unexpected record: %+v", got)
	}

	ddb.putErr = errors.New("throttled")
	if err := repo.Save(ctx, 42, rec); err == nil {
		t.Fatalf("expected error")
	}
}

func TestCorrelationDynamoRepository_CorruptCreatedAt(t *testing.T) {
	ddb := &fakeDynamo{items: map[string]map[string]types.AttributeValue{
		"42": {
			"order_id":             &types.AttributeValueMemberN{Value: "42"},
			"flow":                 &types.AttributeValueMemberS{Value: "2co"},
			"payment_redirect_key": &types.AttributeValueMemberS{Value: "tok-1"},
			"offsite":              &types.AttributeValueMemberBOOL{Value: true},
			"created_at":           &types.AttributeValueMemberS{Value: "yesterday"},
		},
	}}
	repo := NewCorrelationDynamoRepository(ddb, "corr")

	got, err := repo.GetByOrderID(context.Background(), 42)
	var parseErr *time.ParseError
	if err == nil || !errors.As(err, &parseErr) {
		t.Fatalf("expected created_at parse error, got %v", err)
	}
	if got.Exists() {
		t.Fatalf("expected zero record, got %+v", got)
	}
}

func TestNewCorrelationDynamoRepository_TableFallback(t *testing.T) {
	t.Setenv("CORRELATIONS_TABLE", "")
	if repo := NewCorrelationDynamoRepository(&fakeDynamo{}, ""); repo.tableName != defaultCorrelationsTableName {
		t.Fatalf("unexpected table %s", repo.tableName)
	}
	t.Setenv("CORRELATIONS_TABLE", "from_env")
	if repo := NewCorrelationDynamoRepository(&fakeDynamo{}, ""); repo.tableName != "from_env" {
		t.Fatalf("unexpected table %s", repo.tableName)
	}
}
