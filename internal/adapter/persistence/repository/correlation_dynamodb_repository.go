package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"commerce_2checkout/internal/domain/entities"
	"commerce_2checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCorrelationsTableName = "payment_correlations"

type correlationItem struct {
	OrderID        int64   `dynamodbav:"order_id"`
	Flow           string  `dynamodbav:"flow"`
	Token          string  `dynamodbav:"payment_redirect_key"`
	PayerReference *string `dynamodbav:"payerid,omitempty"`
	Offsite        bool    `dynamodbav:"offsite"`
	CreatedAt      string  `dynamodbav:"created_at"`
}

// DynamoDBAPI is the subset of the DynamoDB client used by the repository.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

// CorrelationDynamoRepository persists correlation records in DynamoDB.
//
// Table requirements:
//   - PK: order_id (number)
//
// One item per order; PutItem replaces it, which gives last-token-wins.
type CorrelationDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ICorrelationRepository = (*CorrelationDynamoRepository)(nil)

// NewCorrelationDynamoRepository uses tableName, falling back to
// CORRELATIONS_TABLE and then payment_correlations when it is empty.
func NewCorrelationDynamoRepository(ddb DynamoDBAPI, tableName string) *CorrelationDynamoRepository {
	if tableName == "" {
		tableName = getenvDefault("CORRELATIONS_TABLE", defaultCorrelationsTableName)
	}
	return &CorrelationDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
	}
}

func (r *CorrelationDynamoRepository) Save(ctx context.Context, orderID int64, record entities.OrderCorrelationRecord) error {
	record.OrderID = orderID
	av, err := attributevalue.MarshalMap(toCorrelationItem(record))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *CorrelationDynamoRepository) GetByOrderID(ctx context.Context, orderID int64) (entities.OrderCorrelationRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberN{Value: strconv.FormatInt(orderID, 10)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.OrderCorrelationRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.OrderCorrelationRecord{}, nil
	}

	var it correlationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.OrderCorrelationRecord{}, err
	}
	return fromCorrelationItem(it)
}

func toCorrelationItem(rec entities.OrderCorrelationRecord) correlationItem {
	return correlationItem{
		OrderID:        rec.OrderID,
		Flow:           rec.FlowKind,
		Token:          rec.Token,
		PayerReference: rec.PayerReference,
		Offsite:        rec.IsOffsite,
		CreatedAt:      rec.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromCorrelationItem(it correlationItem) (entities.OrderCorrelationRecord, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, it.CreatedAt)
	if err != nil {
		return entities.OrderCorrelationRecord{}, fmt.Errorf("decode correlation %d created_at: %w", it.OrderID, err)
	}
	return entities.OrderCorrelationRecord{
		OrderID:        it.OrderID,
		FlowKind:       it.Flow,
		Token:          it.Token,
		PayerReference: it.PayerReference,
		IsOffsite:      it.Offsite,
		CreatedAt:      createdAt,
	}, nil
}
