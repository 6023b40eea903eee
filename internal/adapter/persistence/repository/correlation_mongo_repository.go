package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"commerce_2checkout/internal/domain/entities"
	"commerce_2checkout/internal/usecase/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionCorrelations = "payment_correlations"

type correlationDocument struct {
	OrderID        int64     `bson:"order_id"`
	Flow           string    `bson:"flow"`
	Token          string    `bson:"payment_redirect_key"`
	PayerReference *string   `bson:"payerid,omitempty"`
	Offsite        bool      `bson:"offsite"`
	CreatedAt      time.Time `bson:"created_at"`
}

// CorrelationMongoRepository upserts one document per order_id.
type CorrelationMongoRepository struct {
	collection *mongo.Collection
}

var _ interfaces.ICorrelationRepository = (*CorrelationMongoRepository)(nil)

func NewCorrelationMongoRepository(db *mongo.Database) *CorrelationMongoRepository {
	return &CorrelationMongoRepository{collection: db.Collection(collectionCorrelations)}
}

// ConnectMongo opens a client for uri and pings the primary.
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, nil
}

func (r *CorrelationMongoRepository) Save(ctx context.Context, orderID int64, record entities.OrderCorrelationRecord) error {
	record.OrderID = orderID
	filter := bson.D{{Key: "order_id", Value: orderID}}
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, filter, toCorrelationDocument(record), opts)
	return err
}

func (r *CorrelationMongoRepository) GetByOrderID(ctx context.Context, orderID int64) (entities.OrderCorrelationRecord, error) {
	var doc correlationDocument
	filter := bson.D{{Key: "order_id", Value: orderID}}
	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entities.OrderCorrelationRecord{}, nil
	}
	if err != nil {
		return entities.OrderCorrelationRecord{}, err
	}
	return fromCorrelationDocument(doc), nil
}

func toCorrelationDocument(rec entities.OrderCorrelationRecord) correlationDocument {
	return correlationDocument{
		OrderID:        rec.OrderID,
		Flow:           rec.FlowKind,
		Token:          rec.Token,
		PayerReference: rec.PayerReference,
		Offsite:        rec.IsOffsite,
		CreatedAt:      rec.CreatedAt.UTC(),
	}
}

func fromCorrelationDocument(doc correlationDocument) entities.OrderCorrelationRecord {
	return entities.OrderCorrelationRecord{
		OrderID:        doc.OrderID,
		FlowKind:       doc.Flow,
		Token:          doc.Token,
		PayerReference: doc.PayerReference,
		IsOffsite:      doc.Offsite,
		CreatedAt:      doc.CreatedAt,
	}
}
