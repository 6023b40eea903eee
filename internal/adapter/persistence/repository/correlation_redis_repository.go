package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"commerce_2checkout/internal/domain/entities"
	"commerce_2checkout/internal/usecase/interfaces"

	"github.com/go-redis/redis/v8"
)

const (
	correlationKeyPrefix  = "2co:correlation:"
	defaultCorrelationTTL = 72 * time.Hour
)

// CorrelationRedisRepository keeps one JSON document per order under
// 2co:correlation:{order_id}. Records expire after the configured TTL; an
// expired record is treated as missing, so a late return is rejected.
type CorrelationRedisRepository struct {
	client redis.Cmdable
	ttl    time.Duration
}

var _ interfaces.ICorrelationRepository = (*CorrelationRedisRepository)(nil)

func NewCorrelationRedisRepository(client redis.Cmdable, ttl time.Duration) *CorrelationRedisRepository {
	if ttl <= 0 {
		ttl = defaultCorrelationTTL
	}
	return &CorrelationRedisRepository{client: client, ttl: ttl}
}

// ConnectRedis parses a redis:// URL and checks the connection.
func ConnectRedis(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	return client, nil
}

func (r *CorrelationRedisRepository) Save(ctx context.Context, orderID int64, record entities.OrderCorrelationRecord) error {
	record.OrderID = orderID
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, correlationKey(orderID), data, r.ttl).Err()
}

func (r *CorrelationRedisRepository) GetByOrderID(ctx context.Context, orderID int64) (entities.OrderCorrelationRecord, error) {
	data, err := r.client.Get(ctx, correlationKey(orderID)).Bytes()
	if err == redis.Nil {
		return entities.OrderCorrelationRecord{}, nil
	}
	if err != nil {
		return entities.OrderCorrelationRecord{}, err
	}

	var record entities.OrderCorrelationRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return entities.OrderCorrelationRecord{}, fmt.Errorf("decode correlation %d: %w", orderID, err)
	}
	return record, nil
}

func correlationKey(orderID int64) string {
	return fmt.Sprintf("%s%d", correlationKeyPrefix, orderID)
}
