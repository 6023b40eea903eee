package routes

import (
	"context"
	"fmt"
	"log/slog"

	"commerce_2checkout/internal/adapter/persistence/repository"
	"commerce_2checkout/internal/config"
	"commerce_2checkout/internal/infrastructure/database"
	"commerce_2checkout/internal/usecase/interfaces"
)

// newCorrelationRepository opens the configured correlation store. The returned
// func releases its connections.
func newCorrelationRepository(ctx context.Context, cfg *config.Config) (interfaces.ICorrelationRepository, func(), error) {
	noop := func() {}
	switch cfg.Store.Backend {
	case config.StoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.Store.DynamoDB.Region, cfg.Store.DynamoDB.Endpoint)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create dynamodb client: %w", err)
		}
		return repository.NewCorrelationDynamoRepository(ddb, cfg.Store.DynamoDB.Table), noop, nil
	case config.StoreRedis:
		client, err := repository.ConnectRedis(ctx, cfg.Store.Redis.URL)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := client.Close(); err != nil {
				slog.Error("[store] redis close", "err", err)
			}
		}
		return repository.NewCorrelationRedisRepository(client, cfg.Store.Redis.TTL), closeFn, nil
	case config.StoreMongo:
		client, err := repository.ConnectMongo(ctx, cfg.Store.Mongo.URI)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := client.Disconnect(context.Background()); err != nil {
				slog.Error("[store] mongo disconnect", "err", err)
			}
		}
		return repository.NewCorrelationMongoRepository(client.Database(cfg.Store.Mongo.Database)), closeFn, nil
	case config.StoreMemory:
		slog.Warn("[store] using in-memory correlation store; records are lost on restart")
		return repository.NewCorrelationMemoryRepository(), noop, nil
	}
	return nil, nil, fmt.Errorf("%w: %q", config.ErrUnsupportedStore, cfg.Store.Backend)
}
