package routes

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"mvz_quote/internal/adapter/persistence/repository"
	"mvz_quote/internal/config"
	"mvz_quote/internal/infrastructure/database"
	"mvz_quote/internal/usecase/interfaces"
)

// newSnapshotStore builds the contact snapshot backend selected by
// snapshot.driver. The returned closer releases its connections.
func newSnapshotStore(ctx context.Context, cfg config.SnapshotConfig, logger *zap.Logger) (interfaces.ISnapshotStore, func(), error) {
	switch cfg.Driver {
	case config.DriverRedis:
		client, err := database.ConnectRedis(ctx, cfg.Redis.URL)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("[snapshot][startup] using redis", zap.Duration("key_ttl", cfg.Redis.KeyTTL))
		return repository.NewSnapshotRedisRepository(client, cfg.Redis.KeyTTL), func() { _ = client.Close() }, nil

	case config.DriverDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("[snapshot][startup] using dynamodb",
			zap.String("table", cfg.DynamoDB.Table),
			zap.String("region", cfg.DynamoDB.Region),
		)
		return repository.NewSnapshotDynamoRepository(ddb, cfg.DynamoDB.Table), func() {}, nil

	case config.DriverMemory, "":
		logger.Info("[snapshot][startup] using in-memory store")
		return repository.NewSnapshotMemoryRepository(), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown snapshot driver %q", cfg.Driver)
}
