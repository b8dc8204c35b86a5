package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Connect kết nối MongoDB và ping để chắc chắn server reachable
func Connect(ctx context.Context, uri string, timeout time.Duration, logger *zap.Logger) (*mongo.Client, error) {
	clientOpts := options.Client().ApplyURI(uri)
	if timeout > 0 {
		clientOpts.SetConnectTimeout(timeout)
		clientOpts.SetServerSelectionTimeout(timeout)
	}

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("không thể kết nối MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout(timeout))
	defer cancel()

	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("không thể ping MongoDB: %w", err)
	}

	logger.Info("Connected to MongoDB", zap.Strings("hosts", clientOpts.Hosts))
	return client, nil
}

// Disconnect đóng kết nối, chỉ log khi lỗi
func Disconnect(client *mongo.Client, logger *zap.Logger) {
	if client == nil {
		return
	}
	if err := client.Disconnect(context.Background()); err != nil {
		logger.Error("Error disconnecting MongoDB", zap.Error(err))
		return
	}
	logger.Debug("Disconnected from MongoDB")
}

func pingTimeout(timeout time.Duration) time.Duration {
	if timeout <= 0 {
		return 10 * time.Second
	}
	return timeout
}
