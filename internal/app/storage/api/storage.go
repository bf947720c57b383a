package storage

import (
	"context"

	"github.com/avGenie/go-food-bag/internal/app/config"
	"github.com/avGenie/go-food-bag/internal/app/storage/api/model"
	"github.com/avGenie/go-food-bag/internal/app/storage/memory"
	"github.com/avGenie/go-food-bag/internal/app/storage/postgres"
	"go.uber.org/zap"
)

func InitStorage(ctx context.Context, config config.Config) (model.Storage, error) {
	if len(config.DBConnect) == 0 {
		zap.L().Warn("database uri is empty, using in-memory storage with demo data")

		return memory.NewSeeded(), nil
	}

	return storage.NewPostgresStorage(ctx, config.DBConnect)
}
