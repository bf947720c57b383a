package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/avGenie/go-food-bag/internal/app/config"
	"github.com/avGenie/go-food-bag/internal/app/controller/amqp"
	server "github.com/avGenie/go-food-bag/internal/app/controller/http/server"
	"github.com/avGenie/go-food-bag/internal/app/logger"
	"github.com/avGenie/go-food-bag/internal/app/storage/api"
	"github.com/avGenie/go-food-bag/internal/app/usecase/notification"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	config := config.InitConfig()

	err := logger.Initialize(config.LogLevel)
	if err != nil {
		panic(err)
	}
	defer zap.L().Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer cancel()

	storage, err := storage.InitStorage(ctx, config)
	if err != nil {
		zap.L().Fatal("error while initializing storage", zap.Error(err))
	}
	defer func() {
		if err := storage.Close(); err != nil {
			zap.L().Error("error while closing storage", zap.Error(err))
		}
	}()

	feed := notification.NewFeed(storage)

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return server.New(config, storage, feed).Start(ctx)
	})

	if len(config.AMQPConnect) != 0 {
		consumer := amqp.NewConsumer(config.AMQPConnect, storage, feed)
		group.Go(func() error {
			return consumer.Run(ctx)
		})
	} else {
		zap.L().Warn("rabbitmq address is empty, order status events are not consumed")
	}

	err = group.Wait()
	if err != nil {
		zap.L().Error("service stopped with error", zap.Error(err))
		os.Exit(1)
	}

	zap.L().Info("service stopped")
}
