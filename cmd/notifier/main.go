package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	kitchenapp "github.com/muhammadheryan/warung-order/application/kitchen"
	"github.com/muhammadheryan/warung-order/cmd/config"
	"github.com/muhammadheryan/warung-order/thirdparty/rabbitmq"
	"github.com/muhammadheryan/warung-order/utils/logger"
	"go.uber.org/zap"
)

// notifier prints a kitchen ticket for every order.placed event.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment, "warung-notifier"); err != nil {
		panic(err)
	}
	defer logger.Close()

	KitchenApp := kitchenapp.NewKitchenApp(cfg)

	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ, KitchenApp.HandleOrderPlaced)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done, err := consumer.Start(ctx)
	if err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}
	logger.Info("Notifier consuming", zap.String("queue", rabbitmq.OrderPlacedQueue))

	select {
	case <-ctx.Done():
		logger.Info("Shutting down notifier")
	case <-done:
		logger.Error("consumer stopped unexpectedly")
	}
}
