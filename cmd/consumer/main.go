package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/muhammadheryan/hoardspace/cmd/config"
	"github.com/muhammadheryan/hoardspace/thirdparty/rabbitmq"
	"github.com/muhammadheryan/hoardspace/utils/logger"
	"go.uber.org/zap"
)

// The consumer cancels bookings whose checkout window ran out by calling the
// api's internal endpoint, so the api stays the only writer to the database.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment, "hoardspace-booking-expiry", cfg.Log.Level); err != nil {
		panic(err)
	}
	defer logger.Close()

	if cfg.Internal.APIKey == "" {
		logger.Fatal("INTERNAL_API_KEY is required")
	}

	consumer, err := rabbitmq.NewConsumer(
		cfg.RabbitMQ.Host,
		cfg.RabbitMQ.Port,
		cfg.RabbitMQ.User,
		cfg.RabbitMQ.Password,
		cfg.Internal.APIURL,
		cfg.Internal.APIKey,
	)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}
	logger.Info("booking expiration consumer running", zap.String("api", cfg.Internal.APIURL))

	<-ctx.Done()
	logger.Info("shutting down consumer")
}
