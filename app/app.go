package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/bookswap/exchange-service/config"
	"github.com/bookswap/exchange-service/internal/handler"
	"github.com/bookswap/exchange-service/internal/repository"
	"github.com/bookswap/exchange-service/internal/server"
	"github.com/bookswap/exchange-service/internal/service"
	"github.com/bookswap/exchange-service/internal/service/payments"
	"github.com/bookswap/exchange-service/migrations"
	"github.com/bookswap/exchange-service/pkg/kafka"
	"github.com/bookswap/exchange-service/pkg/logger"
	"github.com/bookswap/exchange-service/pkg/postgres"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "exchange")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}
	svc := service.NewService(repo, log)
	paySvc := payments.NewService(log, cfg)

	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		log.Fatal("kafka.NewProducer", zap.Error(err))
	}
	consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.ExchangeConsumerGroup)
	if err != nil {
		log.Fatal("kafka.NewConsumer", zap.Error(err))
	}
	consumeCtx, consumeCancel := context.WithCancel(context.Background())
	go kafka.Consume(consumeCtx, consumer, handler.NewConsumer(svc.RecordEvent, log), kafka.ExchangeTopic)

	h := handler.New(log, svc, svc, svc, paySvc, handler.NewEnqueuer(producer))
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	consumeCancel()
	if err = srv.Stop(closeCtx); err != nil {
		log.Error("srv.Stop", zap.Error(err))
	}
	if err = producer.Close(); err != nil {
		log.Error("producer.Close", zap.Error(err))
	}
	if err = consumer.Close(); err != nil {
		log.Error("consumer.Close", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}
