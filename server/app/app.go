package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/practicum/shareit-service/pkg/kafka"
	"github.com/practicum/shareit-service/pkg/logger"
	"github.com/practicum/shareit-service/pkg/postgres"
	"github.com/practicum/shareit-service/pkg/server"
	"github.com/practicum/shareit-service/server/config"
	"github.com/practicum/shareit-service/server/internal/handler"
	"github.com/practicum/shareit-service/server/internal/repository"
	"github.com/practicum/shareit-service/server/internal/service"
	"github.com/practicum/shareit-service/server/migrations"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "server")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		log.Fatal("kafka.NewProducer", zap.Error(err))
	}
	svc := service.NewService(repo, producer, log)

	consumeCtx, consumeCancel := context.WithCancel(context.Background())
	defer consumeCancel()
	consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.StatsConsumerGroup)
	if err != nil {
		log.Fatal("kafka.NewConsumer", zap.Error(err))
	}
	go func() {
		if err := kafka.Consume(consumeCtx, consumer, handler.NewConsumer(svc.RecordBookingEvent, log), kafka.BookingEventsTopic); err != nil {
			log.Error("kafka consume", zap.Error(err))
		}
	}()

	h := handler.New(svc, svc, svc, svc, log)
	srv := server.NewServer(cfg.Server.Host, cfg.Server.Port, cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, h.NewRouter())
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

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	consumeCancel()
	if err := consumer.Close(); err != nil {
		log.Error("consumer close", zap.Error(err))
	}
	if err := producer.Close(); err != nil {
		log.Error("producer close", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}
