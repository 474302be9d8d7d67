package main

import (
	// Go Internal Packages
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	// Local Packages
	config "fraud-dash/config"
	helpers "fraud-dash/helpers"
	kafka "fraud-dash/kafka"
	logging "fraud-dash/logging"
	models "fraud-dash/models"
	mongodb "fraud-dash/repositories/mongodb"
	redis "fraud-dash/repositories/redis"
	txpsr "fraud-dash/services/processors"

	// External Packages
	"github.com/alecthomas/kingpin/v2"
	"github.com/twmb/franz-go/plugin/kprom"
	"go.uber.org/zap"
)

func main() {
	configPath := kingpin.Flag("config", "Path to the application config file").Short('c').Default("config.yml").String()
	kingpin.Parse()

	k, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	appKonf, err := config.Unmarshal(k)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	if err = appKonf.ValidateArchiver(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if !appKonf.IsProdMode {
		_ = helpers.FprintStruct(os.Stdout, appKonf.Kafka)
	}

	logger, err := logging.New(appKonf.Logger.Level, "feed-archiver")
	if err != nil {
		log.Fatalf("Error building logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Mongo Connection
	mongoClient, err := mongodb.Connect(ctx, appKonf.Mongo.URI)
	if err != nil {
		logger.Fatal("cannot create mongo client", zap.Error(err))
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	// Redis Connection
	redisClient, err := redis.Connect(ctx, appKonf.Redis.URI, appKonf.Redis.Password)
	if err != nil {
		logger.Fatal("cannot create redis client", zap.Error(err))
	}
	defer redisClient.Close()

	txRepo := mongodb.NewTxRepository(mongoClient, appKonf.Mongo.Database, appKonf.Mongo.Collection)
	dlQueue := redis.NewDeadLetterQueue(redisClient, logger, appKonf.Redis.DLQPrefix)
	txProcessor := txpsr.NewTxProcessor(logger, txRepo)

	metrics := kprom.NewMetrics("feed_archiver")
	conf := &models.ConsumerConfig{
		Brokers:        appKonf.Kafka.Brokers,
		Name:           appKonf.Kafka.ConsumerName,
		Topic:          appKonf.Kafka.Topic,
		RecordsPerPoll: appKonf.Kafka.RecordsPerPoll,
	}

	txConsumer, err := kafka.NewConsumer(conf, logger, txProcessor, dlQueue, metrics)
	if err != nil {
		logger.Fatal("cannot create transactions consumer", zap.Error(err))
	}

	logger.Info("archiving feed records", zap.String("topic", conf.Topic), zap.String("collection", appKonf.Mongo.Collection))
	if err = txConsumer.Poll(ctx); err != nil {
		logger.Error("cannot poll records from topic", zap.Error(err))
	}
}
