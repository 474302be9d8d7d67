package main

import (
	// Go Internal Packages
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	// Local Packages
	config "fraud-dash/config"
	handlers "fraud-dash/handlers"
	kafka "fraud-dash/kafka"
	logging "fraud-dash/logging"
	models "fraud-dash/models"
	redis "fraud-dash/repositories/redis"
	actions "fraud-dash/services/actions"
	dashboard "fraud-dash/services/dashboard"
	feed "fraud-dash/services/feed"
	generator "fraud-dash/services/generator"

	// External Packages
	"github.com/alecthomas/kingpin/v2"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
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

	// Unmarshalling config into struct and applying secrets
	appKonf, err := config.Unmarshal(k)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	if err = appKonf.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if !appKonf.IsProdMode {
		k.Print()
	}

	logger, err := logging.New(appKonf.Logger.Level, appKonf.Application)
	if err != nil {
		log.Fatalf("Error building logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	router := mux.NewRouter()
	var feedOpts []feed.Option

	// Redis keeps the feed across deactivation and holds records no sink accepted
	if appKonf.Redis.Enabled {
		redisClient, err := redis.Connect(ctx, appKonf.Redis.URI, appKonf.Redis.Password)
		if err != nil {
			logger.Fatal("cannot create redis client", zap.Error(err))
		}
		defer redisClient.Close()

		feedOpts = append(feedOpts,
			feed.WithSnapshotStore(redis.NewSnapshotStore(redisClient, appKonf.Redis.SnapshotKey)),
			feed.WithDeadLetterQueue(redis.NewDeadLetterQueue(redisClient, logger, appKonf.Redis.DLQPrefix)),
		)
	}

	if appKonf.Kafka.Publish {
		metrics := kprom.NewMetrics("fraud_dash")
		producer, err := kafka.NewProducer(&models.ProducerConfig{
			Brokers: appKonf.Kafka.Brokers,
			Topic:   appKonf.Kafka.Topic,
		}, metrics, logger)
		if err != nil {
			logger.Fatal("cannot create kafka producer", zap.Error(err))
		}
		defer func() {
			flushCtx, cancel := context.WithTimeout(context.Background(), appKonf.HTTP.ShutdownTimeout)
			defer cancel()
			producer.Close(flushCtx)
		}()

		feedOpts = append(feedOpts, feed.WithSinks(producer))
		router.Handle("/metrics", metrics.Handler())
	}

	gen := generator.NewSeeded(appKonf.Feed.Seed, generator.Options{
		AmountMin: appKonf.Feed.AmountMin,
		AmountMax: appKonf.Feed.AmountMax,
		UserIDMax: appKonf.Feed.UserIDMax,
	})
	liveFeed := feed.NewLiveFeed(logger, gen, feed.Options{
		Capacity:          appKonf.Feed.Capacity,
		InitialSize:       appKonf.Feed.InitialSize,
		Interval:          appKonf.Feed.Interval,
		PreserveOnRestart: appKonf.Feed.PreserveOnRestart,
		SinkTimeout:       appKonf.Feed.SinkTimeout,
	}, feedOpts...)

	hub := handlers.NewHub(ctx, logger, liveFeed, appKonf.Feed.AlwaysOn)
	hub.Open()

	catalog := dashboard.NewCatalog()
	handlers.NewWebSocketHandler(logger, hub, appKonf.HTTP.AllowedOrigins).RegisterRoutes(router)
	handlers.NewHTTPHandler(logger, catalog, hub, actions.NewLoggingHook(logger)).RegisterRoutes(router)
	handlers.NewPageHandler(logger, catalog).RegisterRoutes(router)

	c := cors.New(cors.Options{
		AllowedOrigins: appKonf.HTTP.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})

	server := &http.Server{
		Addr:         ":" + appKonf.HTTP.Port,
		Handler:      c.Handler(router),
		ReadTimeout:  appKonf.HTTP.ReadTimeout,
		WriteTimeout: appKonf.HTTP.WriteTimeout,
		IdleTimeout:  appKonf.HTTP.IdleTimeout,
	}

	go func() {
		logger.Info("starting server", zap.String("address", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")

	// Stop the feed first so open streams end and the ticker is released
	hub.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), appKonf.HTTP.ShutdownTimeout)
	defer cancel()
	if err = server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
		return
	}
	logger.Info("server exited properly")
}
