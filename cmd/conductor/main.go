package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"scenarios-conductor/internal/api/routes"
	"scenarios-conductor/internal/config"
	"scenarios-conductor/internal/events"
	"scenarios-conductor/internal/events/handlers"
	"scenarios-conductor/internal/logger"
	"scenarios-conductor/internal/service"
	"scenarios-conductor/internal/urban"
)

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Shared HTTP client for the Urban API
	urbanClient := urban.NewHTTPClient(cfg.UrbanAPIHost, cfg.UrbanAPIToken, &urban.HTTPClientOptions{
		PingTimeout:      cfg.PingTimeout(),
		OperationTimeout: cfg.OperationTimeout(),
	})
	defer urbanClient.Close()

	if urbanClient.IsAlive(ctx) {
		if version, err := urbanClient.GetVersion(ctx); err == nil {
			logrus.WithField("version", version).Info("Urban API is alive")
		}
	} else {
		logrus.Warn("Urban API is not reachable at startup")
	}

	// Metrics registry shared by the handlers and the scrape endpoint
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// Event stream consumer
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer rdb.Close()

	scenarioService := service.NewBaseScenarioService(urbanClient)

	consumer := events.NewConsumer(rdb, cfg.EventStream, cfg.ConsumerGroup, cfg.ConsumerName)
	consumer.OnError(func(ctx context.Context, err error, eventType string, payload []byte, messageID string) {
		logger.WithContext(ctx).WithError(err).WithFields(map[string]interface{}{
			"event_type": eventType,
			"message_id": messageID,
		}).Error("event left pending for redelivery")
	})

	if err := consumer.Register(handlers.NewProjectCreated(scenarioService, registry)); err != nil {
		logrus.Fatal("Failed to register handler:", err)
	}
	if err := consumer.Register(handlers.NewRegionalScenarioCreated(scenarioService, registry)); err != nil {
		logrus.Fatal("Failed to register handler:", err)
	}

	// Start metrics/ops server if not disabled in config
	if !cfg.MetricsDisable {
		if cfg.IsProduction() {
			gin.SetMode(gin.ReleaseMode)
		}
		router := routes.SetupRoutes(urbanClient, registry)
		go func() {
			logrus.Infof("Starting metrics server on port %s", cfg.MetricsPort)
			if err := router.Run(":" + cfg.MetricsPort); err != nil {
				logrus.Fatal("Failed to start metrics server:", err)
			}
		}()
	}

	if err := consumer.Start(ctx); err != nil {
		logrus.Fatal("Failed to start consumer:", err)
	}

	// Block until interrupted, then shut down gracefully
	<-ctx.Done()
	logrus.Info("Shutting down")

	shutdownCtx := context.Background()
	if err := consumer.Stop(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Consumer shutdown reported errors")
	}
}
