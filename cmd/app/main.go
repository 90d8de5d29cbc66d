package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"marketplace/cmd"
	httpin "marketplace/internal/adapters/in/http"
	notificationout "marketplace/internal/adapters/out/notification"
	"marketplace/internal/adapters/out/postgres/directoryrepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	redisout "marketplace/internal/adapters/out/redis"
	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
	"marketplace/internal/jobs"
	"marketplace/internal/pkg/logging"
	"marketplace/internal/pkg/metrics"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := logging.New(configs.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gormDB := mustGormOpen(configs)
	if err := gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &directoryrepo.StoreDTO{}, &directoryrepo.AccountDTO{}); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	notifier, closeNotifier := buildNotifier(configs, logger)
	defer closeNotifier()

	app, err := cmd.NewCompositionRoot(configs, gormDB, notifier, m, logger)
	if err != nil {
		log.Fatalf("failed to build application: %v", err)
	}

	idempotency, closeIdempotency := buildIdempotencyStore(configs)
	defer closeIdempotency()

	jobManager := jobs.NewJobManager(app.CreatePendingDigestJob(systemAdmin(configs)))
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	server := httpin.NewServer(httpin.Handlers{
		CreateOrdersFromCart: app.CreateCreateOrdersFromCartCommandHandler(),
		ConfirmOrder:         app.CreateConfirmOrderCommandHandler(),
		DenyOrder:            app.CreateDenyOrderCommandHandler(),
		ListOrders:           app.CreateListOrdersQueryHandler(),
		GetAllOrders:         app.CreateGetAllOrdersQueryHandler(),
		GetPendingOrders:     app.CreateGetPendingOrdersQueryHandler(),
	}, idempotency, m, logger)

	if err = startWebServer(ctx, server, configs.HTTPPort, logger); err != nil {
		log.Fatalf("web server: %v", err)
	}
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	return cmd.Config{
		HTTPPort:               envOr("HTTP_PORT", "8080"),
		DBHost:                 envOr("DB_HOST", "localhost"),
		DBPort:                 envOr("DB_PORT", "5432"),
		DBUser:                 os.Getenv("DB_USER"),
		DBPassword:             os.Getenv("DB_PASSWORD"),
		DBName:                 os.Getenv("DB_NAME"),
		DBSslMode:              envOr("DB_SSLMODE", "disable"),
		KafkaBrokers:           os.Getenv("KAFKA_BROKERS"),
		KafkaNotificationTopic: envOr("KAFKA_NOTIFICATION_TOPIC", "order-notifications"),
		RedisAddr:              os.Getenv("REDIS_ADDR"),
		IdempotencyTTL:         envDuration("IDEMPOTENCY_TTL", 10*time.Minute),
		Timezone:               envOr("TIMEZONE", "UTC"),
		NotifyTimeout:          envDuration("NOTIFY_TIMEOUT", 5*time.Second),
		CheckoutConcurrency:    envInt("CHECKOUT_CONCURRENCY", 4),
		DigestSchedule:         envOr("DIGEST_SCHEDULE", jobs.DefaultDigestSchedule),
		AdminEmail:             os.Getenv("ADMIN_EMAIL"),
		SystemAdminID:          os.Getenv("SYSTEM_ADMIN_ID"),
		LogLevel:               envOr("LOG_LEVEL", "info"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("invalid %s: %v", key, err)
	}
	return d
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid %s: %v", key, err)
	}
	return n
}

func mustGormOpen(configs cmd.Config) *gorm.DB {
	gormDB, err := gorm.Open(postgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	return gormDB
}

func buildNotifier(configs cmd.Config, logger *slog.Logger) (ports.Notifier, func()) {
	if configs.KafkaBrokers == "" {
		return notificationout.NewLogSink(logger), func() {}
	}
	writer := notificationout.NewWriter(configs.KafkaBrokers)
	return notificationout.NewKafkaSink(writer, configs.KafkaNotificationTopic, logger), func() {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close", "err", err)
		}
	}
}

func buildIdempotencyStore(configs cmd.Config) (httpin.IdempotencyStore, func()) {
	if configs.RedisAddr == "" {
		return nil, func() {}
	}
	client := redisout.NewClient(configs.RedisAddr)
	return redisout.NewIdempotencyStore(client, configs.IdempotencyTTL), func() { _ = client.Close() }
}

// systemAdmin is the actor the digest job queries as. Without SYSTEM_ADMIN_ID a
// fresh id is used for the process lifetime.
func systemAdmin(configs cmd.Config) actor.Actor {
	id := kernel.NewUUID()
	if configs.SystemAdminID != "" {
		parsed, err := kernel.UUIDFromString(configs.SystemAdminID)
		if err != nil {
			log.Fatalf("invalid SYSTEM_ADMIN_ID: %v", err)
		}
		id = parsed
	}
	a, err := actor.NewActor(id, actor.Admin)
	if err != nil {
		log.Fatalf("system admin: %v", err)
	}
	return a
}

func startWebServer(ctx context.Context, server *httpin.Server, port string, logger *slog.Logger) error {
	e := server.NewEcho()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", "port", port)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
