package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"coordinator/cmd"
	"coordinator/internal/adapters/out/kafka"
	"coordinator/internal/adapters/out/postgres/orderrepo"
	"coordinator/internal/adapters/out/postgres/progressrepo"
	"coordinator/internal/adapters/out/postgres/requestrepo"
	"coordinator/internal/adapters/out/postgres/trackingrepo"
	"coordinator/internal/adapters/out/postgres/volunteerrepo"
	rediscache "coordinator/internal/adapters/out/redis"
	"coordinator/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultStaleRequestHours = 24

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrate(gormDB)

	notifier, err := kafka.NewNotifier(
		[]string{configs.KafkaHost},
		configs.KafkaNotificationsTopic,
		logger,
	)
	if err != nil {
		log.Fatalf("Failed to connect Kafka producer: %v", err)
	}
	defer func() { _ = notifier.Close() }()

	cache := rediscache.NewClient(configs.RedisAddr)

	app := cmd.NewCompositionRoot(configs, gormDB, notifier, cache, logger)

	jobManager := jobs.NewJobManager(
		app.CreatePendingDeliveryRequestsQueryHandler(),
		notifier,
		staleThreshold(configs),
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                goDotEnvVariable("HTTP_PORT"),
		DBHost:                  goDotEnvVariable("DB_HOST"),
		DBPort:                  goDotEnvVariable("DB_PORT"),
		DBUser:                  goDotEnvVariable("DB_USER"),
		DBPassword:              goDotEnvVariable("DB_PASSWORD"),
		DBName:                  goDotEnvVariable("DB_NAME"),
		DBSslMode:               goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:               goDotEnvVariable("KAFKA_HOST"),
		KafkaNotificationsTopic: goDotEnvVariable("KAFKA_NOTIFICATIONS_TOPIC"),
		RedisAddr:               goDotEnvVariable("REDIS_ADDR"),
		StaleRequestHours:       goDotEnvVariable("STALE_REQUEST_HOURS"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&volunteerrepo.VolunteerDTO{},
		&requestrepo.RequestDTO{},
		&trackingrepo.EventDTO{},
		&progressrepo.ChallengeProgressDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func staleThreshold(configs cmd.Config) time.Duration {
	hours, err := strconv.Atoi(configs.StaleRequestHours)
	if err != nil || hours <= 0 {
		hours = defaultStaleRequestHours
	}
	return time.Duration(hours) * time.Hour
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	app.CreateServer().RegisterRoutes(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
}
