package main

import (
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"strconv"
	"time"

	"foodorder/cmd"
	httpadapter "foodorder/internal/adapters/in/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB, err := gorm.Open(postgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	root := cmd.NewCompositionRoot(configs, gormDB, logger)

	go root.OperatorHub().Run()

	jobManager := root.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Fatalf("Error loading .env file")
	}

	config := cmd.Config{
		HTTPPort:             os.Getenv("HTTP_PORT"),
		DBHost:               os.Getenv("DB_HOST"),
		DBPort:               os.Getenv("DB_PORT"),
		DBUser:               os.Getenv("DB_USER"),
		DBPassword:           os.Getenv("DB_PASSWORD"),
		DBName:               os.Getenv("DB_NAME"),
		DBSslMode:            os.Getenv("DB_SSLMODE"),
		GeoBaseURL:           os.Getenv("GEO_BASE_URL"),
		GeoAPIKey:            os.Getenv("GEO_API_KEY"),
		ShopAddress:          os.Getenv("SHOP_ADDRESS"),
		DeliveryRadiusMeters: envInt("DELIVERY_RADIUS_METERS", 5000),
		PaymentSweepSpec:     envOrDefault("PAYMENT_SWEEP_SPEC", "0 * * * * *"),
		DeliverySweepSpec:    envOrDefault("DELIVERY_SWEEP_SPEC", "0 0 1 * * *"),
		PaymentTimeout:       envDuration("PAYMENT_TIMEOUT", 15*time.Minute),
		DeliveryTimeout:      envDuration("DELIVERY_TIMEOUT", 60*time.Minute),
	}
	return config
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return parsed
}

func envDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return parsed
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	server := httpadapter.NewServer(
		root.CreateSubmitOrderCommandHandler(),
		root.CreatePayOrderCommandHandler(),
		root.CreateConfirmOrderCommandHandler(),
		root.CreateRejectOrderCommandHandler(),
		root.CreateCancelOrderByMerchantCommandHandler(),
		root.CreateCancelOrderByUserCommandHandler(),
		root.CreateDispatchOrderCommandHandler(),
		root.CreateCompleteOrderCommandHandler(),
		root.CreateRemindOrderCommandHandler(),
		root.CreateGetOrderDetailsQueryHandler(),
		root.CreateGetUserOrdersQueryHandler(),
		root.CreateSearchOrdersQueryHandler(),
		root.CreateGetOrderStatisticsQueryHandler(),
		root.CreateGetDailySummaryQueryHandler(),
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})
	e.GET("/ws/operators", echo.WrapHandler(nethttp.HandlerFunc(root.OperatorHub().ServeWS)))

	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
