package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"cctexpress/cmd"
	"cctexpress/internal/adapters/out/postgres/bidrepo"
	"cctexpress/internal/adapters/out/postgres/courierrepo"
	"cctexpress/internal/adapters/out/postgres/customerrepo"
	"cctexpress/internal/adapters/out/postgres/ledgerrepo"
	"cctexpress/internal/adapters/out/postgres/orderrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// TranslateError turns driver-level unique violations into
	// gorm.ErrDuplicatedKey, which the bid repository relies on.
	gormDB, err := gorm.Open(postgresdriver.Open(postgresDSN(configs)), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := migrateDatabase(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, logger)
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			logger.Error("Error closing composition root", "error", closeErr)
		}
	}()

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:              goDotEnvVariable("HTTP_PORT"),
		DBHost:                goDotEnvVariable("DB_HOST"),
		DBPort:                goDotEnvVariable("DB_PORT"),
		DBUser:                goDotEnvVariable("DB_USER"),
		DBPassword:            goDotEnvVariable("DB_PASSWORD"),
		DBName:                goDotEnvVariable("DB_NAME"),
		DBSslMode:             goDotEnvVariable("DB_SSLMODE"),
		KafkaBrokers:          goDotEnvVariable("KAFKA_BROKERS"),
		KafkaOrderStatusTopic: goDotEnvVariable("KAFKA_ORDER_STATUS_TOPIC"),
		RoutingBaseURL:        goDotEnvVariable("ROUTING_BASE_URL"),
		RoutingAPIKey:         goDotEnvVariable("ROUTING_API_KEY"),
		BiddingAutoOpen:       goDotEnvBool("BIDDING_AUTO_OPEN"),
		BiddingAutoResolve:    goDotEnvBool("BIDDING_AUTO_RESOLVE"),
		MetricsEnabled:        goDotEnvBool("METRICS_ENABLED"),
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

// goDotEnvBool reads a boolean variable; unset or unparsable values are
// treated as false so optional features stay off unless asked for.
func goDotEnvBool(key string) bool {
	value, err := strconv.ParseBool(goDotEnvVariable(key))
	if err != nil {
		return false
	}
	return value
}

func postgresDSN(configs cmd.Config) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)
}

func migrateDatabase(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&courierrepo.CourierDTO{},
		&bidrepo.BidDTO{},
		&ledgerrepo.LedgerEntryDTO{},
	)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := app.CreateServer()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
