package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"oms/cmd"
	httpadapter "oms/internal/adapters/in/http"
	"oms/internal/adapters/out/postgres/itemrepo"
	"oms/internal/adapters/out/postgres/orderrepo"
	"oms/internal/core/application/usecases/commands"
	"oms/internal/jobs"

	"log/slog"
)

const (
	seedMaxAttempts = 30
	seedRetryDelay  = 2 * time.Second
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	mustSeedItemCatalog(&app)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateAdvanceOrdersCommandHandler(),
		app.CreateSeedOrdersCommandHandler(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	return cmd.Config{
		HTTPPort:   os.Getenv("HTTP_PORT"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSslMode:  os.Getenv("DB_SSLMODE"),
		APIKey:     os.Getenv("API_KEY"),
	}
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	if err = gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &itemrepo.ItemDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

// mustSeedItemCatalog ensures the item catalog exists before the service
// accepts traffic. The database may still be warming up on first deploy, so
// seeding is retried before giving up.
func mustSeedItemCatalog(app *cmd.CompositionRoot) {
	handler := app.CreateSeedItemsCommandHandler()
	ctx := context.Background()

	var err error
	for attempt := 1; attempt <= seedMaxAttempts; attempt++ {
		if err = handler.Handle(ctx, commands.NewSeedItemsCommand()); err == nil {
			return
		}

		log.Warnf("Item catalog seeding attempt %d/%d failed: %v", attempt, seedMaxAttempts, err)
		time.Sleep(seedRetryDelay)
	}

	log.Fatalf("Item catalog seeding failed after %d attempts: %v", seedMaxAttempts, err)
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateProcessOrderCommandHandler(),
		app.CreateSimulateProcessingCommandHandler(),
		app.CreateSeedOrdersCommandHandler(),
		app.CreateGetOrdersQueryHandler(),
		app.CreateGetOrderByIDQueryHandler(),
		app.CreateGetRecentOrdersQueryHandler(),
	)

	e := echo.New()
	e.Use(echomiddleware.Recover())
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1", httpadapter.APIKeyAuth(configs.APIKey))
	server.RegisterRoutes(api)

	go func() {
		if serveErr := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); serveErr != nil {
			e.Logger.Info("Shutting down the server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
}
