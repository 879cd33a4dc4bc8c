package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"pos/cmd"
	httpadapter "pos/internal/adapters/in/http"
	"pos/internal/adapters/out/postgres/orderrepo"
	"pos/internal/generated/servers"
	"pos/internal/jobs"

	_ "pos/internal/generated/docs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB, err := gorm.Open(gorm_postgres.Open(postgresDSN(configs)), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}, &orderrepo.ChangeDTO{})
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
	)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(app.CreateGetKitchenOrdersQueryHandler(), logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
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

func postgresDSN(configs cmd.Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "POS API running")
	})
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateAddItemCommandHandler(),
		app.CreateEditItemCommandHandler(),
		app.CreateVoidItemCommandHandler(),
		app.CreateUpdateItemStatusCommandHandler(),
		app.CreateSendOrderToKitchenCommandHandler(),
		app.CreateMarkKitchenViewedCommandHandler(),
		app.CreateGetAllOrdersQueryHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetKitchenOrdersQueryHandler(),
		app.CreateGetChangeLogQueryHandler(),
	)
	servers.RegisterHandlers(e, server)

	openAPIDoc, err := httpadapter.LoadOpenAPISpec(context.Background())
	if err != nil {
		log.Fatalf("Error loading OpenAPI spec: %v", err)
	}
	e.GET("/openapi.json", httpadapter.SpecHandler(openAPIDoc))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
