package main

import (
	"fmt"
	"log/slog"
	"os"

	"freight/cmd"
	freighthttp "freight/internal/adapters/in/http"
	"freight/internal/adapters/out/postgres/carrierrepo"
	"freight/internal/adapters/out/postgres/locationrepo"
	"freight/internal/adapters/out/postgres/orderrepo"
	"freight/internal/adapters/out/postgres/routerepo"
	"freight/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreateGetAvailableOrdersQueryHandler(),
		app.CreateGetAllOrdersQueryHandler(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&carrierrepo.CarrierDTO{},
		&routerepo.RouteDTO{},
		&locationrepo.LocationDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := freighthttp.NewServer(freighthttp.Handlers{
		CreateOrder:     app.CreateCreateOrderCommandHandler(),
		ClaimOrder:      app.CreateClaimOrderCommandHandler(),
		TransitionOrder: app.CreateTransitionOrderCommandHandler(),
		RegisterCarrier: app.CreateRegisterCarrierCommandHandler(),
		CreateRoute:     app.CreateCreateRouteCommandHandler(),
		DeactivateRoute: app.CreateDeactivateRouteCommandHandler(),
		CreateLocation:  app.CreateCreateLocationCommandHandler(),

		AvailableOrders: app.CreateGetAvailableOrdersQueryHandler(),
		ClientOrders:    app.CreateGetClientOrdersQueryHandler(),
		CarrierOrders:   app.CreateGetCarrierOrdersQueryHandler(),
		AllOrders:       app.CreateGetAllOrdersQueryHandler(),
		ActiveRoutes:    app.CreateListActiveRoutesQueryHandler(),
		Locations:       app.CreateListLocationsQueryHandler(),
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
