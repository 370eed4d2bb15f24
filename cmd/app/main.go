package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"pedidos/cmd"
	httpin "pedidos/internal/adapters/in/http"
	"pedidos/internal/adapters/out/postgres/creditrepo"
	"pedidos/internal/adapters/out/postgres/deliveryrepo"
	"pedidos/internal/adapters/out/postgres/orderrepo"
	"pedidos/internal/adapters/out/postgres/skurepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&deliveryrepo.DeliveryDTO{},
		&deliveryrepo.EvidenceDTO{},
		&deliveryrepo.IncidentDTO{},
		&creditrepo.CreditDTO{},
		&creditrepo.PaymentDTO{},
		&skurepo.SKUDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func startWebServer(app cmd.CompositionRoot, port string) {
	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateValidateOrderCommandHandler(),
		app.CreateReviewAdjustmentsCommandHandler(),
		app.CreateReconcilePromotionsCommandHandler(),
		app.CreateAssignRouteCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateStartDeliveryCommandHandler(),
		app.CreateCompleteDeliveryCommandHandler(),
		app.CreateMarkNoDeliveryCommandHandler(),
		app.CreateCancelDeliveryCommandHandler(),
		app.CreateAddEvidenceCommandHandler(),
		app.CreateReportIncidentCommandHandler(),
		app.CreateResolveIncidentCommandHandler(),
		app.CreateApproveCreditCommandHandler(),
		app.CreateRejectCreditCommandHandler(),
		app.CreateRegisterPaymentCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetActiveDeliveriesQueryHandler(),
		app.CreateGetCreditStatementQueryHandler(),
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
