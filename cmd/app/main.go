package main

import (
	"fmt"
	nethttp "net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"foodorder/cmd"
	"foodorder/internal/adapters/in/http"
	"foodorder/internal/adapters/out/rabbitmq"
	"foodorder/internal/jobs"
	"foodorder/internal/pkg/logging"
)

func main() {
	configs := cmd.LoadConfig()
	logger := logging.New()

	if err := cmd.CreateDBIfNotExists(configs); err != nil {
		log.Fatalf("Database bootstrap failed: %v", err)
	}

	gormDB, err := cmd.OpenDB(configs)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}

	notifier, err := rabbitmq.NewNotifier(configs.RabbitMQURL)
	if err != nil {
		log.Fatalf("RabbitMQ connection failed: %v", err)
	}
	defer notifier.Close()

	root := cmd.NewCompositionRoot(configs, gormDB, notifier)

	jobManager := jobs.NewJobManager(
		root.CreateGetClaimableOrdersQueryHandler(),
		root.CreateGetAwaitingReceiptOrdersQueryHandler(),
		notifier,
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	server := http.NewServer(
		root.CreatePlaceOrderCommandHandler(),
		root.CreateConfirmOrdersCommandHandler(),
		root.CreateDeleteOrderCommandHandler(),
		root.CreateDecideOrderCommandHandler(),
		root.CreateDispatchOrderCommandHandler(),
		root.CreateClaimDeliveryCommandHandler(),
		root.CreateAdvanceDeliveryCommandHandler(),
		root.CreateConfirmReceiptCommandHandler(),
		root.CreateAddReviewCommandHandler(),
		root.CreateGetCustomerOrdersQueryHandler(),
		root.CreateGetMerchantBoardQueryHandler(),
		root.CreateGetClaimableOrdersQueryHandler(),
		root.CreateGetReportQueryHandler(),
		root.CreateGetReportsByTypeQueryHandler(),
		root.CreateGetReviewsQueryHandler(),
	)

	e := echo.New()
	e.Use(middleware.Recover())
	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
