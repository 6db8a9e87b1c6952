package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"ordering/cmd"
	httpin "ordering/internal/adapters/in/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()

	app := cmd.NewCompositionRoot(configs)
	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Infof("No .env file found, using environment defaults")
	}

	return cmd.Config{
		HTTPPort:       goDotEnvVariable("HTTP_PORT", "8080"),
		DiscountPolicy: goDotEnvVariable("DISCOUNT_POLICY", "local"),
	}
}

func goDotEnvVariable(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateAddItemCommandHandler(),
		app.CreateChangeItemQuantityCommandHandler(),
		app.CreateRemoveItemCommandHandler(),
		app.CreateApplyDiscountCommandHandler(),
		app.CreateConfirmOrderCommandHandler(),
		app.CreateGetOrderSummaryQueryHandler(),
		logger,
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
