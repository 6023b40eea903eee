package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	_ "commerce_2checkout/docs"
	"commerce_2checkout/internal/adapter/http/routes"
	"commerce_2checkout/internal/config"
	"commerce_2checkout/internal/infrastructure/observability"

	_ "github.com/joho/godotenv/autoload"
)

// @title           2Checkout Offsite Checkout API
// @version         1.0
// @description     Builds 2Checkout hosted-checkout redirects and verifies the payer's return.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	configPath := flag.String("conf", "config.yml", "path to the optional YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx := context.Background()
	shutdown, err := observability.Setup(ctx, cfg.OtelEnabled)
	if err != nil {
		log.Fatalf("failed to setup observability: %v", err)
	}

	runErr := routes.Run(cfg)
	if err := shutdown(ctx); err != nil {
		slog.Error("observability shutdown", "err", err)
	}
	if runErr != nil {
		slog.Error("server stopped", "err", runErr)
		os.Exit(1)
	}
}
