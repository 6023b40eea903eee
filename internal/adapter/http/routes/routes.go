package routes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "commerce_2checkout/docs" // swagger docs
	"commerce_2checkout/internal/adapter/http/handlers"
	"commerce_2checkout/internal/config"
	"commerce_2checkout/internal/infrastructure/payments"
	"commerce_2checkout/internal/infrastructure/security"
	"commerce_2checkout/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const shutdownTimeout = 10 * time.Second

// Run wires the checkout service from cfg and serves it until SIGINT or SIGTERM.
func Run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	checkoutHandler, closeStore, err := buildCheckoutHandler(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	router := NewRouter(checkoutHandler)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           otelhttp.NewHandler(router, "commerce-2checkout"),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("[http] listening", "addr", srv.Addr, "store", cfg.Store.Backend, "environment", cfg.Environment)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to startup the application: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter registers middlewares, swagger and the /v1 routes.
func NewRouter(checkoutHandler *handlers.CheckoutHandler) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCheckoutRoutes(v1, checkoutHandler)
	return router
}

func buildCheckoutHandler(ctx context.Context, cfg *config.Config) (*handlers.CheckoutHandler, func(), error) {
	gatewayCfg, err := cfg.GatewayConfiguration()
	if err != nil {
		return nil, nil, err
	}
	environment, err := cfg.GatewayEnvironment()
	if err != nil {
		return nil, nil, err
	}
	rounding, err := cfg.RoundingPolicy()
	if err != nil {
		return nil, nil, err
	}

	repo, closeStore, err := newCorrelationRepository(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	builder := usecase.NewRequestBuilder(environment, rounding)
	tracker := usecase.NewCorrelationTracker(security.NewTokenGenerator(cfg.TokenKey))
	checkoutUseCase := usecase.NewCheckoutUseCase(gatewayCfg, builder, tracker, repo, payments.NewTwoCheckoutReturnKeyVerifier())

	return handlers.NewCheckoutHandler(checkoutUseCase), closeStore, nil
}

func setMiddlewares(router *gin.Engine) {
	router.Use(requestID())
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		slog.ErrorContext(c.Request.Context(), "[http] recovered from panic", "panic", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
