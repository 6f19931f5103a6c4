package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "idea_api/docs" // swagger docs registration
	"idea_api/internal/adapter/http/handlers"
	"idea_api/internal/adapter/http/middleware"
	repository2 "idea_api/internal/adapter/persistence/repository"
	"idea_api/internal/infrastructure/config"
	"idea_api/internal/infrastructure/database"
	"idea_api/internal/infrastructure/logging"
	"idea_api/internal/infrastructure/security"
	"idea_api/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

const shutdownTimeout = 10 * time.Second

// Run will start the server and block until SIGINT/SIGTERM.
func Run() {
	settings := config.Load()

	logging.Setup(logging.Config{Level: settings.LogLevel, File: settings.LogFile})
	defer logging.Drain()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(settings)

	srv := &http.Server{
		Addr:    ":" + strconv.Itoa(settings.Port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	logging.L().Info("server listening on " + srv.Addr)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to startup the application: %v", err.Error())
		}
	case <-ctx.Done():
		logging.L().Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logging.L().Error("server shutdown: " + err.Error())
		}
	}
}

func getRoutes(settings config.Settings) {
	pool := database.ConnectPostgres(context.Background(), settings)

	infraRepo := repository2.NewInfrastructurePgRepository(pool)
	orderRepo := repository2.NewOrderingPgRepository(pool)

	infraUseCase := usecase.NewInfrastructureUseCase(infraRepo)
	orderUseCase := usecase.NewOrderingUseCase(orderRepo)

	infraHandler := handlers.NewInfrastructureHandler(infraUseCase)
	orderHandler := handlers.NewOrderingHandler(orderUseCase)

	accessManager := security.NewStaticAccessManager()

	root := &router.RouterGroup
	addPingRoutes(root)
	addInfrastructureRoutes(root, infraHandler)
	addOrderingRoutes(root, orderHandler, accessManager)
}

func setMiddlewares() {
	// Recovery sits outermost so a panic re-raised by the tracer still maps
	// to a plain 500.
	router.Use(gin.Recovery())
	router.Use(middleware.Tracer())
}
