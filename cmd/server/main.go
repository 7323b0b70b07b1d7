package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hostora/hostora/internal/api"
	v1 "github.com/hostora/hostora/internal/api/v1"
	"github.com/hostora/hostora/internal/config"
	"github.com/hostora/hostora/internal/logger"
	"github.com/hostora/hostora/internal/pdfgen"
	"github.com/hostora/hostora/internal/postgres"
	"github.com/hostora/hostora/internal/repository"
	"github.com/hostora/hostora/internal/service"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC

	// A missing .env is fine, the environment itself still applies
	_ = godotenv.Load()
}

func main() {
	app := fx.New(
		fx.Provide(
			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Postgres
			postgres.NewDB,

			// Repositories
			repository.NewInvoiceRepository,
			repository.NewContractRepository,
			repository.NewOrderRepository,
			repository.NewCustomerRepository,
			repository.NewCatalogRepository,
			repository.NewSettingsRepository,
			repository.NewAssembler,

			// Document rendering
			pdfgen.NewFSAssetProvider,
			pdfgen.NewGenerator,

			// Services
			service.NewDocumentService,

			// API
			provideHandlers,
			provideRouter,
		),
		fx.Invoke(startServer),
	)

	app.Run()
}

func provideHandlers(
	documentService service.DocumentService,
	logger *logger.Logger,
) api.Handlers {
	return api.Handlers{
		Document: v1.NewDocumentHandler(documentService, logger),
	}
}

func provideRouter(handlers api.Handlers) *gin.Engine {
	return api.NewRouter(handlers)
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	db *postgres.DB,
	log *logger.Logger,
) {
	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Infow("starting server", "address", cfg.Server.Address)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatalf("failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down server")
			if err := server.Shutdown(ctx); err != nil {
				log.Errorw("server shutdown failed", "error", err)
			}
			db.Close()
			return nil
		},
	})
}
