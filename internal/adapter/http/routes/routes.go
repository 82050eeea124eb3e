package routes

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "mvz_quote/docs" // generated by swag init
	"mvz_quote/internal/adapter/document"
	"mvz_quote/internal/adapter/http/handlers"
	"mvz_quote/internal/adapter/persistence/repository"
	"mvz_quote/internal/config"
	"mvz_quote/internal/locale"
	"mvz_quote/internal/observability"
	"mvz_quote/internal/usecase"
)

// Run wires the service, serves HTTP and the autosave worker until ctx is
// done, then shuts both down gracefully.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	catalog, err := locale.NewCatalog()
	if err != nil {
		return err
	}

	metrics := observability.NewNopMetrics()
	if cfg.Observability.Metrics.Enabled {
		metrics = observability.InitMetrics(prometheus.DefaultRegisterer)
	}

	snapshots, closeSnapshots, err := newSnapshotStore(ctx, cfg.Snapshot, logger)
	if err != nil {
		return err
	}
	defer closeSnapshots()

	sessions := repository.NewSessionMemoryRepository()
	renderer := document.NewPDFRenderer(cfg.Business, catalog, logger)

	quoteUseCase := usecase.NewQuoteSessionUseCase(sessions, snapshots, renderer, catalog, usecase.QuoteSessionSettings{
		DefaultLocale:   cfg.Form.Locale,
		SnapshotKey:     cfg.Form.SnapshotKey,
		NotificationTTL: cfg.Form.NotificationTTL,
		ExportDelay:     cfg.Form.ExportDelay,
		ValidityDays:    cfg.Business.ValidityDays,
	}, logger, metrics)
	autosave := usecase.NewAutosaveUseCase(sessions, snapshots, cfg.Form.SnapshotKey,
		cfg.Form.AutosaveInterval, cfg.Session.TTL, logger, metrics)

	quoteHandler := handlers.NewQuoteSessionHandler(quoteUseCase, logger, cfg.Form.LiveDebounce)
	router := NewRouter(cfg, logger, metrics, quoteHandler)

	srv := &http.Server{Addr: cfg.Addr(), Handler: router}

	workerCtx, stopWorker := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		autosave.Run(workerCtx)
	}()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("[http][startup] listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err = <-serveErr:
	}

	logger.Info("[http][shutdown] stopping")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
		logger.Error("[http][shutdown] forced", zap.Error(shutdownErr))
	}

	stopWorker()
	wg.Wait()
	return err
}

// NewRouter builds the gin engine with middleware and every route.
func NewRouter(cfg *config.Config, logger *zap.Logger, metrics *observability.Metrics, quoteHandler *handlers.QuoteSessionHandler) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, logger, metrics)

	if cfg.Observability.Metrics.Enabled {
		router.GET(cfg.Observability.Metrics.Path, gin.WrapH(observability.Handler()))
	}

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, quoteHandler)
	return router
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger, metrics *observability.Metrics) {
	router.Use(observability.Recovery(logger))
	router.Use(observability.RequestLogger(logger))
	router.Use(metrics.Middleware())
}
