package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	appanalytics "github.com/jhoicas/estoque-api/internal/application/analytics"
	"github.com/jhoicas/estoque-api/internal/application/inventory"
	"github.com/jhoicas/estoque-api/internal/application/usecase"
	domaininventory "github.com/jhoicas/estoque-api/internal/domain/inventory"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
	"github.com/jhoicas/estoque-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/estoque-api/internal/infrastructure/pdf"
	"github.com/jhoicas/estoque-api/internal/infrastructure/postgres"
	"github.com/jhoicas/estoque-api/internal/infrastructure/seed"
	httpRouter "github.com/jhoicas/estoque-api/internal/interfaces/http"
	"github.com/jhoicas/estoque-api/pkg/config"
	"github.com/jhoicas/estoque-api/pkg/logger"
	"github.com/jhoicas/estoque-api/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		App:   cfg.App.Name,
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("seed", cfg.Seed.Source).
		Bool("auth", cfg.Auth.Enabled()).
		Msg("iniciando aplicación")

	ctx := context.Background()
	snapshot, err := loadSnapshot(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("carga del snapshot inicial")
	}

	// Métricas: registro propio (sin el global) con los collectors de proceso y runtime.
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	inventoryMetrics := metrics.NewInventoryMetrics(reg)
	httpMetrics := metrics.NewHTTPMetrics(reg)

	store := memory.NewStore(snapshot,
		memory.WithLogger(log.Named("store")),
		memory.WithObserver(inventoryMetrics),
		memory.WithAlertRule(domaininventory.AlertRule{ExpirationWindowDays: cfg.Inventory.AlertExpiryDays}),
	)

	productUC := usecase.NewProductUseCase(store, cfg.Inventory.SubmitDelay, log.Named("products"))
	catalogUC := usecase.NewCatalogUseCase(store, log.Named("catalog"))
	alertUC := usecase.NewAlertUseCase(store)
	filterUC := usecase.NewFilterUseCase(store)
	movementUC := inventory.NewMovementUseCase(store, cfg.Inventory.SubmitDelay, log.Named("movements"))
	replenishmentUC := inventory.NewReplenishmentUseCase(store)
	dashboardUC := appanalytics.NewDashboardUseCase(store)

	// PDF: reporte de inventario
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	reportUC := usecase.NewReportUseCase(store, pdfGenerator, cfg.App.Name)

	app := httpRouter.NewApp(cfg.App.Name)

	// Swagger UI: http://localhost:<port>/docs
	if cfg.Docs.Enabled {
		if _, err := os.Stat(cfg.Docs.Path); err != nil {
			log.Warn().Err(err).Str("path", cfg.Docs.Path).Msg("swagger.json no disponible; /docs desactivado")
		} else {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.Docs.Path,
				Path:     "docs",
				Title:    cfg.App.Name + " API",
			}))
		}
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		Store:         store,
		ProductUC:     productUC,
		CatalogUC:     catalogUC,
		AlertUC:       alertUC,
		FilterUC:      filterUC,
		ReportUC:      reportUC,
		Movements:     movementUC,
		Replenishment: replenishmentUC,
		DashboardUC:   dashboardUC,
		JWTSecret:     cfg.Auth.Secret,
		JWTIssuer:     cfg.Auth.Issuer,
		Logger:        log.Named("http"),
		HTTPMetrics:   httpMetrics,
		Gatherer:      reg,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// loadSnapshot lee el estado inicial del fixture o, con SEED_SOURCE=postgres, de la base.
// El pool se cierra al terminar: la base solo se lee al arrancar.
func loadSnapshot(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.Snapshot, error) {
	if cfg.Seed.Source != config.SeedSourcePostgres {
		return seed.NewFixtureSource(cfg.Seed.File, log.Named("seed")).Load(ctx)
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return repository.Snapshot{}, err
	}
	defer pool.Close()

	snapshot, err := postgres.ReadSnapshot(ctx, pool)
	if err != nil {
		return repository.Snapshot{}, err
	}
	log.Info().
		Int("products", len(snapshot.Products)).
		Int("movements", len(snapshot.Movements)).
		Msg("snapshot leído de PostgreSQL")
	return snapshot, nil
}
