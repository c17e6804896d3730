package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	appanalytics "github.com/jhoicas/estoque-api/internal/application/analytics"
	"github.com/jhoicas/estoque-api/internal/application/inventory"
	"github.com/jhoicas/estoque-api/internal/application/usecase"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
	"github.com/jhoicas/estoque-api/pkg/metrics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Store         repository.InventoryReader
	ProductUC     *usecase.ProductUseCase
	CatalogUC     *usecase.CatalogUseCase
	AlertUC       *usecase.AlertUseCase
	FilterUC      *usecase.FilterUseCase
	ReportUC      *usecase.ReportUseCase
	Movements     *inventory.MovementUseCase
	Replenishment *inventory.ReplenishmentUseCase
	DashboardUC   *appanalytics.DashboardUseCase

	// Auth de operador: JWTSecret vacío deja las mutaciones abiertas.
	JWTSecret string
	JWTIssuer string

	Logger      zerolog.Logger
	HTTPMetrics *metrics.HTTPMetrics
	Gatherer    prometheus.Gatherer // nil = sin /metrics
}

// NewApp crea la aplicación fiber con el manejador de errores JSON.
func NewApp(name string) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:      name,
		ErrorHandler: ErrorHandler,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
}

// Router registra middlewares y rutas. Las lecturas son públicas; las mutaciones
// pasan por AuthMiddleware.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestLogger(deps.Logger, deps.HTTPMetrics))
	app.Use(recover.New())

	system := NewSystemHandler(deps.Store)
	app.Get("/health", system.Health)
	if deps.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	auth := AuthMiddleware(deps.JWTSecret, deps.JWTIssuer)
	api := app.Group("/api")

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard/summary", dashboardHandler.GetSummary)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.Movements)
	products.Get("/", productHandler.List)
	products.Post("/", auth, productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", auth, productHandler.Update)
	products.Delete("/:id", auth, productHandler.Delete)
	products.Get("/:id/movements", productHandler.Movements)

	// Filtro activo del listado
	filterHandler := NewFilterHandler(deps.FilterUC)
	api.Get("/filter", filterHandler.Get)
	api.Put("/filter", auth, filterHandler.Set)
	api.Delete("/filter", auth, filterHandler.Clear)

	// Movements y reposición
	inventoryHandler := NewInventoryHandler(deps.Movements, deps.Replenishment)
	api.Get("/movements", inventoryHandler.ListMovements)
	api.Post("/movements", auth, inventoryHandler.RegisterMovement)
	api.Get("/inventory/replenishment-list", inventoryHandler.GetReplenishmentList)

	// Categorías y proveedores
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	api.Get("/categories", catalogHandler.ListCategories)
	api.Post("/categories", auth, catalogHandler.CreateCategory)
	api.Get("/suppliers", catalogHandler.ListSuppliers)
	api.Post("/suppliers", auth, catalogHandler.CreateSupplier)

	// Alertas
	alertHandler := NewAlertHandler(deps.AlertUC)
	api.Get("/alerts", alertHandler.List)
	api.Patch("/alerts/:id/read", auth, alertHandler.MarkRead)

	// Reportes
	reportHandler := NewReportHandler(deps.ReportUC)
	api.Get("/reports/inventory.pdf", reportHandler.InventoryPDF)

	// Secciones reservadas
	api.Get("/users", NotImplemented("usuarios"))
	api.Get("/settings", NotImplemented("configuración"))
}
