package http

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	appanalytics "github.com/jhoicas/inventario-hogar/internal/application/analytics"
	"github.com/jhoicas/inventario-hogar/internal/application/auth"
	"github.com/jhoicas/inventario-hogar/internal/application/inventory"
	"github.com/jhoicas/inventario-hogar/internal/application/notification"
	"github.com/jhoicas/inventario-hogar/internal/application/usecase"
)

// RouterDeps dependencias para el router. Metrics, MetricsHandler y UploadsDir son opcionales.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	ProfileUC     *usecase.ProfileUseCase
	ItemUC        *usecase.ItemUseCase
	ImportUC      *inventory.ImportUseCase
	CategoryUC    *usecase.CategoryUseCase
	TransactionUC *usecase.TransactionUseCase
	DashboardUC   *appanalytics.DashboardUseCase
	ReportUC      *inventory.ReportUseCase
	PreviewUC     *notification.PreviewUseCase

	Metrics        HTTPObserver
	MetricsHandler http.Handler
	UploadsDir     string
	UploadsURL     string

	ServiceName string
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Metrics != nil {
		app.Use(MetricsMiddleware(deps.Metrics))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	})
	if deps.MetricsHandler != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.MetricsHandler))
	}
	if deps.UploadsDir != "" && deps.UploadsURL != "" {
		app.Static(deps.UploadsURL, deps.UploadsDir)
	}

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/password-reset", authHandler.RequestPasswordReset)
	authGroup.Post("/password-reset/confirm", authHandler.ConfirmPasswordReset)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	profile := protected.Group("/profile")
	profileHandler := NewProfileHandler(deps.ProfileUC)
	profile.Get("/", profileHandler.Get)
	profile.Put("/", profileHandler.Update)
	profile.Post("/logo", profileHandler.UploadLogo)

	// Las rutas fijas van antes de /:id
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC, deps.ImportUC)
	items.Get("/", itemHandler.List)
	items.Post("/", itemHandler.Create)
	items.Post("/bulk", itemHandler.Bulk)
	items.Post("/import", itemHandler.Import)
	items.Get("/import/sample", itemHandler.Sample)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)
	items.Post("/:id/use", itemHandler.Use)

	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Put("/:id", categoryHandler.Rename)
	categories.Delete("/:id", categoryHandler.Delete)

	transactions := protected.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.TransactionUC)
	transactions.Get("/", transactionHandler.List)
	transactions.Post("/", transactionHandler.Create)

	protected.Get("/dashboard", NewDashboardHandler(deps.DashboardUC).GetSummary)

	reportHandler := NewReportHandler(deps.ReportUC, deps.PreviewUC)
	protected.Get("/reports/inventory.pdf", reportHandler.InventoryPDF)
	protected.Post("/notifications/low-stock/preview", reportHandler.LowStockPreview)
}
