package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sushiymas/inventario-api/internal/application/auth"
	"github.com/sushiymas/inventario-api/internal/application/inventory"
	"github.com/sushiymas/inventario-api/internal/application/notification"
	"github.com/sushiymas/inventario-api/internal/application/report"
	"github.com/sushiymas/inventario-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	CategoryUC     *usecase.CategoryUseCase
	ProductUC      *usecase.ProductUseCase
	DashboardUC    *usecase.DashboardUseCase
	StockLedger    *inventory.StockLedger
	ReportCompiler *report.Compiler
	WeeklyUC       *report.WeeklyReportUseCase
	PDFGenerator   report.PDFGenerator
	Sink           *notification.Sink
	RestaurantName string
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Delete("/:id", categoryHandler.Delete)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.StockLedger)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Post("/:id/stock", productHandler.AdjustStock)
	products.Delete("/:id", productHandler.Delete)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/stats", dashboardHandler.Stats)
	dashboard.Get("/charts/categories", dashboardHandler.CategoryChart)
	dashboard.Get("/charts/stock", dashboardHandler.StockChart)

	// Reports (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportCompiler, deps.WeeklyUC, deps.PDFGenerator, deps.RestaurantName)
	reports.Get("/", reportHandler.Get)
	reports.Get("/pdf", reportHandler.GetPDF)

	// Weekly reports (protegido)
	weekly := protected.Group("/weekly-reports")
	weekly.Get("/", reportHandler.ListWeekly)
	weekly.Post("/generate", reportHandler.GenerateWeekly)
	weekly.Get("/:id/pdf", reportHandler.WeeklyPDF)

	// Notifications (protegido)
	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.Sink)
	notifications.Get("/", notificationHandler.List)
}
