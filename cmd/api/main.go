package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sushiymas/inventario-api/internal/application/auth"
	"github.com/sushiymas/inventario-api/internal/application/inventory"
	"github.com/sushiymas/inventario-api/internal/application/notification"
	"github.com/sushiymas/inventario-api/internal/application/report"
	"github.com/sushiymas/inventario-api/internal/application/usecase"
	infrapdf "github.com/sushiymas/inventario-api/internal/infrastructure/pdf"
	"github.com/sushiymas/inventario-api/internal/infrastructure/postgres"
	httpRouter "github.com/sushiymas/inventario-api/internal/interfaces/http"
	"github.com/sushiymas/inventario-api/pkg/config"
	"github.com/sushiymas/inventario-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	weeklyRepo := postgres.NewWeeklyReportRepository(pool)

	sink := notification.NewSink(notification.DefaultTTL)
	defer sink.Close()

	ledger := inventory.NewStockLedger(productRepo, sink, log.Zerolog())
	compiler := report.NewCompiler(productRepo, cfg.Report.RestaurantName)
	pdfGenerator := infrapdf.NewMarotoReportGenerator()

	categoryUC := usecase.NewCategoryUseCase(categoryRepo, sink)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, sink)
	dashboardUC := usecase.NewDashboardUseCase(productRepo, categoryRepo)
	weeklyUC := report.NewWeeklyReportUseCase(compiler, weeklyRepo, sink, log.Zerolog())
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log.Zerolog())

	scheduler := report.NewScheduler(report.GeneratorFunc(func(ctx context.Context) error {
		_, err := weeklyUC.Generate(ctx)
		return err
	}), log.Zerolog())
	if cfg.Report.WeeklyEnabled {
		scheduler.Start(ctx)
		defer scheduler.Stop()
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario Sushi API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		CategoryUC:     categoryUC,
		ProductUC:      productUC,
		DashboardUC:    dashboardUC,
		StockLedger:    ledger,
		ReportCompiler: compiler,
		WeeklyUC:       weeklyUC,
		PDFGenerator:   pdfGenerator,
		Sink:           sink,
		RestaurantName: cfg.Report.RestaurantName,
		JWTSecret:      cfg.JWT.Secret,
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
