package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/inventario-hogar/docs"
	appanalytics "github.com/jhoicas/inventario-hogar/internal/application/analytics"
	"github.com/jhoicas/inventario-hogar/internal/application/auth"
	"github.com/jhoicas/inventario-hogar/internal/application/inventory"
	"github.com/jhoicas/inventario-hogar/internal/application/notification"
	"github.com/jhoicas/inventario-hogar/internal/application/usecase"
	"github.com/jhoicas/inventario-hogar/internal/infrastructure/events"
	"github.com/jhoicas/inventario-hogar/internal/infrastructure/mail"
	"github.com/jhoicas/inventario-hogar/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/inventario-hogar/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-hogar/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-hogar/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/inventario-hogar/internal/interfaces/http"
	"github.com/jhoicas/inventario-hogar/pkg/config"
	"github.com/jhoicas/inventario-hogar/pkg/logger"
)

// @title                       Inventario Hogar API
// @version                     1.0
// @description                 Inventario doméstico o de tienda por tenant, con alertas de stock bajo.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Str("dsn", postgres.Redacted(cfg.DB.ConnectionString())).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Strs("applied", applied).Msg("migraciones aplicadas")
	}

	userRepo := postgres.NewUserRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	txRepo := postgres.NewTransactionRepository(pool)

	mailer := mail.NewSender(cfg.SMTP, log)
	publisher, closePublisher := events.NewPublisher(cfg.AMQP, cfg.App.Name, log)
	defer closePublisher()
	appMetrics := metrics.New()
	fileStorage := storage.NewLocalStorage(cfg.Storage.Dir, cfg.Storage.PublicURL)

	authUC := auth.NewAuthUseCase(userRepo, mailer, auth.JWTConfig{
		Secret:          cfg.JWT.Secret,
		ExpMinutes:      cfg.JWT.Expiration,
		Issuer:          cfg.JWT.Issuer,
		ResetExpMinutes: cfg.JWT.ResetExpiration,
		ResetURL:        cfg.JWT.PasswordResetURL,
	}, log)
	profileUC := usecase.NewProfileUseCase(userRepo, fileStorage)
	itemUC := usecase.NewItemUseCase(itemRepo, publisher, log)
	importUC := inventory.NewImportUseCase(itemUC, log)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	transactionUC := usecase.NewTransactionUseCase(txRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(itemRepo, txRepo)
	reportUC := inventory.NewReportUseCase(itemRepo, userRepo, infrapdf.NewMarotoReportGenerator())
	previewUC := notification.NewPreviewUseCase(userRepo, itemRepo)

	// Job de alertas de stock bajo dentro del proceso de la API
	var scheduler *notification.Scheduler
	if cfg.Notify.Enabled {
		job := notification.NewJob(userRepo, itemRepo, mailer, publisher, appMetrics, notification.Config{
			Concurrency:   cfg.Notify.Concurrency,
			TenantTimeout: cfg.Notify.TenantTimeout,
		}, log)
		scheduler = notification.NewScheduler(job, cfg.Notify.Interval, cfg.Notify.RunTimeout, log)
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    8 << 20,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario Hogar API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		ProfileUC:      profileUC,
		ItemUC:         itemUC,
		ImportUC:       importUC,
		CategoryUC:     categoryUC,
		TransactionUC:  transactionUC,
		DashboardUC:    dashboardUC,
		ReportUC:       reportUC,
		PreviewUC:      previewUC,
		Metrics:        appMetrics,
		MetricsHandler: appMetrics.Handler(),
		UploadsDir:     cfg.Storage.Dir,
		UploadsURL:     cfg.Storage.PublicURL,
		ServiceName:    cfg.App.Name,
		JWTSecret:      cfg.JWT.Secret,
	})

	schedulerDone := make(chan struct{})
	go func() {
		defer close(schedulerDone)
		if scheduler != nil {
			scheduler.Start(ctx)
		}
	}()

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	<-schedulerDone

	log.Info().Msg("aplicación detenida")
}
