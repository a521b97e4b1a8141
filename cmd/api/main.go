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

	"github.com/ferreteriapro/admin-api/internal/application/analytics"
	"github.com/ferreteriapro/admin-api/internal/application/auth"
	appbilling "github.com/ferreteriapro/admin-api/internal/application/billing"
	"github.com/ferreteriapro/admin-api/internal/application/purchasing"
	"github.com/ferreteriapro/admin-api/internal/application/usecase"
	"github.com/ferreteriapro/admin-api/internal/domain/repository"
	"github.com/ferreteriapro/admin-api/internal/infrastructure/backend"
	"github.com/ferreteriapro/admin-api/internal/infrastructure/memory"
	infrapdf "github.com/ferreteriapro/admin-api/internal/infrastructure/pdf"
	"github.com/ferreteriapro/admin-api/internal/infrastructure/postgres"
	httpRouter "github.com/ferreteriapro/admin-api/internal/interfaces/http"
	"github.com/ferreteriapro/admin-api/pkg/config"
	"github.com/ferreteriapro/admin-api/pkg/logger"
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
		Str("backend", cfg.Backend.BaseURL).
		Msg("iniciando aplicación")

	gw := backend.New(cfg.Backend, log)

	// Borradores: postgres persiste entre reinicios; memory para desarrollo
	var draftRepo repository.DraftRepository
	if cfg.Drafts.Driver == "postgres" {
		ctx := context.Background()
		pool, err := postgres.NewPool(ctx, cfg.Drafts)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		draftRepo = postgres.NewDraftRepository(pool, cfg.Drafts.TTL())
	} else {
		log.Warn().Msg("borradores en memoria: no sobreviven reinicios")
		draftRepo = memory.NewDraftRepository(cfg.Drafts.TTL())
	}

	authUC := auth.NewAuthUseCase(gw)
	productUC := usecase.NewProductUseCase(gw)
	clientUC := usecase.NewClientUseCase(gw)
	supplierUC := usecase.NewSupplierUseCase(gw)
	invoiceUC := usecase.NewInvoiceUseCase(gw)
	movementUC := usecase.NewMovementUseCase(gw)
	orderUC := purchasing.NewOrderUseCase(gw)
	receivingUC := purchasing.NewReceivingUseCase(gw, gw, log)
	draftUC := appbilling.NewDraftUseCase(draftRepo, gw, gw, log)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	invoicePDFUC := appbilling.NewPDFUseCase(gw, pdfGenerator)
	dashboardUC := analytics.NewDashboardUseCase(gw)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Ferretería Admin API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		ClientUC:    clientUC,
		SupplierUC:  supplierUC,
		InvoiceUC:   invoiceUC,
		MovementUC:  movementUC,
		OrderUC:     orderUC,
		ReceivingUC: receivingUC,
		DraftUC:     draftUC,
		InvoicePDF:  invoicePDFUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
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
