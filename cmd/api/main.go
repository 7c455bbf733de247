package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appcontract "github.com/jhoicas/onboarding-api/internal/application/contract"
	contractdomain "github.com/jhoicas/onboarding-api/internal/domain/contract"
	"github.com/jhoicas/onboarding-api/internal/infrastructure/objectstore"
	infrapdf "github.com/jhoicas/onboarding-api/internal/infrastructure/pdf"
	"github.com/jhoicas/onboarding-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/onboarding-api/internal/interfaces/http"
	"github.com/jhoicas/onboarding-api/pkg/config"
	"github.com/jhoicas/onboarding-api/pkg/logger"

	_ "github.com/jhoicas/onboarding-api/docs"
)

// @title                       Onboarding API
// @version                     1.0
// @description                 Ensamblado de contratos PDF del onboarding KYC de comercios.
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
		Str("storage_driver", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	store, err := objectstore.New(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento de objetos")
	}
	if closer, ok := store.(io.Closer); ok {
		defer closer.Close()
	}

	layout, err := loadLayout(cfg.Contract)
	if err != nil {
		log.Fatal().Err(err).Msg("layout del contrato")
	}

	docRepo := postgres.NewDocumentRepository(pool)
	aggregator := appcontract.NewAggregator(appcontract.Repositories{
		Customers:         postgres.NewCustomerRepository(pool),
		AuthorizedPersons: postgres.NewAuthorizedPersonRepository(pool),
		BeneficialOwners:  postgres.NewBeneficialOwnerRepository(pool),
		SepaMandates:      postgres.NewSepaMandateRepository(pool),
		Signatures:        postgres.NewSignatureRepository(pool),
		Products:          postgres.NewProductRepository(pool),
	})

	// PDF: relleno de la plantilla (gofpdf + gofpdi) e inspección (pdfcpu)
	inspector := infrapdf.NewPDFCPUInspector()
	renderer := infrapdf.NewOverlayRenderer(inspector)

	templateSource := appcontract.NewTemplateSource(store, cfg.Contract.TemplateKey)
	publisher := appcontract.NewPublisher(store, docRepo)

	generateUC := appcontract.NewGenerateContractUseCase(aggregator, templateSource, layout, renderer, publisher, log)
	cleanupUC := appcontract.NewCleanupContractsUseCase(docRepo, store, log)
	queryUC := appcontract.NewQueryUseCase(docRepo, store)
	templateUC := appcontract.NewTemplateUseCase(store, templateSource, layout, inspector, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    12 * 1024 * 1024,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Onboarding API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ServiceName: cfg.App.Name,
		Generator:   generateUC,
		Cleaner:     cleanupUC,
		Query:       queryUC,
		Template:    templateUC,
		JWTSecret:   cfg.JWT.Secret,
		Logger:      log,
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

func loadLayout(cfg config.ContractConfig) (*contractdomain.Layout, error) {
	if cfg.LayoutPath != "" {
		return contractdomain.LoadLayoutFile(cfg.LayoutPath)
	}
	return contractdomain.DefaultLayout()
}
