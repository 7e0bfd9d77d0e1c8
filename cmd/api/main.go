package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appaudit "github.com/rubengianelli8/Sistema-gestion/internal/application/audit"
	"github.com/rubengianelli8/Sistema-gestion/internal/application/auth"
	"github.com/rubengianelli8/Sistema-gestion/internal/application/purchasing"
	"github.com/rubengianelli8/Sistema-gestion/internal/application/quotes"
	"github.com/rubengianelli8/Sistema-gestion/internal/application/sales"
	"github.com/rubengianelli8/Sistema-gestion/internal/application/usecase"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain/permission"
	"github.com/rubengianelli8/Sistema-gestion/internal/infrastructure/kafka"
	"github.com/rubengianelli8/Sistema-gestion/internal/infrastructure/postgres"
	httpRouter "github.com/rubengianelli8/Sistema-gestion/internal/interfaces/http"
	"github.com/rubengianelli8/Sistema-gestion/pkg/config"
	"github.com/rubengianelli8/Sistema-gestion/pkg/logger"
	"github.com/rubengianelli8/Sistema-gestion/pkg/metrics"
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

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	supplierPriceRepo := postgres.NewSupplierPriceRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	quoteRepo := postgres.NewQuoteRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	auditRepo := postgres.NewAuditRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	m := metrics.New()

	// Espejo Kafka de auditoría: opcional, la app arranca igual si el
	// broker no está disponible.
	var publisher appaudit.Publisher
	var kafkaPublisher *kafka.AuditPublisher
	if cfg.Kafka.Enabled() {
		kafkaPublisher, err = kafka.NewAuditPublisher(ctx, cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			log.Warn().Err(err).Msg("espejo Kafka de auditoría deshabilitado")
		} else {
			publisher = kafkaPublisher
			log.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.Topic).
				Msg("espejo Kafka de auditoría habilitado")
		}
	}
	recorder := appaudit.NewRecorder(auditRepo, publisher, log, m.AuditDrops.Inc)

	perms := permission.Default()

	authUC := auth.NewAuthUseCase(userRepo, perms, recorder, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo, recorder)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, productRepo, recorder)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, stockRepo, recorder)
	customerUC := usecase.NewCustomerUseCase(customerRepo, saleRepo, recorder)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo, recorder)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo, supplierPriceRepo, productRepo, recorder)
	systemUC := usecase.NewSystemUseCase(
		statsRepo, auditRepo, userRepo,
		categoryRepo, productRepo, customerRepo, warehouseRepo, supplierRepo,
		saleRepo, quoteRepo, purchaseRepo,
	)
	salesUC := sales.NewUseCase(txRunner, productRepo, customerRepo, saleRepo, recorder)
	quotesUC := quotes.NewUseCase(
		txRunner, productRepo, customerRepo, quoteRepo, recorder,
		cfg.Sales.ConvertUpdatesBalance,
	)
	purchasesUC := purchasing.NewUseCase(
		txRunner, productRepo, supplierRepo, warehouseRepo, purchaseRepo, recorder,
	)

	if err := authUC.EnsureDefaultAdmin(cfg.Admin.Email, cfg.Admin.Password); err != nil {
		log.Fatal().Err(err).Msg("siembra del admin inicial")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(m.Middleware())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", metrics.Handler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UserUC:      userUC,
		CategoryUC:  categoryUC,
		ProductUC:   productUC,
		CustomerUC:  customerUC,
		WarehouseUC: warehouseUC,
		SupplierUC:  supplierUC,
		SystemUC:    systemUC,
		SalesUC:     salesUC,
		QuotesUC:    quotesUC,
		PurchasesUC: purchasesUC,
		Perms:       perms,
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

	// Drena la auditoría pendiente antes de soltar la conexión a Kafka.
	recorder.Close()
	if kafkaPublisher != nil {
		kafkaPublisher.Close()
	}

	log.Info().Msg("aplicación detenida")
}
