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
	"github.com/hwshop/storefront-api/internal/application/auth"
	"github.com/hwshop/storefront-api/internal/application/cart"
	"github.com/hwshop/storefront-api/internal/application/checkout"
	"github.com/hwshop/storefront-api/internal/application/seed"
	"github.com/hwshop/storefront-api/internal/application/usecase"
	infracatalog "github.com/hwshop/storefront-api/internal/infrastructure/catalog"
	"github.com/hwshop/storefront-api/internal/infrastructure/localstore"
	infrapdf "github.com/hwshop/storefront-api/internal/infrastructure/pdf"
	"github.com/hwshop/storefront-api/internal/infrastructure/vnpay"
	httpRouter "github.com/hwshop/storefront-api/internal/interfaces/http"
	"github.com/hwshop/storefront-api/pkg/config"
	"github.com/hwshop/storefront-api/pkg/logger"
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

	store, err := localstore.Open(cfg.Store.Path, log)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Store.Path).Msg("abrir store local")
	}

	userRepo := localstore.NewUserRepository(store)
	sessionRepo := localstore.NewSessionRepository(store)
	orderRepo := localstore.NewOrderRepository(store)
	cartRepo := localstore.NewCartRepository(store)
	catalogRepo := infracatalog.NewRepository()

	cartStore := cart.NewStore(cartRepo)
	gateway := vnpay.New(vnpay.Config{
		TmnCode:    cfg.VNPay.TmnCode,
		HashSecret: cfg.VNPay.HashSecret,
		URL:        cfg.VNPay.URL,
		ReturnURL:  cfg.VNPay.ReturnURL,
	})

	authUC := auth.NewAuthUseCase(userRepo, sessionRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	catalogUC := usecase.NewCatalogUseCase(catalogRepo)
	checkoutUC := checkout.NewUseCase(cartStore, orderRepo, gateway, log)
	pdfGenerator := infrapdf.NewMarotoReceiptGenerator()
	orderUC := usecase.NewOrderUseCase(orderRepo, userRepo, catalogRepo, pdfGenerator)

	installer := seed.NewInstaller(userRepo, catalogRepo, cartStore, store, log)
	if err := installer.Install(); err != nil {
		log.Fatal().Err(err).Msg("instalar data semilla")
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
		Title:    "HWSHOP Storefront API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Auth:      httpRouter.NewAuthHandler(authUC),
		Catalog:   httpRouter.NewCatalogHandler(catalogUC),
		Cart:      httpRouter.NewCartHandler(cartStore, catalogRepo),
		Checkout:  httpRouter.NewCheckoutHandler(checkoutUC),
		Orders:    httpRouter.NewOrderHandler(orderUC),
		JWTSecret: cfg.JWT.Secret,
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
