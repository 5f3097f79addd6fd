// Comando seed: instala la data semilla de la demo (usuarios + carrito de
// ejemplo) en el store local sin levantar el servidor HTTP. Idempotente.
//
// Uso:
//
//	STORE_PATH=./data/hwshop.json go run ./cmd/seed
package main

import (
	"github.com/hwshop/storefront-api/internal/application/cart"
	"github.com/hwshop/storefront-api/internal/application/seed"
	infracatalog "github.com/hwshop/storefront-api/internal/infrastructure/catalog"
	"github.com/hwshop/storefront-api/internal/infrastructure/localstore"
	"github.com/hwshop/storefront-api/pkg/config"
	"github.com/hwshop/storefront-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	store, err := localstore.Open(cfg.Store.Path, log)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Store.Path).Msg("abrir store local")
	}

	userRepo := localstore.NewUserRepository(store)
	cartRepo := localstore.NewCartRepository(store)
	catalogRepo := infracatalog.NewRepository()
	cartStore := cart.NewStore(cartRepo)

	installer := seed.NewInstaller(userRepo, catalogRepo, cartStore, store, log)
	if err := installer.Install(); err != nil {
		log.Fatal().Err(err).Msg("instalar data semilla")
	}

	log.Info().Str("store", cfg.Store.Path).Msg("data semilla instalada")
}
