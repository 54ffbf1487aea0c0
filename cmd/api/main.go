package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/afero"

	"github.com/jhoicas/pyme-api/internal/application/auth"
	"github.com/jhoicas/pyme-api/internal/application/dataservice"
	"github.com/jhoicas/pyme-api/internal/application/events"
	"github.com/jhoicas/pyme-api/internal/application/sales"
	"github.com/jhoicas/pyme-api/internal/application/stock"
	"github.com/jhoicas/pyme-api/internal/domain/repository"
	"github.com/jhoicas/pyme-api/internal/infrastructure/filestore"
	"github.com/jhoicas/pyme-api/internal/infrastructure/notify"
	"github.com/jhoicas/pyme-api/internal/infrastructure/redisbus"
	"github.com/jhoicas/pyme-api/internal/infrastructure/sqlite"
	httpRouter "github.com/jhoicas/pyme-api/internal/interfaces/http"
	"github.com/jhoicas/pyme-api/pkg/config"
	"github.com/jhoicas/pyme-api/pkg/logger"
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
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	// Backend de persistencia: se elige una sola vez, en el arranque.
	var store repository.Store
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		store, err = sqlite.Open(cfg.Storage.SQLitePath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Storage.SQLitePath).Msg("abrir SQLite")
		}
	default:
		store, err = filestore.New(afero.NewOsFs(), cfg.Storage.DataDir)
		if err != nil {
			log.Fatal().Err(err).Str("dir", cfg.Storage.DataDir).Msg("abrir filestore")
		}
	}
	defer store.Close()

	svc := dataservice.New(store, log, dataservice.Options{
		DefaultLowStock: cfg.Stock.LowStockThreshold,
	})

	// Bus de eventos en memoria; con Redis habilitado, cada publicación se
	// replica además al canal pyme.events.* para otras instancias.
	var bus events.Bus = events.NewMemoryBus()
	if cfg.Redis.Enabled {
		pub, err := redisbus.New(bus, redisbus.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, log)
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("conexión a Redis")
		}
		defer pub.Close()
		bus = pub
	}

	notifier := notify.NewLogNotifier(log, cfg.App.Env == "development")
	tracker := stock.NewTracker(svc, bus, notifier, log, cfg.Stock.HistorySize)

	saleUC := sales.NewSaleUseCase(svc, tracker)
	purchaseUC := sales.NewPurchaseUseCase(svc, tracker)
	authUC := auth.NewAuthUseCase(svc, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Svc:        svc,
		Bus:        bus,
		Tracker:    tracker,
		SaleUC:     saleUC,
		PurchaseUC: purchaseUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
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
