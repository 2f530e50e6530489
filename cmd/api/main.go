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

	"github.com/tu-usuario/sastreria-api/internal/application/auth"
	appbooking "github.com/tu-usuario/sastreria-api/internal/application/booking"
	"github.com/tu-usuario/sastreria-api/internal/application/orders"
	"github.com/tu-usuario/sastreria-api/internal/application/usecase"
	domainbooking "github.com/tu-usuario/sastreria-api/internal/domain/booking"
	"github.com/tu-usuario/sastreria-api/internal/domain/repository"
	"github.com/tu-usuario/sastreria-api/internal/infrastructure/cache"
	infrapdf "github.com/tu-usuario/sastreria-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/sastreria-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/sastreria-api/internal/interfaces/http"
	"github.com/tu-usuario/sastreria-api/pkg/config"
	"github.com/tu-usuario/sastreria-api/pkg/logger"
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
	orderRepo := postgres.NewOrderRepository(pool)

	// Catálogo: con REDIS_ADDR configurado se antepone el caché read-through;
	// sin él, el repositorio Postgres se usa directo.
	var serviceRepo repository.ServiceRepository = postgres.NewServiceRepository(pool)
	if cfg.Redis.Addr != "" {
		client, err := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer client.Close()
		serviceRepo = cache.NewCachedServiceRepository(serviceRepo, client, log)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("caché de catálogo habilitado")
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	serviceUC := usecase.NewServiceUseCase(serviceRepo)
	customerUC := usecase.NewCustomerUseCase(userRepo)
	bookingUC := appbooking.NewUseCase(domainbooking.NewValidator(serviceRepo), orderRepo)

	slipGenerator := infrapdf.NewMarotoSlipGenerator(cfg.App.Name)
	orderUC := orders.NewUseCase(orderRepo, serviceRepo, userRepo, slipGenerator)

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
		Title:    "Sastrería API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		ServiceUC:  serviceUC,
		CustomerUC: customerUC,
		BookingUC:  bookingUC,
		OrderUC:    orderUC,
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
