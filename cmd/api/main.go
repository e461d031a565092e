package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/Empleados-api/internal/application/auth"
	"github.com/jhoicas/Empleados-api/internal/application/usecase"
	"github.com/jhoicas/Empleados-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Empleados-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/Empleados-api/internal/interfaces/http"
	"github.com/jhoicas/Empleados-api/pkg/config"
	"github.com/jhoicas/Empleados-api/pkg/logger"

	_ "github.com/jhoicas/Empleados-api/docs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		// Sin DB no hay nada que servir: terminar el proceso.
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	fileStore, err := storage.NewLocalFileStore(cfg.Upload.Dir, cfg.Upload.PublicPrefix)
	if err != nil {
		log.Fatal().Err(err).Msg("directorio de uploads")
	}

	userRepo := postgres.NewUserRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
		BcryptCost: cfg.JWT.BcryptCost,
	})
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo, fileStore)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    (cfg.Upload.MaxSizeMB + 1) * 1024 * 1024,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Log de acceso por request (el morgan de esta casa).
	app.Use(func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
		return err
	})

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Empleados API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	// Fotos de perfil subidas, servidas como estático bajo /uploads.
	app.Static(cfg.Upload.PublicPrefix, cfg.Upload.Dir)

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		EmployeeUC: employeeUC,
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
