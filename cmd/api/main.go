package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/kyc-api/internal/application/auth"
	appkyc "github.com/tu-usuario/kyc-api/internal/application/kyc"
	"github.com/tu-usuario/kyc-api/internal/application/usecase"
	"github.com/tu-usuario/kyc-api/internal/infrastructure/mongodb"
	"github.com/tu-usuario/kyc-api/internal/infrastructure/storage"
	httpRouter "github.com/tu-usuario/kyc-api/internal/interfaces/http"
	"github.com/tu-usuario/kyc-api/pkg/config"
	"github.com/tu-usuario/kyc-api/pkg/logger"
)

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

	db, err := mongodb.Connect(cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a MongoDB")
	}
	defer db.Disconnect()

	// Los índices únicos sostienen email/username/un-KYC-por-usuario: deben
	// existir antes de aceptar tráfico.
	if err := db.EnsureIndexes(); err != nil {
		log.Fatal().Err(err).Msg("creación de índices")
	}

	userRepo := mongodb.NewUserRepository(db)
	kycRepo := mongodb.NewKYCRepository(db)

	// Object storage opcional: sin él, el submit exige idDocument como string.
	var store appkyc.DocumentStore
	if cfg.Storage.Enabled() {
		s3Store, err := storage.NewS3Store(cfg.Storage)
		if err != nil {
			log.Fatal().Err(err).Msg("cliente de object storage")
		}
		store = s3Store
		log.Info().Str("bucket", cfg.Storage.Bucket).Msg("subida de documentos habilitada")
	} else {
		log.Warn().Msg("object storage no configurado: submit solo acepta idDocument como referencia")
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.Config{
		JWTSecret:         cfg.JWT.Secret,
		JWTIssuer:         cfg.JWT.Issuer,
		InitialAdminEmail: cfg.Auth.InitialAdminEmail,
		BcryptCost:        cfg.Auth.BcryptCost,
	})
	kycUC := appkyc.NewKYCUseCase(kycRepo, userRepo, store)
	userUC := usecase.NewUserUseCase(userRepo)

	app := httpRouter.NewApp(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "KYC API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		KYCUC:     kycUC,
		UserUC:    userUC,
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
