package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/kyc-api/internal/application/auth"
	"github.com/tu-usuario/kyc-api/internal/application/kyc"
	"github.com/tu-usuario/kyc-api/internal/application/usecase"
	"github.com/tu-usuario/kyc-api/internal/application/validator"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	KYCUC     *kyc.KYCUseCase
	UserUC    *usecase.UserUseCase
	JWTSecret string
}

// Router registra las rutas de la API. El orden de cada cadena es fijo:
// autenticación → autorización → validación → handler.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	requireAuth := AuthMiddleware(deps.JWTSecret)

	// Auth: registro y login públicos; promote solo admin
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", ValidateBody(validator.RegisterSchema), authHandler.Register)
	authGroup.Post("/login", ValidateBody(validator.LoginSchema), authHandler.Login)
	authGroup.Post("/promote", requireAuth, RequireAdmin(), ValidateBody(validator.PromoteSchema), authHandler.Promote)

	// KYC: submit y consulta propia para cualquier autenticado; el resto admin
	kycGroup := api.Group("/kyc")
	kycHandler := NewKYCHandler(deps.KYCUC)
	kycGroup.Post("/submit", requireAuth, kycHandler.Submit)
	kycGroup.Get("/kpi", requireAuth, RequireAdmin(), kycHandler.KPI)
	kycGroup.Get("/list", requireAuth, RequireAdmin(), ValidateQuery(validator.ListKYCQuerySchema), kycHandler.List)
	kycGroup.Put("/:userId/status", requireAuth, RequireAdmin(), ValidateBody(validator.UpdateKYCStatusSchema), kycHandler.UpdateStatus)
	kycGroup.Get("/", requireAuth, kycHandler.Get)

	// Perfil
	userGroup := api.Group("/user")
	userHandler := NewUserHandler(deps.UserUC)
	userGroup.Get("/me", requireAuth, userHandler.Me)
}
