package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/payslip-api/internal/application/auth"
	"github.com/jhoicas/payslip-api/internal/application/payslip"
	"github.com/jhoicas/payslip-api/internal/application/usecase"
	"github.com/jhoicas/payslip-api/internal/domain/entity"
	"github.com/jhoicas/payslip-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	UserUC    *usecase.UserUseCase
	PayslipUC *payslip.UseCase
	JWTSecret string
	Logger    *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, log)
	api.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users (solo admin)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC, log)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:id/password", userHandler.UpdatePassword)
	users.Delete("/:id", userHandler.Delete)

	// Payslip (cualquier usuario autenticado)
	payslips := protected.Group("/payslip")
	payslipHandler := NewPayslipHandler(deps.PayslipUC, log)
	payslips.Get("/", payslipHandler.Get)
	payslips.Get("/pdf", payslipHandler.PDF)
}
