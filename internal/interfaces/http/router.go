package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dulceria/sweetshop-api/internal/application/auth"
	"github.com/dulceria/sweetshop-api/internal/application/usecase"
	"github.com/dulceria/sweetshop-api/internal/domain/entity"
	"github.com/dulceria/sweetshop-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	SweetUC   *usecase.SweetUseCase
	JWTSecret string
	Log       *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Sweets (protegido: Bearer Token + RBAC por ruta)
	sweets := api.Group("/sweets", AuthMiddleware(deps.JWTSecret))
	sweetHandler := NewSweetHandler(deps.SweetUC, deps.Log)

	anyRole := RequireRole(entity.RoleAdmin, entity.RoleUser)
	adminOnly := RequireRole(entity.RoleAdmin)

	sweets.Get("/", anyRole, sweetHandler.List)
	// /search se registra antes que /:id para que no lo capture el parámetro
	sweets.Get("/search", anyRole, sweetHandler.Search)
	sweets.Post("/", adminOnly, sweetHandler.Create)
	sweets.Get("/:id", anyRole, sweetHandler.GetByID)
	sweets.Put("/:id", adminOnly, sweetHandler.Update)
	sweets.Delete("/:id", adminOnly, sweetHandler.Delete)
	sweets.Post("/:id/purchase", anyRole, sweetHandler.Purchase)
	sweets.Post("/:id/restock", adminOnly, sweetHandler.Restock)
}
