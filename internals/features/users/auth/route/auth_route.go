package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "pesantrenku_backend/internals/features/users/auth/controller"
	"pesantrenku_backend/internals/middlewares"
	authMiddleware "pesantrenku_backend/internals/middlewares/auth"
)

func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/logout", authMiddleware.AuthMiddleware(db), ctrl.Logout)
	auth.Get("/me", authMiddleware.AuthMiddleware(db), ctrl.Me)
}
