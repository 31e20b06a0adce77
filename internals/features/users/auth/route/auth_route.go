package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edacademy_backend/internals/features/users/auth/controller"
	"edacademy_backend/internals/middlewares"
	authmw "edacademy_backend/internals/middlewares/auth"
)

// AuthRoutes registers the public auth endpoints plus /me behind the JWT gate.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	authCtrl := controller.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), authCtrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), authCtrl.Login)
	auth.Get("/me", authmw.AuthMiddleware(db), authCtrl.Me)
}
