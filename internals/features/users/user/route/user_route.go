package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edacademy_backend/internals/constants"
	"edacademy_backend/internals/features/users/user/controller"
	authmw "edacademy_backend/internals/middlewares/auth"
)

// UserRoutes registers admin user management under the authenticated group.
func UserRoutes(api fiber.Router, db *gorm.DB) {
	userCtrl := controller.NewUserController(db)

	users := api.Group("/users",
		authmw.OnlyRoles("Only admins can manage users", constants.AdminOnly...),
	)
	users.Get("/", userCtrl.GetAllUsers)
	users.Get("/:id", userCtrl.GetUserByID)
	users.Post("/", userCtrl.CreateUser)
	users.Put("/:id", userCtrl.UpdateUser)
	users.Delete("/:id", userCtrl.DeleteUser)
}
