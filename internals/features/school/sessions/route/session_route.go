package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edacademy_backend/internals/constants"
	"edacademy_backend/internals/features/school/sessions/controller"
	authmw "edacademy_backend/internals/middlewares/auth"
)

// SessionRoutes registers session endpoints under the authenticated group.
// Writes go through teachers only; admins get read access but no write
// override here (ownership is enforced again in the service).
func SessionRoutes(api fiber.Router, db *gorm.DB) {
	sessionCtrl := controller.NewSessionController(db)

	sessions := api.Group("/sessions")
	sessions.Get("/", sessionCtrl.GetAllSessions)

	sessions.Post("/",
		authmw.OnlyRoles("Only teachers can create sessions", constants.TeacherOnly...),
		sessionCtrl.CreateSession)
	sessions.Put("/:id",
		authmw.OnlyRoles("Only teachers can update sessions", constants.TeacherOnly...),
		sessionCtrl.UpdateSession)
	sessions.Delete("/:id",
		authmw.OnlyRoles("Only teachers can delete sessions", constants.TeacherOnly...),
		sessionCtrl.DeleteSession)
}
