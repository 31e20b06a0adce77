package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edacademy_backend/internals/constants"
	"edacademy_backend/internals/features/school/classes/controller"
	authmw "edacademy_backend/internals/middlewares/auth"
)

// ClassRoutes registers class management under the authenticated group.
// Writes are admin-only, my-classes is for teachers, reads are shared.
func ClassRoutes(api fiber.Router, db *gorm.DB) {
	classCtrl := controller.NewClassController(db)

	classes := api.Group("/classes")

	classes.Get("/my-classes",
		authmw.OnlyRoles("Only teachers can list their classes", constants.TeacherOnly...),
		classCtrl.GetMyClasses)

	classes.Get("/",
		authmw.OnlyRoles("Only admins and teachers can list classes", constants.TeacherAndAdmin...),
		classCtrl.GetAllClasses)
	classes.Get("/:id",
		authmw.OnlyRoles("Only admins and teachers can view classes", constants.TeacherAndAdmin...),
		classCtrl.GetClassByID)

	classes.Post("/",
		authmw.OnlyRoles("Only admins can create classes", constants.AdminOnly...),
		classCtrl.CreateClass)
	classes.Put("/:id",
		authmw.OnlyRoles("Only admins can update classes", constants.AdminOnly...),
		classCtrl.UpdateClass)
	classes.Delete("/:id",
		authmw.OnlyRoles("Only admins can delete classes", constants.AdminOnly...),
		classCtrl.DeleteClass)
}
