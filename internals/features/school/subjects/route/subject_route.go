package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edacademy_backend/internals/constants"
	"edacademy_backend/internals/features/school/subjects/controller"
	authmw "edacademy_backend/internals/middlewares/auth"
)

// SubjectRoutes registers subject management under the authenticated group.
func SubjectRoutes(api fiber.Router, db *gorm.DB) {
	subjectCtrl := controller.NewSubjectController(db)

	subjects := api.Group("/subjects",
		authmw.OnlyRoles("Only admins and teachers can manage subjects", constants.TeacherAndAdmin...),
	)
	subjects.Get("/", subjectCtrl.GetAllSubjects)
	subjects.Get("/:id", subjectCtrl.GetSubjectByID)
	subjects.Post("/", subjectCtrl.CreateSubject)
	subjects.Put("/:id", subjectCtrl.UpdateSubject)
	subjects.Delete("/:id", subjectCtrl.DeleteSubject)
}
