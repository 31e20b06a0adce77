package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edacademy_backend/internals/constants"
	"edacademy_backend/internals/features/school/attendance/controller"
	authmw "edacademy_backend/internals/middlewares/auth"
)

// AttendanceRoutes registers attendance endpoints under the authenticated
// group. my-sessions must be declared before :sessionId.
func AttendanceRoutes(api fiber.Router, db *gorm.DB) {
	attendanceCtrl := controller.NewAttendanceController(db)

	attendance := api.Group("/attendance",
		authmw.OnlyRoles("Only admins and teachers can manage attendance", constants.TeacherAndAdmin...),
	)
	attendance.Get("/my-sessions", attendanceCtrl.GetTeacherAttendance)
	attendance.Get("/:sessionId", attendanceCtrl.GetSessionAttendance)
	attendance.Post("/:sessionId", attendanceCtrl.MarkAttendance)
	attendance.Patch("/:id/justification", attendanceCtrl.UpdateJustification)
}
