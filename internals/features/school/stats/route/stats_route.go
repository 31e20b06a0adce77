package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edacademy_backend/internals/constants"
	"edacademy_backend/internals/features/school/stats/controller"
	authmw "edacademy_backend/internals/middlewares/auth"
)

// StatsRoutes registers the reporting endpoints under the authenticated group.
func StatsRoutes(api fiber.Router, db *gorm.DB) {
	statsCtrl := controller.NewStatsController(db)

	stats := api.Group("/stats")
	stats.Get("/global",
		authmw.OnlyRoles("Only admins can view global stats", constants.AdminOnly...),
		statsCtrl.GetGlobalStats,
	)
	stats.Get("/teacher",
		authmw.OnlyRoles("Only admins and teachers can view teacher stats", constants.TeacherAndAdmin...),
		statsCtrl.GetTeacherStats,
	)
	stats.Get("/student/:id", statsCtrl.GetStudentRate)
	stats.Get("/class/:id",
		authmw.OnlyRoles("Only admins and teachers can view class stats", constants.TeacherAndAdmin...),
		statsCtrl.GetClassStats,
	)
}
