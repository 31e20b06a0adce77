package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	AttendanceRoute "edacademy_backend/internals/features/school/attendance/route"
	ClassRoute "edacademy_backend/internals/features/school/classes/route"
	SessionRoute "edacademy_backend/internals/features/school/sessions/route"
	StatsRoute "edacademy_backend/internals/features/school/stats/route"
	SubjectRoute "edacademy_backend/internals/features/school/subjects/route"
	AuthRoute "edacademy_backend/internals/features/users/auth/route"
	UserRoute "edacademy_backend/internals/features/users/user/route"
	authmw "edacademy_backend/internals/middlewares/auth"
)

// SetupRoutes mounts every feature under /api. Auth endpoints stay public,
// everything else sits behind the JWT middleware.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app)

	api := app.Group("/api")
	AuthRoute.AuthRoutes(api, db)

	authed := api.Group("", authmw.AuthMiddleware(db))
	UserRoute.UserRoutes(authed, db)
	ClassRoute.ClassRoutes(authed, db)
	SubjectRoute.SubjectRoutes(authed, db)
	SessionRoute.SessionRoutes(authed, db)
	AttendanceRoute.AttendanceRoutes(authed, db)
	StatsRoute.StatsRoutes(authed, db)
}
