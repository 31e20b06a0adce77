package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"edacademy_backend/internals/constants"
	"edacademy_backend/internals/features/school/stats/service"
	helper "edacademy_backend/internals/helpers"
	authmw "edacademy_backend/internals/middlewares/auth"
)

type StatsController struct {
	Service *service.StatsService
}

func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{Service: service.NewStatsService(db)}
}

// ======================
// Global Stats
// GET /api/stats/global
// ======================
func (ctrl *StatsController) GetGlobalStats(c *fiber.Ctx) error {
	result, err := ctrl.Service.GlobalStats()
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Global stats retrieved successfully", result)
}

// ======================
// Teacher Stats
// GET /api/stats/teacher?teacherId=
// ======================
func (ctrl *StatsController) GetTeacherStats(c *fiber.Ctx) error {
	userID, err := authmw.MustUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	// Teachers see their own dashboard; admins may inspect any teacher's.
	teacherID := userID
	if authmw.UserRole(c) == constants.RoleAdmin {
		if raw := c.Query("teacherId"); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				return helper.Error(c, fiber.StatusBadRequest, "Invalid teacher ID")
			}
			teacherID = id
		}
	}

	result, err := ctrl.Service.TeacherStats(teacherID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Teacher stats retrieved successfully", result)
}

// ======================
// Student Rate
// GET /api/stats/student/:id
// ======================
func (ctrl *StatsController) GetStudentRate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid student ID")
	}

	result, err := ctrl.Service.StudentRate(id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Student attendance rate retrieved successfully", result)
}

// ======================
// Class Stats
// GET /api/stats/class/:id
// ======================
func (ctrl *StatsController) GetClassStats(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid class ID")
	}

	result, err := ctrl.Service.ClassStats(id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Class stats retrieved successfully", result)
}
