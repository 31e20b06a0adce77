package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"edacademy_backend/internals/constants"
	"edacademy_backend/internals/features/school/attendance/dto"
	"edacademy_backend/internals/features/school/attendance/service"
	helper "edacademy_backend/internals/helpers"
	authmw "edacademy_backend/internals/middlewares/auth"
)

var validate = validator.New()

type AttendanceController struct {
	Service *service.AttendanceService
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{Service: service.NewAttendanceService(db)}
}

// ======================
// Mark Attendance
// POST /api/attendance/:sessionId
// ======================
func (ctrl *AttendanceController) MarkAttendance(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("sessionId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid session ID")
	}

	var body dto.MarkAttendanceRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	userID, err := authmw.MustUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	written, err := ctrl.Service.Mark(sessionID, body.Records, authmw.UserRole(c), userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Attendance marked successfully", dto.ToAttendanceDTOs(written))
}

// ======================
// Get Session Attendance
// GET /api/attendance/:sessionId
// ======================
func (ctrl *AttendanceController) GetSessionAttendance(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("sessionId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid session ID")
	}

	userID, err := authmw.MustUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	rows, err := ctrl.Service.GetForSession(sessionID, authmw.UserRole(c), userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Attendance retrieved successfully", dto.ToAttendanceDTOs(rows))
}

// ======================
// Teacher Sessions Overview
// GET /api/attendance/my-sessions?date=&teacherId=
// ======================
func (ctrl *AttendanceController) GetTeacherAttendance(c *fiber.Ctx) error {
	userID, err := authmw.MustUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	// Teachers always see their own sessions; admins may pass a teacherId or
	// omit it to see everyone's.
	var teacherID *uuid.UUID
	if authmw.UserRole(c) == constants.RoleTeacher {
		teacherID = &userID
	} else if raw := c.Query("teacherId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid teacher ID")
		}
		teacherID = &id
	}

	result, err := ctrl.Service.TeacherSessions(teacherID, c.Query("date"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Teacher attendance retrieved successfully", result)
}

// ======================
// Update Justification
// PATCH /api/attendance/:id/justification
// ======================
func (ctrl *AttendanceController) UpdateJustification(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid attendance ID")
	}

	var body dto.UpdateJustificationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	row, err := ctrl.Service.UpdateJustification(id, body.Justification)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Justification updated successfully", dto.ToAttendanceDTO(*row))
}
