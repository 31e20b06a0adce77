package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"edacademy_backend/internals/features/school/sessions/dto"
	"edacademy_backend/internals/features/school/sessions/service"
	helper "edacademy_backend/internals/helpers"
	authmw "edacademy_backend/internals/middlewares/auth"
)

var validate = validator.New()

type SessionController struct {
	Service *service.SessionService
}

func NewSessionController(db *gorm.DB) *SessionController {
	return &SessionController{Service: service.NewSessionService(db)}
}

// ======================
// Create Session
// POST /api/sessions
// ======================
func (ctrl *SessionController) CreateSession(c *fiber.Ctx) error {
	var body dto.CreateSessionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	teacherID, err := authmw.MustUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	session, err := ctrl.Service.Create(body, teacherID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Session created successfully", dto.ToSessionDTO(*session))
}

// ======================
// Get All Sessions
// GET /api/sessions?classId=&teacherId=&subjectId=&date=
// ======================
func (ctrl *SessionController) GetAllSessions(c *fiber.Ctx) error {
	filters := dto.SessionFilters{
		ClassID:   c.Query("classId"),
		TeacherID: c.Query("teacherId"),
		SubjectID: c.Query("subjectId"),
		Date:      c.Query("date"),
	}

	sessions, err := ctrl.Service.List(filters)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Sessions retrieved successfully", dto.ToSessionDTOs(sessions))
}

// ======================
// Update Session (owning teacher only)
// PUT /api/sessions/:id
// ======================
func (ctrl *SessionController) UpdateSession(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid session ID")
	}

	var body dto.UpdateSessionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	requesterID, err := authmw.MustUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	session, err := ctrl.Service.Update(id, body, requesterID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Session updated successfully", dto.ToSessionDTO(*session))
}

// ======================
// Delete Session (owning teacher only)
// DELETE /api/sessions/:id
// ======================
func (ctrl *SessionController) DeleteSession(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid session ID")
	}

	requesterID, err := authmw.MustUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := ctrl.Service.Delete(id, requesterID); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Session deleted successfully", nil)
}
