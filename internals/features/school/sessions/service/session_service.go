package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"edacademy_backend/internals/constants"
	"edacademy_backend/internals/features/school/sessions/dto"
	SessionModel "edacademy_backend/internals/features/school/sessions/model"
	SubjectModel "edacademy_backend/internals/features/school/subjects/model"
	UserModel "edacademy_backend/internals/features/users/user/model"
)

// SessionService owns session lifecycle rules: the subject must belong to the
// session's class, and only the owning teacher may modify a session.
type SessionService struct {
	DB *gorm.DB
}

func NewSessionService(db *gorm.DB) *SessionService {
	return &SessionService{DB: db}
}

// Create persists a new session for teacherID after checking the
// subject/class pairing and the teacher role.
func (s *SessionService) Create(req dto.CreateSessionRequest, teacherID uuid.UUID) (*SessionModel.SessionModel, error) {
	date, err := dto.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	classID, err := uuid.Parse(req.ClassID)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid class ID")
	}
	subjectID, err := uuid.Parse(req.SubjectID)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid subject ID")
	}

	var subject SubjectModel.SubjectModel
	if err := s.DB.First(&subject, "id = ?", subjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Subject not found")
		}
		return nil, err
	}
	if subject.ClassID != classID {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Subject does not belong to this class")
	}

	var teacher UserModel.UserModel
	if err := s.DB.First(&teacher, "id = ?", teacherID).Error; err != nil || teacher.Role != constants.RoleTeacher {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid teacher ID")
	}

	session := SessionModel.SessionModel{
		Date:      date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Room:      req.Room,
		ClassID:   classID,
		SubjectID: subjectID,
		TeacherID: teacherID,
	}
	if err := s.DB.Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// List returns sessions matching all provided filters, ordered by date.
// A date filter matches the whole calendar day.
func (s *SessionService) List(filters dto.SessionFilters) ([]SessionModel.SessionModel, error) {
	q := s.DB.Model(&SessionModel.SessionModel{})

	if filters.ClassID != "" {
		q = q.Where("class_id = ?", filters.ClassID)
	}
	if filters.TeacherID != "" {
		q = q.Where("teacher_id = ?", filters.TeacherID)
	}
	if filters.SubjectID != "" {
		q = q.Where("subject_id = ?", filters.SubjectID)
	}
	if filters.Date != "" {
		day, err := dto.ParseDate(filters.Date)
		if err != nil {
			return nil, err
		}
		start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		q = q.Where("date >= ? AND date < ?", start, start.AddDate(0, 0, 1))
	}

	var sessions []SessionModel.SessionModel
	if err := q.Preload("Class").Preload("Subject").Preload("Teacher").
		Order("date ASC").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

// Update applies the provided fields after the ownership check.
func (s *SessionService) Update(id uuid.UUID, req dto.UpdateSessionRequest, requesterID uuid.UUID) (*SessionModel.SessionModel, error) {
	var session SessionModel.SessionModel
	if err := s.DB.First(&session, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Session not found")
		}
		return nil, err
	}

	if session.TeacherID != requesterID {
		return nil, fiber.NewError(fiber.StatusForbidden, "You can only manage your own sessions")
	}

	if req.Date != nil {
		date, err := dto.ParseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		session.Date = date
	}
	if req.StartTime != nil {
		session.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		session.EndTime = *req.EndTime
	}
	if req.Room != nil {
		session.Room = *req.Room
	}
	if req.ClassID != nil {
		classID, err := uuid.Parse(*req.ClassID)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid class ID")
		}
		session.ClassID = classID
	}
	if req.SubjectID != nil {
		subjectID, err := uuid.Parse(*req.SubjectID)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid subject ID")
		}
		session.SubjectID = subjectID
	}

	// Re-check the pairing whenever class or subject moved.
	if req.ClassID != nil || req.SubjectID != nil {
		var subject SubjectModel.SubjectModel
		if err := s.DB.First(&subject, "id = ?", session.SubjectID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fiber.NewError(fiber.StatusNotFound, "Subject not found")
			}
			return nil, err
		}
		if subject.ClassID != session.ClassID {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Subject does not belong to this class")
		}
	}

	if err := s.DB.Save(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// Delete removes the session after the ownership check; attendance rows go
// with it through the FK cascade.
func (s *SessionService) Delete(id uuid.UUID, requesterID uuid.UUID) error {
	var session SessionModel.SessionModel
	if err := s.DB.First(&session, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Session not found")
		}
		return err
	}

	if session.TeacherID != requesterID {
		return fiber.NewError(fiber.StatusForbidden, "You can only delete your own sessions")
	}

	return s.DB.Delete(&session).Error
}
