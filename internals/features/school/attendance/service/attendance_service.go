package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"edacademy_backend/internals/constants"
	"edacademy_backend/internals/features/school/attendance/dto"
	AttendanceModel "edacademy_backend/internals/features/school/attendance/model"
	sessiondto "edacademy_backend/internals/features/school/sessions/dto"
	SessionModel "edacademy_backend/internals/features/school/sessions/model"
	UserModel "edacademy_backend/internals/features/users/user/model"
)

// AttendanceService records per-student attendance per session. Marking is an
// upsert keyed by (session_id, student_id), so re-marking a student replaces
// the previous status instead of adding a row.
type AttendanceService struct {
	DB *gorm.DB
}

func NewAttendanceService(db *gorm.DB) *AttendanceService {
	return &AttendanceService{DB: db}
}

// loadOwnedSession fetches the session and enforces visibility: admins see
// any session, teachers only their own.
func (s *AttendanceService) loadOwnedSession(sessionID uuid.UUID, role string, userID uuid.UUID) (*SessionModel.SessionModel, error) {
	var session SessionModel.SessionModel
	if err := s.DB.First(&session, "id = ?", sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Session not found")
		}
		return nil, err
	}

	if role != constants.RoleAdmin && session.TeacherID != userID {
		return nil, fiber.NewError(fiber.StatusForbidden, "You can only manage attendance for your own sessions")
	}
	return &session, nil
}

// Mark upserts one attendance row per record and returns the stored rows.
// Concurrent marks of the same pair resolve last-write-wins at the upsert.
func (s *AttendanceService) Mark(sessionID uuid.UUID, records []dto.AttendanceRecordInput, role string, userID uuid.UUID) ([]AttendanceModel.AttendanceModel, error) {
	if _, err := s.loadOwnedSession(sessionID, role, userID); err != nil {
		return nil, err
	}

	studentIDs := make([]uuid.UUID, 0, len(records))
	for _, rec := range records {
		studentID, err := uuid.Parse(rec.StudentID)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid student ID")
		}
		if !AttendanceModel.IsValidStatus(rec.Status) {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid attendance status")
		}

		justification := rec.Justification
		if rec.Status == AttendanceModel.StatusPresent {
			// Justification only makes sense for absences and lateness.
			justification = nil
		} else if justification != nil && !AttendanceModel.IsValidJustification(*justification) {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid justification")
		}

		row := AttendanceModel.AttendanceModel{
			SessionID:     sessionID,
			StudentID:     studentID,
			Status:        rec.Status,
			Justification: justification,
		}
		if err := s.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}, {Name: "student_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "justification", "updated_at"}),
		}).Create(&row).Error; err != nil {
			return nil, err
		}
		studentIDs = append(studentIDs, studentID)
	}

	var written []AttendanceModel.AttendanceModel
	if err := s.DB.Preload("Student").
		Where("session_id = ? AND student_id IN ?", sessionID, studentIDs).
		Find(&written).Error; err != nil {
		return nil, err
	}
	return written, nil
}

// GetForSession returns all attendance rows for a session, joined with the
// student's identity.
func (s *AttendanceService) GetForSession(sessionID uuid.UUID, role string, userID uuid.UUID) ([]AttendanceModel.AttendanceModel, error) {
	if _, err := s.loadOwnedSession(sessionID, role, userID); err != nil {
		return nil, err
	}

	var rows []AttendanceModel.AttendanceModel
	if err := s.DB.Preload("Student").
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdateJustification patches the justification of one attendance record.
func (s *AttendanceService) UpdateJustification(id uuid.UUID, value string) (*AttendanceModel.AttendanceModel, error) {
	if !AttendanceModel.IsValidJustification(value) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid justification")
	}

	var row AttendanceModel.AttendanceModel
	if err := s.DB.First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Attendance record not found")
		}
		return nil, err
	}

	row.Justification = &value
	if err := s.DB.Save(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// TeacherSessions returns each session of the teacher (or of all teachers
// when teacherID is nil) with the enrolled roster annotated by attendance.
func (s *AttendanceService) TeacherSessions(teacherID *uuid.UUID, date string) ([]dto.TeacherSessionDTO, error) {
	q := s.DB.Model(&SessionModel.SessionModel{}).Preload("Class").Preload("Subject")
	if teacherID != nil {
		q = q.Where("teacher_id = ?", *teacherID)
	}
	if date != "" {
		day, err := sessiondto.ParseDate(date)
		if err != nil {
			return nil, err
		}
		start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		q = q.Where("date >= ? AND date < ?", start, start.AddDate(0, 0, 1))
	}

	var sessions []SessionModel.SessionModel
	if err := q.Order("date ASC").Order("start_time ASC").Find(&sessions).Error; err != nil {
		return nil, err
	}

	result := make([]dto.TeacherSessionDTO, 0, len(sessions))
	for _, session := range sessions {
		var students []UserModel.UserModel
		if err := s.DB.Where("class_id = ? AND role = ?", session.ClassID, constants.RoleStudent).
			Order("full_name ASC").
			Find(&students).Error; err != nil {
			return nil, err
		}

		var rows []AttendanceModel.AttendanceModel
		if err := s.DB.Where("session_id = ?", session.ID).Find(&rows).Error; err != nil {
			return nil, err
		}
		byStudent := make(map[uuid.UUID]AttendanceModel.AttendanceModel, len(rows))
		for _, row := range rows {
			byStudent[row.StudentID] = row
		}

		item := dto.TeacherSessionDTO{
			ID:       session.ID.String(),
			Time:     session.StartTime + " - " + session.EndTime,
			Date:     session.Date,
			Room:     session.Room,
			Students: make([]dto.RosterStudentDTO, 0, len(students)),
		}
		if session.Subject != nil {
			item.Subject = session.Subject.Name
		}
		if session.Class != nil {
			item.Class = session.Class.Name
			if session.Class.Level != nil {
				item.Level = *session.Class.Level
			}
		}

		for _, student := range students {
			roster := dto.RosterStudentDTO{
				ID:    student.ID.String(),
				Name:  student.FullName,
				Email: student.Email,
			}
			if row, ok := byStudent[student.ID]; ok {
				attID := row.ID.String()
				status := row.Status
				roster.AttendanceID = &attID
				roster.Status = &status
				roster.Justification = row.Justification
			}
			item.Students = append(item.Students, roster)
		}

		result = append(result, item)
	}
	return result, nil
}
