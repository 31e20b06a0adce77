package dto

import (
	"time"

	"github.com/gofiber/fiber/v2"

	SessionModel "edacademy_backend/internals/features/school/sessions/model"
)

// ====================
// Request DTO
// ====================

type CreateSessionRequest struct {
	Date      string `json:"date" validate:"required"`
	StartTime string `json:"startTime" validate:"required,len=5"`
	EndTime   string `json:"endTime" validate:"required,len=5"`
	Room      string `json:"room" validate:"omitempty,max=100"`
	ClassID   string `json:"classId" validate:"required,uuid"`
	SubjectID string `json:"subjectId" validate:"required,uuid"`
}

type UpdateSessionRequest struct {
	Date      *string `json:"date,omitempty"`
	StartTime *string `json:"startTime,omitempty" validate:"omitempty,len=5"`
	EndTime   *string `json:"endTime,omitempty" validate:"omitempty,len=5"`
	Room      *string `json:"room,omitempty" validate:"omitempty,max=100"`
	ClassID   *string `json:"classId,omitempty" validate:"omitempty,uuid"`
	SubjectID *string `json:"subjectId,omitempty" validate:"omitempty,uuid"`
}

// SessionFilters are combined with logical AND; empty fields are skipped.
type SessionFilters struct {
	ClassID   string
	TeacherID string
	SubjectID string
	Date      string
}

// ParseDate accepts either a bare day (2006-01-02) or a full RFC3339 stamp.
func ParseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Invalid date format")
	}
	return t, nil
}

// ====================
// Response DTO
// ====================

type SessionClassDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type SessionSubjectDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type SessionTeacherDTO struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
}

type SessionDTO struct {
	ID        string             `json:"id"`
	Date      time.Time          `json:"date"`
	StartTime string             `json:"startTime"`
	EndTime   string             `json:"endTime"`
	Room      string             `json:"room"`
	ClassID   string             `json:"classId"`
	SubjectID string             `json:"subjectId"`
	TeacherID string             `json:"teacherId"`
	Class     *SessionClassDTO   `json:"class,omitempty"`
	Subject   *SessionSubjectDTO `json:"subject,omitempty"`
	Teacher   *SessionTeacherDTO `json:"teacher,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
}

// ====================
// Converter: Model → DTO
// ====================

func ToSessionDTO(m SessionModel.SessionModel) SessionDTO {
	out := SessionDTO{
		ID:        m.ID.String(),
		Date:      m.Date,
		StartTime: m.StartTime,
		EndTime:   m.EndTime,
		Room:      m.Room,
		ClassID:   m.ClassID.String(),
		SubjectID: m.SubjectID.String(),
		TeacherID: m.TeacherID.String(),
		CreatedAt: m.CreatedAt,
	}
	if m.Class != nil {
		out.Class = &SessionClassDTO{ID: m.Class.ID.String(), Name: m.Class.Name}
	}
	if m.Subject != nil {
		out.Subject = &SessionSubjectDTO{ID: m.Subject.ID.String(), Name: m.Subject.Name}
	}
	if m.Teacher != nil {
		out.Teacher = &SessionTeacherDTO{ID: m.Teacher.ID.String(), FullName: m.Teacher.FullName}
	}
	return out
}

func ToSessionDTOs(sessions []SessionModel.SessionModel) []SessionDTO {
	out := make([]SessionDTO, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, ToSessionDTO(s))
	}
	return out
}
