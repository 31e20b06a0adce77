package dto

import (
	"time"

	AttendanceModel "edacademy_backend/internals/features/school/attendance/model"
)

// ====================
// Request DTO
// ====================

type AttendanceRecordInput struct {
	StudentID     string  `json:"studentId" validate:"required,uuid"`
	Status        string  `json:"status" validate:"required,oneof=PRESENT ABSENT LATE"`
	Justification *string `json:"justification,omitempty" validate:"omitempty,oneof=JUSTIFIED NOT_JUSTIFIED"`
}

type MarkAttendanceRequest struct {
	Records []AttendanceRecordInput `json:"records" validate:"required,min=1,dive"`
}

type UpdateJustificationRequest struct {
	Justification string `json:"justification" validate:"required,oneof=JUSTIFIED NOT_JUSTIFIED"`
}

// ====================
// Response DTO
// ====================

type AttendanceStudentDTO struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

type AttendanceDTO struct {
	ID            string                `json:"id"`
	SessionID     string                `json:"sessionId"`
	StudentID     string                `json:"studentId"`
	Status        string                `json:"status"`
	Justification *string               `json:"justification,omitempty"`
	Student       *AttendanceStudentDTO `json:"student,omitempty"`
	CreatedAt     time.Time             `json:"createdAt"`
	UpdatedAt     time.Time             `json:"updatedAt"`
}

// RosterStudentDTO is one student row in a session overview: status and
// justification stay null until the student is marked.
type RosterStudentDTO struct {
	ID            string  `json:"id"`
	AttendanceID  *string `json:"attendanceId,omitempty"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Status        *string `json:"status"`
	Justification *string `json:"justification"`
}

// TeacherSessionDTO is one session with its annotated class roster.
type TeacherSessionDTO struct {
	ID       string             `json:"id"`
	Time     string             `json:"time"`
	Date     time.Time          `json:"date"`
	Subject  string             `json:"subject"`
	Class    string             `json:"class"`
	Level    string             `json:"level"`
	Room     string             `json:"room"`
	Students []RosterStudentDTO `json:"students"`
}

// ====================
// Converter: Model → DTO
// ====================

func ToAttendanceDTO(m AttendanceModel.AttendanceModel) AttendanceDTO {
	out := AttendanceDTO{
		ID:            m.ID.String(),
		SessionID:     m.SessionID.String(),
		StudentID:     m.StudentID.String(),
		Status:        m.Status,
		Justification: m.Justification,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.Student != nil {
		out.Student = &AttendanceStudentDTO{
			ID:       m.Student.ID.String(),
			FullName: m.Student.FullName,
			Email:    m.Student.Email,
		}
	}
	return out
}

func ToAttendanceDTOs(records []AttendanceModel.AttendanceModel) []AttendanceDTO {
	out := make([]AttendanceDTO, 0, len(records))
	for _, r := range records {
		out = append(out, ToAttendanceDTO(r))
	}
	return out
}
