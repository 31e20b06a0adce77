package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	SessionModel "edacademy_backend/internals/features/school/sessions/model"
	UserModel "edacademy_backend/internals/features/users/user/model"
)

// Attendance status values.
const (
	StatusPresent = "PRESENT"
	StatusAbsent  = "ABSENT"
	StatusLate    = "LATE"
)

// Justification values, meaningful only when status is not PRESENT.
const (
	JustificationJustified    = "JUSTIFIED"
	JustificationNotJustified = "NOT_JUSTIFIED"
)

func IsValidStatus(s string) bool {
	return s == StatusPresent || s == StatusAbsent || s == StatusLate
}

func IsValidJustification(j string) bool {
	return j == JustificationJustified || j == JustificationNotJustified
}

// AttendanceModel holds one student's status for one session. The composite
// unique index makes marking an upsert per (session, student) pair.
type AttendanceModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_session_student" json:"sessionId"`
	StudentID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_session_student" json:"studentId"`
	Status        string    `gorm:"type:varchar(10);not null" json:"status"`
	Justification *string   `gorm:"type:varchar(15)" json:"justification,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relations
	Session *SessionModel.SessionModel `gorm:"foreignKey:SessionID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"session,omitempty"`
	Student *UserModel.UserModel       `gorm:"foreignKey:StudentID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"student,omitempty"`
}

func (AttendanceModel) TableName() string { return "attendances" }

func (m *AttendanceModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
