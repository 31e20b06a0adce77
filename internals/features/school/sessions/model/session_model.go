package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	ClassModel "edacademy_backend/internals/features/school/classes/model"
	SubjectModel "edacademy_backend/internals/features/school/subjects/model"
	UserModel "edacademy_backend/internals/features/users/user/model"
)

// SessionModel represents one scheduled class meeting. The referenced
// subject must belong to the same class (checked by the session service).
type SessionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Date      time.Time `gorm:"not null;index" json:"date"`
	StartTime string    `gorm:"size:5;not null" json:"startTime"`
	EndTime   string    `gorm:"size:5;not null" json:"endTime"`
	Room      string    `gorm:"size:100" json:"room"`
	ClassID   uuid.UUID `gorm:"type:uuid;not null;index" json:"classId"`
	SubjectID uuid.UUID `gorm:"type:uuid;not null;index" json:"subjectId"`
	TeacherID uuid.UUID `gorm:"type:uuid;not null;index" json:"teacherId"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relations
	Class   *ClassModel.ClassModel     `gorm:"foreignKey:ClassID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"class,omitempty"`
	Subject *SubjectModel.SubjectModel `gorm:"foreignKey:SubjectID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"subject,omitempty"`
	Teacher *UserModel.UserModel       `gorm:"foreignKey:TeacherID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"teacher,omitempty"`
}

func (SessionModel) TableName() string { return "sessions" }

func (m *SessionModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
