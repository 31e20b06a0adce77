package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	ClassModel "edacademy_backend/internals/features/school/classes/model"
	UserModel "edacademy_backend/internals/features/users/user/model"
)

// SubjectModel represents a course scoped to one class, optionally taught by
// one teacher.
type SubjectModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string     `gorm:"size:100;not null" json:"name"`
	ClassID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"classId"`
	TeacherID *uuid.UUID `gorm:"type:uuid;index" json:"teacherId,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relations
	Class   *ClassModel.ClassModel `gorm:"foreignKey:ClassID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"class,omitempty"`
	Teacher *UserModel.UserModel   `gorm:"foreignKey:TeacherID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"teacher,omitempty"`
}

func (SubjectModel) TableName() string { return "subjects" }

func (m *SubjectModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
