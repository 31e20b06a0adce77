package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	UserModel "edacademy_backend/internals/features/users/user/model"
)

// ClassModel represents a cohort. Classes are created by an admin and may be
// owned by a single teacher.
type ClassModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string     `gorm:"size:100;not null" json:"name"`
	Level        *string    `gorm:"size:50" json:"level,omitempty"`
	AcademicYear *string    `gorm:"size:20" json:"academicYear,omitempty"`
	TeacherID    *uuid.UUID `gorm:"type:uuid;index" json:"teacherId,omitempty"`
	CreatedByID  uuid.UUID  `gorm:"type:uuid;not null" json:"createdById"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relations
	Teacher  *UserModel.UserModel  `gorm:"foreignKey:TeacherID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"teacher,omitempty"`
	Students []UserModel.UserModel `gorm:"foreignKey:ClassID;references:ID" json:"students,omitempty"`
}

func (ClassModel) TableName() string { return "classes" }

func (m *ClassModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
