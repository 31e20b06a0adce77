package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel represents the users table. Role is fixed at creation; a student
// belongs to at most one class.
type UserModel struct {
	ID       uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	FullName string     `gorm:"size:100;not null" json:"fullName"`
	Email    string     `gorm:"size:255;unique;not null" json:"email"`
	Password string     `gorm:"not null" json:"-"`
	Role     string     `gorm:"type:varchar(20);not null" json:"role"`
	ClassID  *uuid.UUID `gorm:"type:uuid;index" json:"classId,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
