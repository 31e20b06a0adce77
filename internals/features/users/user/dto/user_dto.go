package dto

import (
	"time"

	UserModel "edacademy_backend/internals/features/users/user/model"
)

// ====================
// Response DTO
// ====================

type UserDTO struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	ClassID   *string   `json:"classId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ====================
// Request DTO
// ====================

type CreateUserRequest struct {
	FullName string  `json:"fullName" validate:"required,min=3,max=100"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8"`
	Role     string  `json:"role" validate:"required,oneof=TEACHER STUDENT"`
	ClassID  *string `json:"classId,omitempty" validate:"omitempty,uuid"`
}

// UpdateUserRequest deliberately has no role field: roles are immutable.
type UpdateUserRequest struct {
	FullName *string `json:"fullName,omitempty" validate:"omitempty,min=3,max=100"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	ClassID  *string `json:"classId,omitempty" validate:"omitempty,uuid"`
}

// ====================
// Converter: Model → DTO
// ====================

func ToUserDTO(u UserModel.UserModel) UserDTO {
	dto := UserDTO{
		ID:        u.ID.String(),
		FullName:  u.FullName,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
	if u.ClassID != nil {
		s := u.ClassID.String()
		dto.ClassID = &s
	}
	return dto
}

func ToUserDTOs(users []UserModel.UserModel) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserDTO(u))
	}
	return out
}
