package dto

import (
	UserModel "edacademy_backend/internals/features/users/user/model"
)

// ====================
// Request DTO
// ====================

type RegisterRequest struct {
	FullName string `json:"fullName" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=ADMIN TEACHER STUDENT"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ====================
// Response DTO
// ====================

type AuthUserDTO struct {
	ID       string  `json:"id"`
	FullName string  `json:"fullName"`
	Email    string  `json:"email"`
	Role     string  `json:"role"`
	ClassID  *string `json:"classId,omitempty"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  AuthUserDTO `json:"user"`
}

// ====================
// Converter: Model → DTO
// ====================

func ToAuthUserDTO(u UserModel.UserModel) AuthUserDTO {
	dto := AuthUserDTO{
		ID:       u.ID.String(),
		FullName: u.FullName,
		Email:    u.Email,
		Role:     u.Role,
	}
	if u.ClassID != nil {
		s := u.ClassID.String()
		dto.ClassID = &s
	}
	return dto
}
