package dto

import (
	"time"

	ClassModel "edacademy_backend/internals/features/school/classes/model"
)

// ====================
// Response DTO
// ====================

type ClassTeacherDTO struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
}

type ClassSubjectDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ClassStudentDTO struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

type ClassCountDTO struct {
	Students int64 `json:"students"`
}

type ClassDTO struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Level        *string           `json:"level,omitempty"`
	AcademicYear *string           `json:"academicYear,omitempty"`
	TeacherID    *string           `json:"teacherId,omitempty"`
	Teacher      *ClassTeacherDTO  `json:"teacher,omitempty"`
	Count        *ClassCountDTO    `json:"_count,omitempty"`
	Subjects     []ClassSubjectDTO `json:"subjects,omitempty"`
	Students     []ClassStudentDTO `json:"students,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
}

// ====================
// Request DTO
// ====================

type CreateClassRequest struct {
	Name         string  `json:"name" validate:"required,min=2,max=100"`
	Level        *string `json:"level,omitempty" validate:"omitempty,max=50"`
	AcademicYear *string `json:"academicYear,omitempty" validate:"omitempty,max=20"`
	TeacherID    *string `json:"teacherId,omitempty" validate:"omitempty,uuid"`
}

type UpdateClassRequest struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Level        *string `json:"level,omitempty" validate:"omitempty,max=50"`
	AcademicYear *string `json:"academicYear,omitempty" validate:"omitempty,max=20"`
	TeacherID    *string `json:"teacherId,omitempty" validate:"omitempty,uuid"`
}

// ====================
// Converter: Model → DTO
// ====================

func ToClassDTO(m ClassModel.ClassModel) ClassDTO {
	out := ClassDTO{
		ID:           m.ID.String(),
		Name:         m.Name,
		Level:        m.Level,
		AcademicYear: m.AcademicYear,
		CreatedAt:    m.CreatedAt,
	}
	if m.TeacherID != nil {
		s := m.TeacherID.String()
		out.TeacherID = &s
	}
	if m.Teacher != nil {
		out.Teacher = &ClassTeacherDTO{
			ID:       m.Teacher.ID.String(),
			FullName: m.Teacher.FullName,
		}
	}
	for _, s := range m.Students {
		out.Students = append(out.Students, ClassStudentDTO{
			ID:       s.ID.String(),
			FullName: s.FullName,
			Email:    s.Email,
		})
	}
	return out
}
