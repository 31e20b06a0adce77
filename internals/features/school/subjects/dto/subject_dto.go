package dto

import (
	"time"

	SubjectModel "edacademy_backend/internals/features/school/subjects/model"
)

// ====================
// Response DTO
// ====================

type SubjectClassDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type SubjectTeacherDTO struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
}

type SubjectDTO struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	ClassID   string             `json:"classId"`
	TeacherID *string            `json:"teacherId,omitempty"`
	Class     *SubjectClassDTO   `json:"class,omitempty"`
	Teacher   *SubjectTeacherDTO `json:"teacher,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
}

// ====================
// Request DTO
// ====================

type CreateSubjectRequest struct {
	Name      string  `json:"name" validate:"required,min=2,max=100"`
	ClassID   string  `json:"classId" validate:"required,uuid"`
	TeacherID *string `json:"teacherId,omitempty" validate:"omitempty,uuid"`
}

type UpdateSubjectRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	TeacherID *string `json:"teacherId,omitempty" validate:"omitempty,uuid"`
}

// ====================
// Converter: Model → DTO
// ====================

func ToSubjectDTO(m SubjectModel.SubjectModel) SubjectDTO {
	out := SubjectDTO{
		ID:        m.ID.String(),
		Name:      m.Name,
		ClassID:   m.ClassID.String(),
		CreatedAt: m.CreatedAt,
	}
	if m.TeacherID != nil {
		s := m.TeacherID.String()
		out.TeacherID = &s
	}
	if m.Class != nil {
		out.Class = &SubjectClassDTO{ID: m.Class.ID.String(), Name: m.Class.Name}
	}
	if m.Teacher != nil {
		out.Teacher = &SubjectTeacherDTO{ID: m.Teacher.ID.String(), FullName: m.Teacher.FullName}
	}
	return out
}

func ToSubjectDTOs(subjects []SubjectModel.SubjectModel) []SubjectDTO {
	out := make([]SubjectDTO, 0, len(subjects))
	for _, s := range subjects {
		out = append(out, ToSubjectDTO(s))
	}
	return out
}
