package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"edacademy_backend/internals/constants"
	ClassModel "edacademy_backend/internals/features/school/classes/model"
	"edacademy_backend/internals/features/school/subjects/dto"
	SubjectModel "edacademy_backend/internals/features/school/subjects/model"
	UserModel "edacademy_backend/internals/features/users/user/model"
	helper "edacademy_backend/internals/helpers"
)

var validate = validator.New()

type SubjectController struct {
	DB *gorm.DB
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db}
}

// ======================
// Create Subject
// POST /api/subjects
// ======================
func (ctrl *SubjectController) CreateSubject(c *fiber.Ctx) error {
	var body dto.CreateSubjectRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	classID, err := uuid.Parse(body.ClassID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid class ID")
	}
	var class ClassModel.ClassModel
	if err := ctrl.DB.First(&class, "id = ?", classID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Class not found")
	}

	subject := SubjectModel.SubjectModel{
		Name:    body.Name,
		ClassID: classID,
	}
	if body.TeacherID != nil {
		teacherID, ferr := ctrl.resolveTeacher(*body.TeacherID)
		if ferr != nil {
			return helper.FromFiberError(c, ferr)
		}
		subject.TeacherID = &teacherID
	}

	if err := ctrl.DB.Create(&subject).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create subject")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Subject created successfully", dto.ToSubjectDTO(subject))
}

// ======================
// Get All Subjects
// GET /api/subjects?classId=&teacherId=&search=&page=&limit=
// ======================
func (ctrl *SubjectController) GetAllSubjects(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	q := ctrl.DB.Model(&SubjectModel.SubjectModel{})
	if classID := c.Query("classId"); classID != "" {
		q = q.Where("class_id = ?", classID)
	}
	if teacherID := c.Query("teacherId"); teacherID != "" {
		q = q.Where("teacher_id = ?", teacherID)
	}
	if search := c.Query("search"); search != "" {
		q = q.Where("name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count subjects")
	}

	var subjects []SubjectModel.SubjectModel
	if err := q.Preload("Class").Preload("Teacher").
		Order("name ASC").Offset(paging.Offset).Limit(paging.Limit).
		Find(&subjects).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve subjects")
	}

	return helper.Success(c, "Subjects retrieved successfully", helper.ListPayload{
		Data: dto.ToSubjectDTOs(subjects),
		Meta: helper.BuildMeta(total, paging),
	})
}

// ======================
// Get Subject by ID
// GET /api/subjects/:id
// ======================
func (ctrl *SubjectController) GetSubjectByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var subject SubjectModel.SubjectModel
	if err := ctrl.DB.Preload("Class").Preload("Teacher").
		First(&subject, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Subject not found")
	}

	return helper.Success(c, "Subject retrieved successfully", dto.ToSubjectDTO(subject))
}

// ======================
// Update Subject
// PUT /api/subjects/:id
// ======================
func (ctrl *SubjectController) UpdateSubject(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateSubjectRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var subject SubjectModel.SubjectModel
	if err := ctrl.DB.First(&subject, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Subject not found")
	}

	if body.Name != nil {
		subject.Name = *body.Name
	}
	if body.TeacherID != nil {
		teacherID, ferr := ctrl.resolveTeacher(*body.TeacherID)
		if ferr != nil {
			return helper.FromFiberError(c, ferr)
		}
		subject.TeacherID = &teacherID
	}

	if err := ctrl.DB.Save(&subject).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update subject")
	}

	return helper.Success(c, "Subject updated successfully", dto.ToSubjectDTO(subject))
}

// ======================
// Delete Subject
// DELETE /api/subjects/:id
// ======================
func (ctrl *SubjectController) DeleteSubject(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.Delete(&SubjectModel.SubjectModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete subject")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Subject not found")
	}

	return helper.Success(c, "Subject deleted successfully", nil)
}

func (ctrl *SubjectController) resolveTeacher(raw string) (uuid.UUID, error) {
	teacherID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid teacher ID")
	}
	var teacher UserModel.UserModel
	if err := ctrl.DB.First(&teacher, "id = ?", teacherID).Error; err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid teacher ID")
	}
	if teacher.Role != constants.RoleTeacher {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid teacher ID")
	}
	return teacherID, nil
}
