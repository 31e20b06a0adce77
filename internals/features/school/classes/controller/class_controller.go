package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"edacademy_backend/internals/constants"
	"edacademy_backend/internals/features/school/classes/dto"
	ClassModel "edacademy_backend/internals/features/school/classes/model"
	SubjectModel "edacademy_backend/internals/features/school/subjects/model"
	UserModel "edacademy_backend/internals/features/users/user/model"
	helper "edacademy_backend/internals/helpers"
	authmw "edacademy_backend/internals/middlewares/auth"
)

var validate = validator.New()

type ClassController struct {
	DB *gorm.DB
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db}
}

// ======================
// Create Class
// POST /api/classes
// ======================
func (ctrl *ClassController) CreateClass(c *fiber.Ctx) error {
	var body dto.CreateClassRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	creatorID, err := authmw.MustUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	class := ClassModel.ClassModel{
		Name:         body.Name,
		Level:        body.Level,
		AcademicYear: body.AcademicYear,
		CreatedByID:  creatorID,
	}
	if body.TeacherID != nil {
		teacherID, ferr := ctrl.resolveTeacher(*body.TeacherID)
		if ferr != nil {
			return helper.FromFiberError(c, ferr)
		}
		class.TeacherID = &teacherID
	}

	if err := ctrl.DB.Create(&class).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create class")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Class created successfully", dto.ToClassDTO(class))
}

// ======================
// Get All Classes
// GET /api/classes?search=&level=&page=&limit=
// ======================
func (ctrl *ClassController) GetAllClasses(c *fiber.Ctx) error {
	return ctrl.listClasses(c, nil)
}

// ======================
// Get My Classes (owning teacher)
// GET /api/classes/my-classes
// ======================
func (ctrl *ClassController) GetMyClasses(c *fiber.Ctx) error {
	teacherID, err := authmw.MustUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return ctrl.listClasses(c, &teacherID)
}

func (ctrl *ClassController) listClasses(c *fiber.Ctx, teacherID *uuid.UUID) error {
	paging := helper.ResolvePaging(c, 10, 100)

	q := ctrl.DB.Model(&ClassModel.ClassModel{})
	if teacherID != nil {
		q = q.Where("teacher_id = ?", *teacherID)
	}
	if search := c.Query("search"); search != "" {
		q = q.Where("name ILIKE ?", "%"+search+"%")
	}
	if level := c.Query("level"); level != "" {
		q = q.Where("level = ?", level)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count classes")
	}

	var classes []ClassModel.ClassModel
	if err := q.Preload("Teacher").
		Order("created_at DESC").Offset(paging.Offset).Limit(paging.Limit).
		Find(&classes).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve classes")
	}

	result := make([]dto.ClassDTO, 0, len(classes))
	for _, class := range classes {
		item := dto.ToClassDTO(class)

		var studentCount int64
		ctrl.DB.Model(&UserModel.UserModel{}).
			Where("class_id = ? AND role = ?", class.ID, constants.RoleStudent).
			Count(&studentCount)
		item.Count = &dto.ClassCountDTO{Students: studentCount}

		var subjects []SubjectModel.SubjectModel
		ctrl.DB.Where("class_id = ?", class.ID).Order("name ASC").Find(&subjects)
		for _, s := range subjects {
			item.Subjects = append(item.Subjects, dto.ClassSubjectDTO{ID: s.ID.String(), Name: s.Name})
		}

		result = append(result, item)
	}

	return helper.Success(c, "Classes retrieved successfully", helper.ListPayload{
		Data: result,
		Meta: helper.BuildMeta(total, paging),
	})
}

// ======================
// Get Class by ID (with roster and subjects)
// GET /api/classes/:id
// ======================
func (ctrl *ClassController) GetClassByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var class ClassModel.ClassModel
	if err := ctrl.DB.Preload("Teacher").Preload("Students").
		First(&class, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Class not found")
	}

	item := dto.ToClassDTO(class)
	item.Count = &dto.ClassCountDTO{Students: int64(len(class.Students))}

	var subjects []SubjectModel.SubjectModel
	ctrl.DB.Where("class_id = ?", class.ID).Order("name ASC").Find(&subjects)
	for _, s := range subjects {
		item.Subjects = append(item.Subjects, dto.ClassSubjectDTO{ID: s.ID.String(), Name: s.Name})
	}

	return helper.Success(c, "Class retrieved successfully", item)
}

// ======================
// Update Class
// PUT /api/classes/:id
// ======================
func (ctrl *ClassController) UpdateClass(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateClassRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var class ClassModel.ClassModel
	if err := ctrl.DB.First(&class, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Class not found")
	}

	if body.Name != nil {
		class.Name = *body.Name
	}
	if body.Level != nil {
		class.Level = body.Level
	}
	if body.AcademicYear != nil {
		class.AcademicYear = body.AcademicYear
	}
	if body.TeacherID != nil {
		teacherID, ferr := ctrl.resolveTeacher(*body.TeacherID)
		if ferr != nil {
			return helper.FromFiberError(c, ferr)
		}
		class.TeacherID = &teacherID
	}

	if err := ctrl.DB.Save(&class).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update class")
	}

	return helper.Success(c, "Class updated successfully", dto.ToClassDTO(class))
}

// ======================
// Delete Class
// DELETE /api/classes/:id
// ======================
func (ctrl *ClassController) DeleteClass(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.Delete(&ClassModel.ClassModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete class")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Class not found")
	}

	return helper.Success(c, "Class deleted successfully", nil)
}

// resolveTeacher checks that the given id belongs to a TEACHER account.
func (ctrl *ClassController) resolveTeacher(raw string) (uuid.UUID, error) {
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
