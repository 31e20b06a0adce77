package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authservice "edacademy_backend/internals/features/users/auth/service"
	"edacademy_backend/internals/features/users/user/dto"
	UserModel "edacademy_backend/internals/features/users/user/model"
	helper "edacademy_backend/internals/helpers"
)

var validate = validator.New()

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// ======================
// Get All Users
// GET /api/users?role=&classId=&search=&page=&limit=
// ======================
func (ctrl *UserController) GetAllUsers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	q := ctrl.DB.Model(&UserModel.UserModel{})
	if role := c.Query("role"); role != "" {
		q = q.Where("role = ?", role)
	}
	if classID := c.Query("classId"); classID != "" {
		q = q.Where("class_id = ?", classID)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where("full_name ILIKE ? OR email ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count users")
	}

	var users []UserModel.UserModel
	if err := q.Order("created_at DESC").Offset(paging.Offset).Limit(paging.Limit).Find(&users).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve users")
	}

	return helper.Success(c, "Users retrieved successfully", helper.ListPayload{
		Data: dto.ToUserDTOs(users),
		Meta: helper.BuildMeta(total, paging),
	})
}

// ======================
// Get User by ID
// GET /api/users/:id
// ======================
func (ctrl *UserController) GetUserByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var user UserModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}

	return helper.Success(c, "User retrieved successfully", dto.ToUserDTO(user))
}

// ======================
// Create User (teacher or student accounts)
// POST /api/users
// ======================
func (ctrl *UserController) CreateUser(c *fiber.Ctx) error {
	var body dto.CreateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var existing UserModel.UserModel
	err := ctrl.DB.Where("email = ?", body.Email).First(&existing).Error
	if err == nil {
		return helper.Error(c, fiber.StatusBadRequest, "Email already in use")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to check existing user")
	}

	hash, err := authservice.HashPassword(body.Password)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := UserModel.UserModel{
		FullName: body.FullName,
		Email:    body.Email,
		Password: hash,
		Role:     body.Role,
	}
	if body.ClassID != nil {
		classID, err := uuid.Parse(*body.ClassID)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid class ID")
		}
		user.ClassID = &classID
	}

	if err := ctrl.DB.Create(&user).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "User created successfully", dto.ToUserDTO(user))
}

// ======================
// Update User
// PUT /api/users/:id
// ======================
func (ctrl *UserController) UpdateUser(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var user UserModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}

	if body.FullName != nil {
		user.FullName = *body.FullName
	}
	if body.Email != nil {
		user.Email = *body.Email
	}
	if body.ClassID != nil {
		classID, err := uuid.Parse(*body.ClassID)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid class ID")
		}
		user.ClassID = &classID
	}

	if err := ctrl.DB.Save(&user).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update user")
	}

	return helper.Success(c, "User updated successfully", dto.ToUserDTO(user))
}

// ======================
// Delete User
// DELETE /api/users/:id
// ======================
func (ctrl *UserController) DeleteUser(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.Delete(&UserModel.UserModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete user")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}

	return helper.Success(c, "User deleted successfully", nil)
}
