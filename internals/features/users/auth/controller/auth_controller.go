package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edacademy_backend/internals/features/users/auth/dto"
	"edacademy_backend/internals/features/users/auth/service"
	UserModel "edacademy_backend/internals/features/users/user/model"
	helper "edacademy_backend/internals/helpers"
	authmw "edacademy_backend/internals/middlewares/auth"
)

var validate = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// ======================
// Register
// POST /api/auth/register
// ======================
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var body dto.RegisterRequest
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

	hash, err := service.HashPassword(body.Password)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := UserModel.UserModel{
		FullName: body.FullName,
		Email:    body.Email,
		Password: hash,
		Role:     body.Role,
	}
	if err := ctrl.DB.Create(&user).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "User registered successfully", dto.ToAuthUserDTO(user))
}

// ======================
// Login
// POST /api/auth/login
// ======================
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var user UserModel.UserModel
	if err := ctrl.DB.Where("email = ?", body.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid email or password")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}

	if !service.VerifyPassword(body.Password, user.Password) {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid email or password")
	}

	token, err := service.CreateAccessToken(user)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to sign token")
	}

	return helper.Success(c, "Login successful", dto.LoginResponse{
		Token: token,
		User:  dto.ToAuthUserDTO(user),
	})
}

// ======================
// Me
// GET /api/auth/me
// ======================
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := authmw.MustUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var user UserModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}

	return helper.Success(c, "User retrieved successfully", dto.ToAuthUserDTO(user))
}
