package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"edacademy_backend/internals/configs"
	UserModel "edacademy_backend/internals/features/users/user/model"
)

// CreateAccessToken signs an HS256 token carrying the user's id, role and
// display name.
func CreateAccessToken(user UserModel.UserModel) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":   user.ID.String(),
		"role":      user.Role,
		"full_name": user.FullName,
		"iat":       now.Unix(),
		"exp":       now.Add(time.Duration(configs.JWTExpiryHours) * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
