package service

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"edacademy_backend/internals/configs"
	"edacademy_backend/internals/constants"
	UserModel "edacademy_backend/internals/features/users/user/model"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-pass", hash)

	require.True(t, VerifyPassword("s3cret-pass", hash))
	require.False(t, VerifyPassword("wrong-pass", hash))
}

func TestCreateAccessToken(t *testing.T) {
	configs.JWTSecret = "test-secret"

	user := UserModel.UserModel{
		ID:       uuid.New(),
		FullName: "alice",
		Role:     constants.RoleTeacher,
	}

	signed, err := CreateAccessToken(user)
	require.NoError(t, err)

	parsed, err := jwt.Parse(signed, func(tok *jwt.Token) (interface{}, error) {
		require.IsType(t, &jwt.SigningMethodHMAC{}, tok.Method)
		return []byte(configs.JWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	require.Equal(t, user.ID.String(), claims["user_id"])
	require.Equal(t, constants.RoleTeacher, claims["role"])
	require.Equal(t, "alice", claims["full_name"])
	require.NotEmpty(t, claims["exp"])
}
