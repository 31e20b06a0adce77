package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"edacademy_backend/internals/configs"
	"edacademy_backend/internals/constants"
	UserModel "edacademy_backend/internals/features/users/user/model"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	configs.JWTSecret = "test-secret"

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&UserModel.UserModel{}))

	app := fiber.New()
	authCtrl := NewAuthController(db)
	app.Post("/api/auth/register", authCtrl.Register)
	app.Post("/api/auth/login", authCtrl.Login)
	return app, db
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	payload := map[string]interface{}{}
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &payload))
	return resp, payload
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	app, db := setupApp(t)

	body := fiber.Map{
		"fullName": "Carol Danvers",
		"email":    "carol@school.test",
		"password": "s3cret-pass",
		"role":     constants.RoleStudent,
	}

	resp, payload := postJSON(t, app, "/api/auth/register", body)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	require.Equal(t, true, payload["success"])

	// Same email again, even with different details, must be refused.
	body["fullName"] = "Someone Else"
	body["password"] = "another-pass-123"
	resp, payload = postJSON(t, app, "/api/auth/register", body)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	require.Equal(t, false, payload["success"])
	require.Equal(t, "Email already in use", payload["message"])

	var count int64
	require.NoError(t, db.Model(&UserModel.UserModel{}).Where("email = ?", "carol@school.test").Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestLoginWrongCredentials(t *testing.T) {
	app, _ := setupApp(t)

	_, _ = postJSON(t, app, "/api/auth/register", fiber.Map{
		"fullName": "Carol Danvers",
		"email":    "carol@school.test",
		"password": "s3cret-pass",
		"role":     constants.RoleStudent,
	})

	// Wrong password and unknown email fail identically, without leaking
	// which of the two was wrong.
	resp, payload := postJSON(t, app, "/api/auth/login", fiber.Map{
		"email":    "carol@school.test",
		"password": "wrong-pass",
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "Invalid email or password", payload["message"])

	resp, payload = postJSON(t, app, "/api/auth/login", fiber.Map{
		"email":    "nobody@school.test",
		"password": "s3cret-pass",
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "Invalid email or password", payload["message"])

	resp, payload = postJSON(t, app, "/api/auth/login", fiber.Map{
		"email":    "carol@school.test",
		"password": "s3cret-pass",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data, ok := payload["data"].(map[string]interface{})
	require.True(t, ok)
	require.NotEmpty(t, data["token"])
}
