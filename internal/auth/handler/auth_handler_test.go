package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/Altraaa/creavibes-panel-api/config"
	"github.com/Altraaa/creavibes-panel-api/internal/auth/domain"
	"github.com/Altraaa/creavibes-panel-api/internal/auth/dto"
	"github.com/Altraaa/creavibes-panel-api/internal/auth/handler"
	"github.com/Altraaa/creavibes-panel-api/internal/auth/service"
	"github.com/Altraaa/creavibes-panel-api/internal/mocks"
	"github.com/Altraaa/creavibes-panel-api/internal/response"
	"github.com/Altraaa/creavibes-panel-api/pkg/constant"
	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type handlerFixture struct {
	users  *mocks.MockUserRepository
	hasher *mocks.MockPasswordHasher
	tokens *mocks.MockTokenIssuer
	audit  *mocks.MockAuditRepository
	app    *fiber.App
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &handlerFixture{
		users:  mocks.NewMockUserRepository(ctrl),
		hasher: mocks.NewMockPasswordHasher(ctrl),
		tokens: mocks.NewMockTokenIssuer(ctrl),
		audit:  mocks.NewMockAuditRepository(ctrl),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	recorder := service.NewLoginRecorder(f.audit, logger)
	sessions := service.NewSessionService(f.users, f.hasher, f.tokens, recorder,
		&config.Config{TempPasswordLength: 12}, logger)

	authHandler := handler.NewAuthHandler(sessions)
	mw := handler.NewAuthMiddleware(f.tokens, f.users)

	app := fiber.New()
	app.Post("/login", authHandler.Login)
	app.Post("/reset-password", authHandler.ResetPassword)
	app.Post("/logout", mw.RequireAuth, authHandler.Logout)
	app.Get("/me", mw.RequireAuth, authHandler.Me)
	app.Post("/refresh", mw.RequireAuth, authHandler.Refresh)
	app.Post("/change-password", mw.RequireAuth, authHandler.ChangePassword)
	f.app = app

	return f
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}, headers map[string]string) (int, response.Envelope) {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope response.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))

	return resp.StatusCode, envelope
}

func testUser() *domain.User {
	return &domain.User{
		ID:           "user-123",
		Name:         "Test User",
		Email:        "a@x.com",
		PasswordHash: "hashed-secret123",
		IsActive:     true,
		Role:         "user",
	}
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newHandlerFixture(t)
		user := testUser()

		f.users.EXPECT().GetByEmail(gomock.Any(), "a@x.com").Return(user, nil)
		f.hasher.EXPECT().Verify("secret123", "hashed-secret123").Return(true)
		f.tokens.EXPECT().Issue(gomock.Any(), "user-123").Return("tok-1|secret", nil)
		f.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
		f.users.EXPECT().UpdateLastLogin(gomock.Any(), "user-123", gomock.Any()).Return(nil)

		status, envelope := postJSON(t, f.app, "/login",
			dto.LoginInput{Email: "a@x.com", Password: "secret123"}, nil)

		assert.Equal(t, fiber.StatusOK, status)
		assert.True(t, envelope.Success)
		assert.Equal(t, "Login successful", envelope.Message)

		data, ok := envelope.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "tok-1|secret", data["token"])
		assert.Equal(t, "Bearer", data["token_type"])

		// The password hash must not appear anywhere in the user payload.
		userData, ok := data["user"].(map[string]interface{})
		require.True(t, ok)
		assert.NotContains(t, userData, "password_hash")
		assert.NotContains(t, userData, "PasswordHash")
	})

	t.Run("identical failure responses for unknown email and wrong password", func(t *testing.T) {
		f := newHandlerFixture(t)
		user := testUser()

		f.users.EXPECT().GetByEmail(gomock.Any(), "nobody@x.com").Return(nil, nil)
		f.users.EXPECT().GetByEmail(gomock.Any(), "a@x.com").Return(user, nil)
		f.hasher.EXPECT().Verify("wrong", "hashed-secret123").Return(false)
		f.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		statusUnknown, envUnknown := postJSON(t, f.app, "/login",
			dto.LoginInput{Email: "nobody@x.com", Password: "wrong"}, nil)
		statusWrong, envWrong := postJSON(t, f.app, "/login",
			dto.LoginInput{Email: "a@x.com", Password: "wrong"}, nil)

		assert.Equal(t, fiber.StatusUnauthorized, statusUnknown)
		assert.Equal(t, statusUnknown, statusWrong)
		assert.Equal(t, envUnknown.Message, envWrong.Message)
		assert.Equal(t, envUnknown.Errors, envWrong.Errors)
	})

	t.Run("disabled account", func(t *testing.T) {
		f := newHandlerFixture(t)
		user := testUser()
		user.IsActive = false

		f.users.EXPECT().GetByEmail(gomock.Any(), "a@x.com").Return(user, nil)
		f.hasher.EXPECT().Verify("secret123", "hashed-secret123").Return(true)
		f.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

		status, envelope := postJSON(t, f.app, "/login",
			dto.LoginInput{Email: "a@x.com", Password: "secret123"}, nil)

		assert.Equal(t, fiber.StatusUnauthorized, status)
		assert.Equal(t, "Account is disabled", envelope.Message)
	})

	t.Run("missing fields", func(t *testing.T) {
		f := newHandlerFixture(t)

		status, envelope := postJSON(t, f.app, "/login", dto.LoginInput{Email: "a@x.com"}, nil)

		assert.Equal(t, fiber.StatusUnprocessableEntity, status)
		assert.False(t, envelope.Success)
	})

	t.Run("store failure surfaces in errors.server", func(t *testing.T) {
		f := newHandlerFixture(t)

		f.users.EXPECT().GetByEmail(gomock.Any(), "a@x.com").Return(nil, errors.New("connection refused"))

		status, envelope := postJSON(t, f.app, "/login",
			dto.LoginInput{Email: "a@x.com", Password: "secret123"}, nil)

		assert.Equal(t, fiber.StatusInternalServerError, status)
		assert.Equal(t, "Login failed", envelope.Message)
		assert.Contains(t, envelope.Errors["server"], "connection refused")
	})
}

func TestAuthHandler_ProtectedRoutes(t *testing.T) {
	authorize := func(f *handlerFixture, user *domain.User) map[string]string {
		f.tokens.EXPECT().Validate(gomock.Any(), "tok-1|secret").Return(user.ID, nil)
		f.users.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)
		return map[string]string{"Authorization": "Bearer tok-1|secret"}
	}

	t.Run("logout revokes and succeeds", func(t *testing.T) {
		f := newHandlerFixture(t)
		user := testUser()
		headers := authorize(f, user)

		f.tokens.EXPECT().RevokeAll(gomock.Any(), "user-123").Return(int64(1), nil)
		f.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

		status, envelope := postJSON(t, f.app, "/logout", nil, headers)

		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, "Logout successful", envelope.Message)
	})

	t.Run("refresh returns a new bearer token", func(t *testing.T) {
		f := newHandlerFixture(t)
		user := testUser()
		headers := authorize(f, user)

		f.tokens.EXPECT().Rotate(gomock.Any(), "user-123").Return("tok-2|next", nil)

		status, envelope := postJSON(t, f.app, "/refresh", nil, headers)

		assert.Equal(t, fiber.StatusOK, status)
		data, ok := envelope.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "tok-2|next", data["token"])
		assert.Equal(t, "Bearer", data["token_type"])
	})

	t.Run("change password with wrong current password", func(t *testing.T) {
		f := newHandlerFixture(t)
		user := testUser()
		headers := authorize(f, user)

		f.hasher.EXPECT().Verify("wrong", "hashed-secret123").Return(false)

		status, envelope := postJSON(t, f.app, "/change-password",
			dto.ChangePasswordInput{CurrentPassword: "wrong", NewPassword: "newpass1"}, headers)

		assert.Equal(t, fiber.StatusUnauthorized, status)
		assert.Equal(t, "Current password is incorrect", envelope.Message)
	})

	t.Run("missing bearer token", func(t *testing.T) {
		f := newHandlerFixture(t)

		status, envelope := postJSON(t, f.app, "/logout", nil, nil)

		assert.Equal(t, fiber.StatusUnauthorized, status)
		assert.Equal(t, "Unauthenticated", envelope.Message)
	})

	t.Run("revoked token is rejected", func(t *testing.T) {
		f := newHandlerFixture(t)

		f.tokens.EXPECT().Validate(gomock.Any(), "tok-1|dead").Return("", errors.New("invalid or revoked token"))

		status, _ := postJSON(t, f.app, "/logout", nil,
			map[string]string{"Authorization": "Bearer tok-1|dead"})

		assert.Equal(t, fiber.StatusUnauthorized, status)
	})
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	newGuardedApp := func(f *handlerFixture) *fiber.App {
		mw := handler.NewAuthMiddleware(f.tokens, f.users)
		app := fiber.New()
		app.Get("/users", mw.RequireAuth, mw.RequireRole(constant.AdminRole), func(c *fiber.Ctx) error {
			return response.Success(c, fiber.StatusOK, "Users fetched successfully", nil)
		})
		return app
	}

	getUsers := func(t *testing.T, app *fiber.App, token string) (int, response.Envelope) {
		t.Helper()
		req := httptest.NewRequest("GET", "/users", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		var envelope response.Envelope
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
		return resp.StatusCode, envelope
	}

	t.Run("admin passes", func(t *testing.T) {
		f := newHandlerFixture(t)
		admin := testUser()
		admin.Role = constant.AdminRole

		f.tokens.EXPECT().Validate(gomock.Any(), "tok-1|secret").Return(admin.ID, nil)
		f.users.EXPECT().GetByID(gomock.Any(), admin.ID).Return(admin, nil)

		status, envelope := getUsers(t, newGuardedApp(f), "tok-1|secret")

		assert.Equal(t, fiber.StatusOK, status)
		assert.True(t, envelope.Success)
	})

	t.Run("regular user is forbidden", func(t *testing.T) {
		f := newHandlerFixture(t)
		user := testUser() // role "user"

		f.tokens.EXPECT().Validate(gomock.Any(), "tok-1|secret").Return(user.ID, nil)
		f.users.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)

		status, envelope := getUsers(t, newGuardedApp(f), "tok-1|secret")

		assert.Equal(t, fiber.StatusForbidden, status)
		assert.Equal(t, "Forbidden", envelope.Message)
	})
}

func TestAuthHandler_ResetPassword(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		f := newHandlerFixture(t)

		f.users.EXPECT().GetByEmail(gomock.Any(), "nobody@x.com").Return(nil, nil)

		status, envelope := postJSON(t, f.app, "/reset-password",
			dto.ResetPasswordInput{Email: "nobody@x.com"}, nil)

		assert.Equal(t, fiber.StatusNotFound, status)
		assert.False(t, envelope.Success)
	})

	t.Run("returns a temporary password", func(t *testing.T) {
		f := newHandlerFixture(t)
		user := testUser()

		f.users.EXPECT().GetByEmail(gomock.Any(), "a@x.com").Return(user, nil)
		f.hasher.EXPECT().Hash(gomock.Any()).Return("hashed-temp", nil)
		f.users.EXPECT().UpdatePassword(gomock.Any(), "user-123", "hashed-temp").Return(nil)

		status, envelope := postJSON(t, f.app, "/reset-password",
			dto.ResetPasswordInput{Email: "a@x.com"}, nil)

		assert.Equal(t, fiber.StatusOK, status)
		data, ok := envelope.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Len(t, data["temporary_password"], 12)
	})
}
