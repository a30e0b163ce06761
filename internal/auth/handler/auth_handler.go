package handler

import (
	"github.com/Altraaa/creavibes-panel-api/internal/auth/domain"
	"github.com/Altraaa/creavibes-panel-api/internal/auth/dto"
	"github.com/Altraaa/creavibes-panel-api/internal/auth/service"
	"github.com/Altraaa/creavibes-panel-api/internal/response"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	sessions *service.SessionService
}

func NewAuthHandler(sessions *service.SessionService) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return response.ValidationError(c, map[string]string{"body": "invalid input"})
	}
	if input.Email == "" || input.Password == "" {
		return response.ValidationError(c, map[string]string{"credentials": "email and password are required"})
	}

	input.IPAddress = c.IP()
	input.UserAgent = string(c.Request().Header.UserAgent())
	input.DeviceInfo = c.Get("X-Device-Info")

	result, err := h.sessions.Login(c.UserContext(), input)
	if err != nil {
		return response.ServiceError(c, err, "Login failed")
	}

	return response.Success(c, fiber.StatusOK, "Login successful", result)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	user := currentUser(c)
	meta := domain.RequestMeta{
		IPAddress:  c.IP(),
		UserAgent:  string(c.Request().Header.UserAgent()),
		DeviceInfo: c.Get("X-Device-Info"),
	}

	if err := h.sessions.Logout(c.UserContext(), user, meta); err != nil {
		return response.ServiceError(c, err, "Logout failed")
	}

	return response.Success(c, fiber.StatusOK, "Logout successful", nil)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := currentUser(c)
	return response.Success(c, fiber.StatusOK, "Success", dto.NewUserOutput(user))
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	user := currentUser(c)

	result, err := h.sessions.RefreshToken(c.UserContext(), user)
	if err != nil {
		return response.ServiceError(c, err, "Token refresh failed")
	}

	return response.Success(c, fiber.StatusOK, "Token refreshed", result)
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var input dto.ChangePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return response.ValidationError(c, map[string]string{"body": "invalid input"})
	}
	if input.CurrentPassword == "" || input.NewPassword == "" {
		return response.ValidationError(c, map[string]string{"password": "current and new password are required"})
	}

	user := currentUser(c)
	if err := h.sessions.ChangePassword(c.UserContext(), user, input); err != nil {
		return response.ServiceError(c, err, "Password change failed")
	}

	return response.Success(c, fiber.StatusOK, "Password changed successfully", nil)
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var input dto.ResetPasswordInput
	if err := c.BodyParser(&input); err != nil || input.Email == "" {
		return response.ValidationError(c, map[string]string{"email": "email is required"})
	}

	result, err := h.sessions.ResetPassword(c.UserContext(), input.Email)
	if err != nil {
		return response.ServiceError(c, err, "Password reset failed")
	}

	return response.Success(c, fiber.StatusOK, "Password reset successful", result)
}

func currentUser(c *fiber.Ctx) *domain.User {
	user, _ := c.Locals(localUserKey).(*domain.User)
	return user
}
