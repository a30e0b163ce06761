package user

import (
	"strconv"

	"github.com/Altraaa/creavibes-panel-api/internal/response"
	"github.com/Altraaa/creavibes-panel-api/pkg/pagination"
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Index(c *fiber.Ctx) error {
	filters := ListFilters{
		Search: c.Query("search"),
		Role:   c.Query("role"),
		Page: pagination.Request{
			Page:      c.QueryInt("page"),
			PerPage:   c.QueryInt("per_page"),
			SortBy:    c.Query("sort_by"),
			SortOrder: c.Query("sort_order"),
		},
	}
	if raw := c.Query("is_active"); raw != "" {
		if active, err := strconv.ParseBool(raw); err == nil {
			filters.IsActive = &active
		}
	}

	users, meta, err := h.service.List(c.UserContext(), filters)
	if err != nil {
		return response.ServiceError(c, err, "Failed to fetch users")
	}

	return response.Success(c, fiber.StatusOK, "Users fetched successfully", fiber.Map{
		"data": users,
		"meta": meta,
	})
}

func (h *Handler) Show(c *fiber.Ctx) error {
	user, err := h.service.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return response.ServiceError(c, err, "Failed to fetch user")
	}

	return response.Success(c, fiber.StatusOK, "User fetched successfully", user)
}

func (h *Handler) Store(c *fiber.Ctx) error {
	var input CreateInput
	if err := c.BodyParser(&input); err != nil {
		return response.ValidationError(c, map[string]string{"body": "invalid input"})
	}
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return response.ValidationError(c, map[string]string{"user": "name, email and password are required"})
	}

	user, err := h.service.Create(c.UserContext(), input)
	if err != nil {
		return response.ServiceError(c, err, "Failed to create user")
	}

	return response.Success(c, fiber.StatusCreated, "User created successfully", user)
}

func (h *Handler) Update(c *fiber.Ctx) error {
	var input UpdateInput
	if err := c.BodyParser(&input); err != nil {
		return response.ValidationError(c, map[string]string{"body": "invalid input"})
	}

	user, err := h.service.Update(c.UserContext(), c.Params("id"), input)
	if err != nil {
		return response.ServiceError(c, err, "Failed to update user")
	}

	return response.Success(c, fiber.StatusOK, "User updated successfully", user)
}

func (h *Handler) Destroy(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return response.ServiceError(c, err, "Failed to delete user")
	}

	return response.Success(c, fiber.StatusOK, "User deleted successfully", nil)
}
