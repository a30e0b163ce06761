package volunteer

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
		Search:     c.Query("search"),
		University: c.Query("university"),
		Page: pagination.Request{
			Page:      c.QueryInt("page"),
			PerPage:   c.QueryInt("per_page"),
			SortBy:    c.Query("sort_by"),
			SortOrder: c.Query("sort_order"),
		},
	}
	if raw := c.Query("has_event_experience"); raw != "" {
		if has, err := strconv.ParseBool(raw); err == nil {
			filters.HasEventExperience = &has
		}
	}

	volunteers, meta, err := h.service.List(c.UserContext(), filters)
	if err != nil {
		return response.ServiceError(c, err, "Failed to fetch volunteers")
	}

	return response.Success(c, fiber.StatusOK, "Volunteers fetched successfully", fiber.Map{
		"data": volunteers,
		"meta": meta,
	})
}

func (h *Handler) Show(c *fiber.Ctx) error {
	v, err := h.service.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return response.ServiceError(c, err, "Failed to fetch volunteer")
	}

	return response.Success(c, fiber.StatusOK, "Volunteer fetched successfully", v)
}

// Store is the public registration endpoint; it requires no authentication.
func (h *Handler) Store(c *fiber.Ctx) error {
	var input CreateInput
	if err := c.BodyParser(&input); err != nil {
		return response.ValidationError(c, map[string]string{"body": "invalid input"})
	}
	if input.Name == "" || input.Address == "" || input.CurrentActivity == "" || input.Age <= 0 {
		return response.ValidationError(c, map[string]string{"volunteer": "name, age, address and current_activity are required"})
	}

	v, err := h.service.Create(c.UserContext(), input)
	if err != nil {
		return response.ServiceError(c, err, "Failed to create volunteer")
	}

	return response.Success(c, fiber.StatusCreated, "Volunteer created successfully", v)
}

func (h *Handler) Update(c *fiber.Ctx) error {
	var input UpdateInput
	if err := c.BodyParser(&input); err != nil {
		return response.ValidationError(c, map[string]string{"body": "invalid input"})
	}

	v, err := h.service.Update(c.UserContext(), c.Params("id"), input)
	if err != nil {
		return response.ServiceError(c, err, "Failed to update volunteer")
	}

	return response.Success(c, fiber.StatusOK, "Volunteer updated successfully", v)
}

func (h *Handler) Destroy(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return response.ServiceError(c, err, "Failed to delete volunteer")
	}

	return response.Success(c, fiber.StatusOK, "Volunteer deleted successfully", nil)
}
