package handler

import (
	"github.com/Altraaa/creavibes-panel-api/internal/user"
	"github.com/Altraaa/creavibes-panel-api/internal/volunteer"
	"github.com/Altraaa/creavibes-panel-api/pkg/constant"
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(
	app *fiber.App,
	auth *AuthHandler,
	mw *AuthMiddleware,
	users *user.Handler,
	volunteers *volunteer.Handler,
) {
	api := app.Group("/api/v1")

	// Public routes
	api.Post("/auth/login", auth.Login)
	api.Post("/auth/reset-password", auth.ResetPassword)
	api.Post("/volunteers", volunteers.Store)

	// Protected routes
	authGroup := api.Group("/auth", mw.RequireAuth)
	authGroup.Post("/logout", auth.Logout)
	authGroup.Get("/me", auth.Me)
	authGroup.Post("/refresh", auth.Refresh)
	authGroup.Post("/change-password", auth.ChangePassword)

	// Account and volunteer management is admin-only; volunteer registration
	// above stays public.
	userGroup := api.Group("/users", mw.RequireAuth, mw.RequireRole(constant.AdminRole))
	userGroup.Get("/", users.Index)
	userGroup.Get("/:id", users.Show)
	userGroup.Post("/", users.Store)
	userGroup.Put("/:id", users.Update)
	userGroup.Delete("/:id", users.Destroy)

	volunteerGroup := api.Group("/volunteers", mw.RequireAuth, mw.RequireRole(constant.AdminRole))
	volunteerGroup.Get("/", volunteers.Index)
	volunteerGroup.Get("/:id", volunteers.Show)
	volunteerGroup.Put("/:id", volunteers.Update)
	volunteerGroup.Delete("/:id", volunteers.Destroy)
}
