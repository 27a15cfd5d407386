package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/preaus007/life-care/api/http/presenter"
	"github.com/preaus007/life-care/pkg/auth"
)

// UsersHandler exposes the admin-only account listing.
type UsersHandler struct {
	repo auth.UserRepository
}

func NewUsersHandler(repo auth.UserRepository) *UsersHandler {
	return &UsersHandler{repo: repo}
}

// List returns sanitized accounts, newest first.
// @Summary List users
// @Tags    users
// @Produce json
// @Param   limit  query int false "page size (max 100)"
// @Param   offset query int false "items to skip"
// @Success 200 {object} map[string]any
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Router  /users [get]
func (h *UsersHandler) List(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 20)

	users, total, err := h.repo.List(c.Context(), limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "Something went wrong")
	}

	out := make([]auth.PublicUser, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"success": true,
		"users":   out,
		"total":   total,
		"limit":   limit,
		"offset":  offset,
	})
}
