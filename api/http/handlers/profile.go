package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/preaus007/life-care/api/http/presenter"
	"github.com/preaus007/life-care/pkg/profile"
)

// ProfileHandler serves the patient profile of the authenticated user.
type ProfileHandler struct {
	useCase profile.UseCase
}

func NewProfileHandler(useCase profile.UseCase) *ProfileHandler {
	return &ProfileHandler{useCase: useCase}
}

// Get returns the caller's patient profile, or an empty one if none was
// saved yet.
// @Summary Get patient profile
// @Tags    profile
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /profile [get]
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	p, err := h.useCase.Get(c.Context(), userID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return presenter.JSON(c, http.StatusOK, fiber.Map{
				"success": true,
				"profile": nil,
			})
		}
		return presenter.Error(c, http.StatusInternalServerError, "Something went wrong")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"success": true,
		"profile": p,
	})
}

type saveProfileRequest struct {
	Age        int    `json:"age"`
	Gender     string `json:"gender"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	BloodGroup string `json:"bloodGroup"`
}

// Save creates or updates the caller's patient profile.
// @Summary Save patient profile
// @Tags    profile
// @Accept  json
// @Produce json
// @Param   input body saveProfileRequest true "profile payload"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /profile [put]
func (h *ProfileHandler) Save(c *fiber.Ctx) error {
	var req saveProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	userID, _ := c.Locals("userId").(string)

	p, err := h.useCase.Save(c.Context(), userID, profile.Patient{
		Age:        req.Age,
		Gender:     req.Gender,
		Phone:      req.Phone,
		Address:    req.Address,
		BloodGroup: req.BloodGroup,
	})
	if err != nil {
		var vErr profile.ErrValidation
		if errors.As(err, &vErr) {
			return presenter.Error(c, http.StatusBadRequest, vErr.Error())
		}
		return presenter.Error(c, http.StatusInternalServerError, "Something went wrong")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"success": true,
		"message": "Profile saved",
		"profile": p,
	})
}
