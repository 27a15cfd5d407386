package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/preaus007/life-care/api/http/presenter"
	"github.com/preaus007/life-care/pkg/auth"
	"github.com/preaus007/life-care/pkg/security/jwt"
)

type AuthHandler struct {
	useCase auth.AuthUseCase
	cookies *jwt.CookieManager
}

func NewAuthHandler(useCase auth.AuthUseCase, cookies *jwt.CookieManager) *AuthHandler {
	return &AuthHandler{useCase: useCase, cookies: cookies}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Signup handles user registration and sends the verification code.
// @Summary Sign up
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body signupRequest true "signup payload"
// @Success 201 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /auth/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	user, err := h.useCase.Signup(c.Context(), auth.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     auth.Role(req.Role),
	})
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrValidation):
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, auth.ErrEmailTaken):
			return presenter.Error(c, http.StatusBadRequest, "User already exists")
		case errors.Is(err, auth.ErrNotification):
			return presenter.Error(c, http.StatusInternalServerError, "Failed to send verification email")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "Something went wrong")
		}
	}

	return presenter.JSON(c, http.StatusCreated, fiber.Map{
		"success": true,
		"message": "User created. Verification email sent.",
		"user":    user,
	})
}

type verifyEmailRequest struct {
	Code string `json:"code"`
}

// VerifyEmail confirms account ownership with the emailed one-time code.
// @Summary Verify email
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body verifyEmailRequest true "verification code"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /auth/verify-email [post]
func (h *AuthHandler) VerifyEmail(c *fiber.Ctx) error {
	var req verifyEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	user, err := h.useCase.VerifyEmail(c.Context(), req.Code)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrValidation):
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, auth.ErrInvalidOrExpiredToken):
			return presenter.Error(c, http.StatusBadRequest, "Invalid or expired verification code")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "Something went wrong")
		}
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"success": true,
		"message": "Email verified successfully",
		"user":    user,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates a verified user and sets the session cookie.
// @Summary Login
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body loginRequest true "login payload"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	result, err := h.useCase.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrValidation):
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, auth.ErrInvalidCredentials):
			return presenter.Error(c, http.StatusBadRequest, "Invalid credentials")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "Something went wrong")
		}
	}

	h.cookies.Set(c, result.Token)

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"success": true,
		"message": "Logged in successfully",
		"user":    result.User,
	})
}

// Logout clears the session cookie. Idempotent.
// @Summary Logout
// @Tags    auth
// @Produce json
// @Success 200 {object} map[string]any
// @Router  /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.cookies.Clear(c)
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"success": true,
		"message": "Logged out successfully",
	})
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

// ForgotPassword issues a reset token and emails the reset link.
// @Summary Forgot password
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body forgotPasswordRequest true "account email"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req forgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	if err := h.useCase.ForgotPassword(c.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, auth.ErrValidation):
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, auth.ErrNotFound):
			return presenter.Error(c, http.StatusBadRequest, "User not found")
		case errors.Is(err, auth.ErrNotification):
			return presenter.Error(c, http.StatusInternalServerError, "Failed to send password reset email")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "Something went wrong")
		}
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"success": true,
		"message": "Password reset link sent to your email",
	})
}

type resetPasswordRequest struct {
	Password string `json:"password"`
}

// ResetPassword consumes a reset token and replaces the password.
// @Summary Reset password
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   token path string true "reset token"
// @Param   input body resetPasswordRequest true "new password"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /auth/reset-password/{token} [post]
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req resetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	if err := h.useCase.ResetPassword(c.Context(), c.Params("token"), req.Password); err != nil {
		switch {
		case errors.Is(err, auth.ErrValidation):
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, auth.ErrInvalidOrExpiredToken):
			return presenter.Error(c, http.StatusBadRequest, "Invalid or expired reset token")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "Something went wrong")
		}
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"success": true,
		"message": "Password reset successful",
	})
}

// CheckAuth returns the sanitized user for the current session.
// @Summary Check auth
// @Tags    auth
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /auth/check-auth [get]
func (h *AuthHandler) CheckAuth(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	user, err := h.useCase.CheckAuth(c.Context(), userID)
	if err != nil {
		if errors.Is(err, auth.ErrNotFound) {
			return presenter.Error(c, http.StatusBadRequest, "User not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "Something went wrong")
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"success": true,
		"user":    user,
	})
}
