package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/preaus007/life-care/api/http/handlers"
	"github.com/preaus007/life-care/pkg/auth"
	"github.com/preaus007/life-care/pkg/security/jwt"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(
	app *fiber.App,
	authH *handlers.AuthHandler,
	health *handlers.HealthHandler,
	profileH *handlers.ProfileHandler,
	usersH *handlers.UsersHandler,
	authMW fiber.Handler,
) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	a := v1.Group("/auth")
	a.Post("/signup", authH.Signup)
	a.Post("/verify-email", authH.VerifyEmail)
	a.Post("/login", authH.Login)
	a.Post("/logout", authH.Logout)
	a.Post("/forgot-password", authH.ForgotPassword)
	a.Post("/reset-password/:token", authH.ResetPassword)
	a.Get("/check-auth", authMW, authH.CheckAuth)

	// Patient profile, session required
	p := v1.Group("/profile", authMW)
	p.Get("/", profileH.Get)
	p.Put("/", profileH.Save)

	// Admin-only account listing
	v1.Get("/users", authMW, jwt.RequireRole(string(auth.RoleAdmin)), usersH.List)
}
