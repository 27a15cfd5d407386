// @title         life-care API
// @version       1.0
// @description   Email/password authentication service for the LifeCare web application: signup with email verification, login with a session cookie, password reset, and patient profiles.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:5001
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"

	_ "github.com/preaus007/life-care/docs"

	// internal imports
	apihttp "github.com/preaus007/life-care/api/http"
	"github.com/preaus007/life-care/api/http/handlers"
	"github.com/preaus007/life-care/pkg/auth"
	"github.com/preaus007/life-care/pkg/config"
	"github.com/preaus007/life-care/pkg/health"
	"github.com/preaus007/life-care/pkg/health/checkers"
	"github.com/preaus007/life-care/pkg/mail"
	"github.com/preaus007/life-care/pkg/mail/resend"
	"github.com/preaus007/life-care/pkg/profile"
	mongorepo "github.com/preaus007/life-care/pkg/repository/mongodb"
	"github.com/preaus007/life-care/pkg/security/jwt"
	"github.com/preaus007/life-care/pkg/storage/mongodb"
)

func main() {
	// Load configuration from env/.env
	cfg := config.Load()

	logHandler := slog.Handler(slog.NewTextHandler(os.Stdout, nil))
	if cfg.Production() {
		logHandler = slog.NewJSONHandler(os.Stdout, nil)
	}
	log := slog.New(logHandler)

	// Connect to MongoDB
	ctx := context.Background()
	client, err := mongodb.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Error("mongo connect", "error", err)
		os.Exit(1)
	}
	defer func() { _ = client.Disconnect(ctx) }()
	db := client.Database(cfg.MongoDB)

	// Wire dependencies (Clean Architecture)
	userRepo, err := mongorepo.NewUserRepository(ctx, db)
	if err != nil {
		log.Error("init user repo", "error", err)
		os.Exit(1)
	}
	patientRepo, err := mongorepo.NewPatientRepository(ctx, db)
	if err != nil {
		log.Error("init patient repo", "error", err)
		os.Exit(1)
	}

	sessionTTL := time.Duration(cfg.SessionTTL) * time.Hour
	sessions := jwt.NewGenerator(cfg.JWTSecret, cfg.JWTIssuer, sessionTTL)
	cookies := jwt.NewCookieManager(cfg.Production(), cfg.CookieSameSite, sessionTTL)

	// Real mailer when a Resend key is configured, otherwise log-only.
	var notifier auth.Notifier
	if cfg.ResendAPIKey != "" {
		mailer, err := resend.NewMailer(cfg.ResendAPIKey, cfg.MailFrom)
		if err != nil {
			log.Error("init mailer", "error", err)
			os.Exit(1)
		}
		notifier = mailer
	} else {
		log.Warn("RESEND_API_KEY not set, emails are logged only")
		notifier = mail.NewLogNotifier(log)
	}

	authUC := auth.NewAuthService(userRepo, sessions, notifier, cfg.ClientURL)
	authHandler := handlers.NewAuthHandler(authUC, cookies)

	profileUC := profile.NewService(patientRepo)
	profileHandler := handlers.NewProfileHandler(profileUC)

	usersHandler := handlers.NewUsersHandler(userRepo)

	// Health service: compose checkers
	readiness := health.NewService(checkers.NewMongoChecker(client))
	healthHandler := handlers.NewHealthHandler(readiness)

	// Session middleware for protected routes
	authMW := jwt.NewAuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer)

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.ClientURL,
		AllowCredentials: true,
	}))

	// Register routes
	apihttp.Register(app, authHandler, healthHandler, profileHandler, usersHandler, authMW)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Start server
	log.Info("HTTP server listening", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
