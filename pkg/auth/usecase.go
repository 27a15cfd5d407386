package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	verificationTTL = 24 * time.Hour
	resetTTL        = time.Hour
)

// SignupInput carries the signup form fields. Role is optional and
// defaults to the lowest-privilege role.
type SignupInput struct {
	Name     string
	Email    string
	Password string
	Role     Role
}

// LoginResult bundles the sanitized user with the session credential
// the transport layer attaches as a cookie.
type LoginResult struct {
	User  PublicUser
	Token string
}

// AuthUseCase describes the authentication workflow: signup with email
// verification, login/logout, password reset, and session check.
type AuthUseCase interface {
	Signup(ctx context.Context, in SignupInput) (PublicUser, error)
	VerifyEmail(ctx context.Context, code string) (PublicUser, error)
	Login(ctx context.Context, email, password string) (LoginResult, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	CheckAuth(ctx context.Context, userID string) (PublicUser, error)
}

type authService struct {
	repo      UserRepository
	sessions  SessionIssuer
	notifier  Notifier
	clientURL string
	now       func() time.Time
}

// NewAuthService returns default implementation of AuthUseCase.
// clientURL is the SPA origin used to build reset links.
func NewAuthService(repo UserRepository, sessions SessionIssuer, notifier Notifier, clientURL string) AuthUseCase {
	return &authService{
		repo:      repo,
		sessions:  sessions,
		notifier:  notifier,
		clientURL: clientURL,
		now:       time.Now,
	}
}

func (s *authService) Signup(ctx context.Context, in SignupInput) (PublicUser, error) {
	if err := validateName(in.Name); err != nil {
		return PublicUser{}, err
	}
	in.Email = normalizeEmail(in.Email)
	if err := validateEmail(in.Email); err != nil {
		return PublicUser{}, err
	}
	if err := validatePassword(in.Password); err != nil {
		return PublicUser{}, err
	}
	role := in.Role
	if role == "" {
		role = DefaultRole
	} else if !ValidRole(role) {
		role = DefaultRole
	}

	// If user exists, fail fast (best-effort check); the unique index on
	// email is the actual race-safety mechanism, Create maps duplicate-key
	// errors to the same ErrEmailTaken.
	if _, err := s.repo.FindByEmail(ctx, in.Email); err == nil {
		return PublicUser{}, ErrEmailTaken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return PublicUser{}, err
	}
	code, err := generateCode()
	if err != nil {
		return PublicUser{}, err
	}

	now := s.now().UTC()
	user := User{
		Name:                       in.Name,
		Email:                      in.Email,
		PasswordHash:               string(passwordHash),
		Role:                       role,
		VerificationToken:          hashToken(code),
		VerificationTokenExpiresAt: now.Add(verificationTTL),
		CreatedAt:                  now,
		UpdatedAt:                  now,
	}
	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return PublicUser{}, err
	}

	if err := s.notifier.SendVerificationCode(ctx, created.Email, created.Name, code); err != nil {
		// An account nobody was notified about is unverifiable; delete it so
		// the user can retry the whole signup.
		_ = s.repo.Delete(ctx, created.ID.Hex())
		return PublicUser{}, errors.Join(ErrNotification, err)
	}
	return created.Public(), nil
}

func (s *authService) VerifyEmail(ctx context.Context, code string) (PublicUser, error) {
	if len(code) != 6 {
		return PublicUser{}, fmt.Errorf("%w: verification code must be 6 digits", ErrValidation)
	}
	user, err := s.repo.FindByVerificationToken(ctx, hashToken(code), s.now().UTC())
	if err != nil {
		// Wrong code, already consumed, or expired: one undifferentiated failure.
		return PublicUser{}, ErrInvalidOrExpiredToken
	}

	user.IsVerified = true
	user.VerificationToken = ""
	user.VerificationTokenExpiresAt = time.Time{}
	user.UpdatedAt = s.now().UTC()
	if err := s.repo.Update(ctx, user); err != nil {
		return PublicUser{}, err
	}
	return user.Public(), nil
}

func (s *authService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = normalizeEmail(email)
	if err := validateEmail(email); err != nil {
		return LoginResult{}, err
	}
	if password == "" {
		return LoginResult{}, fmt.Errorf("%w: password is required", ErrValidation)
	}

	// Unknown email and known-but-unverified are indistinguishable from a
	// wrong password, so account existence is not enumerable.
	user, err := s.repo.FindVerifiedByEmail(ctx, email)
	if err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := s.sessions.Issue(ctx, user)
	if err != nil {
		return LoginResult{}, err
	}

	user.LastLogin = s.now().UTC()
	user.UpdatedAt = user.LastLogin
	if err := s.repo.Update(ctx, user); err != nil {
		return LoginResult{}, err
	}
	return LoginResult{User: user.Public(), Token: token}, nil
}

func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if err := validateEmail(email); err != nil {
		return err
	}

	user, err := s.repo.FindVerifiedByEmail(ctx, email)
	if err != nil {
		return ErrNotFound
	}

	// Overwriting the reset fields implicitly invalidates any earlier
	// outstanding token; last write wins.
	token := newResetToken()
	now := s.now().UTC()
	user.ResetPasswordToken = hashToken(token)
	user.ResetPasswordTokenExpiresAt = now.Add(resetTTL)
	user.UpdatedAt = now
	if err := s.repo.Update(ctx, user); err != nil {
		return err
	}

	link := s.clientURL + "/reset-password/" + token
	if err := s.notifier.SendPasswordReset(ctx, user.Email, user.Name, link); err != nil {
		// The account legitimately exists, so no rollback here.
		return errors.Join(ErrNotification, err)
	}
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}
	user, err := s.repo.FindByResetToken(ctx, hashToken(token), s.now().UTC())
	if err != nil {
		return ErrInvalidOrExpiredToken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(passwordHash)
	user.ResetPasswordToken = ""
	user.ResetPasswordTokenExpiresAt = time.Time{}
	user.UpdatedAt = s.now().UTC()
	return s.repo.Update(ctx, user)
}

func (s *authService) CheckAuth(ctx context.Context, userID string) (PublicUser, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return PublicUser{}, ErrNotFound
	}
	return user.Public(), nil
}
