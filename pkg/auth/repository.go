package auth

import (
	"context"
	"errors"
	"time"
)

// Common errors used by repository/use cases
var (
	ErrNotFound              = errors.New("user not found")
	ErrEmailTaken            = errors.New("user already exists")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrInvalidOrExpiredToken = errors.New("invalid or expired token")
	ErrNotification          = errors.New("failed to send email")
	ErrValidation            = errors.New("validation failed")
)

// UserRepository abstracts persistence concerns from the domain layer.
// Implementations may be in-memory, document store, SQL, etc.
//
// The token lookups take the current time so that expired credentials are
// filtered at the query level; callers never see an expired match.
type UserRepository interface {
	Create(ctx context.Context, user User) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	FindVerifiedByEmail(ctx context.Context, email string) (User, error)
	FindByVerificationToken(ctx context.Context, tokenHash string, now time.Time) (User, error)
	FindByResetToken(ctx context.Context, tokenHash string, now time.Time) (User, error)
	FindByID(ctx context.Context, id string) (User, error)
	Update(ctx context.Context, user User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]User, int64, error)
}
