package profile

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrNotFound = errors.New("profile not found")

// Repository abstracts persistence of patient profiles. One profile per user.
type Repository interface {
	Upsert(ctx context.Context, p Patient) (Patient, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID) (Patient, error)
}
