package profile

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UseCase manages the patient profile of the authenticated user.
type UseCase interface {
	Get(ctx context.Context, userID string) (Patient, error)
	Save(ctx context.Context, userID string, p Patient) (Patient, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) UseCase {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Get(ctx context.Context, userID string) (Patient, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return Patient{}, ErrNotFound
	}
	return s.repo.FindByUserID(ctx, uid)
}

func (s *service) Save(ctx context.Context, userID string, p Patient) (Patient, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return Patient{}, ErrNotFound
	}
	if p.Gender != "" && !genders[p.Gender] {
		return Patient{}, ErrValidation("gender must be Male, Female or Other")
	}
	if p.BloodGroup != "" && !bloodGroups[p.BloodGroup] {
		return Patient{}, ErrValidation("unknown blood group")
	}
	if p.Age < 0 || p.Age > 150 {
		return Patient{}, ErrValidation("age out of range")
	}
	p.UserID = uid
	p.UpdatedAt = s.now().UTC()
	return s.repo.Upsert(ctx, p)
}

// ErrValidation is a simple validation error.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }
