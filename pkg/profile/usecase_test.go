package profile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeRepo struct {
	byUser map[primitive.ObjectID]Patient
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byUser: make(map[primitive.ObjectID]Patient)}
}

func (f *fakeRepo) Upsert(ctx context.Context, p Patient) (Patient, error) {
	if existing, ok := f.byUser[p.UserID]; ok {
		p.ID = existing.ID
		p.CreatedAt = existing.CreatedAt
	} else {
		p.ID = primitive.NewObjectID()
		p.CreatedAt = p.UpdatedAt
	}
	f.byUser[p.UserID] = p
	return p, nil
}

func (f *fakeRepo) FindByUserID(ctx context.Context, userID primitive.ObjectID) (Patient, error) {
	p, ok := f.byUser[userID]
	if !ok {
		return Patient{}, ErrNotFound
	}
	return p, nil
}

func TestSaveAndGet(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()
	userID := primitive.NewObjectID().Hex()

	_, err := svc.Get(ctx, userID)
	assert.ErrorIs(t, err, ErrNotFound)

	saved, err := svc.Save(ctx, userID, Patient{Age: 34, Gender: "Female", BloodGroup: "O+"})
	require.NoError(t, err)
	assert.Equal(t, 34, saved.Age)

	got, err := svc.Get(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, "O+", got.BloodGroup)
}

func TestSaveOverwrites(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()
	userID := primitive.NewObjectID().Hex()

	first, err := svc.Save(ctx, userID, Patient{Age: 30})
	require.NoError(t, err)
	second, err := svc.Save(ctx, userID, Patient{Age: 31, Phone: "+123456"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "one profile per user")
	assert.Equal(t, 31, second.Age)
}

func TestSaveValidation(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()
	userID := primitive.NewObjectID().Hex()

	tests := []struct {
		name string
		p    Patient
	}{
		{"bad gender", Patient{Gender: "Unknown"}},
		{"bad blood group", Patient{BloodGroup: "C+"}},
		{"negative age", Patient{Age: -1}},
		{"absurd age", Patient{Age: 200}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Save(ctx, userID, tt.p)
			var vErr ErrValidation
			assert.ErrorAs(t, err, &vErr)
		})
	}
}

func TestBadUserID(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Get(context.Background(), "not-an-object-id")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.Save(context.Background(), "not-an-object-id", Patient{})
	assert.ErrorIs(t, err, ErrNotFound)
}
