package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/preaus007/life-care/pkg/profile"
)

// PatientRepository implements profile.Repository backed by MongoDB.
type PatientRepository struct {
	col *mongo.Collection
}

func NewPatientRepository(ctx context.Context, db *mongo.Database) (*PatientRepository, error) {
	repo := &PatientRepository{col: db.Collection("patients")}
	_, err := repo.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *PatientRepository) Upsert(ctx context.Context, p profile.Patient) (profile.Patient, error) {
	filter := bson.M{"user": p.UserID}
	update := bson.M{
		"$set": bson.M{
			"age":        p.Age,
			"gender":     p.Gender,
			"phone":      p.Phone,
			"address":    p.Address,
			"bloodGroup": p.BloodGroup,
			"updatedAt":  p.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"user":      p.UserID,
			"createdAt": p.UpdatedAt,
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var saved profile.Patient
	if err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&saved); err != nil {
		return profile.Patient{}, err
	}
	return saved, nil
}

func (r *PatientRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) (profile.Patient, error) {
	var p profile.Patient
	if err := r.col.FindOne(ctx, bson.M{"user": userID}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return profile.Patient{}, profile.ErrNotFound
		}
		return profile.Patient{}, err
	}
	return p, nil
}
