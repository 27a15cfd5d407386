package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/preaus007/life-care/pkg/auth"
)

// UserRepository implements auth.UserRepository backed by MongoDB.
type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(ctx context.Context, db *mongo.Database) (*UserRepository, error) {
	repo := &UserRepository{col: db.Collection("users")}
	if err := repo.ensureIndexes(ctx); err != nil {
		return nil, err
	}
	return repo, nil
}

// ensureIndexes creates the unique email index: the actual race-safety
// mechanism behind signup's existence pre-check.
func (r *UserRepository) ensureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *UserRepository) Create(ctx context.Context, user auth.User) (auth.User, error) {
	res, err := r.col.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return auth.User{}, auth.ErrEmailTaken
		}
		return auth.User{}, err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = id
	}
	return user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (auth.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindVerifiedByEmail(ctx context.Context, email string) (auth.User, error) {
	return r.findOne(ctx, bson.M{"email": email, "isVerified": true})
}

func (r *UserRepository) FindByVerificationToken(ctx context.Context, tokenHash string, now time.Time) (auth.User, error) {
	return r.findOne(ctx, bson.M{
		"verificationToken":          tokenHash,
		"verificationTokenExpiresAt": bson.M{"$gt": now},
	})
}

func (r *UserRepository) FindByResetToken(ctx context.Context, tokenHash string, now time.Time) (auth.User, error) {
	return r.findOne(ctx, bson.M{
		"resetPasswordToken":          tokenHash,
		"resetPasswordTokenExpiresAt": bson.M{"$gt": now},
		"isVerified":                  true,
	})
}

// FindByID excludes the password hash at the query level; session checks
// never pull it out of the store.
func (r *UserRepository) FindByID(ctx context.Context, id string) (auth.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return auth.User{}, auth.ErrNotFound
	}
	var user auth.User
	opts := options.FindOne().SetProjection(bson.M{"password": 0})
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}, opts).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return auth.User{}, auth.ErrNotFound
		}
		return auth.User{}, err
	}
	return user, nil
}

// Update replaces the whole document: single-document read-modify-write
// with last-write-wins semantics. Cleared token fields disappear because
// they are omitempty on the entity.
func (r *UserRepository) Update(ctx context.Context, user auth.User) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return auth.ErrNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return auth.ErrNotFound
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return auth.ErrNotFound
	}
	return nil
}

func (r *UserRepository) List(ctx context.Context, limit, offset int) ([]auth.User, int64, error) {
	total, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit)).
		SetProjection(bson.M{"password": 0})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var users []auth.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (auth.User, error) {
	var user auth.User
	if err := r.col.FindOne(ctx, filter).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return auth.User{}, auth.ErrNotFound
		}
		return auth.User{}, err
	}
	return user, nil
}
