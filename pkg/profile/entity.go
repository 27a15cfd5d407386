package profile

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Patient holds the medical profile attached to a user account.
// All fields besides the owning user are optional.
type Patient struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     primitive.ObjectID `bson:"user" json:"userId"`
	Age        int                `bson:"age,omitempty" json:"age,omitempty"`
	Gender     string             `bson:"gender,omitempty" json:"gender,omitempty"`
	Phone      string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Address    string             `bson:"address,omitempty" json:"address,omitempty"`
	BloodGroup string             `bson:"bloodGroup,omitempty" json:"bloodGroup,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

var genders = map[string]bool{"Male": true, "Female": true, "Other": true}

var bloodGroups = map[string]bool{
	"A+": true, "A-": true, "B+": true, "B-": true,
	"AB+": true, "AB-": true, "O+": true, "O-": true,
}
