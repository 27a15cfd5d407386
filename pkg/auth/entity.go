package auth

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is a closed set of account privilege tags.
type Role string

const (
	RolePatient Role = "Patient"
	RoleDoctor  Role = "Doctor"
	RoleAdmin   Role = "Admin"
)

// DefaultRole is assigned when signup omits the role.
const DefaultRole = RolePatient

// ValidRole reports whether r is one of the known role tags.
func ValidRole(r Role) bool {
	switch r {
	case RolePatient, RoleDoctor, RoleAdmin:
		return true
	}
	return false
}

// User is the persistent account record. The token fields hold sha256 hex
// digests of one-time credentials, never the raw values; they are present
// only while a verification or reset is outstanding.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password"`
	Role         Role               `bson:"role"`
	IsVerified   bool               `bson:"isVerified"`

	VerificationToken           string    `bson:"verificationToken,omitempty"`
	VerificationTokenExpiresAt  time.Time `bson:"verificationTokenExpiresAt,omitempty"`
	ResetPasswordToken          string    `bson:"resetPasswordToken,omitempty"`
	ResetPasswordTokenExpiresAt time.Time `bson:"resetPasswordTokenExpiresAt,omitempty"`

	LastLogin time.Time `bson:"lastLogin,omitempty"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// PublicUser is the sanitized projection of a User safe to transmit:
// no password hash, no pending token material.
type PublicUser struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       Role      `json:"role"`
	IsVerified bool      `json:"isVerified"`
	LastLogin  time.Time `json:"lastLogin,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Public returns the sanitized projection of u.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:         u.ID.Hex(),
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		IsVerified: u.IsVerified,
		LastLogin:  u.LastLogin,
		CreatedAt:  u.CreatedAt,
	}
}
