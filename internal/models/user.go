package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Role is the access level of an account.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents a registered account in the users collection.
// PasswordHash is never serialized to clients.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"username" json:"username"`
	Role         Role               `bson:"role" json:"role,omitempty"`
	PasswordHash string             `bson:"password" json:"-"`
	Points       int                `bson:"points" json:"points"`
}

// Principal is the authenticated identity for the current request.
// It is rebuilt from storage on every request; the token only supplies
// the lookup id.
type Principal struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
	Points   int    `json:"points"`
}

// IsAdmin reports whether the principal holds the admin role.
func (p Principal) IsAdmin() bool { return p.Role == RoleAdmin }

// PublicUser is the projection returned by list/get endpoints: no
// password, no role.
type PublicUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Points   int    `json:"points"`
}

// Public strips the credential and role fields for directory responses.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID.Hex(),
		Username: u.Username,
		Points:   u.Points,
	}
}
