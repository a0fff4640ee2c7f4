package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleBuyer   = "buyer"
	RoleSeller  = "seller"
	RoleAgent   = "agent"
	RoleBuilder = "builder"
)

// ListerRole reports whether the role may create listings.
func ListerRole(role string) bool {
	return role == RoleSeller || role == RoleAgent || role == RoleBuilder
}

func ValidRole(role string) bool {
	return role == RoleBuyer || ListerRole(role)
}

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    string             `bson:"userID" json:"userID"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"password,omitempty"`
	Role      string             `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
