package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Role values recognized by the access layer.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User is an application account. Role gates page access: admin unlocks all
// management surfaces, staff is limited to delivery logging.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
	Role         string             `bson:"role" json:"role"`
}
