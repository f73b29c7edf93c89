package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Address struct {
	Street     string `json:"street" bson:"street" validate:"required"`
	City       string `json:"city" bson:"city" validate:"required"`
	PostalCode string `json:"postalCode" bson:"postalCode" validate:"required,postalcode"`
	Country    string `json:"country" bson:"country" validate:"required"`
}

// User belongs to exactly one region and never moves; the cluster shards
// the collection on the region field.
type User struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name" validate:"required,min=2"`
	Email     string             `json:"email" bson:"email" validate:"required,email"`
	Password  string             `json:"password" bson:"password" validate:"required,min=6"`
	Address   Address            `json:"address" bson:"address"`
	Region    string             `json:"region" bson:"region" validate:"required,region"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

type RegisterRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Address  Address `json:"address"`
}

var userMessages = map[string]string{
	"Name.required":       "Name is required",
	"Name.min":            "Name must be at least 2 characters",
	"Email.required":      "Email is required",
	"Email.email":         "Email must be a valid email address",
	"Password.required":   "Password is required",
	"Password.min":        "Password must be at least 6 characters",
	"Street.required":     "Street is required",
	"City.required":       "City is required",
	"PostalCode.required": "Postal code is required",
	"PostalCode.postalcode": "Postal code is invalid",
	"Country.required":    "Country is required",
	"Region.required":     "Region is required",
	"Region.region":       "Region must be Europe, Asia, or US",
}

func (u *User) Validate() error {
	return firstViolation(validate.Struct(u), userMessages)
}
