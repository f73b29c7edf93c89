package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is embedded in its product; reviews have no collection of their own.
type Review struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId" validate:"required"`
	Rating    int                `json:"rating" bson:"rating" validate:"gte=1,lte=5"`
	Comment   string             `json:"comment" bson:"comment" validate:"required,min=5"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// Product is visible in one or more regions; the regions array is what the
// cluster routes list queries on.
type Product struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name" validate:"required,min=2"`
	Description string             `json:"description" bson:"description" validate:"required,min=10"`
	Price       float64            `json:"price" bson:"price" validate:"gte=0"`
	Stock       int                `json:"stock" bson:"stock" validate:"gte=0"`
	Category    string             `json:"category" bson:"category" validate:"required"`
	Reviews     []Review           `json:"reviews" bson:"reviews" validate:"dive"`
	Regions     []string           `json:"regions" bson:"regions"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

var productMessages = map[string]string{
	"Name.required":        "Product name is required",
	"Name.min":             "Product name must be at least 2 characters",
	"Description.required": "Description is required",
	"Description.min":      "Description must be at least 10 characters",
	"Price.gte":            "Price must be a positive number",
	"Stock.gte":            "Stock cannot be negative",
	"Category.required":    "Category is required",
	"UserID.required":      "User ID is required for a review",
	"Rating.gte":           "Rating must be at least 1",
	"Rating.lte":           "Rating must be no more than 5",
	"Comment.required":     "Comment is required",
	"Comment.min":          "Comment must be at least 5 characters",
}

func (p *Product) Validate() error {
	if len(p.Regions) == 0 {
		return errors.New("Product must be available in at least one region")
	}
	for _, r := range p.Regions {
		if !ValidRegion(r) {
			return errors.New("Region must be Europe, Asia, or US")
		}
	}
	return firstViolation(validate.Struct(p), productMessages)
}

func (r *Review) Validate() error {
	return firstViolation(validate.Struct(r), productMessages)
}

// ReviewBy returns a pointer into the reviews slice for the given author,
// or nil if the user has not reviewed this product.
func (p *Product) ReviewBy(userID primitive.ObjectID) *Review {
	for i := range p.Reviews {
		if p.Reviews[i].UserID == userID {
			return &p.Reviews[i]
		}
	}
	return nil
}

// UserReview is a review lifted out of its product for per-user listings.
type UserReview struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	UserID      primitive.ObjectID `json:"userId" bson:"userId"`
	Rating      int                `json:"rating" bson:"rating"`
	Comment     string             `json:"comment" bson:"comment"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	ProductID   primitive.ObjectID `json:"productId" bson:"productId"`
	ProductName string             `json:"productName" bson:"productName"`
}
