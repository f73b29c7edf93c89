package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order status values. Orders are created Pending and never transitioned by
// this service; fulfillment owns the later states.
const (
	StatusPending   = "Pending"
	StatusShipped   = "Shipped"
	StatusDelivered = "Delivered"
)

type OrderItem struct {
	ProductID primitive.ObjectID `json:"productId" bson:"productId" validate:"required"`
	Quantity  int                `json:"quantity" bson:"quantity" validate:"gte=1"`
}

type Order struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID     primitive.ObjectID `json:"userId" bson:"userId" validate:"required"`
	Items      []OrderItem        `json:"items" bson:"items" validate:"min=1,dive"`
	TotalPrice float64            `json:"totalPrice" bson:"totalPrice" validate:"gte=0"`
	Status     string             `json:"status" bson:"status" validate:"oneof=Pending Shipped Delivered"`
	OrderDate  time.Time          `json:"orderDate" bson:"orderDate"`
	Region     string             `json:"region" bson:"region" validate:"required,region"`
}

var orderMessages = map[string]string{
	"UserID.required":    "User ID is required for an order",
	"Items.min":          "Order must contain at least one item",
	"ProductID.required": "Product ID is required for each order item",
	"Quantity.gte":       "Quantity must be at least 1",
	"TotalPrice.gte":     "Total price must be a positive number",
	"Status.oneof":       "Status must be Pending, Shipped, or Delivered",
	"Region.required":    "Region is required",
	"Region.region":      "Region must be Europe, Asia, or US",
}

func (o *Order) Validate() error {
	return firstViolation(validate.Struct(o), orderMessages)
}

// ResolvedOrderItem carries the full product document in place of its id,
// the way order listings are served.
type ResolvedOrderItem struct {
	Product  *Product `json:"product"`
	Quantity int      `json:"quantity"`
}

type ResolvedOrder struct {
	ID         primitive.ObjectID  `json:"id"`
	UserID     primitive.ObjectID  `json:"userId"`
	Items      []ResolvedOrderItem `json:"items"`
	TotalPrice float64             `json:"totalPrice"`
	Status     string              `json:"status"`
	OrderDate  time.Time           `json:"orderDate"`
	Region     string              `json:"region"`
}

// SalesStats aggregates a region's orders for the admin dashboard.
type SalesStats struct {
	TotalRevenue float64 `json:"totalRevenue" bson:"totalRevenue"`
	OrdersCount  int64   `json:"ordersCount" bson:"ordersCount"`
}

// OrderWithUser is the admin listing shape: the order plus its owner.
type OrderWithUser struct {
	Order
	User *User `json:"user,omitempty"`
}
