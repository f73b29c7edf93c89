package handlers

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Zeldean/DBD-Project/internal/models"
)

// Store interfaces are declared on the consumer side; the mongo-backed
// repositories satisfy them. Region scoping is always supplied by the
// handler — the stores never infer it.

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByRegion(ctx context.Context, region string) ([]models.User, error)
	Insert(ctx context.Context, user *models.User) error
}

type ProductStore interface {
	FindByRegion(ctx context.Context, region string) ([]models.Product, error)
	FindByIDInRegion(ctx context.Context, id primitive.ObjectID, region string) (*models.Product, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error)
	Save(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
	ReviewsByUser(ctx context.Context, region string, userID primitive.ObjectID) ([]models.UserReview, error)
}

type OrderStore interface {
	Insert(ctx context.Context, order *models.Order) error
	FindByUserInRegion(ctx context.Context, userID primitive.ObjectID, region string) ([]models.Order, error)
	FindByRegion(ctx context.Context, region string) ([]models.Order, error)
	DeletePending(ctx context.Context, id, userID primitive.ObjectID, region string) (*models.Order, error)
	SalesStats(ctx context.Context, region string) (*models.SalesStats, error)
}
