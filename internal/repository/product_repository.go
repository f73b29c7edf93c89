package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Zeldean/DBD-Project/internal/models"
)

type ProductRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(collection *mongo.Collection) *ProductRepository {
	return &ProductRepository{collection: collection}
}

func (r *ProductRepository) Insert(ctx context.Context, product *models.Product) error {
	if err := product.Validate(); err != nil {
		return &ValidationError{Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	product.ID = primitive.NewObjectID()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now()
	}
	if product.Reviews == nil {
		product.Reviews = make([]models.Review, 0)
	}

	_, err := r.collection.InsertOne(ctx, product)
	return err
}

// FindByRegion lists every product whose regions array contains the given
// region. The cluster resolves {regions: region} against the shard tags.
func (r *ProductRepository) FindByRegion(ctx context.Context, region string) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{"regions": region})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) FindByIDInRegion(ctx context.Context, id primitive.ObjectID, region string) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	var product models.Product
	filter := bson.M{"_id": id, "regions": region}
	if err := r.collection.FindOne(ctx, filter).Decode(&product); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Save re-validates and writes the whole document back. Review mutations go
// through here as read-modify-write with no version check, so two
// concurrent writers can overwrite each other.
func (r *ProductRepository) Save(ctx context.Context, product *models.Product) error {
	if err := product.Validate(); err != nil {
		return &ValidationError{Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": product.ID}, product)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a product by id alone; the admin route is deliberately
// not region-scoped.
func (r *ProductRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

// ReviewsByUser lifts the user's embedded reviews out of every product
// visible in the region, tagging each with its parent product.
func (r *ProductRepository) ReviewsByUser(ctx context.Context, region string, userID primitive.ObjectID) ([]models.UserReview, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"regions":        region,
			"reviews.userId": userID,
		}}},
		{{Key: "$project", Value: bson.M{
			"name": 1,
			"matchedReviews": bson.M{
				"$filter": bson.M{
					"input": "$reviews",
					"as":    "rev",
					"cond":  bson.M{"$eq": bson.A{"$$rev.userId", userID}},
				},
			},
		}}},
		{{Key: "$unwind", Value: "$matchedReviews"}},
		{{Key: "$replaceRoot", Value: bson.M{
			"newRoot": bson.M{
				"$mergeObjects": bson.A{
					"$matchedReviews",
					bson.M{"productId": "$_id", "productName": "$name"},
				},
			},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reviews := make([]models.UserReview, 0)
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
