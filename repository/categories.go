package repository

import (
	"context"
	"errors"
	"main/model"
	"main/utils"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CategoriesRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves MongoDB collection for finance categories
func GetCategoriesRepo(client *mongo.Client) *CategoriesRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := os.Getenv("CATEGORIES_COLLECTION")
	return &CategoriesRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// Add a new category into the database
func (r *CategoriesRepo) CreateCategory(ctx context.Context, category *model.Category) error {
	timer := utils.TrackDBOperation("insert", "categories")
	defer timer.ObserveDuration()

	if category.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	_, err := r.MongoCollection.InsertOne(ctx, category)
	if err != nil {
		utils.TrackError("database", "category_creation_failed")
		return err
	}

	return nil
}

// Retrieves all categories for a user, newest first
func (r *CategoriesRepo) GetUserCategories(ctx context.Context, userID string) ([]*model.Category, error) {
	timer := utils.TrackDBOperation("find", "categories")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		utils.TrackError("database", "category_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var categories []*model.Category
	if err = cursor.All(ctx, &categories); err != nil {
		utils.TrackError("database", "category_decode_failed")
		return nil, err
	}
	return categories, nil
}

// FindCategory looks up one category owned by the user; nil when absent
func (r *CategoriesRepo) FindCategory(ctx context.Context, categoryID string, userID string) (*model.Category, error) {
	timer := utils.TrackDBOperation("find", "categories")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     categoryID,
		"user_id": userID,
	}

	var category model.Category
	err := r.MongoCollection.FindOne(ctx, filter).Decode(&category)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		utils.TrackError("database", "category_lookup_failed")
		return nil, err
	}
	return &category, nil
}

// Applies a partial update to a category and returns the updated document
func (r *CategoriesRepo) UpdateCategory(ctx context.Context, categoryID string, userID string, payload bson.M) (*model.Category, error) {
	timer := utils.TrackDBOperation("update", "categories")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     categoryID,
		"user_id": userID,
	}

	payload["updated_at"] = time.Now()
	update := bson.M{"$set": payload}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated model.Category
	err := r.MongoCollection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		utils.TrackError("database", "category_not_found")
		return nil, errors.New("category not found")
	}
	if err != nil {
		utils.TrackError("database", "category_update_failed")
		return nil, err
	}

	return &updated, nil
}

// Removes a specific category from database
func (r *CategoriesRepo) DeleteCategory(ctx context.Context, categoryID string, userID string) error {
	timer := utils.TrackDBOperation("delete", "categories")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     categoryID,
		"user_id": userID,
	}

	result, err := r.MongoCollection.DeleteOne(ctx, filter)
	if err != nil {
		utils.TrackError("database", "category_deletion_failed")
		return err
	}

	if result.DeletedCount == 0 {
		utils.TrackError("database", "category_not_found")
		return errors.New("category not found")
	}

	return nil
}
