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

type MealsRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves MongoDB collection for meals
func GetMealsRepo(client *mongo.Client) *MealsRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := os.Getenv("MEALS_COLLECTION")
	return &MealsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// Add a new meal entry into the database
func (r *MealsRepo) CreateMeal(ctx context.Context, meal *model.Meal) error {
	timer := utils.TrackDBOperation("insert", "meals")
	defer timer.ObserveDuration()

	if meal.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	_, err := r.MongoCollection.InsertOne(ctx, meal)
	if err != nil {
		utils.TrackError("database", "meal_creation_failed")
		return err
	}

	return nil
}

// Retrieves a user's meals, optionally restricted to [from, to), date descending
func (r *MealsRepo) GetUserMeals(ctx context.Context, userID string, from, to *time.Time) ([]*model.Meal, error) {
	timer := utils.TrackDBOperation("find", "meals")
	defer timer.ObserveDuration()

	filter := bson.M{"user_id": userID}
	if from != nil && to != nil {
		filter["date"] = bson.M{"$gte": *from, "$lt": *to}
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.TrackError("database", "meal_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var meals []*model.Meal
	if err = cursor.All(ctx, &meals); err != nil {
		utils.TrackError("database", "meal_decode_failed")
		return nil, err
	}
	return meals, nil
}

// Applies a partial update to a meal and returns the updated document
func (r *MealsRepo) UpdateMeal(ctx context.Context, mealID string, userID string, payload bson.M) (*model.Meal, error) {
	timer := utils.TrackDBOperation("update", "meals")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     mealID,
		"user_id": userID,
	}

	payload["updated_at"] = time.Now()
	update := bson.M{"$set": payload}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated model.Meal
	err := r.MongoCollection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		utils.TrackError("database", "meal_not_found")
		return nil, errors.New("meal not found")
	}
	if err != nil {
		utils.TrackError("database", "meal_update_failed")
		return nil, err
	}

	return &updated, nil
}

// Removes a specific meal from database
func (r *MealsRepo) DeleteMeal(ctx context.Context, mealID string, userID string) error {
	timer := utils.TrackDBOperation("delete", "meals")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     mealID,
		"user_id": userID,
	}

	result, err := r.MongoCollection.DeleteOne(ctx, filter)
	if err != nil {
		utils.TrackError("database", "meal_deletion_failed")
		return err
	}

	if result.DeletedCount == 0 {
		utils.TrackError("database", "meal_not_found")
		return errors.New("meal not found")
	}

	return nil
}

// Counts meal entries dated in [from, to)
func (r *MealsRepo) CountInRange(ctx context.Context, userID string, from, to time.Time) (int, error) {
	timer := utils.TrackDBOperation("count", "meals")
	defer timer.ObserveDuration()

	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{
		"user_id": userID,
		"date":    bson.M{"$gte": from, "$lt": to},
	})
	if err != nil {
		utils.TrackError("database", "meal_count_failed")
		return 0, err
	}
	return int(count), nil
}

// Sums calories and macros across all items of all meals dated in [from, to).
// Missing item fields count as zero.
func (r *MealsRepo) SumNutritionInRange(ctx context.Context, userID string, from, to time.Time) (model.DietTotals, error) {
	timer := utils.TrackDBOperation("aggregate", "meals")
	defer timer.ObserveDuration()

	pipeline := []bson.M{
		{"$match": bson.M{
			"user_id": userID,
			"date":    bson.M{"$gte": from, "$lt": to},
		}},
		{"$unwind": "$items"},
		{"$group": bson.M{
			"_id":      nil,
			"calories": bson.M{"$sum": bson.M{"$ifNull": bson.A{"$items.calories", 0}}},
			"protein":  bson.M{"$sum": bson.M{"$ifNull": bson.A{"$items.protein", 0}}},
			"carbs":    bson.M{"$sum": bson.M{"$ifNull": bson.A{"$items.carbs", 0}}},
			"fat":      bson.M{"$sum": bson.M{"$ifNull": bson.A{"$items.fat", 0}}},
		}},
	}

	cursor, err := r.MongoCollection.Aggregate(ctx, pipeline)
	if err != nil {
		utils.TrackError("database", "meal_aggregation_failed")
		return model.DietTotals{}, err
	}
	defer cursor.Close(ctx)

	var results []model.DietTotals
	if err = cursor.All(ctx, &results); err != nil {
		utils.TrackError("database", "meal_aggregation_decode_failed")
		return model.DietTotals{}, err
	}

	if len(results) == 0 {
		return model.DietTotals{}, nil
	}
	return results[0], nil
}
