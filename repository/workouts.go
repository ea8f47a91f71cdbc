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

type WorkoutsRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves MongoDB collection for workouts
func GetWorkoutsRepo(client *mongo.Client) *WorkoutsRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := os.Getenv("WORKOUTS_COLLECTION")
	return &WorkoutsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// Add a new workout session into the database
func (r *WorkoutsRepo) CreateWorkout(ctx context.Context, workout *model.Workout) error {
	timer := utils.TrackDBOperation("insert", "workouts")
	defer timer.ObserveDuration()

	if workout.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	_, err := r.MongoCollection.InsertOne(ctx, workout)
	if err != nil {
		utils.TrackError("database", "workout_creation_failed")
		return err
	}

	return nil
}

// Retrieves a user's workouts, optionally restricted to [from, to), date descending
func (r *WorkoutsRepo) GetUserWorkouts(ctx context.Context, userID string, from, to *time.Time) ([]*model.Workout, error) {
	timer := utils.TrackDBOperation("find", "workouts")
	defer timer.ObserveDuration()

	filter := bson.M{"user_id": userID}
	if from != nil && to != nil {
		filter["date"] = bson.M{"$gte": *from, "$lt": *to}
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.TrackError("database", "workout_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var workouts []*model.Workout
	if err = cursor.All(ctx, &workouts); err != nil {
		utils.TrackError("database", "workout_decode_failed")
		return nil, err
	}
	return workouts, nil
}

// Replaces the exercise list of a workout and returns the updated document
func (r *WorkoutsRepo) UpdateExercises(ctx context.Context, workoutID string, userID string, exercises []model.Exercise) (*model.Workout, error) {
	timer := utils.TrackDBOperation("update", "workouts")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     workoutID,
		"user_id": userID,
	}

	update := bson.M{
		"$set": bson.M{
			"exercises":  exercises,
			"updated_at": time.Now(),
		},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated model.Workout
	err := r.MongoCollection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		utils.TrackError("database", "workout_not_found")
		return nil, errors.New("workout not found")
	}
	if err != nil {
		utils.TrackError("database", "workout_update_failed")
		return nil, err
	}

	return &updated, nil
}

// Removes a specific workout from database
func (r *WorkoutsRepo) DeleteWorkout(ctx context.Context, workoutID string, userID string) error {
	timer := utils.TrackDBOperation("delete", "workouts")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     workoutID,
		"user_id": userID,
	}

	result, err := r.MongoCollection.DeleteOne(ctx, filter)
	if err != nil {
		utils.TrackError("database", "workout_deletion_failed")
		return err
	}

	if result.DeletedCount == 0 {
		utils.TrackError("database", "workout_not_found")
		return errors.New("workout not found")
	}

	return nil
}

// Counts workout sessions dated in [from, to)
func (r *WorkoutsRepo) CountInRange(ctx context.Context, userID string, from, to time.Time) (int, error) {
	timer := utils.TrackDBOperation("count", "workouts")
	defer timer.ObserveDuration()

	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{
		"user_id": userID,
		"date":    bson.M{"$gte": from, "$lt": to},
	})
	if err != nil {
		utils.TrackError("database", "workout_count_failed")
		return 0, err
	}
	return int(count), nil
}
