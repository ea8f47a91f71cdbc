package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SetupIndexes creates the per-user indexes every collection query relies on.
// All reads filter on user_id, and the insights window queries add a date or
// timestamp range on top.
func SetupIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userDateIndexes := func(dateField string) []mongo.IndexModel {
		return []mongo.IndexModel{
			{
				Keys: bson.D{{Key: "user_id", Value: 1}},
				Options: options.Index().
					SetName("user_id_index"),
			},
			{
				Keys: bson.D{
					{Key: "user_id", Value: 1},
					{Key: dateField, Value: -1},
				},
				Options: options.Index().
					SetName("user_" + dateField).
					SetUnique(false),
			},
		}
	}

	collections := map[string][]mongo.IndexModel{
		"todos": {
			{
				Keys: bson.D{{Key: "user_id", Value: 1}},
				Options: options.Index().
					SetName("user_id_index"),
			},
			{
				Keys: bson.D{
					{Key: "user_id", Value: 1},
					{Key: "done", Value: 1},
					{Key: "updated_at", Value: -1},
				},
				Options: options.Index().
					SetName("user_done_updated"),
			},
			{
				Keys: bson.D{
					{Key: "user_id", Value: 1},
					{Key: "created_at", Value: -1},
				},
				Options: options.Index().
					SetName("user_created"),
			},
		},
		"workouts":     userDateIndexes("date"),
		"meals":        userDateIndexes("date"),
		"transactions": userDateIndexes("date"),
		"categories": {
			{
				Keys: bson.D{{Key: "user_id", Value: 1}},
				Options: options.Index().
					SetName("user_id_index"),
			},
		},
		"users": {
			{
				Keys: bson.D{{Key: "username", Value: 1}},
				Options: options.Index().
					SetName("username_unique").
					SetUnique(true),
			},
			{
				Keys: bson.D{{Key: "email", Value: 1}},
				Options: options.Index().
					SetName("email_unique").
					SetUnique(true),
			},
		},
		"sessions": {
			{
				Keys: bson.D{{Key: "session_id", Value: 1}},
				Options: options.Index().
					SetName("session_id_unique").
					SetUnique(true),
			},
			{
				Keys: bson.D{
					{Key: "user_id", Value: 1},
					{Key: "is_active", Value: 1},
					{Key: "last_activity_at", Value: -1},
				},
				Options: options.Index().
					SetName("user_active_sessions"),
			},
			{
				Keys: bson.D{{Key: "expires_at", Value: 1}},
				Options: options.Index().
					SetName("session_ttl").
					SetExpireAfterSeconds(0),
			},
		},
	}

	for name, indexes := range collections {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, indexes); err != nil {
			return fmt.Errorf("failed to create indexes for %s: %w", name, err)
		}
		log.Printf("Indexes ensured for collection %s", name)
	}

	return nil
}
