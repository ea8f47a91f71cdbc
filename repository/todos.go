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

type TodosRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves MongoDB collection for todos
func GetTodosRepo(client *mongo.Client) *TodosRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := os.Getenv("TODOS_COLLECTION")
	return &TodosRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// Add a new todo (following the model) into the database
func (r *TodosRepo) CreateTodo(ctx context.Context, todo *model.Todo) error {
	timer := utils.TrackDBOperation("insert", "todos")
	defer timer.ObserveDuration()

	if todo.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	_, err := r.MongoCollection.InsertOne(ctx, todo)
	if err != nil {
		utils.TrackError("database", "todo_creation_failed")
		return err
	}

	return nil
}

// Retrieves all todos for a user, newest first
func (r *TodosRepo) GetUserTodos(ctx context.Context, userID string) ([]*model.Todo, error) {
	timer := utils.TrackDBOperation("find", "todos")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		utils.TrackError("database", "todo_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var todos []*model.Todo
	if err = cursor.All(ctx, &todos); err != nil {
		utils.TrackError("database", "todo_decode_failed")
		return nil, err
	}
	return todos, nil
}

// Updates the title of a specific todo
func (r *TodosRepo) UpdateTodo(ctx context.Context, todoID string, userID string, title string) (*model.Todo, error) {
	timer := utils.TrackDBOperation("update", "todos")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     todoID,
		"user_id": userID,
	}

	update := bson.M{
		"$set": bson.M{
			"title":      title,
			"updated_at": time.Now(),
		},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated model.Todo
	err := r.MongoCollection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		utils.TrackError("database", "todo_not_found")
		return nil, errors.New("todo not found")
	}
	if err != nil {
		utils.TrackError("database", "todo_update_failed")
		return nil, err
	}

	return &updated, nil
}

// Toggles the done status of a todo and returns the updated document
func (r *TodosRepo) ToggleTodoDone(ctx context.Context, todoID string, userID string) (*model.Todo, error) {
	timer := utils.TrackDBOperation("update", "todos")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     todoID,
		"user_id": userID,
	}

	var todo model.Todo
	if err := r.MongoCollection.FindOne(ctx, filter).Decode(&todo); err != nil {
		utils.TrackError("database", "todo_not_found")
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("todo not found")
		}
		return nil, err
	}

	newDone := !todo.Done
	update := bson.M{
		"$set": bson.M{
			"done":       newDone,
			"updated_at": time.Now(),
		},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated model.Todo
	if err := r.MongoCollection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated); err != nil {
		utils.TrackError("database", "todo_update_failed")
		return nil, err
	}

	if newDone {
		utils.TrackTodoCompletion()
	}

	return &updated, nil
}

// Removes a specific todo from database
func (r *TodosRepo) DeleteTodo(ctx context.Context, todoID string, userID string) error {
	timer := utils.TrackDBOperation("delete", "todos")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     todoID,
		"user_id": userID,
	}

	result, err := r.MongoCollection.DeleteOne(ctx, filter)
	if err != nil {
		utils.TrackError("database", "todo_deletion_failed")
		return err
	}

	if result.DeletedCount == 0 {
		utils.TrackError("database", "todo_not_found")
		return errors.New("todo not found")
	}

	return nil
}

// Counts completed todos whose updated_at falls in [from, to)
func (r *TodosRepo) CountCompletedInRange(ctx context.Context, userID string, from, to time.Time) (int, error) {
	timer := utils.TrackDBOperation("count", "todos")
	defer timer.ObserveDuration()

	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{
		"user_id":    userID,
		"done":       true,
		"updated_at": bson.M{"$gte": from, "$lt": to},
	})
	if err != nil {
		utils.TrackError("database", "todo_count_failed")
		return 0, err
	}
	return int(count), nil
}

// Counts todos whose created_at falls in [from, to)
func (r *TodosRepo) CountCreatedInRange(ctx context.Context, userID string, from, to time.Time) (int, error) {
	timer := utils.TrackDBOperation("count", "todos")
	defer timer.ObserveDuration()

	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{
		"user_id":    userID,
		"created_at": bson.M{"$gte": from, "$lt": to},
	})
	if err != nil {
		utils.TrackError("database", "todo_count_failed")
		return 0, err
	}
	return int(count), nil
}
