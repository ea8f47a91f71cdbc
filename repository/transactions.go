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

type TransactionsRepo struct {
	MongoCollection *mongo.Collection
}

// CategoryFlow is one (category, type) group with its summed amount.
type CategoryFlow struct {
	CategoryName string                `bson:"category_name"`
	Type         model.TransactionType `bson:"type"`
	Total        float64               `bson:"total"`
}

// Retrieves MongoDB collection for transactions
func GetTransactionsRepo(client *mongo.Client) *TransactionsRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := os.Getenv("TRANSACTIONS_COLLECTION")
	return &TransactionsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// Add a new transaction into the database
func (r *TransactionsRepo) CreateTransaction(ctx context.Context, tx *model.Transaction) error {
	timer := utils.TrackDBOperation("insert", "transactions")
	defer timer.ObserveDuration()

	if tx.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	_, err := r.MongoCollection.InsertOne(ctx, tx)
	if err != nil {
		utils.TrackError("database", "transaction_creation_failed")
		return err
	}

	return nil
}

// Retrieves a user's transactions, optionally restricted to [from, to), date descending
func (r *TransactionsRepo) GetUserTransactions(ctx context.Context, userID string, from, to *time.Time) ([]*model.Transaction, error) {
	timer := utils.TrackDBOperation("find", "transactions")
	defer timer.ObserveDuration()

	filter := bson.M{"user_id": userID}
	if from != nil && to != nil {
		filter["date"] = bson.M{"$gte": *from, "$lt": *to}
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.TrackError("database", "transaction_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var txs []*model.Transaction
	if err = cursor.All(ctx, &txs); err != nil {
		utils.TrackError("database", "transaction_decode_failed")
		return nil, err
	}
	return txs, nil
}

// Applies a partial update to a transaction and returns the updated document
func (r *TransactionsRepo) UpdateTransaction(ctx context.Context, txID string, userID string, payload bson.M) (*model.Transaction, error) {
	timer := utils.TrackDBOperation("update", "transactions")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     txID,
		"user_id": userID,
	}

	payload["updated_at"] = time.Now()
	update := bson.M{"$set": payload}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated model.Transaction
	err := r.MongoCollection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		utils.TrackError("database", "transaction_not_found")
		return nil, errors.New("transaction not found")
	}
	if err != nil {
		utils.TrackError("database", "transaction_update_failed")
		return nil, err
	}

	return &updated, nil
}

// Removes a specific transaction from database
func (r *TransactionsRepo) DeleteTransaction(ctx context.Context, txID string, userID string) error {
	timer := utils.TrackDBOperation("delete", "transactions")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     txID,
		"user_id": userID,
	}

	result, err := r.MongoCollection.DeleteOne(ctx, filter)
	if err != nil {
		utils.TrackError("database", "transaction_deletion_failed")
		return err
	}

	if result.DeletedCount == 0 {
		utils.TrackError("database", "transaction_not_found")
		return errors.New("transaction not found")
	}

	return nil
}

// Sums transaction amounts grouped by (category_name, type) over [from, to).
// Sign normalization and ranking happen in the service layer so the grouping
// semantics stay testable in isolation.
func (r *TransactionsRepo) SumByCategoryInRange(ctx context.Context, userID string, from, to time.Time) ([]CategoryFlow, error) {
	timer := utils.TrackDBOperation("aggregate", "transactions")
	defer timer.ObserveDuration()

	pipeline := []bson.M{
		{"$match": bson.M{
			"user_id": userID,
			"date":    bson.M{"$gte": from, "$lt": to},
		}},
		{"$group": bson.M{
			"_id": bson.M{
				"category_name": "$category_name",
				"type":          "$type",
			},
			"total": bson.M{"$sum": "$amount"},
		}},
		{"$project": bson.M{
			"_id":           0,
			"category_name": "$_id.category_name",
			"type":          "$_id.type",
			"total":         1,
		}},
	}

	cursor, err := r.MongoCollection.Aggregate(ctx, pipeline)
	if err != nil {
		utils.TrackError("database", "transaction_aggregation_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var flows []CategoryFlow
	if err = cursor.All(ctx, &flows); err != nil {
		utils.TrackError("database", "transaction_aggregation_decode_failed")
		return nil, err
	}
	return flows, nil
}

// RenameCategory rewrites the denormalized category name on all of a user's
// transactions for that category
func (r *TransactionsRepo) RenameCategory(ctx context.Context, userID, categoryID, newName string) error {
	timer := utils.TrackDBOperation("update", "transactions")
	defer timer.ObserveDuration()

	filter := bson.M{
		"user_id":     userID,
		"category_id": categoryID,
	}
	update := bson.M{"$set": bson.M{"category_name": newName}}

	_, err := r.MongoCollection.UpdateMany(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "category_rename_failed")
	}
	return err
}
