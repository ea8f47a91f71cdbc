package usecase

import (
	"context"
	"errors"
	"main/model"
	"main/repository"
	"main/utils"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

type FinanceService struct {
	transactions *repository.TransactionsRepo
	categories   *repository.CategoriesRepo
}

func NewFinanceService(transactions *repository.TransactionsRepo, categories *repository.CategoriesRepo) *FinanceService {
	return &FinanceService{
		transactions: transactions,
		categories:   categories,
	}
}

func validTransactionType(t model.TransactionType) bool {
	return t == model.TransactionIncome || t == model.TransactionExpense
}

// Get the user's transactions, optionally filtered to one month
func (svc *FinanceService) GetUserTransactions(ctx context.Context, userID, monthKey string, now time.Time) ([]*model.Transaction, error) {
	if monthKey == "" {
		return svc.transactions.GetUserTransactions(ctx, userID, nil, nil)
	}

	start, end, _, err := MonthRange(monthKey, now)
	if err != nil {
		return nil, err
	}
	return svc.transactions.GetUserTransactions(ctx, userID, &start, &end)
}

// Record a transaction. The category must belong to the user; its name is
// denormalized onto the transaction document so the insights grouping reads
// a single collection.
func (svc *FinanceService) CreateTransaction(ctx context.Context, userID string, amount float64, txType model.TransactionType, categoryID string, date time.Time, note string) (*model.Transaction, error) {
	if userID == "" {
		return nil, errors.New("user ID is required")
	}
	if amount <= 0 {
		return nil, errors.New("amount must be positive")
	}
	if !validTransactionType(txType) {
		return nil, errors.New("invalid transaction type")
	}
	if categoryID == "" {
		return nil, errors.New("category ID is required")
	}

	category, err := svc.categories.FindCategory(ctx, categoryID, userID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, errors.New("category not found")
	}

	if date.IsZero() {
		date = time.Now()
	}

	now := time.Now()
	tx := &model.Transaction{
		TransactionID: utils.GenerateID(),
		UserID:        userID,
		CategoryID:    categoryID,
		CategoryName:  category.Name,
		Type:          txType,
		Amount:        amount,
		Date:          date,
		Note:          note,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := svc.transactions.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// TransactionUpdate carries an optional partial update; nil fields stay untouched.
type TransactionUpdate struct {
	Amount     *float64
	Type       *model.TransactionType
	CategoryID *string
	Date       *time.Time
	Note       *string
}

// Apply a partial update to a transaction. Changing the category re-resolves
// the denormalized name.
func (svc *FinanceService) UpdateTransaction(ctx context.Context, txID, userID string, update TransactionUpdate) (*model.Transaction, error) {
	payload := bson.M{}

	if update.Amount != nil {
		if *update.Amount <= 0 {
			return nil, errors.New("amount must be positive")
		}
		payload["amount"] = *update.Amount
	}
	if update.Type != nil {
		if !validTransactionType(*update.Type) {
			return nil, errors.New("invalid transaction type")
		}
		payload["type"] = *update.Type
	}
	if update.CategoryID != nil {
		category, err := svc.categories.FindCategory(ctx, *update.CategoryID, userID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, errors.New("category not found")
		}
		payload["category_id"] = *update.CategoryID
		payload["category_name"] = category.Name
	}
	if update.Date != nil {
		payload["date"] = *update.Date
	}
	if update.Note != nil {
		payload["note"] = *update.Note
	}

	if len(payload) == 0 {
		return nil, errors.New("no fields to update")
	}

	return svc.transactions.UpdateTransaction(ctx, txID, userID, payload)
}

// Delete a transaction
func (svc *FinanceService) DeleteTransaction(ctx context.Context, txID, userID string) error {
	return svc.transactions.DeleteTransaction(ctx, txID, userID)
}

// Get the user's categories
func (svc *FinanceService) GetUserCategories(ctx context.Context, userID string) ([]*model.Category, error) {
	return svc.categories.GetUserCategories(ctx, userID)
}

// Create a finance category
func (svc *FinanceService) CreateCategory(ctx context.Context, userID, name, color, icon string) (*model.Category, error) {
	if userID == "" {
		return nil, errors.New("user ID is required")
	}
	name = strings.TrimSpace(name)
	if name == "" || color == "" || icon == "" {
		return nil, errors.New("name, color and icon are required")
	}

	now := time.Now()
	category := &model.Category{
		CategoryID: utils.GenerateID(),
		UserID:     userID,
		Name:       name,
		Color:      color,
		Icon:       icon,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := svc.categories.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// CategoryUpdate carries an optional partial update; nil fields stay untouched.
type CategoryUpdate struct {
	Name  *string
	Color *string
	Icon  *string
}

// Apply a partial update to a category. A rename is propagated to the
// denormalized names on the user's transactions.
func (svc *FinanceService) UpdateCategory(ctx context.Context, categoryID, userID string, update CategoryUpdate) (*model.Category, error) {
	payload := bson.M{}

	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, errors.New("name cannot be empty")
		}
		payload["name"] = name
	}
	if update.Color != nil {
		payload["color"] = *update.Color
	}
	if update.Icon != nil {
		payload["icon"] = *update.Icon
	}

	if len(payload) == 0 {
		return nil, errors.New("no fields to update")
	}

	category, err := svc.categories.UpdateCategory(ctx, categoryID, userID, payload)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		if err := svc.transactions.RenameCategory(ctx, userID, categoryID, category.Name); err != nil {
			return nil, err
		}
	}

	return category, nil
}

// Delete a category
func (svc *FinanceService) DeleteCategory(ctx context.Context, categoryID, userID string) error {
	return svc.categories.DeleteCategory(ctx, categoryID, userID)
}
