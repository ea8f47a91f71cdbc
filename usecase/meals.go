package usecase

import (
	"context"
	"errors"
	"fmt"
	"main/model"
	"main/repository"
	"main/utils"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

type MealsService struct {
	repo *repository.MealsRepo
}

func NewMealsService(repo *repository.MealsRepo) *MealsService {
	return &MealsService{repo: repo}
}

func validMealType(t model.MealType) bool {
	switch t {
	case model.MealBreakfast, model.MealLunch, model.MealDinner, model.MealSnack:
		return true
	}
	return false
}

func validateItems(items []model.MealItem) error {
	if len(items) == 0 {
		return errors.New("at least one item is required")
	}
	for i, item := range items {
		if item.Name == "" {
			return fmt.Errorf("item %d is missing a name", i)
		}
		if item.Calories <= 0 {
			return fmt.Errorf("item %d must have positive calories", i)
		}
		if item.Protein < 0 || item.Carbs < 0 || item.Fat < 0 {
			return fmt.Errorf("item %d has a negative macro value", i)
		}
	}
	return nil
}

// Get the user's meals, optionally filtered to one month
func (svc *MealsService) GetUserMeals(ctx context.Context, userID, monthKey string, now time.Time) ([]*model.Meal, error) {
	if monthKey == "" {
		return svc.repo.GetUserMeals(ctx, userID, nil, nil)
	}

	start, end, _, err := MonthRange(monthKey, now)
	if err != nil {
		return nil, err
	}
	return svc.repo.GetUserMeals(ctx, userID, &start, &end)
}

// Log a meal entry
func (svc *MealsService) CreateMeal(ctx context.Context, userID, dateStr string, mealType model.MealType, notes string, items []model.MealItem) (*model.Meal, error) {
	if userID == "" {
		return nil, errors.New("user ID is required")
	}
	if dateStr == "" {
		return nil, errors.New("date is required")
	}
	if !utils.ValidDayKey(dateStr) {
		return nil, errors.New("date must be in YYYY-MM-DD format")
	}
	date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		return nil, errors.New("invalid date")
	}
	if !validMealType(mealType) {
		return nil, errors.New("invalid meal type")
	}
	if err := validateItems(items); err != nil {
		return nil, err
	}

	now := time.Now()
	meal := &model.Meal{
		MealID:    utils.GenerateID(),
		UserID:    userID,
		Date:      date,
		Type:      mealType,
		Notes:     notes,
		Items:     items,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := svc.repo.CreateMeal(ctx, meal); err != nil {
		return nil, err
	}
	return meal, nil
}

// MealUpdate carries an optional partial update; nil fields stay untouched.
type MealUpdate struct {
	Date  *string
	Type  *model.MealType
	Notes *string
	Items []model.MealItem
}

// Apply a partial update to a meal
func (svc *MealsService) UpdateMeal(ctx context.Context, mealID, userID string, update MealUpdate) (*model.Meal, error) {
	payload := bson.M{}

	if update.Type != nil {
		if !validMealType(*update.Type) {
			return nil, errors.New("invalid meal type")
		}
		payload["type"] = *update.Type
	}
	if update.Date != nil {
		if !utils.ValidDayKey(*update.Date) {
			return nil, errors.New("date must be in YYYY-MM-DD format")
		}
		date, err := time.ParseInLocation("2006-01-02", *update.Date, time.Local)
		if err != nil {
			return nil, errors.New("invalid date")
		}
		payload["date"] = date
	}
	if update.Notes != nil {
		payload["notes"] = *update.Notes
	}
	if update.Items != nil {
		if err := validateItems(update.Items); err != nil {
			return nil, err
		}
		payload["items"] = update.Items
	}

	if len(payload) == 0 {
		return nil, errors.New("no fields to update")
	}

	return svc.repo.UpdateMeal(ctx, mealID, userID, payload)
}

// Delete a meal entry
func (svc *MealsService) DeleteMeal(ctx context.Context, mealID, userID string) error {
	return svc.repo.DeleteMeal(ctx, mealID, userID)
}
