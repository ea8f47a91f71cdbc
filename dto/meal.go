package dto

import "main/model"

type MealResponse struct {
	ID    string           `json:"id"`
	Date  string           `json:"date"`
	Type  model.MealType   `json:"type"`
	Notes string           `json:"notes,omitempty"`
	Items []model.MealItem `json:"items"`
}

func ToMealResponse(meal *model.Meal) MealResponse {
	items := meal.Items
	if items == nil {
		items = []model.MealItem{}
	}
	return MealResponse{
		ID:    meal.MealID,
		Date:  meal.Date.Format("2006-01-02"),
		Type:  meal.Type,
		Notes: meal.Notes,
		Items: items,
	}
}

func ToMealResponses(meals []*model.Meal) []MealResponse {
	responses := make([]MealResponse, 0, len(meals))
	for _, meal := range meals {
		responses = append(responses, ToMealResponse(meal))
	}
	return responses
}
