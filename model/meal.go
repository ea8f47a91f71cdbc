package model

import "time"

type MealType string

const (
	MealBreakfast MealType = "Breakfast"
	MealLunch     MealType = "Lunch"
	MealDinner    MealType = "Dinner"
	MealSnack     MealType = "Snack"
)

type MealItem struct {
	Name     string  `bson:"name" json:"name"`
	Qty      float64 `bson:"qty" json:"qty"`
	Unit     string  `bson:"unit" json:"unit"`
	Calories float64 `bson:"calories" json:"calories"`
	Protein  float64 `bson:"protein" json:"protein"`
	Carbs    float64 `bson:"carbs" json:"carbs"`
	Fat      float64 `bson:"fat" json:"fat"`
}

type Meal struct {
	MealID    string     `bson:"_id,omitempty" json:"id"`
	UserID    string     `bson:"user_id" json:"user_id"`
	Date      time.Time  `bson:"date" json:"date"`
	Type      MealType   `bson:"type" json:"type"`
	Notes     string     `bson:"notes,omitempty" json:"notes,omitempty"`
	Items     []MealItem `bson:"items" json:"items"`
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updated_at"`
}
