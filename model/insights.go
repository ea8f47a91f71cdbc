package model

// MonthlyInsights is the dashboard summary for a single user and month.
// It is recomputed on every request and never persisted.
type MonthlyInsights struct {
	Month    string            `json:"month"`
	Last7    []DayActivity     `json:"last7"`
	Streak   int               `json:"streak"`
	Todos    TodoInsights      `json:"todos"`
	Workouts WorkoutInsights   `json:"workouts"`
	Diet     DietTotals        `json:"diet"`
	Finance  FinanceInsights   `json:"finance"`
}

type DayActivity struct {
	Date   string `json:"date"`
	Active bool   `json:"active"`
}

type TodoInsights struct {
	Completed int `json:"completed"`
	Created   int `json:"created"`
}

type WorkoutInsights struct {
	Count int `json:"count"`
}

type DietTotals struct {
	Calories float64 `bson:"calories" json:"calories"`
	Protein  float64 `bson:"protein" json:"protein"`
	Carbs    float64 `bson:"carbs" json:"carbs"`
	Fat      float64 `bson:"fat" json:"fat"`
}

type FinanceInsights struct {
	Spent         float64           `json:"spent"`
	TopCategories []CategoryExpense `json:"topCategories"`
}

type CategoryExpense struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Pct    float64 `json:"pct"`
}
