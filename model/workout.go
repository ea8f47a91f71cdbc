package model

import "time"

type WorkoutSet struct {
	Reps   int      `bson:"reps" json:"reps"`
	Weight *float64 `bson:"weight,omitempty" json:"weight,omitempty"`
	Done   bool     `bson:"done" json:"done"`
}

type Exercise struct {
	Name  string       `bson:"name" json:"name"`
	Notes string       `bson:"notes,omitempty" json:"notes,omitempty"`
	Sets  []WorkoutSet `bson:"sets" json:"sets"`
}

type Workout struct {
	WorkoutID string     `bson:"_id,omitempty" json:"id"`
	UserID    string     `bson:"user_id" json:"user_id"`
	Date      time.Time  `bson:"date" json:"date"`
	Title     string     `bson:"title" json:"title" binding:"required"`
	Notes     string     `bson:"notes,omitempty" json:"notes,omitempty"`
	Exercises []Exercise `bson:"exercises" json:"exercises"`
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updated_at"`
}
