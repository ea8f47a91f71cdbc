package dto

import "main/model"

type WorkoutResponse struct {
	ID        string           `json:"id"`
	Date      string           `json:"date"`
	Title     string           `json:"title"`
	Notes     string           `json:"notes,omitempty"`
	Exercises []model.Exercise `json:"exercises"`
}

// Convert model.Workout to WorkoutResponse with a "YYYY-MM-DD" date
func ToWorkoutResponse(workout *model.Workout) WorkoutResponse {
	exercises := workout.Exercises
	if exercises == nil {
		exercises = []model.Exercise{}
	}
	return WorkoutResponse{
		ID:        workout.WorkoutID,
		Date:      workout.Date.Format("2006-01-02"),
		Title:     workout.Title,
		Notes:     workout.Notes,
		Exercises: exercises,
	}
}

func ToWorkoutResponses(workouts []*model.Workout) []WorkoutResponse {
	responses := make([]WorkoutResponse, 0, len(workouts))
	for _, workout := range workouts {
		responses = append(responses, ToWorkoutResponse(workout))
	}
	return responses
}
