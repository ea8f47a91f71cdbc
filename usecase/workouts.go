package usecase

import (
	"context"
	"errors"
	"main/model"
	"main/repository"
	"main/utils"
	"strings"
	"time"
)

type WorkoutsService struct {
	repo *repository.WorkoutsRepo
}

func NewWorkoutsService(repo *repository.WorkoutsRepo) *WorkoutsService {
	return &WorkoutsService{repo: repo}
}

// Get the user's workouts, optionally filtered to one month
func (svc *WorkoutsService) GetUserWorkouts(ctx context.Context, userID, monthKey string, now time.Time) ([]*model.Workout, error) {
	if monthKey == "" {
		return svc.repo.GetUserWorkouts(ctx, userID, nil, nil)
	}

	start, end, _, err := MonthRange(monthKey, now)
	if err != nil {
		return nil, err
	}
	return svc.repo.GetUserWorkouts(ctx, userID, &start, &end)
}

// Create a workout session. An empty date means today.
func (svc *WorkoutsService) CreateWorkout(ctx context.Context, userID, dateStr, title, notes string, exercises []model.Exercise) (*model.Workout, error) {
	if userID == "" {
		return nil, errors.New("user ID is required")
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.New("title is required")
	}

	date := time.Now()
	if dateStr != "" {
		if !utils.ValidDayKey(dateStr) {
			return nil, errors.New("date must be in YYYY-MM-DD format")
		}
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			return nil, errors.New("invalid date")
		}
		date = parsed
	}

	now := time.Now()
	workout := &model.Workout{
		WorkoutID: utils.GenerateID(),
		UserID:    userID,
		Date:      date,
		Title:     title,
		Notes:     notes,
		Exercises: cleanExercises(exercises),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := svc.repo.CreateWorkout(ctx, workout); err != nil {
		return nil, err
	}
	return workout, nil
}

// Replace the exercise list of a workout
func (svc *WorkoutsService) UpdateExercises(ctx context.Context, workoutID, userID string, exercises []model.Exercise) (*model.Workout, error) {
	if workoutID == "" {
		return nil, errors.New("workout ID is required")
	}
	return svc.repo.UpdateExercises(ctx, workoutID, userID, cleanExercises(exercises))
}

// Delete a workout session
func (svc *WorkoutsService) DeleteWorkout(ctx context.Context, workoutID, userID string) error {
	return svc.repo.DeleteWorkout(ctx, workoutID, userID)
}

// cleanExercises normalizes client exercise payloads: reps never negative,
// empty set lists kept as empty, never nil.
func cleanExercises(exercises []model.Exercise) []model.Exercise {
	cleaned := make([]model.Exercise, 0, len(exercises))
	for _, ex := range exercises {
		sets := make([]model.WorkoutSet, 0, len(ex.Sets))
		for _, set := range ex.Sets {
			if set.Reps < 0 {
				set.Reps = 0
			}
			sets = append(sets, set)
		}
		ex.Sets = sets
		cleaned = append(cleaned, ex)
	}
	return cleaned
}
