package dto

import (
	"main/model"
	"testing"
	"time"
)

func TestToWorkoutResponse(t *testing.T) {
	workout := &model.Workout{
		WorkoutID: "w-1",
		UserID:    "user-123",
		Date:      time.Date(2026, 8, 30, 14, 0, 0, 0, time.Local),
		Title:     "Push day",
	}

	resp := ToWorkoutResponse(workout)

	if resp.Date != "2026-08-30" {
		t.Errorf("Date = %q, want 2026-08-30", resp.Date)
	}
	if resp.Exercises == nil {
		t.Error("Expected empty exercises slice, not nil")
	}
	if len(resp.Exercises) != 0 {
		t.Errorf("Expected no exercises, got %d", len(resp.Exercises))
	}
}

func TestToWorkoutResponses(t *testing.T) {
	resp := ToWorkoutResponses(nil)
	if resp == nil {
		t.Error("Expected empty slice for nil input, not nil")
	}
}
