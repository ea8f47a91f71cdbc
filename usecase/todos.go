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

type TodosService struct {
	repo *repository.TodosRepo
}

func NewTodosService(repo *repository.TodosRepo) *TodosService {
	return &TodosService{repo: repo}
}

// Get the user's todos, newest first
func (svc *TodosService) GetUserTodos(ctx context.Context, userID string) ([]*model.Todo, error) {
	return svc.repo.GetUserTodos(ctx, userID)
}

// Create Todo
func (svc *TodosService) CreateTodo(ctx context.Context, userID, title string) (*model.Todo, error) {
	if userID == "" {
		return nil, errors.New("user ID is required")
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.New("title is required")
	}

	now := time.Now()
	todo := &model.Todo{
		TodoID:    utils.GenerateID(),
		UserID:    userID,
		Title:     title,
		Done:      false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := svc.repo.CreateTodo(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

// Update the title of a todo
func (svc *TodosService) UpdateTodo(ctx context.Context, todoID, userID, title string) (*model.Todo, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.New("title is required")
	}
	return svc.repo.UpdateTodo(ctx, todoID, userID, title)
}

// Flip the done status of a todo
func (svc *TodosService) ToggleTodo(ctx context.Context, todoID, userID string) (*model.Todo, error) {
	return svc.repo.ToggleTodoDone(ctx, todoID, userID)
}

// Delete Todo
func (svc *TodosService) DeleteTodo(ctx context.Context, todoID, userID string) error {
	return svc.repo.DeleteTodo(ctx, todoID, userID)
}
