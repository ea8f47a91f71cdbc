package dto

import (
	"main/model"
	"time"
)

type TodoResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Convert model.Todo to TodoResponse
func ToTodoResponse(todo *model.Todo) TodoResponse {
	return TodoResponse{
		ID:        todo.TodoID,
		Title:     todo.Title,
		Done:      todo.Done,
		CreatedAt: todo.CreatedAt,
		UpdatedAt: todo.UpdatedAt,
	}
}

func ToTodoResponses(todos []*model.Todo) []TodoResponse {
	responses := make([]TodoResponse, 0, len(todos))
	for _, todo := range todos {
		responses = append(responses, ToTodoResponse(todo))
	}
	return responses
}
