package dto

import (
	"main/model"
	"time"
)

type TransactionResponse struct {
	ID           string                `json:"id"`
	CategoryID   string                `json:"category_id"`
	CategoryName string                `json:"category_name"`
	Type         model.TransactionType `json:"type"`
	Amount       float64               `json:"amount"`
	Date         time.Time             `json:"date"`
	Note         string                `json:"note,omitempty"`
}

func ToTransactionResponse(tx *model.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           tx.TransactionID,
		CategoryID:   tx.CategoryID,
		CategoryName: tx.CategoryName,
		Type:         tx.Type,
		Amount:       tx.Amount,
		Date:         tx.Date,
		Note:         tx.Note,
	}
}

func ToTransactionResponses(txs []*model.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		responses = append(responses, ToTransactionResponse(tx))
	}
	return responses
}

type CategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

func ToCategoryResponse(category *model.Category) CategoryResponse {
	return CategoryResponse{
		ID:    category.CategoryID,
		Name:  category.Name,
		Color: category.Color,
		Icon:  category.Icon,
	}
}

func ToCategoryResponses(categories []*model.Category) []CategoryResponse {
	responses := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		responses = append(responses, ToCategoryResponse(category))
	}
	return responses
}
