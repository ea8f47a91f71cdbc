package model

import "time"

type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

type Transaction struct {
	TransactionID string          `bson:"_id,omitempty" json:"id"`
	UserID        string          `bson:"user_id" json:"user_id"`
	CategoryID    string          `bson:"category_id" json:"category_id"`
	CategoryName  string          `bson:"category_name" json:"category_name"`
	Type          TransactionType `bson:"type" json:"type"`
	Amount        float64         `bson:"amount" json:"amount"`
	Date          time.Time       `bson:"date" json:"date"`
	Note          string          `bson:"note,omitempty" json:"note,omitempty"`
	CreatedAt     time.Time       `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `bson:"updated_at" json:"updated_at"`
}

type Category struct {
	CategoryID string    `bson:"_id,omitempty" json:"id"`
	UserID     string    `bson:"user_id" json:"user_id"`
	Name       string    `bson:"name" json:"name" binding:"required"`
	Color      string    `bson:"color" json:"color"`
	Icon       string    `bson:"icon" json:"icon"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}
