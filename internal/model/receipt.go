package model

import (
	"time"

	"github.com/google/uuid"
)

// Receipt represents a priced checkout stored for later retrieval.
type Receipt struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Items     string    `json:"items" db:"items"`
	Total     int64     `json:"total" db:"total"`
	Currency  string    `json:"currency" db:"currency"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// ReceiptItem represents the tallied quantity of one product code on a receipt.
type ReceiptItem struct {
	ID        uuid.UUID `json:"-" db:"id"`
	ReceiptID uuid.UUID `json:"-" db:"receipt_id"`
	Product   string    `json:"product" db:"product"`
	Quantity  int       `json:"quantity" db:"quantity"`
}

// CheckoutRequest represents the request payload for pricing a sequence of items.
// Items is a pointer so a missing field can be told apart from an empty string;
// an empty string is a valid checkout that totals zero.
type CheckoutRequest struct {
	Items *string `json:"items"`
}

// CheckoutResponse represents the response payload for a priced checkout.
type CheckoutResponse struct {
	ID        uuid.UUID     `json:"id"`
	Items     []ReceiptItem `json:"items"`
	Total     int64         `json:"total"`
	Currency  string        `json:"currency"`
	CreatedAt time.Time     `json:"createdAt"`
}
