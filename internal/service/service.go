package service

import (
	"context"

	"mini-market/internal/model"

	"github.com/google/uuid"
)

// CheckoutService defines operations for pricing and recording checkouts.
type CheckoutService interface {
	// Checkout prices a scanned item sequence and records a receipt.
	Checkout(ctx context.Context, req *model.CheckoutRequest) (*model.CheckoutResponse, error)

	// GetReceipt retrieves a recorded receipt by its ID with all line items.
	GetReceipt(ctx context.Context, id uuid.UUID) (*model.CheckoutResponse, error)
}

// RuleService defines operations for inspecting the active pricing rules.
type RuleService interface {
	// GetAll returns the pricing rules the till was configured with.
	GetAll(ctx context.Context) []model.RuleConfig
}
