package repository

import (
	"context"

	"mini-market/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ReceiptRepository defines the interface for receipt data access operations.
type ReceiptRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateReceipt inserts a new receipt within the provided transaction.
	CreateReceipt(ctx context.Context, tx pgx.Tx, receipt *model.Receipt) error

	// CreateReceiptItems inserts multiple receipt items within the provided transaction.
	CreateReceiptItems(ctx context.Context, tx pgx.Tx, items []model.ReceiptItem) error

	// GetByID retrieves a receipt by its ID along with its items.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Receipt, []model.ReceiptItem, error)
}
