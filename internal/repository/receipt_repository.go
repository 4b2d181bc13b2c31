package repository

import (
	"context"
	"fmt"

	"mini-market/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// receiptRepository implements the ReceiptRepository interface using PostgreSQL.
type receiptRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewReceiptRepository creates a new PostgreSQL-backed receipt repository.
func NewReceiptRepository(pool *pgxpool.Pool, logger zerolog.Logger) ReceiptRepository {
	return &receiptRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "receipt").Logger(),
	}
}

// BeginTx starts a new database transaction.
func (r *receiptRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// CreateReceipt inserts a new receipt within the provided transaction.
func (r *receiptRepository) CreateReceipt(ctx context.Context, tx pgx.Tx, receipt *model.Receipt) error {
	query := `
		INSERT INTO receipts (id, items, total, currency, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := tx.Exec(ctx, query, receipt.ID, receipt.Items, receipt.Total, receipt.Currency, receipt.CreatedAt)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("receipt_id", receipt.ID.String()).
			Msg("failed to create receipt")
		return fmt.Errorf("failed to create receipt: %w", err)
	}

	r.logger.Debug().
		Str("receipt_id", receipt.ID.String()).
		Msg("receipt created successfully")

	return nil
}

// CreateReceiptItems inserts multiple receipt items within the provided transaction.
func (r *receiptRepository) CreateReceiptItems(ctx context.Context, tx pgx.Tx, items []model.ReceiptItem) error {
	if len(items) == 0 {
		return nil
	}

	query := `
		INSERT INTO receipt_items (id, receipt_id, product, quantity)
		VALUES ($1, $2, $3, $4)
	`

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(query, item.ID, item.ReceiptID, item.Product, item.Quantity)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < len(items); i++ {
		_, err := results.Exec()
		if err != nil {
			r.logger.Error().
				Err(err).
				Str("receipt_id", items[i].ReceiptID.String()).
				Str("product", items[i].Product).
				Msg("failed to create receipt item")
			return fmt.Errorf("failed to create receipt item: %w", err)
		}
	}

	r.logger.Debug().
		Int("count", len(items)).
		Msg("receipt items created successfully")

	return nil
}

// GetByID retrieves a receipt by its ID along with its items.
func (r *receiptRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Receipt, []model.ReceiptItem, error) {
	// Retrieve receipt
	receiptQuery := `
		SELECT id, items, total, currency, created_at
		FROM receipts
		WHERE id = $1
	`

	var receipt model.Receipt
	err := r.pool.QueryRow(ctx, receiptQuery, id).Scan(
		&receipt.ID,
		&receipt.Items,
		&receipt.Total,
		&receipt.Currency,
		&receipt.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("receipt_id", id.String()).Msg("receipt not found")
			return nil, nil, nil
		}
		r.logger.Error().Err(err).Str("receipt_id", id.String()).Msg("failed to query receipt")
		return nil, nil, fmt.Errorf("failed to query receipt: %w", err)
	}

	// Retrieve receipt items
	itemsQuery := `
		SELECT id, receipt_id, product, quantity
		FROM receipt_items
		WHERE receipt_id = $1
		ORDER BY product
	`

	rows, err := r.pool.Query(ctx, itemsQuery, id)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("receipt_id", id.String()).
			Msg("failed to query receipt items")
		return nil, nil, fmt.Errorf("failed to query receipt items: %w", err)
	}
	defer rows.Close()

	var items []model.ReceiptItem
	for rows.Next() {
		var item model.ReceiptItem
		err := rows.Scan(&item.ID, &item.ReceiptID, &item.Product, &item.Quantity)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan receipt item row")
			return nil, nil, fmt.Errorf("failed to scan receipt item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating receipt item rows")
		return nil, nil, fmt.Errorf("error iterating receipt items: %w", err)
	}

	return &receipt, items, nil
}
