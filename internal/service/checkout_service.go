package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"mini-market/internal/model"
	"mini-market/internal/pricing"
	"mini-market/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// checkoutService implements CheckoutService.
type checkoutService struct {
	market      pricing.Market
	receiptRepo repository.ReceiptRepository
	currency    string
	logger      zerolog.Logger
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(
	market pricing.Market,
	receiptRepo repository.ReceiptRepository,
	currency string,
	logger zerolog.Logger,
) CheckoutService {
	return &checkoutService{
		market:      market,
		receiptRepo: receiptRepo,
		currency:    currency,
		logger:      logger.With().Str("service", "checkout").Logger(),
	}
}

// Checkout prices a scanned item sequence and records a receipt.
// A request without an items field is rejected; an empty sequence is a
// valid checkout that totals zero.
func (s *checkoutService) Checkout(ctx context.Context, req *model.CheckoutRequest) (*model.CheckoutResponse, error) {
	if req == nil || req.Items == nil {
		s.logger.Warn().Msg("checkout request without items")
		return nil, model.ErrMissingItems
	}

	items := *req.Items
	total := s.market.Checkout(items)

	// Start transaction
	tx, err := s.receiptRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to record receipt: %w", err)
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	// Create receipt
	receipt := &model.Receipt{
		ID:        uuid.New(),
		Items:     items,
		Total:     total,
		Currency:  s.currency,
		CreatedAt: time.Now(),
	}

	if err = s.receiptRepo.CreateReceipt(ctx, tx, receipt); err != nil {
		s.logger.Error().Err(err).Str("receipt_id", receipt.ID.String()).Msg("failed to create receipt")
		return nil, fmt.Errorf("failed to record receipt: %w", err)
	}

	// Create receipt line items
	receiptItems := tallyReceiptItems(receipt.ID, items)

	if err = s.receiptRepo.CreateReceiptItems(ctx, tx, receiptItems); err != nil {
		s.logger.Error().
			Err(err).
			Str("receipt_id", receipt.ID.String()).
			Int("item_count", len(receiptItems)).
			Msg("failed to create receipt items")
		return nil, fmt.Errorf("failed to record receipt items: %w", err)
	}

	// Commit transaction
	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("receipt_id", receipt.ID.String()).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to record receipt: %w", err)
	}

	s.logger.Info().
		Str("receipt_id", receipt.ID.String()).
		Int("item_count", len(receiptItems)).
		Int64("total", total).
		Msg("checkout recorded successfully")

	return &model.CheckoutResponse{
		ID:        receipt.ID,
		Items:     receiptItems,
		Total:     receipt.Total,
		Currency:  receipt.Currency,
		CreatedAt: receipt.CreatedAt,
	}, nil
}

// GetReceipt retrieves a recorded receipt by its ID with all line items.
func (s *checkoutService) GetReceipt(ctx context.Context, id uuid.UUID) (*model.CheckoutResponse, error) {
	receipt, items, err := s.receiptRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("receipt_id", id.String()).Msg("failed to get receipt")
		return nil, fmt.Errorf("failed to get receipt: %w", err)
	}

	if receipt == nil {
		s.logger.Debug().Str("receipt_id", id.String()).Msg("receipt not found")
		return nil, nil
	}

	return &model.CheckoutResponse{
		ID:        receipt.ID,
		Items:     items,
		Total:     receipt.Total,
		Currency:  receipt.Currency,
		CreatedAt: receipt.CreatedAt,
	}, nil
}

// tallyReceiptItems folds the scanned sequence into one line per product
// code, ordered by code so repeated checkouts persist identically.
func tallyReceiptItems(receiptID uuid.UUID, items string) []model.ReceiptItem {
	counts := pricing.CountItems(items)

	codes := make([]rune, 0, len(counts))
	for code := range counts {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })

	receiptItems := make([]model.ReceiptItem, 0, len(codes))
	for _, code := range codes {
		receiptItems = append(receiptItems, model.ReceiptItem{
			ID:        uuid.New(),
			ReceiptID: receiptID,
			Product:   string(code),
			Quantity:  counts[code],
		})
	}

	return receiptItems
}
