package pricing

import (
	"mini-market/internal/model"

	"github.com/rs/zerolog"
)

// till implements Market by tallying the scanned items once and summing
// each rule's contribution over the tally.
type till struct {
	rules  []Rule
	logger zerolog.Logger
	// No mutex needed - rules are read-only after construction
}

// NewTill creates a new market till from an ordered set of pricing rules.
// At most one rule may target a given product code; a second rule for the
// same code would charge it twice, so construction rejects duplicates.
// The returned till is reusable across checkouts and safe for concurrent use.
func NewTill(rules []Rule, logger zerolog.Logger) (Market, error) {
	logger = logger.With().Str("component", "till").Logger()

	seen := make(map[rune]bool, len(rules))
	for _, rule := range rules {
		if rule == nil {
			return nil, model.ErrNilRule
		}

		if seen[rule.Product()] {
			logger.Error().
				Str("product", string(rule.Product())).
				Msg("duplicate pricing rule for product")
			return nil, model.ErrDuplicateRule
		}
		seen[rule.Product()] = true
	}

	t := &till{
		rules:  make([]Rule, len(rules)),
		logger: logger,
	}
	copy(t.rules, rules)

	logger.Info().
		Int("rule_count", len(t.rules)).
		Msg("till initialised")

	return t, nil
}

// Checkout prices a sequence of single-character product codes.
// Counting makes the total independent of the order the codes appear in;
// codes without a matching rule contribute nothing.
func (t *till) Checkout(items string) Money {
	counts := CountItems(items)

	var total Money
	for _, rule := range t.rules {
		total += rule.Price(counts)
	}

	t.logger.Debug().
		Str("items", items).
		Int("distinct_codes", len(counts)).
		Int64("total", total).
		Msg("checkout priced")

	return total
}
