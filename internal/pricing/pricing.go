package pricing

import (
	"context"

	"mini-market/internal/model"
)

// Money is an integral amount in minor currency units.
type Money = int64

// Rule defines the interface for pricing all occurrences of one product code.
type Rule interface {
	// Product returns the single-character product code this rule prices.
	Product() rune

	// Price returns the sub-total for this rule's product given the tallied
	// item counts. A code absent from the tally costs nothing.
	Price(counts map[rune]int) Money
}

// Market defines the interface for pricing a sequence of scanned items.
type Market interface {
	// Checkout prices a sequence of single-character product codes and
	// returns the total. Codes no rule prices cost nothing, and an empty
	// sequence totals zero.
	Checkout(items string) Money
}

// Loader defines the interface for loading rule catalog documents.
type Loader interface {
	// Load reads a rule catalog and returns the decoded document.
	Load(ctx context.Context, path string) (*model.RuleCatalog, error)
}
