package pricing

import (
	"mini-market/internal/model"
)

// flatPrice prices every unit of a product at the same cost.
type flatPrice struct {
	product  rune
	unitCost Money
}

// NewFlatPrice creates a rule charging unitCost for each occurrence of product.
func NewFlatPrice(product rune, unitCost Money) (Rule, error) {
	if unitCost < 0 {
		return nil, model.ErrNegativeCost
	}

	return &flatPrice{
		product:  product,
		unitCost: unitCost,
	}, nil
}

// Product returns the product code this rule prices.
func (r *flatPrice) Product() rune {
	return r.product
}

// Price returns the unit cost times the tallied count of the product.
func (r *flatPrice) Price(counts map[rune]int) Money {
	return r.unitCost * Money(counts[r.product])
}
