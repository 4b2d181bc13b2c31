package pricing

import (
	"mini-market/internal/model"
)

// bundlePrice prices a product in bundles of a fixed size, charging
// leftovers that do not fill a bundle at the lone unit cost.
type bundlePrice struct {
	product    rune
	loneCost   Money
	bundleSize int
	bundleCost Money
}

// NewBundlePrice creates a rule charging bundleCost for each full group of
// bundleSize occurrences of product, and loneCost for each leftover unit.
// A bundle size of one degenerates to flat pricing at bundleCost.
func NewBundlePrice(product rune, loneCost Money, bundleSize int, bundleCost Money) (Rule, error) {
	if bundleSize <= 0 {
		return nil, model.ErrInvalidBundleSize
	}

	if loneCost < 0 || bundleCost < 0 {
		return nil, model.ErrNegativeCost
	}

	return &bundlePrice{
		product:    product,
		loneCost:   loneCost,
		bundleSize: bundleSize,
		bundleCost: bundleCost,
	}, nil
}

// Product returns the product code this rule prices.
func (r *bundlePrice) Product() rune {
	return r.product
}

// Price returns the bundle cost for each full bundle plus the lone cost
// for each leftover unit of the product.
func (r *bundlePrice) Price(counts map[rune]int) Money {
	count := counts[r.product]
	bundles := count / r.bundleSize
	leftovers := count % r.bundleSize

	return Money(bundles)*r.bundleCost + Money(leftovers)*r.loneCost
}
