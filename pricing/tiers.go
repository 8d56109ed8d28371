package pricing

import (
	"errors"

	"goflare.io/storefront/models"
)

// ErrUnpricedQuantity means no tier covers the requested quantity. Callers
// must fail the resolution; defaulting to a tier is never allowed.
var ErrUnpricedQuantity = errors.New("no tier prices the requested quantity")

// ResolveTier scans tiers in ascending min-quantity order and returns the
// first whose range contains q. MaxQty == -1 is treated as unbounded.
func ResolveTier(cfg *models.TieredConfig, q int) (models.TierItem, error) {
	if cfg == nil {
		return models.TierItem{}, ErrUnpricedQuantity
	}
	for _, tier := range cfg.Tiers {
		if tier.Contains(q) {
			return tier, nil
		}
	}
	return models.TierItem{}, ErrUnpricedQuantity
}

// MinUnitPrice is the lowest unit price across all tiers, used for the
// "From" headline. ok is false for an empty tier list.
func MinUnitPrice(cfg *models.TieredConfig) (float64, bool) {
	if cfg == nil || len(cfg.Tiers) == 0 {
		return 0, false
	}
	minPrice := cfg.Tiers[0].UnitPrice
	for _, tier := range cfg.Tiers[1:] {
		if tier.UnitPrice < minPrice {
			minPrice = tier.UnitPrice
		}
	}
	return minPrice, true
}
