package models

import (
	"time"

	"goflare.io/storefront/models/enum"
)

// Coupon 代表折扣碼
// Coupon grants a fixed or percentage discount, bounded by usage count and
// expiry. Code is stored upper-cased. MaxUses == 0 means unlimited.
type Coupon struct {
	ID                string            `json:"id,omitempty"`
	Code              string            `json:"code"`
	DiscountType      enum.DiscountType `json:"discount_type"`
	DiscountAmount    float64           `json:"discount_amount"`
	ApplicablePlanIDs []string          `json:"applicable_plan_ids,omitempty"`
	MaxUses           int               `json:"max_uses"`
	UsedCount         int               `json:"used_count"`
	ExpiryDate        *time.Time        `json:"expiry_date,omitempty"`
	IsActive          bool              `json:"is_active"`
	CreatedAt         time.Time         `json:"created_at,omitempty"`
}

// Discount computes the discount against a base amount, clamped to the base.
func (c *Coupon) Discount(base float64) float64 {
	var discount float64
	if c.DiscountType == enum.DiscountTypeFixed {
		discount = c.DiscountAmount
	} else {
		discount = base * c.DiscountAmount / 100
	}
	if discount > base {
		discount = base
	}
	return discount
}

// Exhausted reports whether the coupon has hit its usage cap.
func (c *Coupon) Exhausted() bool {
	return c.MaxUses > 0 && c.UsedCount >= c.MaxUses
}

// ExpiredAt reports whether the coupon's expiry has passed.
func (c *Coupon) ExpiredAt(now time.Time) bool {
	return c.ExpiryDate != nil && c.ExpiryDate.Before(now)
}
