package models

import (
	"time"

	"github.com/stripe/stripe-go/v79"

	"goflare.io/storefront/models/enum"
)

// PricingPlan 代表產品的定價方案
// PricingPlan is a purchasable pricing configuration attached to a product.
// Exactly one of the *Config fields is populated, selected by Type.
type PricingPlan struct {
	ID           string           `json:"id,omitempty"`
	ProductID    string           `json:"product_id"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Type         enum.PricingType `json:"type"`
	Values       []string         `json:"values"`
	IsActive     bool             `json:"is_active"`
	AllowCoupons bool             `json:"allow_coupons"`
	CreatedAt    time.Time        `json:"created_at,omitempty"`

	OneTimeConfig      *OneTimeConfig      `json:"one_time_config,omitempty"`
	SubscriptionConfig *SubscriptionConfig `json:"subscription_config,omitempty"`
	SplitConfig        *SplitConfig        `json:"split_config,omitempty"`
	TieredConfig       *TieredConfig       `json:"tiered_config,omitempty"`
	DonationConfig     *DonationConfig     `json:"donation_config,omitempty"`
	BundleConfig       *BundleConfig       `json:"bundle_config,omitempty"`

	// Constraint overlays, independent of Type.
	LimitedSell    *LimitedSellConfig `json:"limited_sell,omitempty"`
	EarlyBird      *EarlyBirdConfig   `json:"early_bird,omitempty"`
	AccessDuration *AccessConfig      `json:"access_duration,omitempty"`
	UpsellConfig   *UpsellConfig      `json:"upsell_config,omitempty"`
}

func NewPricingPlan() *PricingPlan {
	return &PricingPlan{}
}

type OneTimeConfig struct {
	Price         float64         `json:"price"`
	OriginalPrice float64         `json:"original_price,omitempty"`
	Currency      stripe.Currency `json:"currency"`
}

type SubscriptionConfig struct {
	Price             float64         `json:"price"`
	OriginalPrice     float64         `json:"original_price,omitempty"`
	SetupFee          float64         `json:"setup_fee,omitempty"`
	Currency          stripe.Currency `json:"currency"`
	Interval          enum.Interval   `json:"interval"`
	TrialDays         int             `json:"trial_days,omitempty"`
	TrialRequiresCard bool            `json:"trial_requires_card,omitempty"`
}

type SplitConfig struct {
	TotalAmount      float64         `json:"total_amount"`
	OriginalPrice    float64         `json:"original_price,omitempty"`
	Currency         stripe.Currency `json:"currency"`
	InstallmentCount int             `json:"installment_count"`
	Interval         enum.Interval   `json:"interval"`
	UpfrontPayment   float64         `json:"upfront_payment,omitempty"`
}

// InstallmentAmount is the per-cycle charge after the upfront payment.
func (c *SplitConfig) InstallmentAmount() float64 {
	if c.InstallmentCount <= 0 {
		return 0
	}
	return (c.TotalAmount - c.UpfrontPayment) / float64(c.InstallmentCount)
}

// TierItem is a quantity range with its own unit price. MaxQty == -1 means
// the range is unbounded above.
type TierItem struct {
	Name      string  `json:"name"`
	MinQty    int     `json:"min_qty"`
	MaxQty    int     `json:"max_qty"`
	UnitPrice float64 `json:"unit_price"`
}

// Contains reports whether quantity q falls inside the tier's range.
func (t TierItem) Contains(q int) bool {
	if q < t.MinQty {
		return false
	}
	return t.MaxQty == -1 || q <= t.MaxQty
}

type TieredConfig struct {
	Tiers []TierItem `json:"tiers"`
}

type DonationConfig struct {
	MinAmount       float64         `json:"min_amount"`
	SuggestedAmount float64         `json:"suggested_amount,omitempty"`
	Currency        stripe.Currency `json:"currency"`
}

type BundleConfig struct {
	Price              float64  `json:"price"`
	OriginalPrice      float64  `json:"original_price,omitempty"`
	IncludedProductIDs []string `json:"included_product_ids"`
}

type LimitedSellConfig struct {
	MaxQuantity int `json:"max_quantity"`
	SoldCount   int `json:"sold_count"`
}

// Remaining is how many units can still be sold.
func (c *LimitedSellConfig) Remaining() int {
	if c.SoldCount >= c.MaxQuantity {
		return 0
	}
	return c.MaxQuantity - c.SoldCount
}

type EarlyBirdConfig struct {
	DiscountAmount float64   `json:"discount_amount"`
	Deadline       time.Time `json:"deadline"`
}

// ActiveAt reports whether the early-bird window is still open.
func (c *EarlyBirdConfig) ActiveAt(now time.Time) bool {
	return now.Before(c.Deadline)
}

// AccessConfig bounds how long a buyer keeps access. Absence on the plan
// means lifetime access.
type AccessConfig struct {
	DurationDays int `json:"duration_days"`
}

type UpsellConfig struct {
	UpsellProductIDs []string `json:"upsell_product_ids"`
}

// ActiveConfigType returns the tag of the single populated config, or an
// empty string when zero or more than one config is set.
func (p *PricingPlan) ActiveConfigType() enum.PricingType {
	var found enum.PricingType
	count := 0
	if p.OneTimeConfig != nil {
		found = enum.PricingTypeOneTime
		count++
	}
	if p.SubscriptionConfig != nil {
		found = enum.PricingTypeSubscription
		count++
	}
	if p.SplitConfig != nil {
		found = enum.PricingTypeSplit
		count++
	}
	if p.TieredConfig != nil {
		found = enum.PricingTypeTiered
		count++
	}
	if p.DonationConfig != nil {
		found = enum.PricingTypeDonation
		count++
	}
	if p.BundleConfig != nil {
		found = enum.PricingTypeBundle
		count++
	}
	if count != 1 {
		return ""
	}
	return found
}

// Currency returns the plan's billing currency; bundle and tiered plans have
// no explicit currency field and default to USD.
func (p *PricingPlan) PlanCurrency() stripe.Currency {
	switch p.Type {
	case enum.PricingTypeOneTime:
		if p.OneTimeConfig != nil {
			return p.OneTimeConfig.Currency
		}
	case enum.PricingTypeSubscription:
		if p.SubscriptionConfig != nil {
			return p.SubscriptionConfig.Currency
		}
	case enum.PricingTypeSplit:
		if p.SplitConfig != nil {
			return p.SplitConfig.Currency
		}
	case enum.PricingTypeDonation:
		if p.DonationConfig != nil {
			return p.DonationConfig.Currency
		}
	}
	return stripe.CurrencyUSD
}
