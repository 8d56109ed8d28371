package authoring

import (
	"goflare.io/storefront/models"
	"goflare.io/storefront/models/enum"
	"goflare.io/storefront/pricing"
)

// Draft is a plan under construction. Every per-type config the user has
// touched is retained, so switching the plan type back and forth loses no
// work; only the config matching the active type makes it into the
// assembled payload.
type Draft struct {
	ID           string
	ProductID    string
	Name         string
	Description  string
	Values       []string
	IsActive     bool
	AllowCoupons bool

	activeType enum.PricingType

	oneTime      *models.OneTimeConfig
	subscription *models.SubscriptionConfig
	split        *models.SplitConfig
	tiered       *models.TieredConfig
	donation     *models.DonationConfig
	bundle       *models.BundleConfig

	LimitedSell    *models.LimitedSellConfig
	EarlyBird      *models.EarlyBirdConfig
	AccessDuration *models.AccessConfig
	Upsell         *models.UpsellConfig
}

// NewDraft starts an empty draft of the given type.
func NewDraft(t enum.PricingType) *Draft {
	return &Draft{activeType: t, IsActive: true}
}

// FromPlan loads an existing plan into a draft for editing.
func FromPlan(p *models.PricingPlan) *Draft {
	return &Draft{
		ID:             p.ID,
		ProductID:      p.ProductID,
		Name:           p.Name,
		Description:    p.Description,
		Values:         append([]string(nil), p.Values...),
		IsActive:       p.IsActive,
		AllowCoupons:   p.AllowCoupons,
		activeType:     p.Type,
		oneTime:        p.OneTimeConfig,
		subscription:   p.SubscriptionConfig,
		split:          p.SplitConfig,
		tiered:         p.TieredConfig,
		donation:       p.DonationConfig,
		bundle:         p.BundleConfig,
		LimitedSell:    p.LimitedSell,
		EarlyBird:      p.EarlyBird,
		AccessDuration: p.AccessDuration,
		Upsell:         p.UpsellConfig,
	}
}

// Type returns the active plan type.
func (d *Draft) Type() enum.PricingType {
	return d.activeType
}

// SetType switches the active configuration editor. Configs entered for
// other types stay in memory.
func (d *Draft) SetType(t enum.PricingType) {
	d.activeType = t
}

func (d *Draft) SetOneTime(c models.OneTimeConfig)           { d.oneTime = &c }
func (d *Draft) SetSubscription(c models.SubscriptionConfig) { d.subscription = &c }
func (d *Draft) SetSplit(c models.SplitConfig)               { d.split = &c }
func (d *Draft) SetTiered(c models.TieredConfig)             { d.tiered = &c }
func (d *Draft) SetDonation(c models.DonationConfig)         { d.donation = &c }
func (d *Draft) SetBundle(c models.BundleConfig)             { d.bundle = &c }

// Assemble builds the submission payload, carrying only the config that
// matches the active type.
func (d *Draft) Assemble() *models.PricingPlan {
	plan := &models.PricingPlan{
		ID:             d.ID,
		ProductID:      d.ProductID,
		Name:           d.Name,
		Description:    d.Description,
		Type:           d.activeType,
		Values:         d.Values,
		IsActive:       d.IsActive,
		AllowCoupons:   d.AllowCoupons,
		LimitedSell:    d.LimitedSell,
		EarlyBird:      d.EarlyBird,
		AccessDuration: d.AccessDuration,
		UpsellConfig:   d.Upsell,
	}

	switch d.activeType {
	case enum.PricingTypeOneTime:
		plan.OneTimeConfig = d.oneTime
	case enum.PricingTypeSubscription:
		plan.SubscriptionConfig = d.subscription
	case enum.PricingTypeSplit:
		plan.SplitConfig = d.split
	case enum.PricingTypeTiered:
		plan.TieredConfig = d.tiered
	case enum.PricingTypeDonation:
		plan.DonationConfig = d.donation
	case enum.PricingTypeBundle:
		plan.BundleConfig = d.bundle
	}
	return plan
}

// Preview is the live headline price for the current draft state, computed
// by the same rule the checkout summary uses.
func (d *Draft) Preview() pricing.Headline {
	return pricing.HeadlineFor(d.Assemble())
}

// Validate runs the plan invariants against the assembled payload.
func (d *Draft) Validate() error {
	return pricing.Validate(d.Assemble())
}
