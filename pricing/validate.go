package pricing

import (
	"fmt"
	"strings"

	"goflare.io/storefront/models"
)

// Violations is the full list of invariants a candidate plan breaks. It is
// an error so services can return it directly; handlers unpack the list for
// inline display.
type Violations []string

func (v Violations) Error() string {
	return "invalid plan: " + strings.Join(v, "; ")
}

// Validate checks a candidate plan against every structural invariant and
// returns nil or the complete list of violations. It runs both before a plan
// is submitted and defensively on plans fetched from the platform, which is
// not a fully trusted collaborator.
func Validate(p *models.PricingPlan) error {
	var v Violations

	if p.Name == "" {
		v = append(v, "plan name is required")
	}
	if !p.Type.Valid() {
		v = append(v, fmt.Sprintf("unknown pricing type %q", p.Type))
	}

	if active := p.ActiveConfigType(); active == "" {
		v = append(v, "exactly one pricing config must be set")
	} else if p.Type.Valid() && active != p.Type {
		v = append(v, fmt.Sprintf("config %q does not match declared type %q", active, p.Type))
	}

	switch {
	case p.OneTimeConfig != nil:
		v = append(v, validateOneTime(p.OneTimeConfig)...)
	case p.SubscriptionConfig != nil:
		v = append(v, validateSubscription(p.SubscriptionConfig)...)
	case p.SplitConfig != nil:
		v = append(v, validateSplit(p.SplitConfig)...)
	case p.TieredConfig != nil:
		v = append(v, validateTiers(p.TieredConfig)...)
	case p.DonationConfig != nil:
		v = append(v, validateDonation(p.DonationConfig)...)
	case p.BundleConfig != nil:
		v = append(v, validateBundle(p.BundleConfig)...)
	}

	v = append(v, validateOverlays(p)...)

	if len(v) == 0 {
		return nil
	}
	return v
}

func validateOneTime(c *models.OneTimeConfig) Violations {
	var v Violations
	if c.Price < 0 {
		v = append(v, "one-time price must not be negative")
	}
	if c.OriginalPrice != 0 && c.OriginalPrice < c.Price {
		v = append(v, "original price must be at least the price")
	}
	return v
}

func validateSubscription(c *models.SubscriptionConfig) Violations {
	var v Violations
	if c.Price < 0 {
		v = append(v, "subscription price must not be negative")
	}
	if c.OriginalPrice != 0 && c.OriginalPrice < c.Price {
		v = append(v, "original price must be at least the price")
	}
	if c.SetupFee < 0 {
		v = append(v, "setup fee must not be negative")
	}
	if !c.Interval.Valid() {
		v = append(v, fmt.Sprintf("unknown billing interval %q", c.Interval))
	}
	if c.TrialDays < 0 {
		v = append(v, "trial days must not be negative")
	}
	return v
}

func validateSplit(c *models.SplitConfig) Violations {
	var v Violations
	if c.TotalAmount <= 0 {
		v = append(v, "split total amount must be positive")
	}
	if c.OriginalPrice != 0 && c.OriginalPrice < c.TotalAmount {
		v = append(v, "original price must be at least the total amount")
	}
	if c.InstallmentCount < 2 {
		v = append(v, "installment count must be at least 2")
	}
	if !c.Interval.Valid() {
		v = append(v, fmt.Sprintf("unknown billing interval %q", c.Interval))
	}
	if c.UpfrontPayment < 0 {
		v = append(v, "upfront payment must not be negative")
	}
	if c.UpfrontPayment >= c.TotalAmount && c.TotalAmount > 0 {
		v = append(v, "upfront payment must be less than the total amount")
	}
	if c.InstallmentCount > 0 && c.InstallmentAmount() < 0 {
		v = append(v, "installment amount must not be negative")
	}
	return v
}

// validateTiers requires tiers ascending by min_qty, contiguous and
// non-overlapping, with an unbounded tier only in last position.
func validateTiers(c *models.TieredConfig) Violations {
	var v Violations
	if len(c.Tiers) == 0 {
		return Violations{"tiered plan needs at least one tier"}
	}

	for i, tier := range c.Tiers {
		if tier.UnitPrice < 0 {
			v = append(v, fmt.Sprintf("tier %d: unit price must not be negative", i))
		}
		if tier.MinQty < 0 {
			v = append(v, fmt.Sprintf("tier %d: min quantity must not be negative", i))
		}
		if tier.MaxQty != -1 && tier.MaxQty < tier.MinQty {
			v = append(v, fmt.Sprintf("tier %d: max quantity below min quantity", i))
		}
		if tier.MaxQty == -1 && i != len(c.Tiers)-1 {
			v = append(v, fmt.Sprintf("tier %d: unbounded tier must be last", i))
		}
		if i > 0 {
			prev := c.Tiers[i-1]
			if tier.MinQty <= prev.MinQty {
				v = append(v, fmt.Sprintf("tier %d: tiers must ascend by min quantity", i))
			} else if prev.MaxQty != -1 && tier.MinQty != prev.MaxQty+1 {
				v = append(v, fmt.Sprintf("tier %d: quantity ranges must be contiguous", i))
			}
		}
	}
	return v
}

func validateDonation(c *models.DonationConfig) Violations {
	var v Violations
	if c.MinAmount < 0 {
		v = append(v, "minimum donation amount must not be negative")
	}
	if c.SuggestedAmount != 0 && c.SuggestedAmount < c.MinAmount {
		v = append(v, "suggested amount must be at least the minimum")
	}
	return v
}

func validateBundle(c *models.BundleConfig) Violations {
	var v Violations
	if c.Price < 0 {
		v = append(v, "bundle price must not be negative")
	}
	if c.OriginalPrice != 0 && c.OriginalPrice < c.Price {
		v = append(v, "original price must be at least the price")
	}
	if len(c.IncludedProductIDs) == 0 {
		v = append(v, "bundle must include at least one product")
	}
	return v
}

func validateOverlays(p *models.PricingPlan) Violations {
	var v Violations
	if c := p.LimitedSell; c != nil {
		if c.MaxQuantity <= 0 {
			v = append(v, "limited sell max quantity must be positive")
		}
		if c.SoldCount > c.MaxQuantity {
			v = append(v, "sold count exceeds max quantity")
		}
	}
	if c := p.EarlyBird; c != nil {
		if c.DiscountAmount <= 0 {
			v = append(v, "early bird discount must be positive")
		}
		if c.Deadline.IsZero() {
			v = append(v, "early bird deadline is required")
		}
	}
	if c := p.AccessDuration; c != nil && c.DurationDays <= 0 {
		v = append(v, "access duration days must be positive")
	}
	if c := p.UpsellConfig; c != nil && len(c.UpsellProductIDs) == 0 {
		v = append(v, "upsell config must list at least one product")
	}
	return v
}
