package pricing

import (
	"errors"
	"time"

	"goflare.io/storefront/models"
	"goflare.io/storefront/models/enum"
)

var (
	// ErrDonationBelowMinimum rejects a donation input locally, before any
	// network call.
	ErrDonationBelowMinimum = errors.New("donation amount below minimum")
	// ErrSoldOut means the plan's limited-sell quota is exhausted.
	ErrSoldOut = errors.New("plan is sold out")
	// ErrUnsupportedType means the plan type has no chargeable amount here.
	ErrUnsupportedType = errors.New("unsupported plan type")
)

// CheckoutInput carries the type-specific parameters a buyer supplies:
// Amount for donation plans, Quantity for tiered plans.
type CheckoutInput struct {
	Amount   float64
	Quantity int
}

// ResolveAmount derives the charge amount for a plan at checkout time,
// before any coupon discount. Split plans charge the upfront payment when
// one is set, otherwise the first installment. The early-bird discount is
// applied while its deadline has not passed.
func ResolveAmount(p *models.PricingPlan, input CheckoutInput, now time.Time) (float64, error) {
	if ls := p.LimitedSell; ls != nil && ls.Remaining() == 0 {
		return 0, ErrSoldOut
	}

	var amount float64
	switch p.Type {
	case enum.PricingTypeOneTime:
		if p.OneTimeConfig == nil {
			return 0, ErrUnsupportedType
		}
		amount = p.OneTimeConfig.Price
	case enum.PricingTypeSubscription:
		if p.SubscriptionConfig == nil {
			return 0, ErrUnsupportedType
		}
		amount = p.SubscriptionConfig.Price
	case enum.PricingTypeBundle:
		if p.BundleConfig == nil {
			return 0, ErrUnsupportedType
		}
		amount = p.BundleConfig.Price
	case enum.PricingTypeSplit:
		if p.SplitConfig == nil {
			return 0, ErrUnsupportedType
		}
		if p.SplitConfig.UpfrontPayment > 0 {
			amount = p.SplitConfig.UpfrontPayment
		} else {
			amount = p.SplitConfig.TotalAmount / float64(p.SplitConfig.InstallmentCount)
		}
	case enum.PricingTypeDonation:
		if p.DonationConfig == nil {
			return 0, ErrUnsupportedType
		}
		if input.Amount < p.DonationConfig.MinAmount {
			return 0, ErrDonationBelowMinimum
		}
		amount = input.Amount
	case enum.PricingTypeTiered:
		// No silent defaulting: a quantity outside every tier fails.
		tier, err := ResolveTier(p.TieredConfig, input.Quantity)
		if err != nil {
			return 0, err
		}
		amount = tier.UnitPrice * float64(input.Quantity)
	default:
		return 0, ErrUnsupportedType
	}

	if eb := p.EarlyBird; eb != nil && eb.ActiveAt(now) {
		amount -= eb.DiscountAmount
		if amount < 0 {
			amount = 0
		}
	}
	return amount, nil
}

// ApplyCoupon subtracts the coupon's discount from an already resolved
// amount, flooring at zero.
func ApplyCoupon(amount float64, coupon *models.Coupon) float64 {
	if coupon == nil {
		return amount
	}
	amount -= coupon.Discount(amount)
	if amount < 0 {
		amount = 0
	}
	return amount
}
