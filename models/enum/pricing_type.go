package enum

// PricingType tags the active configuration of a PricingPlan.
type PricingType string

const (
	PricingTypeOneTime      PricingType = "one_time"
	PricingTypeSubscription PricingType = "subscription"
	PricingTypeSplit        PricingType = "split"
	PricingTypeTiered       PricingType = "tiered"
	PricingTypeDonation     PricingType = "donation"
	PricingTypeBundle       PricingType = "bundle"
)

func (t PricingType) Valid() bool {
	switch t {
	case PricingTypeOneTime, PricingTypeSubscription, PricingTypeSplit,
		PricingTypeTiered, PricingTypeDonation, PricingTypeBundle:
		return true
	}
	return false
}
