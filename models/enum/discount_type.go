package enum

// DiscountType distinguishes fixed-amount from percentage coupons.
type DiscountType string

const (
	DiscountTypeFixed   DiscountType = "fixed"
	DiscountTypePercent DiscountType = "percent"
)
