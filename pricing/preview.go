package pricing

import (
	"strconv"

	"goflare.io/storefront/models"
	"goflare.io/storefront/models/enum"
)

// Headline is the displayed price summary for a plan card. Original is the
// struck-through reference price, zero when none applies. The same rule
// feeds the authoring live preview and the checkout summary.
type Headline struct {
	Text     string
	Original float64
}

// HeadlineFor formats the headline price per plan type:
// one-time/subscription/bundle show the price, split shows the total,
// tiered shows "From" the cheapest unit price, donation shows "Min".
func HeadlineFor(p *models.PricingPlan) Headline {
	switch p.Type {
	case enum.PricingTypeOneTime:
		if c := p.OneTimeConfig; c != nil {
			return Headline{Text: FormatAmount(c.Price), Original: strickenOriginal(c.OriginalPrice, c.Price)}
		}
	case enum.PricingTypeSubscription:
		if c := p.SubscriptionConfig; c != nil {
			return Headline{
				Text:     FormatAmount(c.Price) + " / " + string(c.Interval),
				Original: strickenOriginal(c.OriginalPrice, c.Price),
			}
		}
	case enum.PricingTypeBundle:
		if c := p.BundleConfig; c != nil {
			return Headline{Text: FormatAmount(c.Price), Original: strickenOriginal(c.OriginalPrice, c.Price)}
		}
	case enum.PricingTypeSplit:
		if c := p.SplitConfig; c != nil {
			return Headline{Text: FormatAmount(c.TotalAmount), Original: strickenOriginal(c.OriginalPrice, c.TotalAmount)}
		}
	case enum.PricingTypeTiered:
		if minPrice, ok := MinUnitPrice(p.TieredConfig); ok {
			return Headline{Text: "From " + FormatAmount(minPrice)}
		}
	case enum.PricingTypeDonation:
		if c := p.DonationConfig; c != nil {
			return Headline{Text: "Min " + FormatAmount(c.MinAmount)}
		}
	}
	return Headline{}
}

// FormatAmount renders a dollar amount without trailing zeros: 5 -> "$5",
// 9.5 -> "$9.5".
func FormatAmount(amount float64) string {
	return "$" + strconv.FormatFloat(amount, 'f', -1, 64)
}

func strickenOriginal(original, price float64) float64 {
	if original > price {
		return original
	}
	return 0
}
