package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"goflare.io/storefront/models"
	"goflare.io/storefront/models/enum"
)

func TestHeadlineDonation(t *testing.T) {
	plan := &models.PricingPlan{
		Type:           enum.PricingTypeDonation,
		DonationConfig: &models.DonationConfig{MinAmount: 5, Currency: "usd"},
	}
	assert.Equal(t, "Min $5", HeadlineFor(plan).Text)
}

func TestHeadlineTieredUsesCheapestTier(t *testing.T) {
	plan := &models.PricingPlan{
		Type: enum.PricingTypeTiered,
		TieredConfig: &models.TieredConfig{
			Tiers: []models.TierItem{
				{MinQty: 1, MaxQty: 10, UnitPrice: 10},
				{MinQty: 11, MaxQty: -1, UnitPrice: 8},
			},
		},
	}
	assert.Equal(t, "From $8", HeadlineFor(plan).Text)
}

func TestHeadlineOneTimeWithOriginalPrice(t *testing.T) {
	plan := &models.PricingPlan{
		Type: enum.PricingTypeOneTime,
		OneTimeConfig: &models.OneTimeConfig{
			Price:         49,
			OriginalPrice: 99,
			Currency:      "usd",
		},
	}

	h := HeadlineFor(plan)
	assert.Equal(t, "$49", h.Text)
	assert.Equal(t, 99.0, h.Original)

	// Original at or below price is not shown struck through.
	plan.OneTimeConfig.OriginalPrice = 49
	assert.Zero(t, HeadlineFor(plan).Original)
}

func TestHeadlineSubscriptionShowsInterval(t *testing.T) {
	plan := &models.PricingPlan{
		Type: enum.PricingTypeSubscription,
		SubscriptionConfig: &models.SubscriptionConfig{
			Price:    9.5,
			Currency: "usd",
			Interval: enum.IntervalMonth,
		},
	}
	assert.Equal(t, "$9.5 / month", HeadlineFor(plan).Text)
}

func TestHeadlineSplitShowsTotal(t *testing.T) {
	plan := &models.PricingPlan{
		Type: enum.PricingTypeSplit,
		SplitConfig: &models.SplitConfig{
			TotalAmount:      100,
			Currency:         "usd",
			InstallmentCount: 4,
			Interval:         enum.IntervalMonth,
		},
	}
	assert.Equal(t, "$100", HeadlineFor(plan).Text)
}
