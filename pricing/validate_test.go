package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goflare.io/storefront/models"
	"goflare.io/storefront/models/enum"
)

func validOneTimePlan() *models.PricingPlan {
	return &models.PricingPlan{
		ProductID: "prod-1",
		Name:      "Starter",
		Type:      enum.PricingTypeOneTime,
		OneTimeConfig: &models.OneTimeConfig{
			Price:    49,
			Currency: "usd",
		},
	}
}

func TestValidateAcceptsWellFormedPlan(t *testing.T) {
	assert.NoError(t, Validate(validOneTimePlan()))
}

func TestValidateRejectsTypeConfigMismatch(t *testing.T) {
	plan := validOneTimePlan()
	plan.Type = enum.PricingTypeSubscription

	err := Validate(plan)
	require.Error(t, err)
	var v Violations
	require.ErrorAs(t, err, &v)
	assert.Contains(t, v.Error(), "does not match declared type")
}

func TestValidateRejectsZeroOrMultipleConfigs(t *testing.T) {
	plan := validOneTimePlan()
	plan.OneTimeConfig = nil
	require.Error(t, Validate(plan))

	plan = validOneTimePlan()
	plan.DonationConfig = &models.DonationConfig{MinAmount: 1, Currency: "usd"}
	err := Validate(plan)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one pricing config")
}

func TestValidateRejectsNegativePrice(t *testing.T) {
	plan := validOneTimePlan()
	plan.OneTimeConfig.Price = -1
	require.Error(t, Validate(plan))
}

func TestValidateRejectsOriginalPriceBelowPrice(t *testing.T) {
	plan := validOneTimePlan()
	plan.OneTimeConfig.OriginalPrice = 10
	err := Validate(plan)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "original price")
}

func TestValidateSplitConfig(t *testing.T) {
	plan := &models.PricingPlan{
		ProductID: "prod-1",
		Name:      "Split",
		Type:      enum.PricingTypeSplit,
		SplitConfig: &models.SplitConfig{
			TotalAmount:      100,
			Currency:         "usd",
			InstallmentCount: 4,
			Interval:         enum.IntervalMonth,
			UpfrontPayment:   20,
		},
	}
	require.NoError(t, Validate(plan))
	assert.Equal(t, 20.0, plan.SplitConfig.InstallmentAmount())

	plan.SplitConfig.InstallmentCount = 1
	require.Error(t, Validate(plan))

	plan.SplitConfig.InstallmentCount = 4
	plan.SplitConfig.UpfrontPayment = 100
	err := Validate(plan)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upfront payment")
}

func TestValidateTierInvariants(t *testing.T) {
	plan := &models.PricingPlan{
		ProductID: "prod-1",
		Name:      "Tiered",
		Type:      enum.PricingTypeTiered,
		TieredConfig: &models.TieredConfig{
			Tiers: []models.TierItem{
				{Name: "Small", MinQty: 1, MaxQty: 10, UnitPrice: 10},
				{Name: "Bulk", MinQty: 11, MaxQty: -1, UnitPrice: 8},
			},
		},
	}
	require.NoError(t, Validate(plan))

	// Overlap.
	plan.TieredConfig.Tiers[1].MinQty = 5
	require.Error(t, Validate(plan))

	// Gap.
	plan.TieredConfig.Tiers[1].MinQty = 15
	err := Validate(plan)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "contiguous")

	// Unbounded tier not last.
	plan.TieredConfig.Tiers = []models.TierItem{
		{MinQty: 1, MaxQty: -1, UnitPrice: 10},
		{MinQty: 11, MaxQty: 20, UnitPrice: 8},
	}
	require.Error(t, Validate(plan))
}

func TestValidateOverlays(t *testing.T) {
	plan := validOneTimePlan()
	plan.LimitedSell = &models.LimitedSellConfig{MaxQuantity: 10, SoldCount: 11}
	err := Validate(plan)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sold count exceeds")

	plan = validOneTimePlan()
	plan.EarlyBird = &models.EarlyBirdConfig{DiscountAmount: 5, Deadline: time.Now().Add(time.Hour)}
	plan.AccessDuration = &models.AccessConfig{DurationDays: 30}
	assert.NoError(t, Validate(plan))

	plan.AccessDuration.DurationDays = 0
	require.Error(t, Validate(plan))
}

func TestValidateCollectsAllViolations(t *testing.T) {
	plan := validOneTimePlan()
	plan.Name = ""
	plan.OneTimeConfig.Price = -5
	plan.LimitedSell = &models.LimitedSellConfig{MaxQuantity: 0}

	err := Validate(plan)
	require.Error(t, err)
	var v Violations
	require.ErrorAs(t, err, &v)
	assert.Len(t, v, 3)
}
