package checkout

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"goflare.io/storefront/apiclient"
	"goflare.io/storefront/models"
	"goflare.io/storefront/models/enum"
	"goflare.io/storefront/pricing"
)

type fakePlans struct {
	plans map[string]*models.PricingPlan
}

func (f *fakePlans) GetByID(_ context.Context, id string) (*models.PricingPlan, error) {
	plan, ok := f.plans[id]
	if !ok {
		return nil, &apiclient.APIError{Status: http.StatusNotFound, Message: "plan not found"}
	}
	return plan, nil
}

type fakeCoupons struct {
	coupon *models.Coupon
	err    error
	calls  int
}

func (f *fakeCoupons) Validate(_ context.Context, _, _ string) (*models.Coupon, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.coupon, nil
}

type fakeSessions struct {
	requests []models.CheckoutRequest
	respond  func(req models.CheckoutRequest) (*models.CheckoutSession, error)
}

func (f *fakeSessions) RequestSession(_ context.Context, req models.CheckoutRequest) (*models.CheckoutSession, error) {
	f.requests = append(f.requests, req)
	if f.respond != nil {
		return f.respond(req)
	}
	return &models.CheckoutSession{ClientSecret: "cs_live_1"}, nil
}

func oneTimePlan() *models.PricingPlan {
	return &models.PricingPlan{
		ID:           "plan-1",
		ProductID:    "prod-1",
		Name:         "Starter",
		Type:         enum.PricingTypeOneTime,
		AllowCoupons: true,
		OneTimeConfig: &models.OneTimeConfig{
			Price:    49,
			Currency: "usd",
		},
	}
}

func donationPlan() *models.PricingPlan {
	return &models.PricingPlan{
		ID:        "plan-d",
		ProductID: "prod-1",
		Name:      "Tip Jar",
		Type:      enum.PricingTypeDonation,
		DonationConfig: &models.DonationConfig{
			MinAmount: 5,
			Currency:  "usd",
		},
	}
}

func newTestResolver(plan *models.PricingPlan, coupons *fakeCoupons, sessions *fakeSessions) *Resolver {
	plans := &fakePlans{plans: map[string]*models.PricingPlan{plan.ID: plan}}
	if coupons == nil {
		coupons = &fakeCoupons{}
	}
	if sessions == nil {
		sessions = &fakeSessions{}
	}
	return NewResolver(plans, coupons, sessions, zap.NewNop())
}

func TestLoadSkipsConfigForOneTimePlan(t *testing.T) {
	sessions := &fakeSessions{}
	r := newTestResolver(oneTimePlan(), nil, sessions)

	require.NoError(t, r.Load(context.Background(), "plan-1", ""))

	assert.Equal(t, enum.CheckoutStatePayment, r.State())
	require.Len(t, sessions.requests, 1)
	assert.Equal(t, "plan-1", sessions.requests[0].PlanID)
	assert.Empty(t, sessions.requests[0].CouponCode)
	assert.Equal(t, 49.0, r.Amount())
}

func TestLoadWaitsForInputOnDonationPlan(t *testing.T) {
	sessions := &fakeSessions{}
	r := newTestResolver(donationPlan(), nil, sessions)

	require.NoError(t, r.Load(context.Background(), "plan-d", ""))

	assert.Equal(t, enum.CheckoutStateConfig, r.State())
	assert.Empty(t, sessions.requests, "no session before the buyer configures")
}

func TestConfirmRejectsDonationBelowMinimumLocally(t *testing.T) {
	sessions := &fakeSessions{}
	r := newTestResolver(donationPlan(), nil, sessions)
	require.NoError(t, r.Load(context.Background(), "plan-d", ""))

	err := r.Confirm(context.Background(), pricing.CheckoutInput{Amount: 3})
	assert.ErrorIs(t, err, pricing.ErrDonationBelowMinimum)
	assert.Empty(t, sessions.requests, "rejected before any network call")
	assert.Equal(t, enum.CheckoutStateConfig, r.State())
}

func TestConfirmDonationRequestsSessionWithAmount(t *testing.T) {
	sessions := &fakeSessions{}
	r := newTestResolver(donationPlan(), nil, sessions)
	require.NoError(t, r.Load(context.Background(), "plan-d", ""))

	require.NoError(t, r.Confirm(context.Background(), pricing.CheckoutInput{Amount: 25}))

	assert.Equal(t, enum.CheckoutStatePayment, r.State())
	require.Len(t, sessions.requests, 1)
	assert.Equal(t, 25.0, sessions.requests[0].Amount)
	assert.Equal(t, 25.0, r.Amount())
}

func TestConfirmTieredQuantityOutsideTiersFails(t *testing.T) {
	plan := &models.PricingPlan{
		ID:        "plan-t",
		ProductID: "prod-1",
		Name:      "Seats",
		Type:      enum.PricingTypeTiered,
		TieredConfig: &models.TieredConfig{
			Tiers: []models.TierItem{
				{MinQty: 1, MaxQty: 10, UnitPrice: 10},
				{MinQty: 11, MaxQty: -1, UnitPrice: 8},
			},
		},
	}
	sessions := &fakeSessions{}
	r := newTestResolver(plan, nil, sessions)
	require.NoError(t, r.Load(context.Background(), "plan-t", ""))

	err := r.Confirm(context.Background(), pricing.CheckoutInput{Quantity: 0})
	assert.ErrorIs(t, err, pricing.ErrUnpricedQuantity)
	assert.Empty(t, sessions.requests)

	require.NoError(t, r.Confirm(context.Background(), pricing.CheckoutInput{Quantity: 50}))
	require.Len(t, sessions.requests, 1)
	assert.Equal(t, 50, sessions.requests[0].Quantity)
	assert.Equal(t, 400.0, r.Amount())
}

func TestApplyCouponRejectedWhenPlanDisallowsCoupons(t *testing.T) {
	plan := oneTimePlan()
	plan.AllowCoupons = false
	coupons := &fakeCoupons{coupon: &models.Coupon{Code: "TEN"}}
	r := newTestResolver(plan, coupons, nil)
	require.NoError(t, r.Load(context.Background(), "plan-1", ""))

	err := r.ApplyCoupon(context.Background(), "TEN")
	assert.ErrorIs(t, err, ErrCouponsNotAllowed)
	assert.Zero(t, coupons.calls, "rejected before the platform is asked")
}

func TestApplyCouponDiscardsSessionAndRerequests(t *testing.T) {
	secrets := []string{"cs_first", "cs_second"}
	sessions := &fakeSessions{}
	sessions.respond = func(models.CheckoutRequest) (*models.CheckoutSession, error) {
		secret := secrets[len(sessions.requests)-1]
		return &models.CheckoutSession{ClientSecret: secret}, nil
	}
	coupons := &fakeCoupons{coupon: &models.Coupon{
		Code:           "TEN",
		DiscountType:   enum.DiscountTypeFixed,
		DiscountAmount: 10,
		IsActive:       true,
	}}
	r := newTestResolver(oneTimePlan(), coupons, sessions)
	require.NoError(t, r.Load(context.Background(), "plan-1", ""))
	require.Equal(t, "cs_first", r.Session().ClientSecret)

	require.NoError(t, r.ApplyCoupon(context.Background(), "TEN"))

	require.Len(t, sessions.requests, 2)
	assert.Equal(t, "TEN", sessions.requests[1].CouponCode)
	assert.Equal(t, "cs_second", r.Session().ClientSecret, "old session token is orphaned")
	assert.Equal(t, 39.0, r.Amount())
}

func TestRemoveCouponRerequestsWithoutCouponReference(t *testing.T) {
	sessions := &fakeSessions{}
	count := 0
	sessions.respond = func(models.CheckoutRequest) (*models.CheckoutSession, error) {
		count++
		if count == 1 {
			return &models.CheckoutSession{ClientSecret: "cs_a"}, nil
		}
		if count == 2 {
			return &models.CheckoutSession{ClientSecret: "cs_b"}, nil
		}
		return &models.CheckoutSession{ClientSecret: "cs_c"}, nil
	}
	coupons := &fakeCoupons{coupon: &models.Coupon{
		Code:           "TEN",
		DiscountType:   enum.DiscountTypeFixed,
		DiscountAmount: 10,
		IsActive:       true,
	}}
	r := newTestResolver(oneTimePlan(), coupons, sessions)
	require.NoError(t, r.Load(context.Background(), "plan-1", ""))
	require.NoError(t, r.ApplyCoupon(context.Background(), "TEN"))

	require.NoError(t, r.RemoveCoupon(context.Background()))

	require.Len(t, sessions.requests, 3)
	assert.Empty(t, sessions.requests[2].CouponCode)
	assert.Equal(t, "cs_c", r.Session().ClientSecret)
	assert.Nil(t, r.Coupon())
	assert.Equal(t, 49.0, r.Amount(), "full price restored")
}

func TestSessionAuthFailureRequiresLogin(t *testing.T) {
	sessions := &fakeSessions{}
	sessions.respond = func(models.CheckoutRequest) (*models.CheckoutSession, error) {
		return nil, &apiclient.APIError{Status: http.StatusUnauthorized, Message: "unauthorized"}
	}
	r := newTestResolver(oneTimePlan(), nil, sessions)

	err := r.Load(context.Background(), "plan-1", "")
	assert.ErrorIs(t, err, ErrLoginRequired)
}

func TestSessionFailureIsRetryableAndReturnsToConfig(t *testing.T) {
	sessions := &fakeSessions{}
	failing := true
	sessions.respond = func(models.CheckoutRequest) (*models.CheckoutSession, error) {
		if failing {
			return nil, &apiclient.APIError{Status: http.StatusBadGateway, Message: "gateway unavailable"}
		}
		return &models.CheckoutSession{ClientSecret: "cs_ok"}, nil
	}
	r := newTestResolver(oneTimePlan(), nil, sessions)

	err := r.Load(context.Background(), "plan-1", "")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrLoginRequired)
	assert.Equal(t, enum.CheckoutStateConfig, r.State())
	assert.Equal(t, "gateway unavailable", r.RetryMessage())
	assert.Nil(t, r.Session())

	failing = false
	require.NoError(t, r.Retry(context.Background()))
	assert.Equal(t, enum.CheckoutStatePayment, r.State())
	assert.Empty(t, r.RetryMessage())
}

func TestMockClientSecretCompletesCheckout(t *testing.T) {
	sessions := &fakeSessions{}
	sessions.respond = func(models.CheckoutRequest) (*models.CheckoutSession, error) {
		return &models.CheckoutSession{ClientSecret: "pi_mock_1234567890"}, nil
	}
	r := newTestResolver(oneTimePlan(), nil, sessions)

	require.NoError(t, r.Load(context.Background(), "plan-1", ""))
	assert.True(t, r.Completed(), "mock sentinel bypasses the payment widget")
}

func TestStaleSessionResponseIsDiscarded(t *testing.T) {
	r := newTestResolver(donationPlan(), nil, nil)
	sessions := &fakeSessions{}
	nested := false
	sessions.respond = func(req models.CheckoutRequest) (*models.CheckoutSession, error) {
		if !nested {
			nested = true
			// A second confirmation lands while this request is in flight.
			require.NoError(t, r.Confirm(context.Background(), pricing.CheckoutInput{Amount: 30}))
			return &models.CheckoutSession{ClientSecret: "cs_stale"}, nil
		}
		return &models.CheckoutSession{ClientSecret: "cs_fresh"}, nil
	}
	r.sessions = sessions

	require.NoError(t, r.Load(context.Background(), "plan-d", ""))
	require.NoError(t, r.Confirm(context.Background(), pricing.CheckoutInput{Amount: 10}))

	assert.Equal(t, "cs_fresh", r.Session().ClientSecret, "superseded response must not win")
	assert.Equal(t, 30.0, r.Amount())
}
