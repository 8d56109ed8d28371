package storefront

import (
	"context"

	"goflare.io/storefront/models"
	"goflare.io/storefront/models/enum"
	"goflare.io/storefront/pricing"
)

// Storefront is the single entry point the HTTP surface talks to. It
// composes the platform client services: authentication, plan authoring and
// listing, checkout resolution, coupons, wallet, affiliate and Stripe
// Connect.
type Storefront interface {
	Login(ctx context.Context, email, password string) (*models.TokenPair, error)
	Register(ctx context.Context, email, password, fullName string) (*models.TokenPair, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)

	CreatePlan(ctx context.Context, plan *models.PricingPlan) (*models.PricingPlan, error)
	GetPlan(ctx context.Context, id string) (*models.PricingPlan, error)
	ListPlans(ctx context.Context, productID string) ([]*models.PricingPlan, error)
	UpdatePlan(ctx context.Context, plan *models.PricingPlan) (*models.PricingPlan, error)
	DeletePlan(ctx context.Context, id string) error

	CreateCoupon(ctx context.Context, coupon *models.Coupon) (*models.Coupon, error)
	ListCoupons(ctx context.Context) ([]*models.Coupon, error)
	ValidateCoupon(ctx context.Context, code, planID string) (*models.Coupon, error)

	InitiateCheckout(ctx context.Context, params CheckoutParams) (*CheckoutResult, error)

	WalletBalance(ctx context.Context) (*models.Wallet, error)
	WalletTransactions(ctx context.Context) ([]*models.WalletTransaction, error)
	RequestPayout(ctx context.Context, amount float64, method enum.PayoutMethod) (*models.PayoutRequest, error)

	CreateAffiliateProgram(ctx context.Context, rate float64) (*models.AffiliateProgram, error)
	CreateAffiliateLink(ctx context.Context, programID, code string) (*models.AffiliateLink, error)
	AffiliateStats(ctx context.Context) (*models.AffiliateStats, error)

	ConnectOAuthURL(ctx context.Context) (string, error)
	ConnectStatus(ctx context.Context) (*models.ConnectStatus, error)
	ConnectDashboardURL(ctx context.Context) (string, error)
}

// CheckoutParams carries everything a buyer submits to start a checkout.
type CheckoutParams struct {
	PlanID        string  `json:"plan_id"`
	AffiliateCode string  `json:"affiliate_code,omitempty"`
	CouponCode    string  `json:"coupon_code,omitempty"`
	Amount        float64 `json:"amount,omitempty"`
	Quantity      int     `json:"quantity,omitempty"`
}

// CheckoutResult is the resolved checkout handed back to the payment
// widget: the session secret, the charge amount after discounts, and
// whether the simulated payment path already completed.
type CheckoutResult struct {
	ClientSecret string             `json:"client_secret"`
	Amount       float64            `json:"amount"`
	State        enum.CheckoutState `json:"state"`
	Completed    bool               `json:"completed"`
	Headline     string             `json:"headline"`
	Coupon       *models.Coupon     `json:"coupon,omitempty"`
}

// PlanPreview exposes the shared headline formatting for rendering plan
// cards and checkout summaries.
func PlanPreview(plan *models.PricingPlan) pricing.Headline {
	return pricing.HeadlineFor(plan)
}
