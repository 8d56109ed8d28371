package storefront

import (
	"context"

	"go.uber.org/zap"

	"goflare.io/storefront/affiliate"
	"goflare.io/storefront/auth"
	"goflare.io/storefront/checkout"
	"goflare.io/storefront/connect"
	"goflare.io/storefront/coupon"
	"goflare.io/storefront/models"
	"goflare.io/storefront/models/enum"
	"goflare.io/storefront/pricing"
	"goflare.io/storefront/wallet"
)

// Gateway 整合所有前台服務
// Gateway is the Storefront implementation backed by the platform client
// services.
type Gateway struct {
	logger *zap.Logger

	auth      auth.Service
	pricing   pricing.Service
	coupon    coupon.Service
	wallet    wallet.Service
	affiliate affiliate.Service
	connect   connect.Service
	sessions  checkout.SessionRequester
}

func NewGateway(
	logger *zap.Logger,
	as auth.Service,
	ps pricing.Service,
	cs coupon.Service,
	ws wallet.Service,
	afs affiliate.Service,
	cos connect.Service,
	sessions checkout.SessionRequester,
) Storefront {
	return &Gateway{
		logger:    logger,
		auth:      as,
		pricing:   ps,
		coupon:    cs,
		wallet:    ws,
		affiliate: afs,
		connect:   cos,
		sessions:  sessions,
	}
}

func (g *Gateway) Login(ctx context.Context, email, password string) (*models.TokenPair, error) {
	return g.auth.Login(ctx, email, password)
}

func (g *Gateway) Register(ctx context.Context, email, password, fullName string) (*models.TokenPair, error) {
	return g.auth.Register(ctx, email, password, fullName)
}

func (g *Gateway) Logout(ctx context.Context) error {
	return g.auth.Logout(ctx)
}

func (g *Gateway) CurrentUser(ctx context.Context) (*models.User, error) {
	return g.auth.Me(ctx)
}

func (g *Gateway) CreatePlan(ctx context.Context, plan *models.PricingPlan) (*models.PricingPlan, error) {
	return g.pricing.Create(ctx, plan)
}

func (g *Gateway) GetPlan(ctx context.Context, id string) (*models.PricingPlan, error) {
	return g.pricing.GetByID(ctx, id)
}

func (g *Gateway) ListPlans(ctx context.Context, productID string) ([]*models.PricingPlan, error) {
	return g.pricing.List(ctx, productID)
}

func (g *Gateway) UpdatePlan(ctx context.Context, plan *models.PricingPlan) (*models.PricingPlan, error) {
	return g.pricing.Update(ctx, plan)
}

func (g *Gateway) DeletePlan(ctx context.Context, id string) error {
	return g.pricing.Delete(ctx, id)
}

func (g *Gateway) CreateCoupon(ctx context.Context, c *models.Coupon) (*models.Coupon, error) {
	return g.coupon.Create(ctx, c)
}

func (g *Gateway) ListCoupons(ctx context.Context) ([]*models.Coupon, error) {
	return g.coupon.List(ctx)
}

func (g *Gateway) ValidateCoupon(ctx context.Context, code, planID string) (*models.Coupon, error) {
	return g.coupon.Validate(ctx, code, planID)
}

// InitiateCheckout runs one full checkout resolution: load and validate the
// plan, confirm the buyer's input for types that need it, apply the coupon
// if one was supplied, and hand back the resulting session.
func (g *Gateway) InitiateCheckout(ctx context.Context, params CheckoutParams) (*CheckoutResult, error) {
	resolver := checkout.NewResolver(g.pricing, g.coupon, g.sessions, g.logger)

	if err := resolver.Load(ctx, params.PlanID, params.AffiliateCode); err != nil {
		return nil, err
	}

	if checkout.NeedsInput(resolver.Plan().Type) {
		input := pricing.CheckoutInput{Amount: params.Amount, Quantity: params.Quantity}
		if err := resolver.Confirm(ctx, input); err != nil {
			return nil, err
		}
	}

	if params.CouponCode != "" {
		if err := resolver.ApplyCoupon(ctx, params.CouponCode); err != nil {
			return nil, err
		}
	}

	result := &CheckoutResult{
		Amount:    resolver.Amount(),
		State:     resolver.State(),
		Completed: resolver.Completed(),
		Headline:  resolver.Summary().Text,
		Coupon:    resolver.Coupon(),
	}
	if session := resolver.Session(); session != nil {
		result.ClientSecret = session.ClientSecret
	}
	return result, nil
}

func (g *Gateway) WalletBalance(ctx context.Context) (*models.Wallet, error) {
	return g.wallet.Balance(ctx)
}

func (g *Gateway) WalletTransactions(ctx context.Context) ([]*models.WalletTransaction, error) {
	return g.wallet.Transactions(ctx)
}

func (g *Gateway) RequestPayout(ctx context.Context, amount float64, method enum.PayoutMethod) (*models.PayoutRequest, error) {
	return g.wallet.RequestPayout(ctx, amount, method)
}

func (g *Gateway) CreateAffiliateProgram(ctx context.Context, rate float64) (*models.AffiliateProgram, error) {
	return g.affiliate.CreateProgram(ctx, rate)
}

func (g *Gateway) CreateAffiliateLink(ctx context.Context, programID, code string) (*models.AffiliateLink, error) {
	return g.affiliate.CreateLink(ctx, programID, code)
}

func (g *Gateway) AffiliateStats(ctx context.Context) (*models.AffiliateStats, error) {
	return g.affiliate.Stats(ctx)
}

func (g *Gateway) ConnectOAuthURL(ctx context.Context) (string, error) {
	return g.connect.OAuthURL(ctx)
}

func (g *Gateway) ConnectStatus(ctx context.Context) (*models.ConnectStatus, error) {
	return g.connect.Status(ctx)
}

func (g *Gateway) ConnectDashboardURL(ctx context.Context) (string, error) {
	return g.connect.DashboardURL(ctx)
}
