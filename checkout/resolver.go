package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"goflare.io/storefront/apiclient"
	"goflare.io/storefront/models"
	"goflare.io/storefront/models/enum"
	"goflare.io/storefront/pricing"
)

var (
	// ErrLoginRequired means session initialization was refused for lack of
	// authentication; the flow must redirect to the login entry point.
	ErrLoginRequired = errors.New("checkout requires login")
	// ErrCouponsNotAllowed rejects any coupon on a plan with coupons
	// disabled, before the code is even sent to the platform.
	ErrCouponsNotAllowed = errors.New("coupons are not enabled for this plan")
	// ErrNotLoaded means the resolver has no plan yet.
	ErrNotLoaded = errors.New("no plan loaded")
)

// PlanGetter is the slice of the pricing service the resolver needs.
type PlanGetter interface {
	GetByID(ctx context.Context, id string) (*models.PricingPlan, error)
}

// CouponValidator asks the platform whether a code applies to a plan.
type CouponValidator interface {
	Validate(ctx context.Context, code, planID string) (*models.Coupon, error)
}

const (
	keyLoad    = "load"
	keySession = "session"
	keyCoupon  = "coupon"
)

// Resolver walks a checkout through its two steps: config, where plan types
// needing buyer input (donation amount, tier quantity) collect and validate
// it locally, and payment, where a session has been obtained. Plan types
// with nothing to configure skip straight to requesting a session on load.
//
// Network completions are generation-checked: only the most recent request
// per logical key may change resolver state, so a response arriving after
// the user moved on is dropped.
type Resolver struct {
	plans    PlanGetter
	coupons  CouponValidator
	sessions SessionRequester
	logger   *zap.Logger
	gens     *generations
	now      func() time.Time

	mu            sync.Mutex
	plan          *models.PricingPlan
	state         enum.CheckoutState
	input         pricing.CheckoutInput
	coupon        *models.Coupon
	affiliateCode string
	session       *models.CheckoutSession
	amount        float64
	completed     bool
	retryMessage  string
}

func NewResolver(plans PlanGetter, coupons CouponValidator, sessions SessionRequester, logger *zap.Logger) *Resolver {
	return &Resolver{
		plans:    plans,
		coupons:  coupons,
		sessions: sessions,
		logger:   logger,
		gens:     newGenerations(),
		now:      time.Now,
		state:    enum.CheckoutStateConfig,
	}
}

// NeedsInput reports whether a plan type requires buyer configuration
// before a session can be requested.
func NeedsInput(t enum.PricingType) bool {
	return t == enum.PricingTypeDonation || t == enum.PricingTypeTiered
}

// Load fetches and validates the plan, then either waits in the config step
// or requests a session immediately for types with no input.
func (r *Resolver) Load(ctx context.Context, planID, affiliateCode string) error {
	gen := r.gens.next(keyLoad)

	plan, err := r.plans.GetByID(ctx, planID)
	if err != nil {
		return err
	}
	if err = pricing.Validate(plan); err != nil {
		return err
	}

	if !r.gens.isCurrent(keyLoad, gen) {
		// A newer Load superseded this one; drop the result.
		return nil
	}

	r.mu.Lock()
	r.plan = plan
	r.affiliateCode = affiliateCode
	r.state = enum.CheckoutStateConfig
	r.input = pricing.CheckoutInput{}
	r.coupon = nil
	r.session = nil
	r.completed = false
	r.retryMessage = ""
	r.mu.Unlock()

	if NeedsInput(plan.Type) {
		return nil
	}
	return r.requestSession(ctx)
}

// Confirm validates the buyer's input locally and, if it passes, moves to
// the payment step by requesting a session. No network call happens for
// input that fails validation.
func (r *Resolver) Confirm(ctx context.Context, input pricing.CheckoutInput) error {
	r.mu.Lock()
	plan := r.plan
	r.mu.Unlock()
	if plan == nil {
		return ErrNotLoaded
	}

	if _, err := pricing.ResolveAmount(plan, input, r.now()); err != nil {
		return err
	}

	r.mu.Lock()
	r.input = input
	r.mu.Unlock()

	return r.requestSession(ctx)
}

// ApplyCoupon validates the code against the platform and, on acceptance,
// discards the current session and requests a new one carrying the coupon.
// The charge amount changes, and the protocol cannot update a session in
// place.
func (r *Resolver) ApplyCoupon(ctx context.Context, code string) error {
	r.mu.Lock()
	plan := r.plan
	r.mu.Unlock()
	if plan == nil {
		return ErrNotLoaded
	}
	if !plan.AllowCoupons {
		return ErrCouponsNotAllowed
	}

	gen := r.gens.next(keyCoupon)

	coupon, err := r.coupons.Validate(ctx, code, plan.ID)
	if err != nil {
		return err
	}

	if !r.gens.isCurrent(keyCoupon, gen) {
		return nil
	}

	r.mu.Lock()
	r.coupon = coupon
	r.session = nil // orphan the old session token immediately
	r.mu.Unlock()

	return r.requestSession(ctx)
}

// RemoveCoupon drops an applied coupon, following the same
// invalidate-and-re-request rule as applying one.
func (r *Resolver) RemoveCoupon(ctx context.Context) error {
	r.mu.Lock()
	if r.plan == nil {
		r.mu.Unlock()
		return ErrNotLoaded
	}
	if r.coupon == nil {
		r.mu.Unlock()
		return nil
	}
	r.gens.next(keyCoupon)
	r.coupon = nil
	r.session = nil
	r.mu.Unlock()

	return r.requestSession(ctx)
}

// Retry re-attempts session initialization after a retryable failure.
func (r *Resolver) Retry(ctx context.Context) error {
	r.mu.Lock()
	if r.plan == nil {
		r.mu.Unlock()
		return ErrNotLoaded
	}
	r.mu.Unlock()
	return r.requestSession(ctx)
}

func (r *Resolver) requestSession(ctx context.Context) error {
	r.mu.Lock()
	plan := r.plan
	req := models.CheckoutRequest{
		PlanID:        plan.ID,
		AffiliateCode: r.affiliateCode,
	}
	if r.coupon != nil {
		req.CouponCode = r.coupon.Code
	}
	switch plan.Type {
	case enum.PricingTypeDonation:
		req.Amount = r.input.Amount
	case enum.PricingTypeTiered:
		req.Quantity = r.input.Quantity
	}
	input := r.input
	coupon := r.coupon
	r.mu.Unlock()

	gen := r.gens.next(keySession)

	session, err := r.sessions.RequestSession(ctx, req)

	if !r.gens.isCurrent(keySession, gen) {
		// Superseded while in flight; whatever came back is stale.
		return nil
	}

	if err != nil {
		if apiclient.IsAuthError(err) {
			r.logger.Warn("checkout session refused, login required", zap.String("plan_id", plan.ID))
			return ErrLoginRequired
		}
		r.mu.Lock()
		r.state = enum.CheckoutStateConfig
		r.session = nil
		r.retryMessage = apiclient.ServerMessage(err)
		r.mu.Unlock()
		return fmt.Errorf("failed to initialize checkout session: %w", err)
	}

	amount, amountErr := pricing.ResolveAmount(plan, input, r.now())
	if amountErr == nil {
		amount = pricing.ApplyCoupon(amount, coupon)
	}

	r.mu.Lock()
	r.session = session
	r.state = enum.CheckoutStatePayment
	r.retryMessage = ""
	if amountErr == nil {
		r.amount = amount
	}
	// The mock sentinel bypasses the payment widget entirely.
	r.completed = session.IsMock()
	r.mu.Unlock()
	return nil
}

// State returns the current checkout step.
func (r *Resolver) State() enum.CheckoutState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Plan returns the loaded plan, nil before Load.
func (r *Resolver) Plan() *models.PricingPlan {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.plan
}

// Session returns the active payment session, nil whenever the resolver is
// in the config step or a coupon change has orphaned the previous one.
func (r *Resolver) Session() *models.CheckoutSession {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session
}

// Coupon returns the currently applied coupon, nil when none.
func (r *Resolver) Coupon() *models.Coupon {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.coupon
}

// Amount is the resolved charge amount after early-bird and coupon
// discounts, valid once the payment step is reached.
func (r *Resolver) Amount() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.amount
}

// Completed reports whether the simulated payment path already finished the
// checkout.
func (r *Resolver) Completed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.completed
}

// RetryMessage is the user-facing message of the last retryable failure,
// empty when the most recent session request succeeded.
func (r *Resolver) RetryMessage() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.retryMessage
}

// Summary is the headline for the loaded plan, shared with the authoring
// preview so both render the same text.
func (r *Resolver) Summary() pricing.Headline {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.plan == nil {
		return pricing.Headline{}
	}
	return pricing.HeadlineFor(r.plan)
}
