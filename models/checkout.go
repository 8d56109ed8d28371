package models

import (
	"strings"

	"github.com/stripe/stripe-go/v79"
)

// MockSecretPrefix marks a simulated payment session: the gateway returns a
// client secret with this prefix on test checkouts, and the resolver routes
// them straight to the success path without touching the payment widget.
const MockSecretPrefix = "pi_mock"

// CheckoutSession is a pending payment-collection transaction. ClientSecret
// is the opaque token handed to the payment widget.
type CheckoutSession struct {
	ClientSecret string          `json:"client_secret"`
	Amount       float64         `json:"amount,omitempty"`
	Currency     stripe.Currency `json:"currency,omitempty"`
}

// IsMock reports whether the session is on the simulated payment path.
func (s *CheckoutSession) IsMock() bool {
	return strings.HasPrefix(s.ClientSecret, MockSecretPrefix)
}

// CheckoutRequest is the POST /payment/checkout payload. Amount is only set
// for donation plans, Quantity only for tiered plans.
type CheckoutRequest struct {
	PlanID        string  `json:"plan_id"`
	AffiliateCode string  `json:"affiliate_code,omitempty"`
	CouponCode    string  `json:"coupon_code,omitempty"`
	Amount        float64 `json:"amount,omitempty"`
	Quantity      int     `json:"quantity,omitempty"`
}
