package checkout

import (
	"context"

	"goflare.io/storefront/apiclient"
	"goflare.io/storefront/models"
)

// SessionRequester obtains a payment session from the platform. The
// protocol has no in-place update: a changed amount (coupon applied or
// removed) always means discarding the old session and requesting a new one.
type SessionRequester interface {
	RequestSession(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutSession, error)
}

type sessionRequester struct {
	client *apiclient.Client
}

func NewSessionRequester(client *apiclient.Client) SessionRequester {
	return &sessionRequester{client: client}
}

func (r *sessionRequester) RequestSession(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutSession, error) {
	var session models.CheckoutSession
	if err := r.client.Post(ctx, "/payment/checkout", req, &session); err != nil {
		return nil, err
	}
	return &session, nil
}
