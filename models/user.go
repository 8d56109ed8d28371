package models

// User is the authenticated account as reported by GET /users/me.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// TokenPair is the /auth/login and /auth/refresh response. The refresh
// credential itself travels in an HTTP-only cookie and never appears here.
type TokenPair struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
	ExpiresIn   int64  `json:"expires_in,omitempty"`
}

// ConnectStatus is the Stripe Connect onboarding state of the account.
type ConnectStatus struct {
	Connected       bool   `json:"connected"`
	StripeConnectID string `json:"stripe_connect_id,omitempty"`
	Status          string `json:"status,omitempty"`
}
