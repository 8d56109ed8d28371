package models

import (
	"time"

	"github.com/stripe/stripe-go/v79"

	"goflare.io/storefront/models/enum"
)

// Wallet is a user's platform balance.
type Wallet struct {
	ID       string          `json:"id"`
	Balance  float64         `json:"balance"`
	Currency stripe.Currency `json:"currency"`
}

// WalletTransaction is one entry of the append-only ledger. Amount is
// signed: positive credits, negative debits.
type WalletTransaction struct {
	ID          string               `json:"id"`
	Amount      float64              `json:"amount"`
	Type        enum.TransactionType `json:"type"`
	Description string               `json:"description"`
	CreatedAt   time.Time            `json:"created_at"`
}

// PayoutRequest is a withdrawal submitted against the wallet balance.
type PayoutRequest struct {
	ID        string            `json:"id,omitempty"`
	Amount    float64           `json:"amount"`
	Currency  stripe.Currency   `json:"currency,omitempty"`
	Method    enum.PayoutMethod `json:"method"`
	Status    enum.PayoutStatus `json:"status,omitempty"`
	CreatedAt time.Time         `json:"created_at,omitempty"`
}
