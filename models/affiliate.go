package models

import "time"

// AffiliateProgram holds the commission settings links are created under.
type AffiliateProgram struct {
	ID             string    `json:"id,omitempty"`
	ProductID      string    `json:"product_id,omitempty"`
	CommissionRate float64   `json:"commission_rate"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at,omitempty"`
}

// AffiliateLink is a tracked referral link owned by an affiliate.
type AffiliateLink struct {
	ID          string    `json:"id,omitempty"`
	ProgramID   string    `json:"program_id"`
	Code        string    `json:"code"`
	URL         string    `json:"url"`
	Clicks      int       `json:"clicks"`
	Conversions int       `json:"conversions"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

// Commission records earnings from one converted sale.
type Commission struct {
	ID           string    `json:"id"`
	LinkID       string    `json:"link_id"`
	OrderID      string    `json:"order_id"`
	TotalAmount  float64   `json:"total_amount"`
	EarnedAmount float64   `json:"earned_amount"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// AffiliateStats is the dashboard aggregate returned by the platform.
type AffiliateStats struct {
	Links       []*AffiliateLink `json:"links"`
	Commissions []*Commission    `json:"commissions"`
}
