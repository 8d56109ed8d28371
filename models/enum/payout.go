package enum

type PayoutMethod string

const (
	PayoutMethodStripe PayoutMethod = "stripe"
	PayoutMethodPaypal PayoutMethod = "paypal"
)

func (m PayoutMethod) Valid() bool {
	return m == PayoutMethodStripe || m == PayoutMethodPaypal
}

type PayoutStatus string

const (
	PayoutStatusPending   PayoutStatus = "pending"
	PayoutStatusPaid      PayoutStatus = "paid"
	PayoutStatusFailed    PayoutStatus = "failed"
	PayoutStatusCancelled PayoutStatus = "cancelled"
)
