package enum

// CheckoutState is the step a checkout resolution is in. Config collects
// type-specific input (donation amount, tier quantity); Payment means a
// payment session has been obtained from the gateway.
type CheckoutState string

const (
	CheckoutStateConfig  CheckoutState = "config"
	CheckoutStatePayment CheckoutState = "payment"
)
