package enum

// TransactionType labels a wallet ledger entry.
type TransactionType string

const (
	TransactionTypeSale       TransactionType = "sale"
	TransactionTypePayout     TransactionType = "payout"
	TransactionTypeRefund     TransactionType = "refund"
	TransactionTypeCommission TransactionType = "commission"
)
